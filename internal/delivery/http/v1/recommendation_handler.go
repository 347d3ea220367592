package v1

import (
	"net/http"

	"peso-job-portal/internal/delivery/http/response"
	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type RecommendationHandler struct {
	recommendationUC domain.RecommendationUsecase
	seekerUC         domain.JobSeekerUsecase
	companyRepo      domain.CompanyRepository
}

// NewRecommendationHandler registers matching routes. The GET variants
// derive the query from the caller's saved preference or profile; the
// POST variants take an explicit query.
func NewRecommendationHandler(
	protected *gin.RouterGroup,
	recommendationUC domain.RecommendationUsecase,
	seekerUC domain.JobSeekerUsecase,
	companyRepo domain.CompanyRepository,
) {
	handler := &RecommendationHandler{
		recommendationUC: recommendationUC,
		seekerUC:         seekerUC,
		companyRepo:      companyRepo,
	}

	employers := protected.Group("/employers/recommendations")
	{
		employers.GET("/jobseekers", handler.RecommendJobSeekersFromPreference)
		employers.POST("/jobseekers", handler.RecommendJobSeekers)
	}

	seekers := protected.Group("/jobseekers/recommendations")
	{
		seekers.GET("/vacancies", handler.RecommendVacanciesFromProfile)
		seekers.POST("/vacancies", handler.RecommendVacancies)
	}
}

// RecommendJobSeekers godoc
// @Summary      Recommend job seekers for an explicit query
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SeekerQuery  true  "Candidate query"
// @Success      200   {object}  response.Response{data=[]domain.RecommendedSeeker}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /employers/recommendations/jobseekers [post]
// @Security     BearerAuth
func (h *RecommendationHandler) RecommendJobSeekers(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer && role != domain.RoleAdmin {
		c.Error(apperror.Forbidden("Only employers can request candidate recommendations"))
		return
	}

	var q domain.SeekerQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	results, err := h.recommendationUC.RecommendJobSeekers(c.Request.Context(), &q)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendations retrieved", results)
}

// RecommendJobSeekersFromPreference godoc
// @Summary      Recommend job seekers from the saved preference profile
// @Tags         recommendations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.RecommendedSeeker}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/recommendations/jobseekers [get]
// @Security     BearerAuth
func (h *RecommendationHandler) RecommendJobSeekersFromPreference(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can request candidate recommendations"))
		return
	}

	company, err := h.companyRepo.GetByOwnerUserID(c.Request.Context(), userID)
	if err != nil {
		c.Error(apperror.NotFound("Company profile not found"))
		return
	}
	pref, err := h.companyRepo.GetPreference(c.Request.Context(), company.ID)
	if err != nil {
		c.Error(apperror.NotFound("No candidate preference saved yet"))
		return
	}

	results, err := h.recommendationUC.RecommendJobSeekers(c.Request.Context(), &domain.SeekerQuery{
		Specializations: pref.Specializations,
		Skills:          pref.Skills,
		Educations:      pref.Educations,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendations retrieved", results)
}

// RecommendVacancies godoc
// @Summary      Recommend vacancies for an explicit query
// @Tags         recommendations
// @Accept       json
// @Produce      json
// @Param        body  body      domain.VacancyQuery  true  "Vacancy query"
// @Success      200   {object}  response.Response{data=[]domain.RecommendedVacancy}
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /jobseekers/recommendations/vacancies [post]
// @Security     BearerAuth
func (h *RecommendationHandler) RecommendVacancies(c *gin.Context) {
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Only job seekers can request vacancy recommendations"))
		return
	}

	var q domain.VacancyQuery
	if err := c.ShouldBindJSON(&q); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	results, err := h.recommendationUC.RecommendVacancies(c.Request.Context(), &q)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendations retrieved", results)
}

// RecommendVacanciesFromProfile godoc
// @Summary      Recommend vacancies from the saved matching profile
// @Tags         recommendations
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.RecommendedVacancy}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobseekers/recommendations/vacancies [get]
// @Security     BearerAuth
func (h *RecommendationHandler) RecommendVacanciesFromProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))
	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Only job seekers can request vacancy recommendations"))
		return
	}

	profile, err := h.seekerUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	results, err := h.recommendationUC.RecommendVacancies(c.Request.Context(), &domain.VacancyQuery{
		Positions:       profile.PreferredPositions,
		Locations:       profile.PreferredLocations,
		Specializations: profile.Specializations,
		EmploymentType:  profile.EmploymentType,
		SalaryType:      profile.SalaryType,
		SalaryMin:       profile.ExpectedSalaryMin,
		SalaryMax:       profile.ExpectedSalaryMax,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Recommendations retrieved", results)
}
