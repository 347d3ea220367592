package v1

import (
	"net/http"

	"peso-job-portal/internal/delivery/http/response"
	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobSeekerHandler struct {
	seekerUC domain.JobSeekerUsecase
}

// NewJobSeekerHandler registers job seeker profile routes
func NewJobSeekerHandler(protected *gin.RouterGroup, seekerUC domain.JobSeekerUsecase) {
	handler := &JobSeekerHandler{seekerUC: seekerUC}

	seekers := protected.Group("/jobseekers")
	{
		seekers.GET("/profile", handler.GetMyProfile)
		seekers.PUT("/profile", handler.UpsertMyProfile)
	}
}

type SeekerProfileRequest struct {
	Specializations    []string `json:"specializations"`
	Skills             []string `json:"skills"`
	Educations         []string `json:"educations"`
	PreferredPositions []string `json:"preferred_positions"`
	PreferredLocations []string `json:"preferred_locations"`
	EmploymentType     string   `json:"employment_type"`
	SalaryType         string   `json:"salary_type"`
	ExpectedSalaryMin  float64  `json:"expected_salary_min"`
	ExpectedSalaryMax  float64  `json:"expected_salary_max"`
	Visible            bool     `json:"visible"`
}

// GetMyProfile godoc
// @Summary      Get own matching profile
// @Tags         jobseekers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.JobSeekerProfile}
// @Failure      404  {object}  response.Response
// @Router       /jobseekers/profile [get]
// @Security     BearerAuth
func (h *JobSeekerHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.seekerUC.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// UpsertMyProfile godoc
// @Summary      Create or update own matching profile
// @Tags         jobseekers
// @Accept       json
// @Produce      json
// @Param        body  body      SeekerProfileRequest  true  "Profile"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /jobseekers/profile [put]
// @Security     BearerAuth
func (h *JobSeekerHandler) UpsertMyProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Only job seekers can manage a matching profile"))
		return
	}

	var req SeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	err := h.seekerUC.UpsertMyProfile(c.Request.Context(), userID, &domain.JobSeekerProfile{
		Specializations:    req.Specializations,
		Skills:             req.Skills,
		Educations:         req.Educations,
		PreferredPositions: req.PreferredPositions,
		PreferredLocations: req.PreferredLocations,
		EmploymentType:     req.EmploymentType,
		SalaryType:         req.SalaryType,
		ExpectedSalaryMin:  req.ExpectedSalaryMin,
		ExpectedSalaryMax:  req.ExpectedSalaryMax,
		Visible:            req.Visible,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile saved", nil)
}
