package v1

import (
	"net/http"
	"time"

	"peso-job-portal/internal/delivery/http/response"
	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	seekers := protected.Group("/jobseekers")
	{
		seekers.POST("/vacancies/:id/apply", handler.Apply)
		seekers.GET("/applications", handler.GetMyApplications)
	}

	employers := protected.Group("/employers")
	{
		employers.GET("/vacancies/:id/applications", handler.ListByVacancy)
		employers.POST("/applications/:id/interview", handler.ScheduleInterview)
		employers.POST("/applications/:id/interview/complete", handler.MarkInterviewCompleted)
		employers.POST("/applications/:id/hire", handler.Hire)
		employers.POST("/applications/:id/decline", handler.Decline)
	}
}

type ScheduleInterviewRequest struct {
	ScheduledAt time.Time `json:"scheduled_at" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	Notes       string    `json:"notes"`
}

// Apply godoc
// @Summary      Apply to a vacancy
// @Description  Submit an application to an ongoing, approved vacancy (Job seeker only)
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Vacancy ID"
// @Success      201  {object}  response.Response{data=domain.Application}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobseekers/vacancies/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleJobSeeker {
		c.Error(apperror.Forbidden("Only job seekers can apply to vacancies"))
		return
	}

	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	app, err := h.applicationUC.Apply(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", app)
}

// GetMyApplications godoc
// @Summary      Get my applications
// @Tags         applications
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Router       /jobseekers/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetMyApplications(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	applications, err := h.applicationUC.GetMyApplications(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListByVacancy godoc
// @Summary      List applications for a vacancy
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=[]domain.Application}
// @Failure      403  {object}  response.Response
// @Router       /employers/vacancies/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListByVacancy(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	applications, err := h.applicationUC.ListByVacancy(c.Request.Context(), userID, id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ScheduleInterview godoc
// @Summary      Schedule an interview
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      int                       true  "Application ID"
// @Param        body  body      ScheduleInterviewRequest  true  "Interview details"
// @Success      200   {object}  response.Response{data=domain.Interview}
// @Failure      412   {object}  response.Response
// @Router       /employers/applications/{id}/interview [post]
// @Security     BearerAuth
func (h *ApplicationHandler) ScheduleInterview(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ScheduleInterviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	iv, err := h.applicationUC.ScheduleInterview(c.Request.Context(), userID, id, req.ScheduledAt, req.Location, req.Notes)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview scheduled", iv)
}

// MarkInterviewCompleted godoc
// @Summary      Mark an interview completed
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      412  {object}  response.Response
// @Router       /employers/applications/{id}/interview/complete [post]
// @Security     BearerAuth
func (h *ApplicationHandler) MarkInterviewCompleted(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.applicationUC.MarkInterviewCompleted(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Interview marked completed", nil)
}

// Hire godoc
// @Summary      Hire an applicant
// @Description  Marks the application hired and stamps the hire date
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      412  {object}  response.Response
// @Router       /employers/applications/{id}/hire [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Hire(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.applicationUC.Hire(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant hired", nil)
}

// Decline godoc
// @Summary      Decline an application
// @Tags         applications
// @Produce      json
// @Param        id  path      int  true  "Application ID"
// @Success      200  {object}  response.Response
// @Failure      412  {object}  response.Response
// @Router       /employers/applications/{id}/decline [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Decline(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.applicationUC.Decline(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application declined", nil)
}
