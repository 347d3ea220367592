package v1

import (
	"net/http"
	"time"

	"peso-job-portal/internal/delivery/http/response"
	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type VacancyHandler struct {
	vacancyUC domain.JobVacancyUsecase
}

// NewVacancyHandler registers job vacancy routes
func NewVacancyHandler(public *gin.RouterGroup, protected *gin.RouterGroup, vacancyUC domain.JobVacancyUsecase) {
	handler := &VacancyHandler{vacancyUC: vacancyUC}

	// Public job board
	public.GET("/vacancies", handler.ListPublic)
	public.GET("/vacancies/:id", handler.GetDetails)

	employers := protected.Group("/employers/vacancies")
	{
		employers.GET("", handler.ListMine)
		employers.POST("", handler.Create)
		employers.PUT("/:id", handler.Update)
		employers.POST("/:id/archive", handler.Archive)
		employers.POST("/:id/unarchive", handler.Unarchive)
	}

	admin := protected.Group("/admin/vacancies")
	{
		admin.GET("/moderation", handler.ListForModeration)
		admin.POST("/:id/approve", handler.ApprovePublication)
		admin.POST("/:id/decline", handler.DeclinePublication)
	}
}

type VacancyRequest struct {
	Title               string    `json:"title" binding:"required"`
	Description         string    `json:"description" binding:"required"`
	EmploymentType      string    `json:"employment_type" binding:"required"`
	SalaryType          string    `json:"salary_type"`
	SalaryMin           float64   `json:"salary_min"`
	SalaryMax           float64   `json:"salary_max"`
	Locations           []string  `json:"locations"`
	Industries          []string  `json:"industries"`
	ApplicationDeadline time.Time `json:"application_deadline" binding:"required"`
}

func (req *VacancyRequest) toDomain() *domain.JobVacancy {
	return &domain.JobVacancy{
		Title:               req.Title,
		Description:         req.Description,
		EmploymentType:      req.EmploymentType,
		SalaryType:          req.SalaryType,
		SalaryMin:           req.SalaryMin,
		SalaryMax:           req.SalaryMax,
		Locations:           req.Locations,
		Industries:          req.Industries,
		ApplicationDeadline: req.ApplicationDeadline,
	}
}

// ListPublic godoc
// @Summary      Public job board
// @Description  Approved, ongoing vacancies of accredited companies
// @Tags         vacancies
// @Produce      json
// @Param        page      query  int  false  "Page"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=response.Paginated}
// @Router       /vacancies [get]
func (h *VacancyHandler) ListPublic(c *gin.Context) {
	page, pageSize := pageParams(c)

	vacancies, total, err := h.vacancyUC.ListPublic(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancies retrieved", response.Paginated{
		Items: vacancies, Total: total, Page: page, PageSize: pageSize,
	})
}

// GetDetails godoc
// @Summary      Vacancy details
// @Tags         vacancies
// @Produce      json
// @Param        id  path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response{data=domain.JobVacancyWithCompany}
// @Failure      404  {object}  response.Response
// @Router       /vacancies/{id} [get]
func (h *VacancyHandler) GetDetails(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	vacancy, err := h.vacancyUC.GetDetails(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy retrieved", vacancy)
}

// ListMine godoc
// @Summary      List own vacancies
// @Tags         vacancies
// @Produce      json
// @Param        page      query  int  false  "Page"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=response.Paginated}
// @Router       /employers/vacancies [get]
// @Security     BearerAuth
func (h *VacancyHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	page, pageSize := pageParams(c)

	vacancies, total, err := h.vacancyUC.ListMine(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancies retrieved", response.Paginated{
		Items: vacancies, Total: total, Page: page, PageSize: pageSize,
	})
}

// Create godoc
// @Summary      Post a job vacancy
// @Description  Requires an accredited company; the vacancy enters moderation as pending
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        body  body      VacancyRequest  true  "Vacancy"
// @Success      201   {object}  response.Response{data=domain.JobVacancy}
// @Failure      400   {object}  response.Response
// @Failure      412   {object}  response.Response
// @Router       /employers/vacancies [post]
// @Security     BearerAuth
func (h *VacancyHandler) Create(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can post vacancies"))
		return
	}

	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	vacancy := req.toDomain()
	if err := h.vacancyUC.Create(c.Request.Context(), userID, vacancy); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Vacancy created", vacancy)
}

// Update godoc
// @Summary      Update a job vacancy
// @Description  Edits re-enter moderation as pending
// @Tags         vacancies
// @Accept       json
// @Produce      json
// @Param        id    path      int             true  "Vacancy ID"
// @Param        body  body      VacancyRequest  true  "Vacancy"
// @Success      200   {object}  response.Response{data=domain.JobVacancy}
// @Failure      403   {object}  response.Response
// @Router       /employers/vacancies/{id} [put]
// @Security     BearerAuth
func (h *VacancyHandler) Update(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req VacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	vacancy := req.toDomain()
	vacancy.ID = id
	if err := h.vacancyUC.Update(c.Request.Context(), userID, vacancy); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy updated", vacancy)
}

// Archive godoc
// @Summary      Archive a vacancy
// @Tags         vacancies
// @Produce      json
// @Param        id  path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      412  {object}  response.Response
// @Router       /employers/vacancies/{id}/archive [post]
// @Security     BearerAuth
func (h *VacancyHandler) Archive(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.vacancyUC.Archive(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy archived", nil)
}

// Unarchive godoc
// @Summary      Unarchive a vacancy
// @Description  Restores to ongoing, or straight to expired when the deadline has passed
// @Tags         vacancies
// @Produce      json
// @Param        id  path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      412  {object}  response.Response
// @Router       /employers/vacancies/{id}/unarchive [post]
// @Security     BearerAuth
func (h *VacancyHandler) Unarchive(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.vacancyUC.Unarchive(c.Request.Context(), userID, id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy restored", nil)
}

// ListForModeration godoc
// @Summary      List vacancies awaiting moderation
// @Tags         admin
// @Produce      json
// @Param        page      query  int  false  "Page"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=response.Paginated}
// @Failure      403  {object}  response.Response
// @Router       /admin/vacancies/moderation [get]
// @Security     BearerAuth
func (h *VacancyHandler) ListForModeration(c *gin.Context) {
	page, pageSize := pageParams(c)

	vacancies, total, err := h.vacancyUC.ListForModeration(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancies retrieved", response.Paginated{
		Items: vacancies, Total: total, Page: page, PageSize: pageSize,
	})
}

// ApprovePublication godoc
// @Summary      Approve a vacancy for publication
// @Tags         admin
// @Produce      json
// @Param        id  path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      412  {object}  response.Response
// @Router       /admin/vacancies/{id}/approve [post]
// @Security     BearerAuth
func (h *VacancyHandler) ApprovePublication(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.vacancyUC.ApprovePublication(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy approved", nil)
}

// DeclinePublication godoc
// @Summary      Decline a vacancy's publication
// @Tags         admin
// @Produce      json
// @Param        id  path      int  true  "Vacancy ID"
// @Success      200  {object}  response.Response
// @Failure      412  {object}  response.Response
// @Router       /admin/vacancies/{id}/decline [post]
// @Security     BearerAuth
func (h *VacancyHandler) DeclinePublication(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.vacancyUC.DeclinePublication(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Vacancy declined", nil)
}
