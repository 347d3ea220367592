package v1

import (
	"net/http"
	"strconv"

	"peso-job-portal/internal/delivery/http/response"
	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

// NewCompanyHandler registers company profile and accreditation routes
func NewCompanyHandler(protected *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	employers := protected.Group("/employers")
	{
		employers.GET("/company", handler.GetMyCompany)
		employers.PUT("/company", handler.UpsertMyCompany)
		employers.PUT("/company/preference", handler.SavePreference)
	}

	admin := protected.Group("/admin/companies")
	{
		admin.GET("", handler.ListCompanies)
		admin.GET("/:id", handler.GetCompany)
		admin.POST("/:id/accredit", handler.Accredit)
		admin.POST("/:id/decline", handler.Decline)
		admin.POST("/:id/revoke", handler.Revoke)
	}
}

type UpsertCompanyRequest struct {
	Name     string  `json:"name" binding:"required"`
	Industry *string `json:"industry"`
	Address  *string `json:"address"`
	Website  *string `json:"website"`
}

type ReasonRequest struct {
	Reason string `json:"reason"`
}

// GetMyCompany godoc
// @Summary      Get own company profile
// @Tags         companies
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /employers/company [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetMyCompany(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	company, err := h.companyUC.GetMyCompany(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company retrieved", company)
}

// UpsertMyCompany godoc
// @Summary      Create or update own company profile
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      UpsertCompanyRequest  true  "Company profile"
// @Success      200   {object}  response.Response{data=domain.Company}
// @Failure      400   {object}  response.Response
// @Router       /employers/company [put]
// @Security     BearerAuth
func (h *CompanyHandler) UpsertMyCompany(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can manage a company profile"))
		return
	}

	var req UpsertCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	company, err := h.companyUC.UpsertMyCompany(c.Request.Context(), userID, &domain.Company{
		Name:     req.Name,
		Industry: req.Industry,
		Address:  req.Address,
		Website:  req.Website,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company saved", company)
}

// SavePreference godoc
// @Summary      Save candidate preference profile
// @Description  Free-text hiring preferences used for job seeker recommendations
// @Tags         companies
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CandidatePreference  true  "Preference profile"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /employers/company/preference [put]
// @Security     BearerAuth
func (h *CompanyHandler) SavePreference(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var pref domain.CandidatePreference
	if err := c.ShouldBindJSON(&pref); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.companyUC.SavePreference(c.Request.Context(), userID, &pref); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Preference saved", nil)
}

// ListCompanies godoc
// @Summary      List companies
// @Description  List companies, optionally filtered by accreditation status (Admin only)
// @Tags         admin
// @Produce      json
// @Param        status    query     string  false  "Status filter"
// @Param        page      query     int     false  "Page"
// @Param        pageSize  query     int     false  "Page size"
// @Success      200  {object}  response.Response{data=response.Paginated}
// @Failure      403  {object}  response.Response
// @Router       /admin/companies [get]
// @Security     BearerAuth
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	page, pageSize := pageParams(c)

	companies, total, err := h.companyUC.ListCompanies(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Companies retrieved", response.Paginated{
		Items: companies, Total: total, Page: page, PageSize: pageSize,
	})
}

// GetCompany godoc
// @Summary      Get a company
// @Tags         admin
// @Produce      json
// @Param        id  path      int  true  "Company ID"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      404  {object}  response.Response
// @Router       /admin/companies/{id} [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.GetCompany(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company retrieved", company)
}

// Accredit godoc
// @Summary      Accredit a company
// @Description  Grant accreditation; requires the company's documents to be verified
// @Tags         admin
// @Produce      json
// @Param        id  path      int  true  "Company ID"
// @Success      200  {object}  response.Response{data=domain.Company}
// @Failure      403  {object}  response.Response
// @Failure      412  {object}  response.Response
// @Router       /admin/companies/{id}/accredit [post]
// @Security     BearerAuth
func (h *CompanyHandler) Accredit(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.Accredit(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company accredited", company)
}

// Decline godoc
// @Summary      Decline a company's accreditation application
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int            true   "Company ID"
// @Param        body  body      ReasonRequest  false  "Decline reason"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Router       /admin/companies/{id}/decline [post]
// @Security     BearerAuth
func (h *CompanyHandler) Decline(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ReasonRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.companyUC.Decline(c.Request.Context(), id, req.Reason); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company declined", nil)
}

// Revoke godoc
// @Summary      Revoke an accredited company
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int            true   "Company ID"
// @Param        body  body      ReasonRequest  false  "Revocation reason"
// @Success      200   {object}  response.Response
// @Failure      403   {object}  response.Response
// @Failure      412   {object}  response.Response
// @Router       /admin/companies/{id}/revoke [post]
// @Security     BearerAuth
func (h *CompanyHandler) Revoke(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ReasonRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.companyUC.Revoke(c.Request.Context(), id, req.Reason); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Accreditation revoked", nil)
}

// idParam parses the :id path segment.
func idParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID")
	}
	return id, nil
}

// pageParams parses page/pageSize query params with defaults.
func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return page, pageSize
}
