package v1

import (
	"net/http"
	"time"

	"peso-job-portal/internal/delivery/http/response"
	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	documentUC domain.CompanyDocumentsUsecase
}

// NewDocumentHandler registers compliance document routes
func NewDocumentHandler(protected *gin.RouterGroup, documentUC domain.CompanyDocumentsUsecase) {
	handler := &DocumentHandler{documentUC: documentUC}

	employers := protected.Group("/employers/documents")
	{
		employers.GET("", handler.GetMyDocuments)
		employers.POST("", handler.SubmitDocuments)
	}

	admin := protected.Group("/admin/documents")
	{
		admin.GET("/pending", handler.ListPendingReview)
		admin.POST("/:id/verify", handler.Verify)
		admin.POST("/:id/decline", handler.Decline)
		admin.PUT("/:id/expirations", handler.UpdateExpirationDates)
	}
}

type SubmitDocumentsRequest struct {
	Slots map[string]*domain.DocumentFile `json:"slots" binding:"required"`
}

type ReviewRequest struct {
	Remarks string `json:"remarks"`
}

type ExpirationsRequest struct {
	Expirations map[string]time.Time `json:"expirations" binding:"required"`
}

// GetMyDocuments godoc
// @Summary      Get own compliance documents
// @Tags         documents
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CompanyDocuments}
// @Failure      404  {object}  response.Response
// @Router       /employers/documents [get]
// @Security     BearerAuth
func (h *DocumentHandler) GetMyDocuments(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	docs, err := h.documentUC.GetMyDocuments(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Documents retrieved", docs)
}

// SubmitDocuments godoc
// @Summary      Submit compliance documents
// @Description  Upload or re-upload the compliance document set; status resets to pending
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitDocumentsRequest  true  "Document slots"
// @Success      200   {object}  response.Response{data=domain.CompanyDocuments}
// @Failure      400   {object}  response.Response
// @Router       /employers/documents [post]
// @Security     BearerAuth
func (h *DocumentHandler) SubmitDocuments(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	role := c.GetString(string(domain.KeyUserRole))

	if role != domain.RoleEmployer {
		c.Error(apperror.Forbidden("Only employers can submit compliance documents"))
		return
	}

	var req SubmitDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	docs, err := h.documentUC.SubmitDocuments(c.Request.Context(), userID, req.Slots)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Documents submitted for review", docs)
}

// ListPendingReview godoc
// @Summary      List document sets awaiting review
// @Tags         admin
// @Produce      json
// @Param        page      query  int  false  "Page"
// @Param        pageSize  query  int  false  "Page size"
// @Success      200  {object}  response.Response{data=response.Paginated}
// @Failure      403  {object}  response.Response
// @Router       /admin/documents/pending [get]
// @Security     BearerAuth
func (h *DocumentHandler) ListPendingReview(c *gin.Context) {
	page, pageSize := pageParams(c)

	docs, total, err := h.documentUC.ListPendingReview(c.Request.Context(), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Pending documents retrieved", response.Paginated{
		Items: docs, Total: total, Page: page, PageSize: pageSize,
	})
}

// Verify godoc
// @Summary      Verify a document set
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int            true   "Documents ID"
// @Param        body  body      ReviewRequest  false  "Review remarks"
// @Success      200   {object}  response.Response
// @Failure      412   {object}  response.Response
// @Router       /admin/documents/{id}/verify [post]
// @Security     BearerAuth
func (h *DocumentHandler) Verify(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ReviewRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.documentUC.Verify(c.Request.Context(), id, req.Remarks); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Documents verified", nil)
}

// Decline godoc
// @Summary      Decline a document set
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int            true   "Documents ID"
// @Param        body  body      ReviewRequest  false  "Review remarks"
// @Success      200   {object}  response.Response
// @Failure      412   {object}  response.Response
// @Router       /admin/documents/{id}/decline [post]
// @Security     BearerAuth
func (h *DocumentHandler) Decline(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ReviewRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.documentUC.Decline(c.Request.Context(), id, req.Remarks); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Documents declined", nil)
}

// UpdateExpirationDates godoc
// @Summary      Record per-slot expiration dates
// @Description  Sets document expiry dates after review and clears the grace-period flag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                 true  "Documents ID"
// @Param        body  body      ExpirationsRequest  true  "Slot expirations"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /admin/documents/{id}/expirations [put]
// @Security     BearerAuth
func (h *DocumentHandler) UpdateExpirationDates(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ExpirationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.documentUC.UpdateExpirationDates(c.Request.Context(), id, req.Expirations); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Expiration dates recorded", nil)
}
