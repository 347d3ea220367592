package usecase

import (
	"context"
	"time"

	"peso-job-portal/internal/domain"
	"peso-job-portal/internal/lifecycle"
	"peso-job-portal/pkg/apperror"
	"peso-job-portal/pkg/logger"
)

type documentUsecase struct {
	docsRepo    domain.CompanyDocumentsRepository
	companyRepo domain.CompanyRepository
	dispatcher  domain.NotificationDispatcher
}

func NewDocumentUsecase(
	docsRepo domain.CompanyDocumentsRepository,
	companyRepo domain.CompanyRepository,
	dispatcher domain.NotificationDispatcher,
) domain.CompanyDocumentsUsecase {
	return &documentUsecase{
		docsRepo:    docsRepo,
		companyRepo: companyRepo,
		dispatcher:  dispatcher,
	}
}

func (u *documentUsecase) GetMyDocuments(ctx context.Context, userID string) (*domain.CompanyDocuments, error) {
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Company profile not found")
	}
	docs, err := u.docsRepo.GetByCompanyID(ctx, company.ID)
	if err != nil || docs == nil {
		return nil, apperror.NotFound("No documents submitted yet")
	}
	return docs, nil
}

// SubmitDocuments records a document (re)upload. Re-uploading over a
// verified or expired record is a renewal: both the record and the
// company get flagged. Every submission resets the status to pending so
// an administrator reviews it again.
func (u *documentUsecase) SubmitDocuments(ctx context.Context, userID string, slots map[string]*domain.DocumentFile) (*domain.CompanyDocuments, error) {
	if len(slots) == 0 {
		return nil, apperror.BadRequest("At least one document is required")
	}
	for slot := range slots {
		if !validSlot(slot) {
			return nil, apperror.BadRequest("Unknown document slot: " + slot)
		}
	}

	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Company profile not found")
	}

	existing, err := u.docsRepo.GetByCompanyID(ctx, company.ID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	isRenewal := lifecycle.IsRenewalSubmission(existing)

	docs := &domain.CompanyDocuments{
		CompanyID: company.ID,
		Slots:     slots,
		Status:    domain.DocumentStatusPending,
		IsRenewal: isRenewal,
		UpdatedAt: time.Now(),
	}
	if existing != nil {
		docs.ID = existing.ID
		docs.CreatedAt = existing.CreatedAt
		// The grace flag survives a re-upload; it is cleared only when
		// the reviewer records new expiration dates.
		docs.GracePeriod = existing.GracePeriod
	} else {
		docs.CreatedAt = docs.UpdatedAt
	}

	if err := u.docsRepo.Upsert(ctx, docs); err != nil {
		return nil, apperror.Internal(err)
	}

	if isRenewal {
		if err := u.companyRepo.SetRenewal(ctx, company.ID, true); err != nil {
			logger.Log.Error("Failed to flag company renewal", "company_id", company.ID, "error", err)
		}
	}
	// A first complete submission moves an incomplete company into review.
	if company.Status == domain.CompanyStatusIncomplete {
		if err := u.companyRepo.Update(ctx, &domain.Company{
			ID:          company.ID,
			OwnerUserID: company.OwnerUserID,
			Name:        company.Name,
			Industry:    company.Industry,
			Address:     company.Address,
			Website:     company.Website,
			Status:      domain.CompanyStatusPending,
			UpdatedAt:   time.Now(),
		}); err != nil {
			logger.Log.Error("Failed to move company into review", "company_id", company.ID, "error", err)
		}
	}

	return docs, nil
}

func (u *documentUsecase) Verify(ctx context.Context, documentsID int64, remarks string) error {
	return u.review(ctx, documentsID, domain.DocumentStatusVerified, remarks,
		"Documents verified", "Your compliance documents have been verified.")
}

func (u *documentUsecase) Decline(ctx context.Context, documentsID int64, remarks string) error {
	return u.review(ctx, documentsID, domain.DocumentStatusDeclined, remarks,
		"Documents declined", "Your compliance documents were declined. Please re-submit.")
}

func (u *documentUsecase) review(ctx context.Context, documentsID int64, status, remarks, title, message string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	docs, err := u.docsRepo.GetByID(ctx, documentsID)
	if err != nil || docs == nil {
		return apperror.NotFound("Document record not found")
	}
	if !lifecycle.Documents.CanTransition(docs.Status, status) {
		return apperror.PreconditionFailed("Documents cannot move from " + docs.Status + " to " + status)
	}

	var remarksPtr *string
	if remarks != "" {
		remarksPtr = &remarks
	}
	if err := u.docsRepo.UpdateStatus(ctx, documentsID, status, remarksPtr); err != nil {
		return apperror.Internal(err)
	}

	if company, err := u.companyRepo.GetByID(ctx, docs.CompanyID); err == nil {
		u.dispatcher.Dispatch(ctx, &domain.Notification{
			AccountID: company.OwnerUserID,
			Title:     title,
			Message:   message,
		})
	}
	return nil
}

// UpdateExpirationDates records per-slot expiry dates after review and
// clears the grace-period flag. The sweep only ever sets the flag; this
// is the single path that clears it.
func (u *documentUsecase) UpdateExpirationDates(ctx context.Context, documentsID int64, expirations map[string]time.Time) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if len(expirations) == 0 {
		return apperror.BadRequest("At least one expiration date is required")
	}
	for slot := range expirations {
		if !validSlot(slot) {
			return apperror.BadRequest("Unknown document slot: " + slot)
		}
	}

	docs, err := u.docsRepo.GetByID(ctx, documentsID)
	if err != nil || docs == nil {
		return apperror.NotFound("Document record not found")
	}
	for slot := range expirations {
		if docs.Slots[slot] == nil {
			return apperror.BadRequest("No document uploaded for slot: " + slot)
		}
	}

	if err := u.docsRepo.UpdateExpirationDates(ctx, documentsID, expirations); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *documentUsecase) ListPendingReview(ctx context.Context, page, pageSize int) ([]domain.CompanyDocuments, int64, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize
	return u.docsRepo.ListByStatus(ctx, domain.DocumentStatusPending, pageSize, offset)
}

func validSlot(slot string) bool {
	for _, s := range domain.DocumentSlots {
		if s == slot {
			return true
		}
	}
	return false
}
