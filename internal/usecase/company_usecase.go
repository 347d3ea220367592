package usecase

import (
	"context"
	"time"

	"peso-job-portal/internal/domain"
	"peso-job-portal/internal/lifecycle"
	"peso-job-portal/pkg/apperror"
	"peso-job-portal/pkg/email"
	"peso-job-portal/pkg/logger"
)

// AccreditationMailer is the slice of the email service the company
// usecase needs; satisfied by *email.EmailService.
type AccreditationMailer interface {
	SendAccreditationResult(to string, data email.AccreditationEmailData) error
}

type companyUsecase struct {
	companyRepo domain.CompanyRepository
	docsRepo    domain.CompanyDocumentsRepository
	userRepo    domain.UserRepository
	dispatcher  domain.NotificationDispatcher
	mailer      AccreditationMailer
}

func NewCompanyUsecase(
	companyRepo domain.CompanyRepository,
	docsRepo domain.CompanyDocumentsRepository,
	userRepo domain.UserRepository,
	dispatcher domain.NotificationDispatcher,
	mailer AccreditationMailer,
) domain.CompanyUsecase {
	return &companyUsecase{
		companyRepo: companyRepo,
		docsRepo:    docsRepo,
		userRepo:    userRepo,
		dispatcher:  dispatcher,
		mailer:      mailer,
	}
}

func (u *companyUsecase) GetMyCompany(ctx context.Context, userID string) (*domain.Company, error) {
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		return nil, apperror.NotFound("Company profile not found")
	}
	return company, nil
}

// UpsertMyCompany creates or updates the employer's company profile. A
// brand-new company starts incomplete until documents are submitted.
func (u *companyUsecase) UpsertMyCompany(ctx context.Context, userID string, company *domain.Company) (*domain.Company, error) {
	if company.Name == "" {
		return nil, apperror.BadRequest("Company name is required")
	}

	existing, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		company.OwnerUserID = userID
		company.Status = domain.CompanyStatusIncomplete
		company.CreatedAt = time.Now()
		company.UpdatedAt = time.Now()
		if err := u.companyRepo.Create(ctx, company); err != nil {
			return nil, apperror.Internal(err)
		}
		return company, nil
	}

	// Profile edits never touch the accreditation lifecycle fields.
	existing.Name = company.Name
	existing.Industry = company.Industry
	existing.Address = company.Address
	existing.Website = company.Website
	existing.UpdatedAt = time.Now()
	if err := u.companyRepo.Update(ctx, existing); err != nil {
		return nil, apperror.Internal(err)
	}
	return existing, nil
}

func (u *companyUsecase) GetCompany(ctx context.Context, id int64) (*domain.Company, error) {
	company, err := u.companyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}
	return company, nil
}

func (u *companyUsecase) ListCompanies(ctx context.Context, status string, page, pageSize int) ([]domain.Company, int64, error) {
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
	return u.companyRepo.List(ctx, status, pageSize, offset)
}

// Accredit grants accreditation to a company whose documents have been
// verified. The gate is strict: anything other than verified documents
// is rejected with a precondition error and no mutation.
func (u *companyUsecase) Accredit(ctx context.Context, companyID int64) (*domain.Company, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, apperror.NotFound("Company not found")
	}
	if !lifecycle.Company.CanTransition(company.Status, domain.CompanyStatusAccredited) {
		return nil, apperror.PreconditionFailed("Company cannot be accredited from status " + company.Status)
	}

	docs, err := u.docsRepo.GetByCompanyID(ctx, companyID)
	if err != nil || docs == nil {
		return nil, apperror.PreconditionFailed("Company has not submitted compliance documents")
	}
	if docs.Status != domain.DocumentStatusVerified {
		return nil, apperror.PreconditionFailed("Company documents must be verified before accreditation")
	}

	now := time.Now()
	accreditationID := lifecycle.NewAccreditationID(now)
	if err := u.companyRepo.Accredit(ctx, companyID, accreditationID, now); err != nil {
		return nil, apperror.Internal(err)
	}

	company.Status = domain.CompanyStatusAccredited
	company.IsRenewal = false
	company.AccreditationID = &accreditationID
	company.AccreditationDate = &now

	u.notifyAccreditationResult(ctx, company, false, "")
	return company, nil
}

// Decline declines an accreditation application, clears any accreditation
// fields and cascades a decline to the company's documents.
func (u *companyUsecase) Decline(ctx context.Context, companyID int64, reason string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return apperror.NotFound("Company not found")
	}
	if !lifecycle.Company.CanTransition(company.Status, domain.CompanyStatusDeclined) {
		return apperror.PreconditionFailed("Company cannot be declined from status " + company.Status)
	}

	if err := u.companyRepo.SetStatusClearingAccreditation(ctx, companyID, domain.CompanyStatusDeclined); err != nil {
		return apperror.Internal(err)
	}
	if err := u.docsRepo.DeclineByCompanyID(ctx, companyID); err != nil {
		// Cross-entity consistency is eventual; the company decline stands.
		logger.Log.Error("Failed to cascade decline to documents", "company_id", companyID, "error", err)
	}

	company.Status = domain.CompanyStatusDeclined
	u.notifyAccreditationResult(ctx, company, true, reason)
	return nil
}

// Revoke withdraws an existing accreditation.
func (u *companyUsecase) Revoke(ctx context.Context, companyID int64, reason string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	company, err := u.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return apperror.NotFound("Company not found")
	}
	if !lifecycle.Company.CanTransition(company.Status, domain.CompanyStatusRevoked) {
		return apperror.PreconditionFailed("Only accredited companies can be revoked")
	}

	if err := u.companyRepo.SetStatusClearingAccreditation(ctx, companyID, domain.CompanyStatusRevoked); err != nil {
		return apperror.Internal(err)
	}

	u.dispatcher.Dispatch(ctx, &domain.Notification{
		AccountID: company.OwnerUserID,
		Title:     "Accreditation revoked",
		Message:   "Your company accreditation has been revoked: " + reason,
	})
	return nil
}

func (u *companyUsecase) SavePreference(ctx context.Context, userID string, pref *domain.CandidatePreference) error {
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		return apperror.NotFound("Company profile not found")
	}
	pref.CompanyID = company.ID
	if err := u.companyRepo.UpsertPreference(ctx, pref); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// notifyAccreditationResult sends the in-app notification and the email
// for an accreditation outcome. Both are best-effort; a failure here
// must never fail the admin action itself.
func (u *companyUsecase) notifyAccreditationResult(ctx context.Context, company *domain.Company, declined bool, reason string) {
	title := "Company accredited"
	message := "Congratulations! Your company is now accredited."
	if declined {
		title = "Accreditation declined"
		message = "Your accreditation application was declined."
		if reason != "" {
			message += " Reason: " + reason
		}
	}
	u.dispatcher.Dispatch(ctx, &domain.Notification{
		AccountID: company.OwnerUserID,
		Title:     title,
		Message:   message,
	})

	owner, err := u.userRepo.GetByID(ctx, company.OwnerUserID)
	if err != nil {
		logger.Log.Warn("Accreditation email skipped, owner not found", "company_id", company.ID)
		return
	}
	data := email.AccreditationEmailData{
		CompanyName: company.Name,
		Declined:    declined,
		Reason:      reason,
	}
	if company.AccreditationID != nil {
		data.AccreditationID = *company.AccreditationID
	}
	if company.AccreditationDate != nil {
		data.AccreditationDate = company.AccreditationDate.Format("January 2, 2006")
	}
	if err := u.mailer.SendAccreditationResult(owner.Email, data); err != nil {
		logger.Log.Error("Failed to send accreditation email", "company_id", company.ID, "error", err)
	}
}
