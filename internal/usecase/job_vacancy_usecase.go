package usecase

import (
	"context"
	"time"

	"peso-job-portal/internal/domain"
	"peso-job-portal/internal/lifecycle"
	"peso-job-portal/pkg/apperror"
)

type jobVacancyUsecase struct {
	vacancyRepo domain.JobVacancyRepository
	companyRepo domain.CompanyRepository
	dispatcher  domain.NotificationDispatcher
}

func NewJobVacancyUsecase(
	vacancyRepo domain.JobVacancyRepository,
	companyRepo domain.CompanyRepository,
	dispatcher domain.NotificationDispatcher,
) domain.JobVacancyUsecase {
	return &jobVacancyUsecase{
		vacancyRepo: vacancyRepo,
		companyRepo: companyRepo,
		dispatcher:  dispatcher,
	}
}

// Create posts a new vacancy. Only accredited companies may post; the
// vacancy starts ongoing with publication pending moderation.
func (u *jobVacancyUsecase) Create(ctx context.Context, userID string, v *domain.JobVacancy) error {
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		return apperror.NotFound("Company profile not found. Please complete your profile first.")
	}
	if company.Status != domain.CompanyStatusAccredited {
		return apperror.PreconditionFailed("Only accredited companies can post job vacancies")
	}

	if v.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if v.SalaryMin > v.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}
	if !v.ApplicationDeadline.After(time.Now()) {
		return apperror.BadRequest("Application deadline must be in the future")
	}

	v.CompanyID = company.ID
	v.Status = domain.VacancyStatusOngoing
	v.PublicationStatus = domain.PublicationStatusPending
	v.CreatedAt = time.Now()
	v.UpdatedAt = time.Now()

	return u.vacancyRepo.Create(ctx, v)
}

// Update edits an existing vacancy. Edits re-enter moderation.
func (u *jobVacancyUsecase) Update(ctx context.Context, userID string, v *domain.JobVacancy) error {
	existing, err := u.requireOwnership(ctx, userID, v.ID)
	if err != nil {
		return err
	}
	if v.Title == "" {
		return apperror.BadRequest("Title is required")
	}
	if v.SalaryMin > v.SalaryMax {
		return apperror.BadRequest("SalaryMin cannot be greater than SalaryMax")
	}

	v.CompanyID = existing.CompanyID
	v.Status = existing.Status
	v.PublicationStatus = domain.PublicationStatusPending
	v.UpdatedAt = time.Now()

	return u.vacancyRepo.Update(ctx, v)
}

func (u *jobVacancyUsecase) GetDetails(ctx context.Context, id int64) (*domain.JobVacancyWithCompany, error) {
	v, err := u.vacancyRepo.GetByIDWithCompany(ctx, id)
	if err != nil {
		return nil, apperror.NotFound("Job vacancy not found")
	}
	return v, nil
}

func (u *jobVacancyUsecase) ListMine(ctx context.Context, userID string, page, pageSize int) ([]domain.JobVacancy, int64, error) {
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil {
		return nil, 0, apperror.NotFound("Company profile not found")
	}
	limit, offset := paginate(page, pageSize)
	return u.vacancyRepo.FetchByCompanyID(ctx, company.ID, limit, offset)
}

// ListPublic returns approved, ongoing vacancies of accredited companies
// only. The restriction is enforced in the repository query so clients
// cannot bypass it.
func (u *jobVacancyUsecase) ListPublic(ctx context.Context, page, pageSize int) ([]domain.JobVacancyWithCompany, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.vacancyRepo.FetchPublicActive(ctx, limit, offset)
}

func (u *jobVacancyUsecase) ListForModeration(ctx context.Context, page, pageSize int) ([]domain.JobVacancyWithCompany, int64, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, 0, err
	}
	limit, offset := paginate(page, pageSize)
	return u.vacancyRepo.FetchByPublicationStatus(ctx, domain.PublicationStatusPending, limit, offset)
}

func (u *jobVacancyUsecase) ApprovePublication(ctx context.Context, id int64) error {
	return u.moderate(ctx, id, domain.PublicationStatusApproved, "Job vacancy approved",
		"Your job vacancy has been approved and is now visible to job seekers.")
}

func (u *jobVacancyUsecase) DeclinePublication(ctx context.Context, id int64) error {
	return u.moderate(ctx, id, domain.PublicationStatusDeclined, "Job vacancy declined",
		"Your job vacancy was declined by the moderators.")
}

func (u *jobVacancyUsecase) moderate(ctx context.Context, id int64, status, title, message string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	v, err := u.vacancyRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Job vacancy not found")
	}
	if !lifecycle.Publication.CanTransition(v.PublicationStatus, status) {
		return apperror.PreconditionFailed("Publication cannot move from " + v.PublicationStatus + " to " + status)
	}
	if err := u.vacancyRepo.UpdatePublicationStatus(ctx, id, status); err != nil {
		return apperror.Internal(err)
	}

	if company, err := u.companyRepo.GetByID(ctx, v.CompanyID); err == nil {
		u.dispatcher.Dispatch(ctx, &domain.Notification{
			AccountID: company.OwnerUserID,
			Title:     title,
			Message:   message,
		})
	}
	return nil
}

func (u *jobVacancyUsecase) Archive(ctx context.Context, userID string, id int64) error {
	v, err := u.requireOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	if !lifecycle.Vacancy.CanTransition(v.Status, domain.VacancyStatusArchived) {
		return apperror.PreconditionFailed("Vacancy cannot be archived from status " + v.Status)
	}
	return u.vacancyRepo.UpdateStatus(ctx, id, domain.VacancyStatusArchived)
}

// Unarchive restores an archived vacancy. It lands on expired when the
// application deadline already passed, otherwise on ongoing; unarchiving
// never re-opens a past deadline.
func (u *jobVacancyUsecase) Unarchive(ctx context.Context, userID string, id int64) error {
	v, err := u.requireOwnership(ctx, userID, id)
	if err != nil {
		return err
	}
	if v.Status != domain.VacancyStatusArchived {
		return apperror.PreconditionFailed("Only archived vacancies can be unarchived")
	}

	target := domain.VacancyStatusOngoing
	if v.ApplicationDeadline.Before(time.Now()) {
		target = domain.VacancyStatusExpired
	}
	return u.vacancyRepo.UpdateStatus(ctx, id, target)
}

func (u *jobVacancyUsecase) requireOwnership(ctx context.Context, userID string, vacancyID int64) (*domain.JobVacancy, error) {
	v, err := u.vacancyRepo.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, apperror.NotFound("Job vacancy not found")
	}
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil || company.ID != v.CompanyID {
		return nil, apperror.Forbidden("You do not own this job vacancy")
	}
	return v, nil
}

func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	return pageSize, (page - 1) * pageSize
}
