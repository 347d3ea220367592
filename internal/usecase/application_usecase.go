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

// HireMailer is the slice of the email service the application usecase
// needs; satisfied by *email.EmailService.
type HireMailer interface {
	SendHireNotification(to string, data email.HireEmailData) error
}

type applicationUsecase struct {
	applicationRepo domain.ApplicationRepository
	vacancyRepo     domain.JobVacancyRepository
	companyRepo     domain.CompanyRepository
	userRepo        domain.UserRepository
	dispatcher      domain.NotificationDispatcher
	mailer          HireMailer
	machine         *lifecycle.Machine
}

// NewApplicationUsecase creates the application usecase. strictHire
// selects whether hiring requires a completed interview first.
func NewApplicationUsecase(
	applicationRepo domain.ApplicationRepository,
	vacancyRepo domain.JobVacancyRepository,
	companyRepo domain.CompanyRepository,
	userRepo domain.UserRepository,
	dispatcher domain.NotificationDispatcher,
	mailer HireMailer,
	strictHire bool,
) domain.ApplicationUsecase {
	return &applicationUsecase{
		applicationRepo: applicationRepo,
		vacancyRepo:     vacancyRepo,
		companyRepo:     companyRepo,
		userRepo:        userRepo,
		dispatcher:      dispatcher,
		mailer:          mailer,
		machine:         lifecycle.ApplicationMachine(strictHire),
	}
}

// Apply submits an application to an ongoing, approved vacancy.
func (u *applicationUsecase) Apply(ctx context.Context, userID string, vacancyID int64) (*domain.Application, error) {
	vacancy, err := u.vacancyRepo.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, apperror.NotFound("Job vacancy not found")
	}
	if vacancy.Status != domain.VacancyStatusOngoing {
		return nil, apperror.BadRequest("This vacancy is no longer accepting applications")
	}
	if vacancy.PublicationStatus != domain.PublicationStatusApproved {
		return nil, apperror.BadRequest("This vacancy is not open for applications")
	}

	exists, err := u.applicationRepo.CheckExists(ctx, vacancyID, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if exists {
		return nil, apperror.BadRequest("You have already applied to this vacancy")
	}

	app := &domain.Application{
		VacancyID:   vacancyID,
		JobSeekerID: userID,
		Status:      domain.ApplicationStatusPending,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := u.applicationRepo.Create(ctx, app); err != nil {
		return nil, apperror.Internal(err)
	}

	if company, err := u.companyRepo.GetByID(ctx, vacancy.CompanyID); err == nil {
		u.dispatcher.Dispatch(ctx, &domain.Notification{
			AccountID: company.OwnerUserID,
			Title:     "New application",
			Message:   "A job seeker applied to " + vacancy.Title + ".",
		})
	}
	return app, nil
}

func (u *applicationUsecase) GetMyApplications(ctx context.Context, userID string) ([]domain.Application, error) {
	return u.applicationRepo.GetByJobSeekerID(ctx, userID)
}

func (u *applicationUsecase) ListByVacancy(ctx context.Context, userID string, vacancyID int64) ([]domain.Application, error) {
	if _, err := u.requireVacancyOwnership(ctx, userID, vacancyID); err != nil {
		return nil, err
	}
	return u.applicationRepo.GetByVacancyID(ctx, vacancyID)
}

// ScheduleInterview moves a pending application to interview scheduled
// and records the interview.
func (u *applicationUsecase) ScheduleInterview(ctx context.Context, userID string, applicationID int64, scheduledAt time.Time, location, notes string) (*domain.Interview, error) {
	app, err := u.requireApplicationAccess(ctx, userID, applicationID)
	if err != nil {
		return nil, err
	}
	if !u.machine.CanTransition(app.Status, domain.ApplicationStatusInterviewScheduled) {
		return nil, apperror.PreconditionFailed("Cannot schedule an interview for an application in status " + app.Status)
	}
	if !scheduledAt.After(time.Now()) {
		return nil, apperror.BadRequest("Interview must be scheduled in the future")
	}

	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}
	iv := &domain.Interview{
		ApplicationID: applicationID,
		ScheduledAt:   scheduledAt,
		Location:      location,
		Notes:         notesPtr,
		CreatedAt:     time.Now(),
	}
	if err := u.applicationRepo.CreateInterview(ctx, iv); err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.applicationRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusInterviewScheduled, nil); err != nil {
		return nil, apperror.Internal(err)
	}

	u.dispatcher.Dispatch(ctx, &domain.Notification{
		AccountID: app.JobSeekerID,
		Title:     "Interview scheduled",
		Message:   "An interview has been scheduled for your application.",
	})
	return iv, nil
}

// MarkInterviewCompleted requires a scheduled interview regardless of
// the hire precondition mode.
func (u *applicationUsecase) MarkInterviewCompleted(ctx context.Context, userID string, applicationID int64) error {
	app, err := u.requireApplicationAccess(ctx, userID, applicationID)
	if err != nil {
		return err
	}
	if !u.machine.CanTransition(app.Status, domain.ApplicationStatusInterviewCompleted) {
		return apperror.PreconditionFailed("Interview can only be completed from status " + domain.ApplicationStatusInterviewScheduled)
	}
	return u.applicationRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusInterviewCompleted, nil)
}

// Hire marks the applicant hired and stamps the hire date. The entry
// precondition depends on the configured mode; notification and email
// are best-effort and never fail the hire.
func (u *applicationUsecase) Hire(ctx context.Context, userID string, applicationID int64) error {
	app, err := u.requireApplicationAccess(ctx, userID, applicationID)
	if err != nil {
		return err
	}
	if !u.machine.CanTransition(app.Status, domain.ApplicationStatusHired) {
		return apperror.PreconditionFailed("Application cannot be hired from status " + app.Status)
	}

	hiredDate := time.Now()
	if err := u.applicationRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusHired, &hiredDate); err != nil {
		return apperror.Internal(err)
	}

	u.dispatcher.Dispatch(ctx, &domain.Notification{
		AccountID: app.JobSeekerID,
		Title:     "You're hired!",
		Message:   "Congratulations, your application was accepted.",
	})
	u.sendHireEmail(ctx, app)
	return nil
}

func (u *applicationUsecase) Decline(ctx context.Context, userID string, applicationID int64) error {
	app, err := u.requireApplicationAccess(ctx, userID, applicationID)
	if err != nil {
		return err
	}
	if !u.machine.CanTransition(app.Status, domain.ApplicationStatusDeclined) {
		return apperror.PreconditionFailed("Application cannot be declined from status " + app.Status)
	}
	if err := u.applicationRepo.UpdateStatus(ctx, applicationID, domain.ApplicationStatusDeclined, nil); err != nil {
		return apperror.Internal(err)
	}

	u.dispatcher.Dispatch(ctx, &domain.Notification{
		AccountID: app.JobSeekerID,
		Title:     "Application update",
		Message:   "Your application was not selected this time.",
	})
	return nil
}

func (u *applicationUsecase) sendHireEmail(ctx context.Context, app *domain.Application) {
	seeker, err := u.userRepo.GetByID(ctx, app.JobSeekerID)
	if err != nil {
		logger.Log.Warn("Hire email skipped, applicant not found", "application_id", app.ID)
		return
	}
	vacancy, err := u.vacancyRepo.GetByIDWithCompany(ctx, app.VacancyID)
	if err != nil {
		logger.Log.Warn("Hire email skipped, vacancy not found", "application_id", app.ID)
		return
	}
	if err := u.mailer.SendHireNotification(seeker.Email, email.HireEmailData{
		ApplicantName: seeker.FullName,
		JobTitle:      vacancy.Title,
		CompanyName:   vacancy.CompanyName,
	}); err != nil {
		logger.Log.Error("Failed to send hire email", "application_id", app.ID, "error", err)
	}
}

func (u *applicationUsecase) requireApplicationAccess(ctx context.Context, userID string, applicationID int64) (*domain.Application, error) {
	app, err := u.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, apperror.NotFound("Application not found")
	}
	if _, err := u.requireVacancyOwnership(ctx, userID, app.VacancyID); err != nil {
		return nil, err
	}
	return app, nil
}

func (u *applicationUsecase) requireVacancyOwnership(ctx context.Context, userID string, vacancyID int64) (*domain.JobVacancy, error) {
	vacancy, err := u.vacancyRepo.GetByID(ctx, vacancyID)
	if err != nil {
		return nil, apperror.NotFound("Job vacancy not found")
	}
	company, err := u.companyRepo.GetByOwnerUserID(ctx, userID)
	if err != nil || company.ID != vacancy.CompanyID {
		return nil, apperror.Forbidden("You do not own this job vacancy")
	}
	return vacancy, nil
}
