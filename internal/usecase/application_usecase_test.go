package usecase_test

import (
	"context"
	"testing"
	"time"

	"peso-job-portal/internal/domain"
	"peso-job-portal/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type applicationFixture struct {
	applicationRepo *MockApplicationRepo
	vacancyRepo     *MockVacancyRepo
	companyRepo     *MockCompanyRepo
	userRepo        *MockUserRepo
	dispatcher      *recordingDispatcher
	mailer          *recordingMailer
	uc              domain.ApplicationUsecase
}

func newApplicationFixture(strictHire bool) *applicationFixture {
	f := &applicationFixture{
		applicationRepo: new(MockApplicationRepo),
		vacancyRepo:     new(MockVacancyRepo),
		companyRepo:     new(MockCompanyRepo),
		userRepo:        new(MockUserRepo),
		dispatcher:      &recordingDispatcher{},
		mailer:          &recordingMailer{},
	}
	f.uc = usecase.NewApplicationUsecase(
		f.applicationRepo, f.vacancyRepo, f.companyRepo, f.userRepo,
		f.dispatcher, f.mailer, strictHire,
	)
	return f
}

// stubOwnership wires the employer "employer-1" as owner of vacancy 100
// via company 7, with application 55 in the given status.
func (f *applicationFixture) stubOwnership(appStatus string) {
	f.applicationRepo.On("GetByID", mock.Anything, int64(55)).Return(&domain.Application{
		ID: 55, VacancyID: 100, JobSeekerID: "seeker-1", Status: appStatus,
	}, nil)
	f.vacancyRepo.On("GetByID", mock.Anything, int64(100)).Return(&domain.JobVacancy{
		ID: 100, CompanyID: 7, Title: "Welder",
	}, nil)
	f.companyRepo.On("GetByOwnerUserID", mock.Anything, "employer-1").Return(&domain.Company{
		ID: 7, OwnerUserID: "employer-1", Name: "Acme Builders",
	}, nil)
}

func TestApply(t *testing.T) {
	openVacancy := func() *domain.JobVacancy {
		return &domain.JobVacancy{
			ID: 100, CompanyID: 7, Title: "Welder",
			Status:            domain.VacancyStatusOngoing,
			PublicationStatus: domain.PublicationStatusApproved,
		}
	}

	t.Run("Should reject expired vacancies", func(t *testing.T) {
		f := newApplicationFixture(false)
		v := openVacancy()
		v.Status = domain.VacancyStatusExpired
		f.vacancyRepo.On("GetByID", mock.Anything, int64(100)).Return(v, nil)

		_, err := f.uc.Apply(context.Background(), "seeker-1", 100)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no longer accepting")
	})

	t.Run("Should reject unapproved vacancies", func(t *testing.T) {
		f := newApplicationFixture(false)
		v := openVacancy()
		v.PublicationStatus = domain.PublicationStatusPending
		f.vacancyRepo.On("GetByID", mock.Anything, int64(100)).Return(v, nil)

		_, err := f.uc.Apply(context.Background(), "seeker-1", 100)
		assert.Error(t, err)
	})

	t.Run("Should reject duplicate applications", func(t *testing.T) {
		f := newApplicationFixture(false)
		f.vacancyRepo.On("GetByID", mock.Anything, int64(100)).Return(openVacancy(), nil)
		f.applicationRepo.On("CheckExists", mock.Anything, int64(100), "seeker-1").Return(true, nil)

		_, err := f.uc.Apply(context.Background(), "seeker-1", 100)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already applied")
	})

	t.Run("Should create a pending application and notify the employer", func(t *testing.T) {
		f := newApplicationFixture(false)
		f.vacancyRepo.On("GetByID", mock.Anything, int64(100)).Return(openVacancy(), nil)
		f.applicationRepo.On("CheckExists", mock.Anything, int64(100), "seeker-1").Return(false, nil)
		f.applicationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Application")).Return(nil)
		f.companyRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Company{
			ID: 7, OwnerUserID: "employer-1",
		}, nil)

		app, err := f.uc.Apply(context.Background(), "seeker-1", 100)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApplicationStatusPending, app.Status)
		assert.Len(t, f.dispatcher.notifications, 1)
		assert.Equal(t, "employer-1", f.dispatcher.notifications[0].AccountID)
	})
}

func TestHirePreconditionModes(t *testing.T) {
	t.Run("Permissive mode hires straight from pending", func(t *testing.T) {
		f := newApplicationFixture(false)
		f.stubOwnership(domain.ApplicationStatusPending)
		f.applicationRepo.On("UpdateStatus", mock.Anything, int64(55), domain.ApplicationStatusHired, mock.AnythingOfType("*time.Time")).Return(nil)
		f.userRepo.On("GetByID", mock.Anything, "seeker-1").Return(&domain.User{
			ID: "seeker-1", Email: "seeker@mail.ph", FullName: "Juan Dela Cruz",
		}, nil)
		f.vacancyRepo.On("GetByIDWithCompany", mock.Anything, int64(100)).Return(&domain.JobVacancyWithCompany{
			JobVacancy:  domain.JobVacancy{ID: 100, Title: "Welder"},
			CompanyName: "Acme Builders",
		}, nil)

		err := f.uc.Hire(context.Background(), "employer-1", 55)
		assert.NoError(t, err)
		assert.Len(t, f.mailer.hires, 1)
		assert.Equal(t, "Welder", f.mailer.hires[0].JobTitle)
	})

	t.Run("Strict mode rejects hiring before interview completion", func(t *testing.T) {
		f := newApplicationFixture(true)
		f.stubOwnership(domain.ApplicationStatusInterviewScheduled)

		err := f.uc.Hire(context.Background(), "employer-1", 55)
		assert.Error(t, err)
		f.applicationRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Strict mode hires after interview completion", func(t *testing.T) {
		f := newApplicationFixture(true)
		f.stubOwnership(domain.ApplicationStatusInterviewCompleted)
		f.applicationRepo.On("UpdateStatus", mock.Anything, int64(55), domain.ApplicationStatusHired, mock.AnythingOfType("*time.Time")).Return(nil)
		f.userRepo.On("GetByID", mock.Anything, "seeker-1").Return(nil, domain.ErrNotFound)

		err := f.uc.Hire(context.Background(), "employer-1", 55)
		assert.NoError(t, err)
	})

	t.Run("Hired applications are terminal in both modes", func(t *testing.T) {
		for _, strict := range []bool{true, false} {
			f := newApplicationFixture(strict)
			f.stubOwnership(domain.ApplicationStatusHired)
			assert.Error(t, f.uc.Hire(context.Background(), "employer-1", 55))
			assert.Error(t, f.uc.Decline(context.Background(), "employer-1", 55))
		}
	})
}

func TestInterviewFlow(t *testing.T) {
	t.Run("Scheduling requires a pending application", func(t *testing.T) {
		f := newApplicationFixture(false)
		f.stubOwnership(domain.ApplicationStatusInterviewCompleted)

		_, err := f.uc.ScheduleInterview(context.Background(), "employer-1", 55, time.Now().Add(48*time.Hour), "PESO Office", "")
		assert.Error(t, err)
	})

	t.Run("Scheduling records the interview and advances the status", func(t *testing.T) {
		f := newApplicationFixture(false)
		f.stubOwnership(domain.ApplicationStatusPending)
		f.applicationRepo.On("CreateInterview", mock.Anything, mock.AnythingOfType("*domain.Interview")).Return(nil)
		f.applicationRepo.On("UpdateStatus", mock.Anything, int64(55), domain.ApplicationStatusInterviewScheduled, (*time.Time)(nil)).Return(nil)

		iv, err := f.uc.ScheduleInterview(context.Background(), "employer-1", 55, time.Now().Add(48*time.Hour), "PESO Office", "bring resume")
		assert.NoError(t, err)
		assert.Equal(t, int64(55), iv.ApplicationID)
		assert.Len(t, f.dispatcher.notifications, 1)
	})

	t.Run("Completion always requires a scheduled interview, even in permissive mode", func(t *testing.T) {
		f := newApplicationFixture(false)
		f.stubOwnership(domain.ApplicationStatusPending)

		err := f.uc.MarkInterviewCompleted(context.Background(), "employer-1", 55)
		assert.Error(t, err)
	})

	t.Run("Non-owner employers are rejected", func(t *testing.T) {
		f := newApplicationFixture(false)
		f.applicationRepo.On("GetByID", mock.Anything, int64(55)).Return(&domain.Application{
			ID: 55, VacancyID: 100, Status: domain.ApplicationStatusPending,
		}, nil)
		f.vacancyRepo.On("GetByID", mock.Anything, int64(100)).Return(&domain.JobVacancy{
			ID: 100, CompanyID: 7,
		}, nil)
		f.companyRepo.On("GetByOwnerUserID", mock.Anything, "intruder").Return(&domain.Company{
			ID: 99, OwnerUserID: "intruder",
		}, nil)

		err := f.uc.MarkInterviewCompleted(context.Background(), "intruder", 55)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "do not own")
	})
}
