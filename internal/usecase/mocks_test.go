package usecase_test

import (
	"context"
	"sync"
	"time"

	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/email"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockCompanyRepo struct {
	mock.Mock
}

func (m *MockCompanyRepo) Create(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) Update(ctx context.Context, company *domain.Company) error {
	return m.Called(ctx, company).Error(0)
}
func (m *MockCompanyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) GetByOwnerUserID(ctx context.Context, userID string) (*domain.Company, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyRepo) List(ctx context.Context, status string, limit, offset int) ([]domain.Company, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	var companies []domain.Company
	if args.Get(0) != nil {
		companies = args.Get(0).([]domain.Company)
	}
	return companies, args.Get(1).(int64), args.Error(2)
}
func (m *MockCompanyRepo) Accredit(ctx context.Context, id int64, accreditationID string, accreditedAt time.Time) error {
	return m.Called(ctx, id, accreditationID, accreditedAt).Error(0)
}
func (m *MockCompanyRepo) SetStatusClearingAccreditation(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockCompanyRepo) SetRenewal(ctx context.Context, id int64, isRenewal bool) error {
	return m.Called(ctx, id, isRenewal).Error(0)
}
func (m *MockCompanyRepo) GetPreference(ctx context.Context, companyID int64) (*domain.CandidatePreference, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidatePreference), args.Error(1)
}
func (m *MockCompanyRepo) UpsertPreference(ctx context.Context, pref *domain.CandidatePreference) error {
	return m.Called(ctx, pref).Error(0)
}

type MockDocsRepo struct {
	mock.Mock
}

func (m *MockDocsRepo) GetByCompanyID(ctx context.Context, companyID int64) (*domain.CompanyDocuments, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyDocuments), args.Error(1)
}
func (m *MockDocsRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyDocuments, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CompanyDocuments), args.Error(1)
}
func (m *MockDocsRepo) Upsert(ctx context.Context, docs *domain.CompanyDocuments) error {
	return m.Called(ctx, docs).Error(0)
}
func (m *MockDocsRepo) UpdateStatus(ctx context.Context, id int64, status string, remarks *string) error {
	return m.Called(ctx, id, status, remarks).Error(0)
}
func (m *MockDocsRepo) UpdateExpirationDates(ctx context.Context, id int64, expirations map[string]time.Time) error {
	return m.Called(ctx, id, expirations).Error(0)
}
func (m *MockDocsRepo) ListInGraceWindow(ctx context.Context, from, to time.Time) ([]domain.CompanyDocuments, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyDocuments), args.Error(1)
}
func (m *MockDocsRepo) ListExpiryDue(ctx context.Context, asOf time.Time) ([]domain.CompanyDocuments, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CompanyDocuments), args.Error(1)
}
func (m *MockDocsRepo) MarkGracePeriod(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockDocsRepo) MarkExpired(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockDocsRepo) DeclineByCompanyID(ctx context.Context, companyID int64) error {
	return m.Called(ctx, companyID).Error(0)
}
func (m *MockDocsRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]domain.CompanyDocuments, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	var docs []domain.CompanyDocuments
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.CompanyDocuments)
	}
	return docs, args.Get(1).(int64), args.Error(2)
}

type MockVacancyRepo struct {
	mock.Mock
}

func (m *MockVacancyRepo) Create(ctx context.Context, v *domain.JobVacancy) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVacancyRepo) Update(ctx context.Context, v *domain.JobVacancy) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.JobVacancy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobVacancy), args.Error(1)
}
func (m *MockVacancyRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobVacancyWithCompany, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobVacancyWithCompany), args.Error(1)
}
func (m *MockVacancyRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.JobVacancy, int64, error) {
	args := m.Called(ctx, companyID, limit, offset)
	var vacancies []domain.JobVacancy
	if args.Get(0) != nil {
		vacancies = args.Get(0).([]domain.JobVacancy)
	}
	return vacancies, args.Get(1).(int64), args.Error(2)
}
func (m *MockVacancyRepo) FetchPublicActive(ctx context.Context, limit, offset int) ([]domain.JobVacancyWithCompany, int64, error) {
	args := m.Called(ctx, limit, offset)
	var vacancies []domain.JobVacancyWithCompany
	if args.Get(0) != nil {
		vacancies = args.Get(0).([]domain.JobVacancyWithCompany)
	}
	return vacancies, args.Get(1).(int64), args.Error(2)
}
func (m *MockVacancyRepo) FetchByPublicationStatus(ctx context.Context, status string, limit, offset int) ([]domain.JobVacancyWithCompany, int64, error) {
	args := m.Called(ctx, status, limit, offset)
	var vacancies []domain.JobVacancyWithCompany
	if args.Get(0) != nil {
		vacancies = args.Get(0).([]domain.JobVacancyWithCompany)
	}
	return vacancies, args.Get(1).(int64), args.Error(2)
}
func (m *MockVacancyRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockVacancyRepo) UpdatePublicationStatus(ctx context.Context, id int64, status string) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockVacancyRepo) ListExpiryDue(ctx context.Context, asOf time.Time) ([]domain.JobVacancy, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobVacancy), args.Error(1)
}
func (m *MockVacancyRepo) MarkExpired(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application) error {
	return m.Called(ctx, app).Error(0)
}
func (m *MockApplicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByVacancyID(ctx context.Context, vacancyID int64) ([]domain.Application, error) {
	args := m.Called(ctx, vacancyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) GetByJobSeekerID(ctx context.Context, jobSeekerID string) ([]domain.Application, error) {
	args := m.Called(ctx, jobSeekerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}
func (m *MockApplicationRepo) CheckExists(ctx context.Context, vacancyID int64, jobSeekerID string) (bool, error) {
	args := m.Called(ctx, vacancyID, jobSeekerID)
	return args.Bool(0), args.Error(1)
}
func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id int64, status string, hiredDate *time.Time) error {
	return m.Called(ctx, id, status, hiredDate).Error(0)
}
func (m *MockApplicationRepo) CreateInterview(ctx context.Context, iv *domain.Interview) error {
	return m.Called(ctx, iv).Error(0)
}
func (m *MockApplicationRepo) GetInterviewByApplicationID(ctx context.Context, applicationID int64) (*domain.Interview, error) {
	args := m.Called(ctx, applicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Interview), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockSeekerRepo struct {
	mock.Mock
}

func (m *MockSeekerRepo) GetByUserID(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobSeekerProfile), args.Error(1)
}
func (m *MockSeekerRepo) Upsert(ctx context.Context, profile *domain.JobSeekerProfile) error {
	return m.Called(ctx, profile).Error(0)
}
func (m *MockSeekerRepo) SearchVisible(ctx context.Context, terms []string, limit int) ([]domain.RankedJobSeeker, error) {
	args := m.Called(ctx, terms, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankedJobSeeker), args.Error(1)
}

type MockRecommendationRepo struct {
	mock.Mock
}

func (m *MockRecommendationRepo) SearchEligibleVacancies(ctx context.Context, terms []string, limit int) ([]domain.RankedVacancy, error) {
	args := m.Called(ctx, terms, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RankedVacancy), args.Error(1)
}

// recordingDispatcher captures dispatched notifications for assertions.
type recordingDispatcher struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (d *recordingDispatcher) Dispatch(_ context.Context, n *domain.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notifications = append(d.notifications, *n)
}

// recordingMailer satisfies both mailer interfaces without touching SMTP.
type recordingMailer struct {
	accreditations []email.AccreditationEmailData
	hires          []email.HireEmailData
	err            error
}

func (m *recordingMailer) SendAccreditationResult(_ string, data email.AccreditationEmailData) error {
	m.accreditations = append(m.accreditations, data)
	return m.err
}

func (m *recordingMailer) SendHireNotification(_ string, data email.HireEmailData) error {
	m.hires = append(m.hires, data)
	return m.err
}

func adminContext() context.Context {
	return context.WithValue(context.Background(), domain.KeyUserRole, domain.RoleAdmin)
}
