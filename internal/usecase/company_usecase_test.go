package usecase_test

import (
	"context"
	"regexp"
	"testing"

	"peso-job-portal/internal/domain"
	"peso-job-portal/internal/usecase"
	"peso-job-portal/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newCompanyFixture() (*MockCompanyRepo, *MockDocsRepo, *MockUserRepo, *recordingDispatcher, *recordingMailer, domain.CompanyUsecase) {
	companyRepo := new(MockCompanyRepo)
	docsRepo := new(MockDocsRepo)
	userRepo := new(MockUserRepo)
	dispatcher := &recordingDispatcher{}
	mailer := &recordingMailer{}
	uc := usecase.NewCompanyUsecase(companyRepo, docsRepo, userRepo, dispatcher, mailer)
	return companyRepo, docsRepo, userRepo, dispatcher, mailer, uc
}

func TestAccredit(t *testing.T) {
	pendingCompany := func() *domain.Company {
		return &domain.Company{ID: 7, OwnerUserID: "owner-1", Name: "Acme Builders", Status: domain.CompanyStatusPending}
	}

	t.Run("Should fail without admin role", func(t *testing.T) {
		_, _, _, _, _, uc := newCompanyFixture()
		_, err := uc.Accredit(context.Background(), 7)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "administrators")
	})

	t.Run("Should fail with precondition error when documents are not verified", func(t *testing.T) {
		companyRepo, docsRepo, _, _, _, uc := newCompanyFixture()
		companyRepo.On("GetByID", mock.Anything, int64(7)).Return(pendingCompany(), nil)
		docsRepo.On("GetByCompanyID", mock.Anything, int64(7)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusPending,
		}, nil)

		_, err := uc.Accredit(adminContext(), 7)
		assert.Error(t, err)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, 412, appErr.Code)
		// No mutation attempted
		companyRepo.AssertNotCalled(t, "Accredit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fail when no documents were submitted", func(t *testing.T) {
		companyRepo, docsRepo, _, _, _, uc := newCompanyFixture()
		companyRepo.On("GetByID", mock.Anything, int64(7)).Return(pendingCompany(), nil)
		docsRepo.On("GetByCompanyID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		_, err := uc.Accredit(adminContext(), 7)
		assert.Error(t, err)
		companyRepo.AssertNotCalled(t, "Accredit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should fail for a company already accredited", func(t *testing.T) {
		companyRepo, _, _, _, _, uc := newCompanyFixture()
		c := pendingCompany()
		c.Status = domain.CompanyStatusAccredited
		companyRepo.On("GetByID", mock.Anything, int64(7)).Return(c, nil)

		_, err := uc.Accredit(adminContext(), 7)
		assert.Error(t, err)
	})

	t.Run("Should accredit a verified company and generate an accreditation id", func(t *testing.T) {
		companyRepo, docsRepo, userRepo, dispatcher, mailer, uc := newCompanyFixture()
		companyRepo.On("GetByID", mock.Anything, int64(7)).Return(pendingCompany(), nil)
		docsRepo.On("GetByCompanyID", mock.Anything, int64(7)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusVerified,
		}, nil)
		companyRepo.On("Accredit", mock.Anything, int64(7), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
		userRepo.On("GetByID", mock.Anything, "owner-1").Return(&domain.User{ID: "owner-1", Email: "owner@acme.ph"}, nil)

		company, err := uc.Accredit(adminContext(), 7)
		assert.NoError(t, err)
		assert.Equal(t, domain.CompanyStatusAccredited, company.Status)
		assert.False(t, company.IsRenewal)
		assert.NotNil(t, company.AccreditationDate)
		assert.Regexp(t, regexp.MustCompile(`^ACC-\d{4}-[0-9A-F]{8}$`), *company.AccreditationID)

		// Side effects are dispatched but never block the action
		assert.Len(t, dispatcher.notifications, 1)
		assert.Len(t, mailer.accreditations, 1)
	})

	t.Run("Email failure does not fail the accreditation", func(t *testing.T) {
		companyRepo, docsRepo, userRepo, _, mailer, uc := newCompanyFixture()
		mailer.err = assert.AnError
		companyRepo.On("GetByID", mock.Anything, int64(7)).Return(pendingCompany(), nil)
		docsRepo.On("GetByCompanyID", mock.Anything, int64(7)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusVerified,
		}, nil)
		companyRepo.On("Accredit", mock.Anything, int64(7), mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)
		userRepo.On("GetByID", mock.Anything, "owner-1").Return(&domain.User{ID: "owner-1", Email: "owner@acme.ph"}, nil)

		_, err := uc.Accredit(adminContext(), 7)
		assert.NoError(t, err)
	})
}

func TestDecline(t *testing.T) {
	t.Run("Should clear accreditation and cascade to documents", func(t *testing.T) {
		companyRepo, docsRepo, userRepo, dispatcher, _, uc := newCompanyFixture()
		companyRepo.On("GetByID", mock.Anything, int64(9)).Return(&domain.Company{
			ID: 9, OwnerUserID: "owner-2", Name: "Beta Corp", Status: domain.CompanyStatusPending,
		}, nil)
		companyRepo.On("SetStatusClearingAccreditation", mock.Anything, int64(9), domain.CompanyStatusDeclined).Return(nil)
		docsRepo.On("DeclineByCompanyID", mock.Anything, int64(9)).Return(nil)
		userRepo.On("GetByID", mock.Anything, "owner-2").Return(&domain.User{ID: "owner-2", Email: "beta@corp.ph"}, nil)

		err := uc.Decline(adminContext(), 9, "incomplete permits")
		assert.NoError(t, err)
		docsRepo.AssertCalled(t, "DeclineByCompanyID", mock.Anything, int64(9))
		assert.Len(t, dispatcher.notifications, 1)
		assert.Contains(t, dispatcher.notifications[0].Message, "incomplete permits")
	})

	t.Run("Document cascade failure does not undo the decline", func(t *testing.T) {
		companyRepo, docsRepo, userRepo, _, _, uc := newCompanyFixture()
		companyRepo.On("GetByID", mock.Anything, int64(9)).Return(&domain.Company{
			ID: 9, OwnerUserID: "owner-2", Name: "Beta Corp", Status: domain.CompanyStatusPending,
		}, nil)
		companyRepo.On("SetStatusClearingAccreditation", mock.Anything, int64(9), domain.CompanyStatusDeclined).Return(nil)
		docsRepo.On("DeclineByCompanyID", mock.Anything, int64(9)).Return(assert.AnError)
		userRepo.On("GetByID", mock.Anything, "owner-2").Return(nil, domain.ErrNotFound)

		assert.NoError(t, uc.Decline(adminContext(), 9, ""))
	})
}

func TestRevoke(t *testing.T) {
	t.Run("Only accredited companies can be revoked", func(t *testing.T) {
		companyRepo, _, _, _, _, uc := newCompanyFixture()
		companyRepo.On("GetByID", mock.Anything, int64(4)).Return(&domain.Company{
			ID: 4, Status: domain.CompanyStatusPending,
		}, nil)

		err := uc.Revoke(adminContext(), 4, "fraud")
		assert.Error(t, err)
		companyRepo.AssertNotCalled(t, "SetStatusClearingAccreditation", mock.Anything, mock.Anything, mock.Anything)
	})
}
