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

func newDocumentFixture() (*MockDocsRepo, *MockCompanyRepo, *recordingDispatcher, domain.CompanyDocumentsUsecase) {
	docsRepo := new(MockDocsRepo)
	companyRepo := new(MockCompanyRepo)
	dispatcher := &recordingDispatcher{}
	uc := usecase.NewDocumentUsecase(docsRepo, companyRepo, dispatcher)
	return docsRepo, companyRepo, dispatcher, uc
}

func sampleSlots() map[string]*domain.DocumentFile {
	return map[string]*domain.DocumentFile{
		domain.SlotDTI:          {URL: "https://cdn.example/dti.pdf", OriginalName: "dti.pdf"},
		domain.SlotMayorsPermit: {URL: "https://cdn.example/permit.pdf", OriginalName: "permit.pdf"},
	}
}

func TestSubmitDocuments(t *testing.T) {
	pendingCompany := &domain.Company{ID: 7, OwnerUserID: "employer-1", Status: domain.CompanyStatusPending}

	t.Run("Should reject unknown slots", func(t *testing.T) {
		_, _, _, uc := newDocumentFixture()

		_, err := uc.SubmitDocuments(context.Background(), "employer-1", map[string]*domain.DocumentFile{
			"barangay_clearance": {URL: "x"},
		})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown document slot")
	})

	t.Run("First submission starts pending without the renewal flag", func(t *testing.T) {
		docsRepo, companyRepo, _, uc := newDocumentFixture()
		companyRepo.On("GetByOwnerUserID", mock.Anything, "employer-1").Return(pendingCompany, nil)
		docsRepo.On("GetByCompanyID", mock.Anything, int64(7)).Return(nil, nil)
		docsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.CompanyDocuments")).Return(nil)

		docs, err := uc.SubmitDocuments(context.Background(), "employer-1", sampleSlots())
		assert.NoError(t, err)
		assert.Equal(t, domain.DocumentStatusPending, docs.Status)
		assert.False(t, docs.IsRenewal)
		companyRepo.AssertNotCalled(t, "SetRenewal", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Re-upload over a verified record is a renewal on both sides", func(t *testing.T) {
		docsRepo, companyRepo, _, uc := newDocumentFixture()
		companyRepo.On("GetByOwnerUserID", mock.Anything, "employer-1").Return(pendingCompany, nil)
		docsRepo.On("GetByCompanyID", mock.Anything, int64(7)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusVerified,
		}, nil)
		docsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.CompanyDocuments")).Return(nil)
		companyRepo.On("SetRenewal", mock.Anything, int64(7), true).Return(nil)

		docs, err := uc.SubmitDocuments(context.Background(), "employer-1", sampleSlots())
		assert.NoError(t, err)
		assert.True(t, docs.IsRenewal)
		assert.Equal(t, domain.DocumentStatusPending, docs.Status)
		assert.Equal(t, int64(3), docs.ID)
		companyRepo.AssertCalled(t, "SetRenewal", mock.Anything, int64(7), true)
	})

	t.Run("Re-upload over an expired record is also a renewal", func(t *testing.T) {
		docsRepo, companyRepo, _, uc := newDocumentFixture()
		companyRepo.On("GetByOwnerUserID", mock.Anything, "employer-1").Return(pendingCompany, nil)
		docsRepo.On("GetByCompanyID", mock.Anything, int64(7)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusExpired,
		}, nil)
		docsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.CompanyDocuments")).Return(nil)
		companyRepo.On("SetRenewal", mock.Anything, int64(7), true).Return(nil)

		docs, err := uc.SubmitDocuments(context.Background(), "employer-1", sampleSlots())
		assert.NoError(t, err)
		assert.True(t, docs.IsRenewal)
	})

	t.Run("Re-upload over a declined record is not a renewal", func(t *testing.T) {
		docsRepo, companyRepo, _, uc := newDocumentFixture()
		companyRepo.On("GetByOwnerUserID", mock.Anything, "employer-1").Return(pendingCompany, nil)
		docsRepo.On("GetByCompanyID", mock.Anything, int64(7)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusDeclined,
		}, nil)
		docsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.CompanyDocuments")).Return(nil)

		docs, err := uc.SubmitDocuments(context.Background(), "employer-1", sampleSlots())
		assert.NoError(t, err)
		assert.False(t, docs.IsRenewal)
	})

	t.Run("The grace flag survives a re-upload", func(t *testing.T) {
		docsRepo, companyRepo, _, uc := newDocumentFixture()
		companyRepo.On("GetByOwnerUserID", mock.Anything, "employer-1").Return(pendingCompany, nil)
		docsRepo.On("GetByCompanyID", mock.Anything, int64(7)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusDeclined, GracePeriod: true,
		}, nil)
		docsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.CompanyDocuments")).Return(nil)

		docs, err := uc.SubmitDocuments(context.Background(), "employer-1", sampleSlots())
		assert.NoError(t, err)
		assert.True(t, docs.GracePeriod)
	})

	t.Run("First submission moves an incomplete company into review", func(t *testing.T) {
		docsRepo, companyRepo, _, uc := newDocumentFixture()
		companyRepo.On("GetByOwnerUserID", mock.Anything, "employer-1").Return(&domain.Company{
			ID: 7, OwnerUserID: "employer-1", Status: domain.CompanyStatusIncomplete,
		}, nil)
		docsRepo.On("GetByCompanyID", mock.Anything, int64(7)).Return(nil, nil)
		docsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.CompanyDocuments")).Return(nil)
		companyRepo.On("Update", mock.Anything, mock.MatchedBy(func(c *domain.Company) bool {
			return c.ID == 7 && c.Status == domain.CompanyStatusPending
		})).Return(nil)

		_, err := uc.SubmitDocuments(context.Background(), "employer-1", sampleSlots())
		assert.NoError(t, err)
		companyRepo.AssertExpectations(t)
	})
}

func TestDocumentReview(t *testing.T) {
	t.Run("Should require the admin role", func(t *testing.T) {
		docsRepo, _, _, uc := newDocumentFixture()

		err := uc.Verify(context.Background(), 3, "")
		assert.Error(t, err)
		docsRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should reject verifying an already expired record", func(t *testing.T) {
		docsRepo, _, _, uc := newDocumentFixture()
		docsRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusExpired,
		}, nil)

		err := uc.Verify(adminContext(), 3, "")
		assert.Error(t, err)
		docsRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Verifying a pending record notifies the owner", func(t *testing.T) {
		docsRepo, companyRepo, dispatcher, uc := newDocumentFixture()
		docsRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusPending,
		}, nil)
		docsRepo.On("UpdateStatus", mock.Anything, int64(3), domain.DocumentStatusVerified, (*string)(nil)).Return(nil)
		companyRepo.On("GetByID", mock.Anything, int64(7)).Return(&domain.Company{
			ID: 7, OwnerUserID: "employer-1",
		}, nil)

		err := uc.Verify(adminContext(), 3, "")
		assert.NoError(t, err)
		assert.Len(t, dispatcher.notifications, 1)
		assert.Equal(t, "employer-1", dispatcher.notifications[0].AccountID)
	})

	t.Run("Declining passes the remarks through", func(t *testing.T) {
		docsRepo, companyRepo, _, uc := newDocumentFixture()
		docsRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusPending,
		}, nil)
		docsRepo.On("UpdateStatus", mock.Anything, int64(3), domain.DocumentStatusDeclined, mock.MatchedBy(func(r *string) bool {
			return r != nil && *r == "blurry permit scan"
		})).Return(nil)
		companyRepo.On("GetByID", mock.Anything, int64(7)).Return(nil, domain.ErrNotFound)

		err := uc.Decline(adminContext(), 3, "blurry permit scan")
		assert.NoError(t, err)
		docsRepo.AssertExpectations(t)
	})
}

func TestUpdateExpirationDates(t *testing.T) {
	future := time.Now().AddDate(1, 0, 0)

	t.Run("Should reject slots without an uploaded document", func(t *testing.T) {
		docsRepo, _, _, uc := newDocumentFixture()
		docsRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusVerified,
			Slots: map[string]*domain.DocumentFile{domain.SlotDTI: {URL: "x"}},
		}, nil)

		err := uc.UpdateExpirationDates(adminContext(), 3, map[string]time.Time{
			domain.SlotSSS: future,
		})
		assert.Error(t, err)
		docsRepo.AssertNotCalled(t, "UpdateExpirationDates", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should record dates for uploaded slots", func(t *testing.T) {
		docsRepo, _, _, uc := newDocumentFixture()
		docsRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.CompanyDocuments{
			ID: 3, CompanyID: 7, Status: domain.DocumentStatusVerified, GracePeriod: true,
			Slots: map[string]*domain.DocumentFile{domain.SlotDTI: {URL: "x"}},
		}, nil)
		docsRepo.On("UpdateExpirationDates", mock.Anything, int64(3), mock.Anything).Return(nil)

		err := uc.UpdateExpirationDates(adminContext(), 3, map[string]time.Time{
			domain.SlotDTI: future,
		})
		assert.NoError(t, err)
		docsRepo.AssertExpectations(t)
	})
}
