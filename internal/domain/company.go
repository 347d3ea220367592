package domain

import (
	"context"
	"time"
)

// Company accreditation statuses
const (
	CompanyStatusIncomplete = "incomplete"
	CompanyStatusPending    = "pending"
	CompanyStatusAccredited = "accredited"
	CompanyStatusDeclined   = "declined"
	CompanyStatusRevoked    = "revoked"
)

// Company represents an employer registered with the portal.
// Accreditation fields are set only while the company is accredited and
// are cleared again on decline or revocation.
type Company struct {
	ID                int64      `json:"id"`
	OwnerUserID       string     `json:"owner_user_id"`
	Name              string     `json:"name"`
	Industry          *string    `json:"industry"`
	Address           *string    `json:"address"`
	Website           *string    `json:"website"`
	Status            string     `json:"status"`
	IsRenewal         bool       `json:"is_renewal"`
	Accreditation     *string    `json:"accreditation"` // certificate URL
	AccreditationID   *string    `json:"accreditation_id"`
	AccreditationDate *time.Time `json:"accreditation_date"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CandidatePreference is an employer's free-text hiring preference profile,
// used as the query side of job seeker recommendations.
type CandidatePreference struct {
	CompanyID       int64    `json:"company_id"`
	Specializations []string `json:"specializations"`
	Skills          []string `json:"skills"`
	Educations      []string `json:"educations"`
}

type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id int64) (*Company, error)
	GetByOwnerUserID(ctx context.Context, userID string) (*Company, error)
	List(ctx context.Context, status string, limit, offset int) ([]Company, int64, error)
	// Accredit sets status=accredited, is_renewal=false and stores the
	// accreditation id/date in a single conditional update.
	Accredit(ctx context.Context, id int64, accreditationID string, accreditedAt time.Time) error
	// SetStatusClearingAccreditation moves the company to the given status
	// and nulls all accreditation fields (decline / revoke paths).
	SetStatusClearingAccreditation(ctx context.Context, id int64, status string) error
	SetRenewal(ctx context.Context, id int64, isRenewal bool) error
	GetPreference(ctx context.Context, companyID int64) (*CandidatePreference, error)
	UpsertPreference(ctx context.Context, pref *CandidatePreference) error
}

type CompanyUsecase interface {
	GetMyCompany(ctx context.Context, userID string) (*Company, error)
	UpsertMyCompany(ctx context.Context, userID string, company *Company) (*Company, error)
	GetCompany(ctx context.Context, id int64) (*Company, error)
	ListCompanies(ctx context.Context, status string, page, pageSize int) ([]Company, int64, error)
	// Admin lifecycle actions
	Accredit(ctx context.Context, companyID int64) (*Company, error)
	Decline(ctx context.Context, companyID int64, reason string) error
	Revoke(ctx context.Context, companyID int64, reason string) error
	// Preference profile for candidate recommendations
	SavePreference(ctx context.Context, userID string, pref *CandidatePreference) error
}
