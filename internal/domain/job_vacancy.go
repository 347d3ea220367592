package domain

import (
	"context"
	"time"
)

// JobVacancy operational statuses
const (
	VacancyStatusOngoing  = "ongoing"
	VacancyStatusExpired  = "expired"
	VacancyStatusArchived = "archived"
)

// JobVacancy publication (moderation) statuses — a separate axis from the
// operational status above.
const (
	PublicationStatusPending  = "pending"
	PublicationStatusApproved = "approved"
	PublicationStatusDeclined = "declined"
)

type JobVacancy struct {
	ID                  int64     `json:"id"`
	CompanyID           int64     `json:"company_id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	EmploymentType      string    `json:"employment_type"`
	SalaryType          string    `json:"salary_type"`
	SalaryMin           float64   `json:"salary_min"`
	SalaryMax           float64   `json:"salary_max"`
	Locations           []string  `json:"locations"`
	Industries          []string  `json:"industries"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	Status              string    `json:"status"`
	PublicationStatus   string    `json:"publication_status"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// JobVacancyWithCompany extends JobVacancy with owning-company fields for
// list responses.
type JobVacancyWithCompany struct {
	JobVacancy
	CompanyName   string  `json:"company_name"`
	CompanyStatus string  `json:"company_status"`
	Industry      *string `json:"company_industry"`
}

type JobVacancyRepository interface {
	Create(ctx context.Context, v *JobVacancy) error
	Update(ctx context.Context, v *JobVacancy) error
	GetByID(ctx context.Context, id int64) (*JobVacancy, error)
	GetByIDWithCompany(ctx context.Context, id int64) (*JobVacancyWithCompany, error)
	FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]JobVacancy, int64, error)
	// FetchPublicActive returns approved, ongoing vacancies of accredited
	// companies only; the restriction is enforced server-side.
	FetchPublicActive(ctx context.Context, limit, offset int) ([]JobVacancyWithCompany, int64, error)
	FetchByPublicationStatus(ctx context.Context, status string, limit, offset int) ([]JobVacancyWithCompany, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	UpdatePublicationStatus(ctx context.Context, id int64, status string) error
	// Sweep queries / conditional writes.
	ListExpiryDue(ctx context.Context, asOf time.Time) ([]JobVacancy, error)
	MarkExpired(ctx context.Context, id int64) error
}

type JobVacancyUsecase interface {
	Create(ctx context.Context, userID string, v *JobVacancy) error
	Update(ctx context.Context, userID string, v *JobVacancy) error
	GetDetails(ctx context.Context, id int64) (*JobVacancyWithCompany, error)
	ListMine(ctx context.Context, userID string, page, pageSize int) ([]JobVacancy, int64, error)
	ListPublic(ctx context.Context, page, pageSize int) ([]JobVacancyWithCompany, int64, error)
	ListForModeration(ctx context.Context, page, pageSize int) ([]JobVacancyWithCompany, int64, error)
	// Admin moderation (publication axis)
	ApprovePublication(ctx context.Context, id int64) error
	DeclinePublication(ctx context.Context, id int64) error
	// Employer archive actions (operational axis)
	Archive(ctx context.Context, userID string, id int64) error
	Unarchive(ctx context.Context, userID string, id int64) error
}
