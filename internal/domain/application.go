package domain

import (
	"context"
	"time"
)

// Application statuses
const (
	ApplicationStatusPending            = "pending"
	ApplicationStatusInterviewScheduled = "interview scheduled"
	ApplicationStatusInterviewCompleted = "interview completed"
	ApplicationStatusHired              = "hired"
	ApplicationStatusDeclined           = "declined"
)

// Interview is the optional 1:1 companion record of an application.
type Interview struct {
	ID            int64     `json:"id"`
	ApplicationID int64     `json:"application_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	Location      string    `json:"location"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Application represents a job seeker's application to a vacancy.
// HiredDate is set only on transition to hired.
type Application struct {
	ID          int64      `json:"id"`
	VacancyID   int64      `json:"vacancy_id"`
	JobSeekerID string     `json:"job_seeker_id"`
	Status      string     `json:"status"`
	HiredDate   *time.Time `json:"hired_date,omitempty"`
	Interview   *Interview `json:"interview,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	// Joined data for list responses
	ApplicantName *string `json:"applicant_name,omitempty"`
	VacancyTitle  *string `json:"vacancy_title,omitempty"`
	CompanyName   *string `json:"company_name,omitempty"`
}

type ApplicationRepository interface {
	Create(ctx context.Context, app *Application) error
	GetByID(ctx context.Context, id int64) (*Application, error)
	GetByVacancyID(ctx context.Context, vacancyID int64) ([]Application, error)
	GetByJobSeekerID(ctx context.Context, jobSeekerID string) ([]Application, error)
	CheckExists(ctx context.Context, vacancyID int64, jobSeekerID string) (bool, error)
	UpdateStatus(ctx context.Context, id int64, status string, hiredDate *time.Time) error
	CreateInterview(ctx context.Context, iv *Interview) error
	GetInterviewByApplicationID(ctx context.Context, applicationID int64) (*Interview, error)
}

type ApplicationUsecase interface {
	// Job seeker operations
	Apply(ctx context.Context, userID string, vacancyID int64) (*Application, error)
	GetMyApplications(ctx context.Context, userID string) ([]Application, error)

	// Employer operations
	ListByVacancy(ctx context.Context, userID string, vacancyID int64) ([]Application, error)
	ScheduleInterview(ctx context.Context, userID string, applicationID int64, scheduledAt time.Time, location, notes string) (*Interview, error)
	MarkInterviewCompleted(ctx context.Context, userID string, applicationID int64) error
	Hire(ctx context.Context, userID string, applicationID int64) error
	Decline(ctx context.Context, userID string, applicationID int64) error
}
