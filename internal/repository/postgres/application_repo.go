package postgres

import (
	"context"
	"errors"
	"time"

	"peso-job-portal/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type applicationRepo struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) domain.ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) Create(ctx context.Context, app *domain.Application) error {
	query := `INSERT INTO applications (vacancy_id, job_seeker_id, status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRow(ctx, query,
		app.VacancyID, app.JobSeekerID, app.Status, app.CreatedAt, app.UpdatedAt,
	).Scan(&app.ID)
}

func (r *applicationRepo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query := `SELECT id, vacancy_id, job_seeker_id, status, hired_date, created_at, updated_at
	          FROM applications WHERE id = $1`

	var app domain.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.VacancyID, &app.JobSeekerID, &app.Status, &app.HiredDate,
		&app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &app, nil
}

// GetByVacancyID is the employer's applicant list; applicant names come
// along for display.
func (r *applicationRepo) GetByVacancyID(ctx context.Context, vacancyID int64) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.vacancy_id, a.job_seeker_id, a.status, a.hired_date, a.created_at, a.updated_at,
			u.full_name AS applicant_name
		FROM applications a
		JOIN users u ON a.job_seeker_id = u.id
		WHERE a.vacancy_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, vacancyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.VacancyID, &app.JobSeekerID, &app.Status, &app.HiredDate,
			&app.CreatedAt, &app.UpdatedAt, &app.ApplicantName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) GetByJobSeekerID(ctx context.Context, jobSeekerID string) ([]domain.Application, error) {
	query := `
		SELECT
			a.id, a.vacancy_id, a.job_seeker_id, a.status, a.hired_date, a.created_at, a.updated_at,
			v.title AS vacancy_title,
			c.name AS company_name
		FROM applications a
		JOIN job_vacancies v ON a.vacancy_id = v.id
		JOIN companies c ON v.company_id = c.id
		WHERE a.job_seeker_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.db.Query(ctx, query, jobSeekerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var apps []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := rows.Scan(
			&app.ID, &app.VacancyID, &app.JobSeekerID, &app.Status, &app.HiredDate,
			&app.CreatedAt, &app.UpdatedAt, &app.VacancyTitle, &app.CompanyName,
		); err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

func (r *applicationRepo) CheckExists(ctx context.Context, vacancyID int64, jobSeekerID string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM applications WHERE vacancy_id = $1 AND job_seeker_id = $2)`,
		vacancyID, jobSeekerID,
	).Scan(&exists)
	return exists, err
}

// UpdateStatus writes hired_date only when one is supplied, so the stamp
// of a past hire survives later reads.
func (r *applicationRepo) UpdateStatus(ctx context.Context, id int64, status string, hiredDate *time.Time) error {
	query := `UPDATE applications SET status = $2, hired_date = COALESCE($3, hired_date), updated_at = NOW()
	          WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, hiredDate)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *applicationRepo) CreateInterview(ctx context.Context, iv *domain.Interview) error {
	query := `INSERT INTO interviews (application_id, scheduled_at, location, notes, created_at)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (application_id) DO UPDATE SET
	            scheduled_at = EXCLUDED.scheduled_at,
	            location = EXCLUDED.location,
	            notes = EXCLUDED.notes
	          RETURNING id`
	return r.db.QueryRow(ctx, query,
		iv.ApplicationID, iv.ScheduledAt, iv.Location, iv.Notes, iv.CreatedAt,
	).Scan(&iv.ID)
}

func (r *applicationRepo) GetInterviewByApplicationID(ctx context.Context, applicationID int64) (*domain.Interview, error) {
	query := `SELECT id, application_id, scheduled_at, location, notes, created_at
	          FROM interviews WHERE application_id = $1`

	var iv domain.Interview
	err := r.db.QueryRow(ctx, query, applicationID).Scan(
		&iv.ID, &iv.ApplicationID, &iv.ScheduledAt, &iv.Location, &iv.Notes, &iv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &iv, nil
}
