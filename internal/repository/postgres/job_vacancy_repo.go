package postgres

import (
	"context"
	"errors"
	"time"

	"peso-job-portal/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobVacancyRepo struct {
	db *pgxpool.Pool
}

func NewJobVacancyRepository(db *pgxpool.Pool) domain.JobVacancyRepository {
	return &jobVacancyRepo{db: db}
}

const vacancyColumns = `id, company_id, title, description, employment_type, salary_type,
	salary_min, salary_max, locations, industries, application_deadline,
	status, publication_status, created_at, updated_at`

func (r *jobVacancyRepo) Create(ctx context.Context, v *domain.JobVacancy) error {
	query := `INSERT INTO job_vacancies (company_id, title, description, employment_type, salary_type, salary_min, salary_max, locations, industries, application_deadline, status, publication_status, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	return r.db.QueryRow(ctx, query,
		v.CompanyID, v.Title, v.Description, v.EmploymentType, v.SalaryType,
		v.SalaryMin, v.SalaryMax, pq.Array(v.Locations), pq.Array(v.Industries),
		v.ApplicationDeadline, v.Status, v.PublicationStatus,
		v.CreatedAt, v.UpdatedAt,
	).Scan(&v.ID)
}

func (r *jobVacancyRepo) Update(ctx context.Context, v *domain.JobVacancy) error {
	query := `UPDATE job_vacancies SET
		title = $2,
		description = $3,
		employment_type = $4,
		salary_type = $5,
		salary_min = $6,
		salary_max = $7,
		locations = $8,
		industries = $9,
		application_deadline = $10,
		status = $11,
		publication_status = $12,
		updated_at = $13
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		v.ID, v.Title, v.Description, v.EmploymentType, v.SalaryType,
		v.SalaryMin, v.SalaryMax, pq.Array(v.Locations), pq.Array(v.Industries),
		v.ApplicationDeadline, v.Status, v.PublicationStatus, v.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobVacancyRepo) GetByID(ctx context.Context, id int64) (*domain.JobVacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM job_vacancies WHERE id = $1`

	var v domain.JobVacancy
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CompanyID, &v.Title, &v.Description, &v.EmploymentType, &v.SalaryType,
		&v.SalaryMin, &v.SalaryMax, pq.Array(&v.Locations), pq.Array(&v.Industries),
		&v.ApplicationDeadline, &v.Status, &v.PublicationStatus, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *jobVacancyRepo) GetByIDWithCompany(ctx context.Context, id int64) (*domain.JobVacancyWithCompany, error) {
	query := `
		SELECT
			v.id, v.company_id, v.title, v.description, v.employment_type, v.salary_type,
			v.salary_min, v.salary_max, v.locations, v.industries, v.application_deadline,
			v.status, v.publication_status, v.created_at, v.updated_at,
			c.name AS company_name,
			c.status AS company_status,
			c.industry
		FROM job_vacancies v
		JOIN companies c ON v.company_id = c.id
		WHERE v.id = $1`

	var v domain.JobVacancyWithCompany
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.CompanyID, &v.Title, &v.Description, &v.EmploymentType, &v.SalaryType,
		&v.SalaryMin, &v.SalaryMax, pq.Array(&v.Locations), pq.Array(&v.Industries),
		&v.ApplicationDeadline, &v.Status, &v.PublicationStatus, &v.CreatedAt, &v.UpdatedAt,
		&v.CompanyName, &v.CompanyStatus, &v.Industry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &v, nil
}

func (r *jobVacancyRepo) FetchByCompanyID(ctx context.Context, companyID int64, limit, offset int) ([]domain.JobVacancy, int64, error) {
	query := `SELECT ` + vacancyColumns + ` FROM job_vacancies
	          WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var vacancies []domain.JobVacancy
	for rows.Next() {
		var v domain.JobVacancy
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Title, &v.Description, &v.EmploymentType, &v.SalaryType,
			&v.SalaryMin, &v.SalaryMax, pq.Array(&v.Locations), pq.Array(&v.Industries),
			&v.ApplicationDeadline, &v.Status, &v.PublicationStatus, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		vacancies = append(vacancies, v)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_vacancies WHERE company_id = $1`, companyID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return vacancies, total, nil
}

// FetchPublicActive hardcodes the public visibility rule server-side:
// approved, ongoing vacancies of accredited companies only.
func (r *jobVacancyRepo) FetchPublicActive(ctx context.Context, limit, offset int) ([]domain.JobVacancyWithCompany, int64, error) {
	filter := `FROM job_vacancies v
		JOIN companies c ON v.company_id = c.id
		WHERE v.status = 'ongoing'
		  AND v.publication_status = 'approved'
		  AND c.status = 'accredited'`

	query := `
		SELECT
			v.id, v.company_id, v.title, v.description, v.employment_type, v.salary_type,
			v.salary_min, v.salary_max, v.locations, v.industries, v.application_deadline,
			v.status, v.publication_status, v.created_at, v.updated_at,
			c.name AS company_name,
			c.status AS company_status,
			c.industry
		` + filter + `
		ORDER BY v.created_at DESC
		LIMIT $1 OFFSET $2`

	vacancies, err := r.listWithCompany(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) `+filter).Scan(&total); err != nil {
		return nil, 0, err
	}
	return vacancies, total, nil
}

func (r *jobVacancyRepo) FetchByPublicationStatus(ctx context.Context, status string, limit, offset int) ([]domain.JobVacancyWithCompany, int64, error) {
	query := `
		SELECT
			v.id, v.company_id, v.title, v.description, v.employment_type, v.salary_type,
			v.salary_min, v.salary_max, v.locations, v.industries, v.application_deadline,
			v.status, v.publication_status, v.created_at, v.updated_at,
			c.name AS company_name,
			c.status AS company_status,
			c.industry
		FROM job_vacancies v
		JOIN companies c ON v.company_id = c.id
		WHERE v.publication_status = $1
		ORDER BY v.created_at ASC
		LIMIT $2 OFFSET $3`

	vacancies, err := r.listWithCompany(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_vacancies WHERE publication_status = $1`, status).Scan(&total); err != nil {
		return nil, 0, err
	}
	return vacancies, total, nil
}

func (r *jobVacancyRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE job_vacancies SET status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobVacancyRepo) UpdatePublicationStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE job_vacancies SET publication_status = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobVacancyRepo) ListExpiryDue(ctx context.Context, asOf time.Time) ([]domain.JobVacancy, error) {
	query := `SELECT ` + vacancyColumns + ` FROM job_vacancies
	          WHERE application_deadline < $1 AND status <> 'expired'`

	rows, err := r.db.Query(ctx, query, asOf)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacancies []domain.JobVacancy
	for rows.Next() {
		var v domain.JobVacancy
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Title, &v.Description, &v.EmploymentType, &v.SalaryType,
			&v.SalaryMin, &v.SalaryMax, pq.Array(&v.Locations), pq.Array(&v.Industries),
			&v.ApplicationDeadline, &v.Status, &v.PublicationStatus, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}

// MarkExpired is idempotent and monotonic: once expired, a vacancy is
// never re-expired or re-opened by a later sweep.
func (r *jobVacancyRepo) MarkExpired(ctx context.Context, id int64) error {
	query := `UPDATE job_vacancies SET status = 'expired', updated_at = NOW()
	          WHERE id = $1 AND status <> 'expired'`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *jobVacancyRepo) listWithCompany(ctx context.Context, query string, args ...any) ([]domain.JobVacancyWithCompany, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vacancies []domain.JobVacancyWithCompany
	for rows.Next() {
		var v domain.JobVacancyWithCompany
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Title, &v.Description, &v.EmploymentType, &v.SalaryType,
			&v.SalaryMin, &v.SalaryMax, pq.Array(&v.Locations), pq.Array(&v.Industries),
			&v.ApplicationDeadline, &v.Status, &v.PublicationStatus, &v.CreatedAt, &v.UpdatedAt,
			&v.CompanyName, &v.CompanyStatus, &v.Industry,
		); err != nil {
			return nil, err
		}
		vacancies = append(vacancies, v)
	}
	return vacancies, rows.Err()
}
