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

type companyRepo struct {
	db *pgxpool.Pool
}

func NewCompanyRepository(db *pgxpool.Pool) domain.CompanyRepository {
	return &companyRepo{db: db}
}

const companyColumns = `id, owner_user_id, name, industry, address, website, status, is_renewal,
	accreditation, accreditation_id, accreditation_date, created_at, updated_at`

func (r *companyRepo) Create(ctx context.Context, company *domain.Company) error {
	query := `INSERT INTO companies (owner_user_id, name, industry, address, website, status, is_renewal, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	return r.db.QueryRow(ctx, query,
		company.OwnerUserID, company.Name, company.Industry, company.Address, company.Website,
		company.Status, company.IsRenewal, company.CreatedAt, company.UpdatedAt,
	).Scan(&company.ID)
}

func (r *companyRepo) Update(ctx context.Context, company *domain.Company) error {
	query := `UPDATE companies SET
		name = $2,
		industry = $3,
		address = $4,
		website = $5,
		status = $6,
		updated_at = $7
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Industry, company.Address, company.Website,
		company.Status, company.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *companyRepo) GetByOwnerUserID(ctx context.Context, userID string) (*domain.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE owner_user_id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, userID))
}

func (r *companyRepo) List(ctx context.Context, status string, limit, offset int) ([]domain.Company, int64, error) {
	query := `SELECT ` + companyColumns + ` FROM companies
	          WHERE ($1 = '' OR status = $1) ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(
			&c.ID, &c.OwnerUserID, &c.Name, &c.Industry, &c.Address, &c.Website, &c.Status, &c.IsRenewal,
			&c.Accreditation, &c.AccreditationID, &c.AccreditationDate, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, err
		}
		companies = append(companies, c)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM companies WHERE ($1 = '' OR status = $1)`, status).Scan(&total); err != nil {
		return nil, 0, err
	}

	return companies, total, nil
}

// Accredit is conditional on the row not already being accredited, so a
// repeated call is a no-op reported as not found.
func (r *companyRepo) Accredit(ctx context.Context, id int64, accreditationID string, accreditedAt time.Time) error {
	query := `UPDATE companies SET
		status = 'accredited',
		is_renewal = FALSE,
		accreditation_id = $2,
		accreditation_date = $3,
		updated_at = NOW()
	WHERE id = $1 AND status <> 'accredited'`
	result, err := r.db.Exec(ctx, query, id, accreditationID, accreditedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) SetStatusClearingAccreditation(ctx context.Context, id int64, status string) error {
	query := `UPDATE companies SET
		status = $2,
		accreditation = NULL,
		accreditation_id = NULL,
		accreditation_date = NULL,
		updated_at = NOW()
	WHERE id = $1 AND status <> $2`
	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) SetRenewal(ctx context.Context, id int64, isRenewal bool) error {
	query := `UPDATE companies SET is_renewal = $2, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, isRenewal)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *companyRepo) GetPreference(ctx context.Context, companyID int64) (*domain.CandidatePreference, error) {
	query := `SELECT company_id, specializations, skills, educations
	          FROM candidate_preferences WHERE company_id = $1`

	var p domain.CandidatePreference
	err := r.db.QueryRow(ctx, query, companyID).Scan(
		&p.CompanyID, pq.Array(&p.Specializations), pq.Array(&p.Skills), pq.Array(&p.Educations),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *companyRepo) UpsertPreference(ctx context.Context, pref *domain.CandidatePreference) error {
	query := `INSERT INTO candidate_preferences (company_id, specializations, skills, educations, updated_at)
	          VALUES ($1, $2, $3, $4, NOW())
	          ON CONFLICT (company_id) DO UPDATE SET
	            specializations = EXCLUDED.specializations,
	            skills = EXCLUDED.skills,
	            educations = EXCLUDED.educations,
	            updated_at = NOW()`
	_, err := r.db.Exec(ctx, query,
		pref.CompanyID, pq.Array(pref.Specializations), pq.Array(pref.Skills), pq.Array(pref.Educations),
	)
	return err
}

func (r *companyRepo) scanOne(row pgx.Row) (*domain.Company, error) {
	var c domain.Company
	err := row.Scan(
		&c.ID, &c.OwnerUserID, &c.Name, &c.Industry, &c.Address, &c.Website, &c.Status, &c.IsRenewal,
		&c.Accreditation, &c.AccreditationID, &c.AccreditationDate, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}
