package postgres

import (
	"context"
	"errors"
	"strings"

	"peso-job-portal/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type jobSeekerRepo struct {
	db *pgxpool.Pool
}

func NewJobSeekerRepository(db *pgxpool.Pool) domain.JobSeekerRepository {
	return &jobSeekerRepo{db: db}
}

const seekerColumns = `user_id, specializations, skills, educations, preferred_positions,
	preferred_locations, employment_type, salary_type, expected_salary_min,
	expected_salary_max, visible, created_at, updated_at`

func (r *jobSeekerRepo) GetByUserID(ctx context.Context, userID string) (*domain.JobSeekerProfile, error) {
	query := `SELECT ` + seekerColumns + ` FROM job_seeker_profiles WHERE user_id = $1`

	var p domain.JobSeekerProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, pq.Array(&p.Specializations), pq.Array(&p.Skills), pq.Array(&p.Educations),
		pq.Array(&p.PreferredPositions), pq.Array(&p.PreferredLocations),
		&p.EmploymentType, &p.SalaryType, &p.ExpectedSalaryMin, &p.ExpectedSalaryMax,
		&p.Visible, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *jobSeekerRepo) Upsert(ctx context.Context, profile *domain.JobSeekerProfile) error {
	query := `INSERT INTO job_seeker_profiles (user_id, specializations, skills, educations, preferred_positions, preferred_locations, employment_type, salary_type, expected_salary_min, expected_salary_max, visible, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	          ON CONFLICT (user_id) DO UPDATE SET
	            specializations = EXCLUDED.specializations,
	            skills = EXCLUDED.skills,
	            educations = EXCLUDED.educations,
	            preferred_positions = EXCLUDED.preferred_positions,
	            preferred_locations = EXCLUDED.preferred_locations,
	            employment_type = EXCLUDED.employment_type,
	            salary_type = EXCLUDED.salary_type,
	            expected_salary_min = EXCLUDED.expected_salary_min,
	            expected_salary_max = EXCLUDED.expected_salary_max,
	            visible = EXCLUDED.visible,
	            updated_at = NOW()`
	_, err := r.db.Exec(ctx, query,
		profile.UserID, pq.Array(profile.Specializations), pq.Array(profile.Skills),
		pq.Array(profile.Educations), pq.Array(profile.PreferredPositions),
		pq.Array(profile.PreferredLocations), profile.EmploymentType, profile.SalaryType,
		profile.ExpectedSalaryMin, profile.ExpectedSalaryMax, profile.Visible,
	)
	return err
}

// SearchVisible pre-ranks visible profiles against the search terms using
// the maintained search_vector column. Fine-grained scoring happens in
// process; the text index only shapes and caps the candidate pool.
func (r *jobSeekerRepo) SearchVisible(ctx context.Context, terms []string, limit int) ([]domain.RankedJobSeeker, error) {
	query := `
		SELECT
			p.user_id, p.specializations, p.skills, p.educations, p.preferred_positions,
			p.preferred_locations, p.employment_type, p.salary_type, p.expected_salary_min,
			p.expected_salary_max, p.visible, p.created_at, p.updated_at,
			u.full_name,
			ts_rank(p.search_vector, query) AS text_score
		FROM job_seeker_profiles p
		JOIN users u ON p.user_id = u.id,
		     websearch_to_tsquery('simple', $1) query
		WHERE p.visible = TRUE
		  AND u.is_disabled = FALSE
		  AND p.search_vector @@ query
		ORDER BY text_score DESC
		LIMIT $2`

	rows, err := r.db.Query(ctx, query, orQuery(terms), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranked []domain.RankedJobSeeker
	for rows.Next() {
		var c domain.RankedJobSeeker
		p := &c.Profile
		if err := rows.Scan(
			&p.UserID, pq.Array(&p.Specializations), pq.Array(&p.Skills), pq.Array(&p.Educations),
			pq.Array(&p.PreferredPositions), pq.Array(&p.PreferredLocations),
			&p.EmploymentType, &p.SalaryType, &p.ExpectedSalaryMin, &p.ExpectedSalaryMax,
			&p.Visible, &p.CreatedAt, &p.UpdatedAt, &p.FullName, &c.TextScore,
		); err != nil {
			return nil, err
		}
		ranked = append(ranked, c)
	}
	return ranked, rows.Err()
}

// orQuery joins free-text terms with websearch OR syntax so any single
// term is enough to pull a candidate into the pool.
func orQuery(terms []string) string {
	return strings.Join(terms, " OR ")
}
