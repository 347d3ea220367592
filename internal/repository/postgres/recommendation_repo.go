package postgres

import (
	"context"

	"peso-job-portal/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type recommendationRepo struct {
	db *pgxpool.Pool
}

func NewRecommendationRepository(db *pgxpool.Pool) domain.RecommendationRepository {
	return &recommendationRepo{db: db}
}

// SearchEligibleVacancies applies the hard eligibility filters before any
// scoring: only vacancies of accredited companies whose publication
// status is in the eligible set are ever candidates. The filter is not
// exposed to callers.
func (r *recommendationRepo) SearchEligibleVacancies(ctx context.Context, terms []string, limit int) ([]domain.RankedVacancy, error) {
	query := `
		SELECT
			v.id, v.company_id, v.title, v.description, v.employment_type, v.salary_type,
			v.salary_min, v.salary_max, v.locations, v.industries, v.application_deadline,
			v.status, v.publication_status, v.created_at, v.updated_at,
			c.name AS company_name,
			c.status AS company_status,
			c.industry,
			ts_rank(v.search_vector, query) AS text_score
		FROM job_vacancies v
		JOIN companies c ON v.company_id = c.id,
		     websearch_to_tsquery('simple', $1) query
		WHERE c.status = 'accredited'
		  AND v.publication_status = ANY($2)
		  AND v.search_vector @@ query
		ORDER BY text_score DESC
		LIMIT $3`

	rows, err := r.db.Query(ctx, query, orQuery(terms), pq.Array(domain.EligiblePublicationStatuses), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranked []domain.RankedVacancy
	for rows.Next() {
		var c domain.RankedVacancy
		v := &c.Vacancy
		if err := rows.Scan(
			&v.ID, &v.CompanyID, &v.Title, &v.Description, &v.EmploymentType, &v.SalaryType,
			&v.SalaryMin, &v.SalaryMax, pq.Array(&v.Locations), pq.Array(&v.Industries),
			&v.ApplicationDeadline, &v.Status, &v.PublicationStatus, &v.CreatedAt, &v.UpdatedAt,
			&v.CompanyName, &v.CompanyStatus, &v.Industry, &c.TextScore,
		); err != nil {
			return nil, err
		}
		ranked = append(ranked, c)
	}
	return ranked, rows.Err()
}
