package usecase

import (
	"context"

	"peso-job-portal/internal/domain"
	"peso-job-portal/internal/matching"
	"peso-job-portal/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type recommendationUsecase struct {
	seekerRepo         domain.JobSeekerRepository
	recommendationRepo domain.RecommendationRepository
	validate           *validator.Validate
	poolSize           int
}

func NewRecommendationUsecase(
	seekerRepo domain.JobSeekerRepository,
	recommendationRepo domain.RecommendationRepository,
	validate *validator.Validate,
	poolSize int,
) domain.RecommendationUsecase {
	if poolSize < matching.MaxResults {
		poolSize = matching.MaxResults
	}
	return &recommendationUsecase{
		seekerRepo:         seekerRepo,
		recommendationRepo: recommendationRepo,
		validate:           validate,
		poolSize:           poolSize,
	}
}

// RecommendJobSeekers ranks visible job seeker profiles against an
// employer's candidate preference. An empty result is an explicit
// not-found error so callers can tell "no data" from success.
func (u *recommendationUsecase) RecommendJobSeekers(ctx context.Context, q *domain.SeekerQuery) ([]domain.RecommendedSeeker, error) {
	if err := u.validate.Struct(q); err != nil {
		return nil, apperror.BadRequest("At least one specialization is required")
	}

	terms := append(append(append([]string{}, q.Specializations...), q.Skills...), q.Educations...)
	pool, err := u.seekerRepo.SearchVisible(ctx, terms, u.poolSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(pool) == 0 {
		return nil, apperror.NotFound("No matching job seekers found")
	}

	ranked := matching.RankSeekers(q, pool)
	if len(ranked) == 0 {
		return nil, apperror.NotFound("No matching job seekers found")
	}
	return ranked, nil
}

// RecommendVacancies ranks eligible vacancies against a job seeker's
// preference profile. Eligibility (accredited company, allowed
// publication status) is filtered in the repository before scoring.
func (u *recommendationUsecase) RecommendVacancies(ctx context.Context, q *domain.VacancyQuery) ([]domain.RecommendedVacancy, error) {
	if err := u.validate.Struct(q); err != nil {
		return nil, apperror.BadRequest("At least one specialization is required")
	}

	terms := append(append(append([]string{}, q.Specializations...), q.Positions...), q.Industries...)
	pool, err := u.recommendationRepo.SearchEligibleVacancies(ctx, terms, u.poolSize)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(pool) == 0 {
		return nil, apperror.NotFound("No matching job vacancies found")
	}

	ranked := matching.RankVacancies(q, pool)
	if len(ranked) == 0 {
		return nil, apperror.NotFound("No matching job vacancies found")
	}
	return ranked, nil
}
