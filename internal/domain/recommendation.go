package domain

import "context"

// SeekerQuery is an employer's candidate-preference query.
type SeekerQuery struct {
	Specializations []string `json:"specializations" validate:"required,min=1"`
	Skills          []string `json:"skills"`
	Educations      []string `json:"educations"`
}

// VacancyQuery is a job seeker's vacancy-preference query.
type VacancyQuery struct {
	Positions       []string `json:"positions"`
	Locations       []string `json:"locations"`
	Industries      []string `json:"industries"`
	Specializations []string `json:"specializations" validate:"required,min=1"`
	EmploymentType  string   `json:"employment_type"`
	SalaryType      string   `json:"salary_type"`
	SalaryMin       float64  `json:"salary_min"`
	SalaryMax       float64  `json:"salary_max"`
}

// RecommendedSeeker is one ranked job seeker result. AdjustedScore is
// exposed so callers can display or debug the ranking.
type RecommendedSeeker struct {
	Profile       JobSeekerProfile `json:"profile"`
	AdjustedScore float64          `json:"adjusted_score"`
}

// RecommendedVacancy is one ranked vacancy result.
type RecommendedVacancy struct {
	Vacancy       JobVacancyWithCompany `json:"vacancy"`
	AdjustedScore float64               `json:"adjusted_score"`
}

// RankedVacancy pairs an eligible vacancy with its text-index relevance.
type RankedVacancy struct {
	Vacancy   JobVacancyWithCompany `json:"vacancy"`
	TextScore float64               `json:"text_score"`
}

// RecommendationRepository fetches pre-filtered candidate pools. Hard
// eligibility filters live here, before any scoring happens: vacancy
// pools contain only vacancies of accredited companies whose publication
// status is in the eligible set.
type RecommendationRepository interface {
	SearchEligibleVacancies(ctx context.Context, terms []string, limit int) ([]RankedVacancy, error)
}

// EligiblePublicationStatuses gates which vacancies may be recommended.
var EligiblePublicationStatuses = []string{PublicationStatusApproved, VacancyStatusExpired}

type RecommendationUsecase interface {
	// RecommendJobSeekers ranks visible job seekers against an employer's
	// preference. Empty specializations are rejected before any query.
	RecommendJobSeekers(ctx context.Context, q *SeekerQuery) ([]RecommendedSeeker, error)
	// RecommendVacancies ranks eligible vacancies against a seeker's
	// preference profile.
	RecommendVacancies(ctx context.Context, q *VacancyQuery) ([]RecommendedVacancy, error)
}
