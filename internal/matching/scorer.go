// Package matching ranks job seekers against employer preferences and
// job vacancies against seeker profiles. The adjusted score of a
// candidate is the text-index relevance it arrived with, plus weighted
// fuzzy field matches, plus exact-match and salary bonuses.
package matching

import (
	"sort"

	"peso-job-portal/internal/domain"
)

// MaxResults caps every ranked list.
const MaxResults = 10

// Field boosts for the fuzzy base relevance.
const (
	boostSpecialization = 3.0
	boostIndustry       = 3.0
	boostSkill          = 2.0
	boostJobTitle       = 2.0
	boostEmploymentType = 1.5
	boostLocation       = 1.0
	boostEducation      = 1.0
)

// Exact-match bonus weights, applied per intersection element.
const (
	bonusSpecialization = 2.0
	bonusJobTitle       = 2.0
	bonusSkill          = 1.5
	bonusLocation       = 1.5
	bonusEmploymentType = 1.5
	bonusSalaryType     = 1.5
	bonusEducation      = 1.0
)

// Salary bonuses: full credit on range overlap, partial credit otherwise
// so a salary mismatch never zeroes out an otherwise relevant candidate.
const (
	salaryBonusFull    = 2.0
	salaryBonusPartial = 0.5
)

// Breakdown itemizes one candidate's score. Exposed so callers and tests
// can inspect each contribution separately.
type Breakdown struct {
	TextScore   float64 `json:"text_score"`
	FuzzyScore  float64 `json:"fuzzy_score"`
	ExactBonus  float64 `json:"exact_bonus"`
	SalaryBonus float64 `json:"salary_bonus"`
}

// Total is the adjusted score used for ranking.
func (b Breakdown) Total() float64 {
	return b.TextScore + b.FuzzyScore + b.ExactBonus + b.SalaryBonus
}

// ScoreSeeker scores one job seeker profile against an employer's
// candidate preference.
func ScoreSeeker(q *domain.SeekerQuery, c *domain.RankedJobSeeker) Breakdown {
	p := &c.Profile
	return Breakdown{
		TextScore: c.TextScore,
		FuzzyScore: float64(fuzzyMatchCount(q.Specializations, p.Specializations))*boostSpecialization +
			float64(fuzzyMatchCount(q.Skills, p.Skills))*boostSkill +
			float64(fuzzyMatchCount(q.Educations, p.Educations))*boostEducation,
		ExactBonus: float64(exactMatchCount(q.Specializations, p.Specializations))*bonusSpecialization +
			float64(exactMatchCount(q.Skills, p.Skills))*bonusSkill +
			float64(exactMatchCount(q.Educations, p.Educations))*bonusEducation,
	}
}

// ScoreVacancy scores one eligible vacancy against a seeker's preference
// profile.
func ScoreVacancy(q *domain.VacancyQuery, c *domain.RankedVacancy) Breakdown {
	v := &c.Vacancy
	titleArr := []string{v.Title}
	var employmentArr, candidateEmployment []string
	if q.EmploymentType != "" {
		employmentArr = []string{q.EmploymentType}
		candidateEmployment = []string{v.EmploymentType}
	}
	var salaryTypeArr, candidateSalaryType []string
	if q.SalaryType != "" {
		salaryTypeArr = []string{q.SalaryType}
		candidateSalaryType = []string{v.SalaryType}
	}

	b := Breakdown{
		TextScore: c.TextScore,
		FuzzyScore: float64(fuzzyMatchCount(q.Specializations, v.Industries))*boostSpecialization +
			float64(fuzzyMatchCount(q.Industries, v.Industries))*boostIndustry +
			float64(fuzzyMatchCount(q.Positions, titleArr))*boostJobTitle +
			float64(fuzzyMatchCount(employmentArr, candidateEmployment))*boostEmploymentType +
			float64(fuzzyMatchCount(q.Locations, v.Locations))*boostLocation,
		ExactBonus: float64(exactMatchCount(q.Specializations, v.Industries))*bonusSpecialization +
			float64(exactMatchCount(q.Positions, titleArr))*bonusJobTitle +
			float64(exactMatchCount(q.Locations, v.Locations))*bonusLocation +
			float64(exactMatchCount(employmentArr, candidateEmployment))*bonusEmploymentType +
			float64(exactMatchCount(salaryTypeArr, candidateSalaryType))*bonusSalaryType,
	}
	if q.SalaryMin > 0 || q.SalaryMax > 0 {
		b.SalaryBonus = salaryBonus(q.SalaryMin, q.SalaryMax, v.SalaryMin, v.SalaryMax)
	}
	return b
}

// salaryBonus awards full credit when the candidate range overlaps the
// requested range and partial credit otherwise.
func salaryBonus(qMin, qMax, cMin, cMax float64) float64 {
	if qMax == 0 {
		qMax = qMin
	}
	if cMax == 0 {
		cMax = cMin
	}
	if cMin <= qMax && cMax >= qMin {
		return salaryBonusFull
	}
	return salaryBonusPartial
}

// RankSeekers scores, sorts and truncates a seeker candidate pool.
func RankSeekers(q *domain.SeekerQuery, pool []domain.RankedJobSeeker) []domain.RecommendedSeeker {
	results := make([]domain.RecommendedSeeker, 0, len(pool))
	for i := range pool {
		results = append(results, domain.RecommendedSeeker{
			Profile:       pool[i].Profile,
			AdjustedScore: ScoreSeeker(q, &pool[i]).Total(),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AdjustedScore > results[j].AdjustedScore
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}

// RankVacancies scores, sorts and truncates a vacancy candidate pool.
func RankVacancies(q *domain.VacancyQuery, pool []domain.RankedVacancy) []domain.RecommendedVacancy {
	results := make([]domain.RecommendedVacancy, 0, len(pool))
	for i := range pool {
		results = append(results, domain.RecommendedVacancy{
			Vacancy:       pool[i].Vacancy,
			AdjustedScore: ScoreVacancy(q, &pool[i]).Total(),
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].AdjustedScore > results[j].AdjustedScore
	})
	if len(results) > MaxResults {
		results = results[:MaxResults]
	}
	return results
}
