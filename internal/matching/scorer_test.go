package matching

import (
	"fmt"
	"testing"

	"peso-job-portal/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFuzzyEquals(t *testing.T) {
	t.Run("Exact match after normalization", func(t *testing.T) {
		assert.True(t, fuzzyEquals(" Welding ", "welding"))
	})

	t.Run("One edit allowed for short terms", func(t *testing.T) {
		assert.True(t, fuzzyEquals("java", "jaba"))
		assert.False(t, fuzzyEquals("java", "jbba"))
	})

	t.Run("Two edits allowed for longer terms", func(t *testing.T) {
		assert.True(t, fuzzyEquals("carpentry", "carpentyr"))
		assert.True(t, fuzzyEquals("plumbing", "plumbign"))
		assert.False(t, fuzzyEquals("plumbing", "welding"))
	})

	t.Run("Empty terms never match", func(t *testing.T) {
		assert.False(t, fuzzyEquals("", "welding"))
		assert.False(t, fuzzyEquals("  ", ""))
	})
}

func TestExactMatchCount(t *testing.T) {
	t.Run("Counts intersection size case-insensitively", func(t *testing.T) {
		q := []string{"Welding", "Carpentry", "Masonry"}
		c := []string{"welding", "masonry", "plumbing"}
		assert.Equal(t, 2, exactMatchCount(q, c))
	})

	t.Run("Duplicates count once", func(t *testing.T) {
		q := []string{"Welding", "welding"}
		c := []string{"Welding"}
		assert.Equal(t, 1, exactMatchCount(q, c))
	})
}

func seekerCandidate(specs, skills, educations []string) domain.RankedJobSeeker {
	return domain.RankedJobSeeker{
		Profile: domain.JobSeekerProfile{
			Specializations: specs,
			Skills:          skills,
			Educations:      educations,
		},
	}
}

func TestScoreSeeker(t *testing.T) {
	t.Run("Single specialization overlap contributes exactly 2 to the exact bonus", func(t *testing.T) {
		q := &domain.SeekerQuery{Specializations: []string{"Welding"}}
		c := seekerCandidate([]string{"Welding"}, nil, nil)
		b := ScoreSeeker(q, &c)
		assert.Equal(t, 2.0, b.ExactBonus)
	})

	t.Run("Zero overlap scores strictly lower than one overlap, all else equal", func(t *testing.T) {
		q := &domain.SeekerQuery{Specializations: []string{"Welding"}}
		match := seekerCandidate([]string{"Welding"}, nil, nil)
		noMatch := seekerCandidate([]string{"Accounting"}, nil, nil)
		assert.Greater(t, ScoreSeeker(q, &match).Total(), ScoreSeeker(q, &noMatch).Total())
	})

	t.Run("Skill and education bonuses use their own weights", func(t *testing.T) {
		q := &domain.SeekerQuery{
			Specializations: []string{"Welding"},
			Skills:          []string{"TIG"},
			Educations:      []string{"Vocational"},
		}
		c := seekerCandidate(nil, []string{"TIG"}, []string{"Vocational"})
		b := ScoreSeeker(q, &c)
		assert.Equal(t, 1.5+1.0, b.ExactBonus)
	})

	t.Run("Fuzzy matches add boost without the exact bonus", func(t *testing.T) {
		q := &domain.SeekerQuery{Specializations: []string{"Carpentry"}}
		c := seekerCandidate([]string{"Carpentyr"}, nil, nil)
		b := ScoreSeeker(q, &c)
		assert.Equal(t, 3.0, b.FuzzyScore)
		assert.Equal(t, 0.0, b.ExactBonus)
	})

	t.Run("Text score feeds into the total", func(t *testing.T) {
		q := &domain.SeekerQuery{Specializations: []string{"Welding"}}
		c := seekerCandidate([]string{"Welding"}, nil, nil)
		c.TextScore = 0.75
		assert.Equal(t, ScoreSeeker(q, &c).Total(), 0.75+3.0+2.0)
	})
}

func vacancyCandidate(title string, industries, locations []string, salaryMin, salaryMax float64) domain.RankedVacancy {
	return domain.RankedVacancy{
		Vacancy: domain.JobVacancyWithCompany{
			JobVacancy: domain.JobVacancy{
				Title:      title,
				Industries: industries,
				Locations:  locations,
				SalaryMin:  salaryMin,
				SalaryMax:  salaryMax,
			},
		},
	}
}

func TestScoreVacancy(t *testing.T) {
	t.Run("Overlapping salary range gets the full bonus", func(t *testing.T) {
		q := &domain.VacancyQuery{
			Specializations: []string{"Construction"},
			SalaryMin:       15000,
			SalaryMax:       25000,
		}
		c := vacancyCandidate("Site Engineer", []string{"Construction"}, nil, 20000, 30000)
		assert.Equal(t, 2.0, ScoreVacancy(q, &c).SalaryBonus)
	})

	t.Run("Disjoint salary range keeps partial credit", func(t *testing.T) {
		q := &domain.VacancyQuery{
			Specializations: []string{"Construction"},
			SalaryMin:       15000,
			SalaryMax:       25000,
		}
		c := vacancyCandidate("Site Engineer", []string{"Construction"}, nil, 40000, 60000)
		assert.Equal(t, 0.5, ScoreVacancy(q, &c).SalaryBonus)
	})

	t.Run("No salary in the query means no salary bonus at all", func(t *testing.T) {
		q := &domain.VacancyQuery{Specializations: []string{"Construction"}}
		c := vacancyCandidate("Site Engineer", []string{"Construction"}, nil, 40000, 60000)
		assert.Equal(t, 0.0, ScoreVacancy(q, &c).SalaryBonus)
	})

	t.Run("Position match against the vacancy title", func(t *testing.T) {
		q := &domain.VacancyQuery{
			Specializations: []string{"Construction"},
			Positions:       []string{"Site Engineer"},
		}
		c := vacancyCandidate("Site Engineer", nil, nil, 0, 0)
		b := ScoreVacancy(q, &c)
		assert.Equal(t, 2.0, b.FuzzyScore)
		assert.Equal(t, 2.0, b.ExactBonus)
	})

	t.Run("Location matches use their own weights", func(t *testing.T) {
		q := &domain.VacancyQuery{
			Specializations: []string{"Construction"},
			Locations:       []string{"Taguig"},
		}
		c := vacancyCandidate("Laborer", nil, []string{"Taguig"}, 0, 0)
		b := ScoreVacancy(q, &c)
		assert.Equal(t, 1.0, b.FuzzyScore)
		assert.Equal(t, 1.5, b.ExactBonus)
	})
}

func TestRankSeekers(t *testing.T) {
	q := &domain.SeekerQuery{Specializations: []string{"Welding"}}

	t.Run("Sorted descending by adjusted score", func(t *testing.T) {
		pool := []domain.RankedJobSeeker{
			seekerCandidate([]string{"Accounting"}, nil, nil),
			seekerCandidate([]string{"Welding"}, nil, nil),
		}
		ranked := RankSeekers(q, pool)
		assert.Len(t, ranked, 2)
		assert.Equal(t, []string{"Welding"}, ranked[0].Profile.Specializations)
		assert.Greater(t, ranked[0].AdjustedScore, ranked[1].AdjustedScore)
	})

	t.Run("Truncated to ten results", func(t *testing.T) {
		var pool []domain.RankedJobSeeker
		for i := 0; i < 25; i++ {
			c := seekerCandidate([]string{"Welding"}, nil, nil)
			c.Profile.UserID = fmt.Sprintf("seeker-%d", i)
			pool = append(pool, c)
		}
		assert.Len(t, RankSeekers(q, pool), MaxResults)
	})
}
