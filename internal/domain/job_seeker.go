package domain

import (
	"context"
	"time"
)

// JobSeekerProfile holds the free-text matching inputs of a job seeker.
// Arrays carry whatever the seeker typed; no normalization is enforced.
type JobSeekerProfile struct {
	UserID             string    `json:"user_id"`
	Specializations    []string  `json:"specializations"`
	Skills             []string  `json:"skills"`
	Educations         []string  `json:"educations"`
	PreferredPositions []string  `json:"preferred_positions"`
	PreferredLocations []string  `json:"preferred_locations"`
	EmploymentType     string    `json:"employment_type"`
	SalaryType         string    `json:"salary_type"`
	ExpectedSalaryMin  float64   `json:"expected_salary_min"`
	ExpectedSalaryMax  float64   `json:"expected_salary_max"`
	Visible            bool      `json:"visible"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`

	// Joined data for recommendation responses
	FullName string `json:"full_name,omitempty"`
}

type JobSeekerRepository interface {
	GetByUserID(ctx context.Context, userID string) (*JobSeekerProfile, error)
	Upsert(ctx context.Context, profile *JobSeekerProfile) error
	// SearchVisible returns visible profiles pre-ranked against the given
	// search terms by the text index, capped at limit. TextScore comes
	// back per row via the candidate structs in the matching package.
	SearchVisible(ctx context.Context, terms []string, limit int) ([]RankedJobSeeker, error)
}

// RankedJobSeeker pairs a profile with its text-index relevance score.
type RankedJobSeeker struct {
	Profile   JobSeekerProfile `json:"profile"`
	TextScore float64          `json:"text_score"`
}

type JobSeekerUsecase interface {
	GetMyProfile(ctx context.Context, userID string) (*JobSeekerProfile, error)
	UpsertMyProfile(ctx context.Context, userID string, profile *JobSeekerProfile) error
}
