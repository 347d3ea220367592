package domain

import (
	"context"
	"time"
)

// SweepReport summarizes one run of the daily lifecycle sweep.
type SweepReport struct {
	StartedAt         time.Time `json:"started_at"`
	FinishedAt        time.Time `json:"finished_at"`
	GraceMarked       int       `json:"grace_marked"`
	DocumentsExpired  int       `json:"documents_expired"`
	CompaniesRevoked  int       `json:"companies_revoked"`
	VacanciesExpired  int       `json:"vacancies_expired"`
	RecordErrors      int       `json:"record_errors"`
}

// SweepUsecase advances time-driven lifecycle state. Each run performs
// three passes: grace-period marking, document expiry (with the company
// revocation cascade) and vacancy expiry. A failure on one record never
// blocks the rest, and re-running a sweep is idempotent.
type SweepUsecase interface {
	Run(ctx context.Context, now time.Time) (*SweepReport, error)
}
