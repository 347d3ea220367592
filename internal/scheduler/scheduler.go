// Package scheduler runs the daily lifecycle sweep at a fixed local
// hour. It is deliberately a plain timer loop; the sweep itself is
// idempotent, so a missed or doubled run is harmless.
package scheduler

import (
	"context"
	"time"

	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/logger"
)

type Scheduler struct {
	sweepUC domain.SweepUsecase
	hour    int
}

// New creates a scheduler firing daily at the given hour (0-23).
func New(sweepUC domain.SweepUsecase, hour int) *Scheduler {
	if hour < 0 || hour > 23 {
		hour = 1
	}
	return &Scheduler{sweepUC: sweepUC, hour: hour}
}

// Start blocks until ctx is cancelled. Run it in its own goroutine.
func (s *Scheduler) Start(ctx context.Context) {
	for {
		next := nextRun(time.Now(), s.hour)
		logger.Log.Info("Next lifecycle sweep scheduled", "at", next.Format(time.RFC3339))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case now := <-timer.C:
			if _, err := s.sweepUC.Run(ctx, now); err != nil {
				logger.Log.Error("Lifecycle sweep failed", "error", err)
			}
		}
	}
}

// RunNow triggers an immediate sweep outside the daily cadence.
func (s *Scheduler) RunNow(ctx context.Context) (*domain.SweepReport, error) {
	return s.sweepUC.Run(ctx, time.Now())
}

// nextRun returns the next occurrence of the configured hour strictly
// after now.
func nextRun(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
