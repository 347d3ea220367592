package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRun(t *testing.T) {
	loc := time.UTC

	t.Run("Same day when the hour is still ahead", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 0, 30, 0, 0, loc)
		next := nextRun(now, 1)
		assert.Equal(t, time.Date(2026, 3, 10, 1, 0, 0, 0, loc), next)
	})

	t.Run("Next day when the hour already passed", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 2, 0, 0, 0, loc)
		next := nextRun(now, 1)
		assert.Equal(t, time.Date(2026, 3, 11, 1, 0, 0, 0, loc), next)
	})

	t.Run("Exactly at the hour schedules tomorrow", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 1, 0, 0, 0, loc)
		next := nextRun(now, 1)
		assert.Equal(t, time.Date(2026, 3, 11, 1, 0, 0, 0, loc), next)
	})
}
