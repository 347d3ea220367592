package lifecycle

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"peso-job-portal/internal/domain"
)

// DefaultGracePeriod is the window before a document's expiry during
// which it is flagged but not yet treated as expired.
const DefaultGracePeriod = 30 * 24 * time.Hour

// DocumentInGraceWindow reports whether any slot of the record expires
// within (now, now+window] while the record is not already expired.
// Matching records get grace_period set; the status is untouched.
func DocumentInGraceWindow(docs *domain.CompanyDocuments, now time.Time, window time.Duration) bool {
	if docs.Status == domain.DocumentStatusExpired {
		return false
	}
	limit := now.Add(window)
	for _, f := range docs.Slots {
		if f == nil || f.ExpiresAt == nil {
			continue
		}
		if f.ExpiresAt.After(now) && !f.ExpiresAt.After(limit) {
			return true
		}
	}
	return false
}

// DocumentExpiryDue reports whether any slot has an expiry at or before
// now while the record is not already expired. A due record expires as a
// whole and cascades a revocation to the owning company.
func DocumentExpiryDue(docs *domain.CompanyDocuments, now time.Time) bool {
	if docs.Status == domain.DocumentStatusExpired {
		return false
	}
	for _, f := range docs.Slots {
		if f == nil || f.ExpiresAt == nil {
			continue
		}
		if !f.ExpiresAt.After(now) {
			return true
		}
	}
	return false
}

// VacancyExpiryDue reports whether the vacancy's application deadline has
// passed and the vacancy is not already expired. The transition is
// monotonic; nothing in the sweep re-opens an expired vacancy.
func VacancyExpiryDue(v *domain.JobVacancy, now time.Time) bool {
	return v.Status != domain.VacancyStatusExpired && v.ApplicationDeadline.Before(now)
}

// IsRenewalSubmission reports whether re-uploading over the existing
// record counts as an accreditation renewal.
func IsRenewalSubmission(existing *domain.CompanyDocuments) bool {
	if existing == nil {
		return false
	}
	return existing.Status == domain.DocumentStatusVerified || existing.Status == domain.DocumentStatusExpired
}

// NewAccreditationID generates an accreditation id of the form
// ACC-<year>-<8 uppercase hex chars>.
func NewAccreditationID(now time.Time) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform RNG is broken
		panic(err)
	}
	return fmt.Sprintf("ACC-%d-%s", now.Year(), strings.ToUpper(hex.EncodeToString(buf)))
}
