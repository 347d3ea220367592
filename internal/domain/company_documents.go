package domain

import (
	"context"
	"time"
)

// CompanyDocuments statuses
const (
	DocumentStatusPending  = "pending"
	DocumentStatusVerified = "verified"
	DocumentStatusDeclined = "declined"
	DocumentStatusExpired  = "expired"
)

// Document slot names. Each company submits one file per slot.
const (
	SlotDTI                    = "dti"
	SlotMayorsPermit           = "mayors_permit"
	SlotBIRRegistration        = "bir_registration"
	SlotSECCertificate         = "sec_certificate"
	SlotPagibigRegistration    = "pagibig_registration"
	SlotPhilhealthRegistration = "philhealth_registration"
	SlotSSS                    = "sss"
)

// DocumentSlots lists every slot in canonical order.
var DocumentSlots = []string{
	SlotDTI,
	SlotMayorsPermit,
	SlotBIRRegistration,
	SlotSECCertificate,
	SlotPagibigRegistration,
	SlotPhilhealthRegistration,
	SlotSSS,
}

// DocumentFile is one uploaded compliance document within a slot.
type DocumentFile struct {
	URL          string     `json:"url"`
	OriginalName string     `json:"original_name"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

// CompanyDocuments is the single compliance-document record owned by a
// company (1:1 by CompanyID). The status covers the record as a whole,
// not individual slots.
type CompanyDocuments struct {
	ID          int64                    `json:"id"`
	CompanyID   int64                    `json:"company_id"`
	Slots       map[string]*DocumentFile `json:"slots"`
	Status      string                   `json:"status"`
	GracePeriod bool                     `json:"grace_period"`
	IsRenewal   bool                     `json:"is_renewal"`
	Remarks     *string                  `json:"remarks,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

type CompanyDocumentsRepository interface {
	GetByCompanyID(ctx context.Context, companyID int64) (*CompanyDocuments, error)
	GetByID(ctx context.Context, id int64) (*CompanyDocuments, error)
	// Upsert replaces the slot set and writes status/renewal flags.
	Upsert(ctx context.Context, docs *CompanyDocuments) error
	UpdateStatus(ctx context.Context, id int64, status string, remarks *string) error
	UpdateExpirationDates(ctx context.Context, id int64, expirations map[string]time.Time) error
	// Sweep queries. Both exclude records already expired.
	ListInGraceWindow(ctx context.Context, from, to time.Time) ([]CompanyDocuments, error)
	ListExpiryDue(ctx context.Context, asOf time.Time) ([]CompanyDocuments, error)
	// Conditional idempotent writes used by the sweep.
	MarkGracePeriod(ctx context.Context, id int64) error
	MarkExpired(ctx context.Context, id int64) error
	DeclineByCompanyID(ctx context.Context, companyID int64) error
	ListByStatus(ctx context.Context, status string, limit, offset int) ([]CompanyDocuments, int64, error)
}

type CompanyDocumentsUsecase interface {
	GetMyDocuments(ctx context.Context, userID string) (*CompanyDocuments, error)
	// SubmitDocuments records a (re)upload of the slot set. Re-uploading
	// over a verified or expired record is a renewal and flags both the
	// record and the owning company; the status always resets to pending.
	SubmitDocuments(ctx context.Context, userID string, slots map[string]*DocumentFile) (*CompanyDocuments, error)
	// Admin review actions
	Verify(ctx context.Context, documentsID int64, remarks string) error
	Decline(ctx context.Context, documentsID int64, remarks string) error
	// UpdateExpirationDates sets per-slot expiry dates and clears the
	// grace-period flag. This is the only path that clears the flag.
	UpdateExpirationDates(ctx context.Context, documentsID int64, expirations map[string]time.Time) error
	ListPendingReview(ctx context.Context, page, pageSize int) ([]CompanyDocuments, int64, error)
}
