package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"peso-job-portal/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// documentRepo stores the per-company compliance record. Slots live in a
// jsonb column; earliest_expiry is a derived column recomputed on every
// write so the sweep queries stay plain range scans.
type documentRepo struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) domain.CompanyDocumentsRepository {
	return &documentRepo{db: db}
}

const documentColumns = `id, company_id, slots, status, grace_period, is_renewal, remarks, created_at, updated_at`

func (r *documentRepo) GetByCompanyID(ctx context.Context, companyID int64) (*domain.CompanyDocuments, error) {
	query := `SELECT ` + documentColumns + ` FROM company_documents WHERE company_id = $1`
	docs, err := r.scanOne(r.db.QueryRow(ctx, query, companyID))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return docs, err
}

func (r *documentRepo) GetByID(ctx context.Context, id int64) (*domain.CompanyDocuments, error) {
	query := `SELECT ` + documentColumns + ` FROM company_documents WHERE id = $1`
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

func (r *documentRepo) Upsert(ctx context.Context, docs *domain.CompanyDocuments) error {
	slots, err := json.Marshal(docs.Slots)
	if err != nil {
		return err
	}
	query := `INSERT INTO company_documents (company_id, slots, status, grace_period, is_renewal, earliest_expiry, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          ON CONFLICT (company_id) DO UPDATE SET
	            slots = EXCLUDED.slots,
	            status = EXCLUDED.status,
	            grace_period = EXCLUDED.grace_period,
	            is_renewal = EXCLUDED.is_renewal,
	            earliest_expiry = EXCLUDED.earliest_expiry,
	            remarks = NULL,
	            updated_at = EXCLUDED.updated_at
	          RETURNING id`
	return r.db.QueryRow(ctx, query,
		docs.CompanyID, slots, docs.Status, docs.GracePeriod, docs.IsRenewal,
		earliestExpiry(docs.Slots), docs.CreatedAt, docs.UpdatedAt,
	).Scan(&docs.ID)
}

func (r *documentRepo) UpdateStatus(ctx context.Context, id int64, status string, remarks *string) error {
	query := `UPDATE company_documents SET status = $2, remarks = $3, updated_at = NOW() WHERE id = $1`
	result, err := r.db.Exec(ctx, query, id, status, remarks)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateExpirationDates rewrites the expiry of each given slot inside the
// jsonb record, recomputes earliest_expiry and clears the grace flag. The
// read and write share a transaction so concurrent reviews cannot
// interleave.
func (r *documentRepo) UpdateExpirationDates(ctx context.Context, id int64, expirations map[string]time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var raw []byte
	err = tx.QueryRow(ctx, `SELECT slots FROM company_documents WHERE id = $1 FOR UPDATE`, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	var slots map[string]*domain.DocumentFile
	if err := json.Unmarshal(raw, &slots); err != nil {
		return err
	}
	for slot, expiresAt := range expirations {
		if file := slots[slot]; file != nil {
			t := expiresAt
			file.ExpiresAt = &t
		}
	}
	updated, err := json.Marshal(slots)
	if err != nil {
		return err
	}

	query := `UPDATE company_documents SET
		slots = $2,
		earliest_expiry = $3,
		grace_period = FALSE,
		updated_at = NOW()
	WHERE id = $1`
	if _, err := tx.Exec(ctx, query, id, updated, earliestExpiry(slots)); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *documentRepo) ListInGraceWindow(ctx context.Context, from, to time.Time) ([]domain.CompanyDocuments, error) {
	query := `SELECT ` + documentColumns + ` FROM company_documents
	          WHERE status <> 'expired' AND earliest_expiry > $1 AND earliest_expiry <= $2`
	return r.list(ctx, query, from, to)
}

func (r *documentRepo) ListExpiryDue(ctx context.Context, asOf time.Time) ([]domain.CompanyDocuments, error) {
	query := `SELECT ` + documentColumns + ` FROM company_documents
	          WHERE status <> 'expired' AND earliest_expiry <= $1`
	return r.list(ctx, query, asOf)
}

// MarkGracePeriod is idempotent: flagging an already flagged record is a
// silent no-op.
func (r *documentRepo) MarkGracePeriod(ctx context.Context, id int64) error {
	query := `UPDATE company_documents SET grace_period = TRUE, updated_at = NOW()
	          WHERE id = $1 AND grace_period = FALSE`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

// MarkExpired is idempotent: an already expired record is left untouched.
func (r *documentRepo) MarkExpired(ctx context.Context, id int64) error {
	query := `UPDATE company_documents SET status = 'expired', updated_at = NOW()
	          WHERE id = $1 AND status <> 'expired'`
	_, err := r.db.Exec(ctx, query, id)
	return err
}

func (r *documentRepo) DeclineByCompanyID(ctx context.Context, companyID int64) error {
	query := `UPDATE company_documents SET status = 'declined', updated_at = NOW()
	          WHERE company_id = $1 AND status <> 'declined'`
	_, err := r.db.Exec(ctx, query, companyID)
	return err
}

func (r *documentRepo) ListByStatus(ctx context.Context, status string, limit, offset int) ([]domain.CompanyDocuments, int64, error) {
	query := `SELECT ` + documentColumns + ` FROM company_documents
	          WHERE status = $1 ORDER BY updated_at ASC LIMIT $2 OFFSET $3`

	docs, err := r.list(ctx, query, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM company_documents WHERE status = $1`, status).Scan(&total); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (r *documentRepo) list(ctx context.Context, query string, args ...any) ([]domain.CompanyDocuments, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.CompanyDocuments
	for rows.Next() {
		var d domain.CompanyDocuments
		var raw []byte
		if err := rows.Scan(
			&d.ID, &d.CompanyID, &raw, &d.Status, &d.GracePeriod, &d.IsRenewal, &d.Remarks,
			&d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &d.Slots); err != nil {
			return nil, err
		}
		records = append(records, d)
	}
	return records, rows.Err()
}

func (r *documentRepo) scanOne(row pgx.Row) (*domain.CompanyDocuments, error) {
	var d domain.CompanyDocuments
	var raw []byte
	err := row.Scan(
		&d.ID, &d.CompanyID, &raw, &d.Status, &d.GracePeriod, &d.IsRenewal, &d.Remarks,
		&d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal(raw, &d.Slots); err != nil {
		return nil, err
	}
	return &d, nil
}

// earliestExpiry computes the derived sweep column from the slot map.
// Records with no dated slots have no expiry and never show up in sweep
// range scans.
func earliestExpiry(slots map[string]*domain.DocumentFile) *time.Time {
	var earliest *time.Time
	for _, file := range slots {
		if file == nil || file.ExpiresAt == nil {
			continue
		}
		if earliest == nil || file.ExpiresAt.Before(*earliest) {
			t := *file.ExpiresAt
			earliest = &t
		}
	}
	return earliest
}
