package postgres

import (
	"context"

	"peso-job-portal/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type notificationRepo struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) domain.NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	query := `INSERT INTO notifications (id, account_id, title, message, read, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, n.ID, n.AccountID, n.Title, n.Message, n.Read, n.CreatedAt)
	return err
}

func (r *notificationRepo) ListByAccountID(ctx context.Context, accountID string, limit, offset int) ([]domain.Notification, int64, error) {
	query := `SELECT id, account_id, title, message, read, created_at
	          FROM notifications WHERE account_id = $1
	          ORDER BY created_at DESC LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, accountID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.AccountID, &n.Title, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, 0, err
		}
		notifications = append(notifications, n)
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE account_id = $1`, accountID).Scan(&total); err != nil {
		return nil, 0, err
	}

	return notifications, total, nil
}

// MarkRead is scoped by account id so one user cannot mark another
// user's notifications.
func (r *notificationRepo) MarkRead(ctx context.Context, id, accountID string) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND account_id = $2`
	result, err := r.db.Exec(ctx, query, id, accountID)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
