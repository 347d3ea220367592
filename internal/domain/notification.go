package domain

import (
	"context"
	"time"
)

// Notification is a persisted in-app notification. Persistence never
// depends on the recipient being connected; real-time delivery is a
// best-effort extra.
type Notification struct {
	ID        string    `json:"id"`
	AccountID string    `json:"account_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

type NotificationRepository interface {
	Create(ctx context.Context, n *Notification) error
	ListByAccountID(ctx context.Context, accountID string, limit, offset int) ([]Notification, int64, error)
	MarkRead(ctx context.Context, id, accountID string) error
}

// ConnectionResolver looks up a live delivery channel for an account.
// Implemented by the websocket hub; usecases depend only on this
// interface, never on the hub's connection map.
type ConnectionResolver interface {
	// Resolve returns a send function for the account, or false when the
	// account has no live connection.
	Resolve(accountID string) (send func(payload []byte) error, ok bool)
}

// NotificationDispatcher persists a notification and then attempts
// real-time delivery. Delivery failures are logged, never returned.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, n *Notification)
}

type NotificationUsecase interface {
	ListMine(ctx context.Context, accountID string, page, pageSize int) ([]Notification, int64, error)
	MarkRead(ctx context.Context, accountID, notificationID string) error
}
