package notifier

import (
	"context"
	"encoding/json"
	"time"

	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/logger"

	"github.com/google/uuid"
)

// Dispatcher persists notifications and then attempts real-time delivery
// through the hub. The persisted record is the source of truth; a failed
// push is only logged.
type Dispatcher struct {
	repo     domain.NotificationRepository
	resolver domain.ConnectionResolver
}

func NewDispatcher(repo domain.NotificationRepository, resolver domain.ConnectionResolver) *Dispatcher {
	return &Dispatcher{repo: repo, resolver: resolver}
}

func (d *Dispatcher) Dispatch(ctx context.Context, n *domain.Notification) {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	if err := d.repo.Create(ctx, n); err != nil {
		logger.Log.Error("Failed to persist notification", "account_id", n.AccountID, "error", err)
		return
	}

	send, ok := d.resolver.Resolve(n.AccountID)
	if !ok {
		return
	}
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	if err := send(payload); err != nil {
		logger.Log.Warn("Real-time notification push failed", "account_id", n.AccountID, "error", err)
	}
}
