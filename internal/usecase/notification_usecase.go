package usecase

import (
	"context"

	"peso-job-portal/internal/domain"
	"peso-job-portal/pkg/apperror"
)

type notificationUsecase struct {
	notificationRepo domain.NotificationRepository
}

func NewNotificationUsecase(notificationRepo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{notificationRepo: notificationRepo}
}

func (u *notificationUsecase) ListMine(ctx context.Context, accountID string, page, pageSize int) ([]domain.Notification, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.notificationRepo.ListByAccountID(ctx, accountID, limit, offset)
}

func (u *notificationUsecase) MarkRead(ctx context.Context, accountID, notificationID string) error {
	if notificationID == "" {
		return apperror.BadRequest("Notification id is required")
	}
	if err := u.notificationRepo.MarkRead(ctx, notificationID, accountID); err != nil {
		return apperror.NotFound("Notification not found")
	}
	return nil
}
