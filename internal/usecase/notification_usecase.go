package usecase

import (
	"context"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for in-app notification use cases.
type NotificationUsecase interface {
	// ListUnread retrieves the recipient's unread notifications, newest
	// first, capped at the configured limit.
	ListUnread(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error)

	// Dismiss marks a notification read. The row is retained; it only drops
	// out of the unread view. Dismissing a missing notification is a no-op.
	Dismiss(ctx context.Context, userID, notificationID uuid.UUID) error
}
