package repository

import (
	"context"
	"errors"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification records.
type NotificationRepository interface {
	// CreateNotifications bulk-inserts notification records.
	CreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// FindUnreadByUser retrieves unread notifications for a recipient,
	// newest first, capped at limit.
	FindUnreadByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Notification, error)

	// MarkRead sets is_read on a notification owned by the recipient.
	// A missing or foreign row returns ErrNotificationNotFound.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}
