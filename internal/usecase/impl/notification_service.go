package impl

import (
	"context"
	"log/slog"

	"repairdesk/config"
	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/repository"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// defaultUnreadLimit caps the unread view when configuration is absent.
const defaultUnreadLimit = 5

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	unreadLimit      int
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	limit := defaultUnreadLimit
	if cfg.Notifications != nil && cfg.Notifications.UnreadLimit > 0 {
		limit = cfg.Notifications.UnreadLimit
	}

	return &notificationService{
		notificationRepo: notificationRepo,
		unreadLimit:      limit,
		logger:           logger,
	}
}

// ListUnread retrieves the recipient's unread notifications, newest first,
// capped at the configured limit.
func (srv *notificationService) ListUnread(ctx context.Context, userID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindUnreadByUser(ctx, userID, srv.unreadLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list unread notifications")
	}

	return notifications, nil
}

// Dismiss marks a notification read. The row is retained for history. An
// already dismissed or missing notification is treated as a no-op.
func (srv *notificationService) Dismiss(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.MarkRead(ctx, userID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to dismiss notification")
	}

	srv.logger.Debug("Notification dismissed",
		"user_id", userID,
		"notification_id", notificationID,
	)

	return nil
}
