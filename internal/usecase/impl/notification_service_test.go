package impl

import (
	"context"
	"log/slog"
	"testing"

	"repairdesk/config"
	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/repository"
	mockRepo "repairdesk/internal/mocks/repository"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestNotificationService(t *testing.T, cfg *config.Config) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	if cfg == nil {
		cfg = &config.Config{}
	}
	service := NewNotificationService(notificationRepo, cfg, slog.New(slog.DiscardHandler))

	return service, notificationRepo
}

func TestNotificationService_ListUnread_DefaultLimit(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().
		FindUnreadByUser(ctx, userID, 5).
		Return([]*entity.Notification{
			{ID: uuid.New(), UserID: userID, Title: "New Booking"},
		}, nil)

	notifications, err := service.ListUnread(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestNotificationService_ListUnread_ConfiguredLimit(t *testing.T) {
	cfg := &config.Config{Notifications: &config.NotificationsConfig{UnreadLimit: 10}}
	service, notificationRepo := createTestNotificationService(t, cfg)

	ctx := context.Background()
	userID := uuid.New()

	notificationRepo.EXPECT().
		FindUnreadByUser(ctx, userID, 10).
		Return(nil, nil)

	_, err := service.ListUnread(ctx, userID)
	require.NoError(t, err)
}

func TestNotificationService_Dismiss_Success(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		MarkRead(ctx, userID, notificationID).
		Return(nil)

	err := service.Dismiss(ctx, userID, notificationID)
	require.NoError(t, err)
}

func TestNotificationService_Dismiss_MissingRowIsNoOp(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		MarkRead(ctx, userID, notificationID).
		Return(repository.ErrNotificationNotFound)

	err := service.Dismiss(ctx, userID, notificationID)
	require.NoError(t, err)
}

func TestNotificationService_Dismiss_StorageFailure(t *testing.T) {
	service, notificationRepo := createTestNotificationService(t, nil)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	notificationRepo.EXPECT().
		MarkRead(ctx, userID, notificationID).
		Return(errors.New("connection reset"))

	err := service.Dismiss(ctx, userID, notificationID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to dismiss notification")
}
