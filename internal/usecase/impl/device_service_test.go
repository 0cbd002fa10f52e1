package impl

import (
	"context"
	"log/slog"
	"testing"

	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/repository"
	mockRepo "repairdesk/internal/mocks/repository"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestDeviceService(t *testing.T) (usecase.DeviceUsecase, *mockRepo.MockDeviceRepository) {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	service := NewDeviceService(deviceRepo, slog.New(slog.DiscardHandler))

	return service, deviceRepo
}

func TestDeviceService_RegisterDevice_NewDevice(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterDeviceInput{
		FCMToken: "test-fcm-token",
		DeviceID: "device-123",
		Platform: "ios",
	}

	deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, "device-123").
		Return(nil, repository.ErrDeviceNotFound)

	deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(nil)

	device, err := service.RegisterDevice(ctx, userID, input)
	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, userID, device.UserID)
	assert.Equal(t, "test-fcm-token", device.FCMToken)
	assert.Equal(t, "device-123", device.DeviceID)
	assert.Equal(t, "ios", device.Platform)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_RefreshExisting(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	deviceID := uuid.New()
	existing := &entity.UserDevice{
		ID:       deviceID,
		UserID:   userID,
		FCMToken: "old-token",
		DeviceID: "device-123",
		Platform: "android",
		IsActive: false,
	}

	deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, "device-123").
		Return(existing, nil)

	deviceRepo.EXPECT().
		UpdateFCMToken(ctx, deviceID, "new-token").
		Return(nil)

	device, err := service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		FCMToken: "new-token",
		DeviceID: "device-123",
		Platform: "android",
	})
	require.NoError(t, err)
	assert.Equal(t, "new-token", device.FCMToken)
	assert.True(t, device.IsActive)
}

func TestDeviceService_RegisterDevice_LosesInsertRace(t *testing.T) {
	service, deviceRepo := createTestDeviceService(t)

	ctx := context.Background()
	userID := uuid.New()
	raceWinner := &entity.UserDevice{
		ID:       uuid.New(),
		UserID:   userID,
		FCMToken: "other-token",
		DeviceID: "device-123",
		Platform: "ios",
		IsActive: true,
	}

	// First pass misses the row, then loses the insert race; the retry finds
	// the winner's row and refreshes it.
	deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, "device-123").
		Return(nil, repository.ErrDeviceNotFound).
		Once()

	deviceRepo.EXPECT().
		CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).
		Return(repository.ErrDuplicateDevice).
		Once()

	deviceRepo.EXPECT().
		FindDeviceByUserAndDeviceID(ctx, userID, "device-123").
		Return(raceWinner, nil).
		Once()

	deviceRepo.EXPECT().
		UpdateFCMToken(ctx, raceWinner.ID, "my-token").
		Return(nil).
		Once()

	device, err := service.RegisterDevice(ctx, userID, &usecase.RegisterDeviceInput{
		FCMToken: "my-token",
		DeviceID: "device-123",
		Platform: "ios",
	})
	require.NoError(t, err)
	assert.Equal(t, "my-token", device.FCMToken)
}
