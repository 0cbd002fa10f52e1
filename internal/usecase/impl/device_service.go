package impl

import (
	"context"
	"log/slog"

	"repairdesk/internal/domain/entity"
	"repairdesk/internal/domain/repository"
	"repairdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// deviceService implements the DeviceUsecase interface.
type deviceService struct {
	deviceRepo repository.DeviceRepository
	logger     *slog.Logger
}

// NewDeviceService is the constructor for deviceService.
func NewDeviceService(
	deviceRepo repository.DeviceRepository,
	logger *slog.Logger,
) usecase.DeviceUsecase {
	return &deviceService{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// RegisterDevice registers a device for push delivery. A device the user
// already registered gets its FCM token refreshed and is reactivated.
func (srv *deviceService) RegisterDevice(ctx context.Context, userID uuid.UUID, input *usecase.RegisterDeviceInput) (*entity.UserDevice, error) {
	existing, err := srv.deviceRepo.FindDeviceByUserAndDeviceID(ctx, userID, input.DeviceID)
	if err != nil && !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, errors.Wrap(err, "failed to look up device")
	}

	if existing != nil {
		if err := srv.deviceRepo.UpdateFCMToken(ctx, existing.ID, input.FCMToken); err != nil {
			return nil, errors.Wrap(err, "failed to refresh FCM token")
		}
		existing.FCMToken = input.FCMToken
		existing.IsActive = true

		srv.logger.Debug("Device token refreshed", "user_id", userID, "device_id", input.DeviceID)

		return existing, nil
	}

	device := &entity.UserDevice{
		UserID:   userID,
		FCMToken: input.FCMToken,
		DeviceID: input.DeviceID,
		Platform: input.Platform,
		IsActive: true,
	}

	if err := srv.deviceRepo.CreateDevice(ctx, device); err != nil {
		// A concurrent registration of the same device wins the insert race;
		// fall back to refreshing the row it created.
		if errors.Is(err, repository.ErrDuplicateDevice) {
			return srv.RegisterDevice(ctx, userID, input)
		}

		return nil, errors.Wrap(err, "failed to register device")
	}

	srv.logger.Info("Device registered", "user_id", userID, "platform", input.Platform)

	return device, nil
}
