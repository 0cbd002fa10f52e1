package usecase

import (
	"context"

	"repairdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// RegisterDeviceInput carries the fields for registering a push device.
type RegisterDeviceInput struct {
	FCMToken string `json:"fcm_token" validate:"required"`
	DeviceID string `json:"device_id" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase defines the interface for push-device registration use cases.
type DeviceUsecase interface {
	// RegisterDevice registers a device for push delivery, refreshing the FCM
	// token if the device is already known.
	RegisterDevice(ctx context.Context, userID uuid.UUID, input *RegisterDeviceInput) (*entity.UserDevice, error)
}
