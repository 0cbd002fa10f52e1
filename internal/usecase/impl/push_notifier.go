package impl

import (
	"context"
	"log/slog"

	"repairdesk/internal/domain/repository"
	"repairdesk/internal/domain/service"

	"github.com/google/uuid"
)

const (
	// Firebase batch size limit
	firebaseBatchSize = 500
)

// PushNotifier mirrors in-app notification records out to registered devices.
// Delivery is best-effort: failures are logged and never surface to the
// operation that produced the notification.
type PushNotifier struct {
	deviceRepo repository.DeviceRepository
	pushSender service.PushSender
	logger     *slog.Logger
}

// NewPushNotifier is the constructor for PushNotifier.
func NewPushNotifier(
	deviceRepo repository.DeviceRepository,
	pushSender service.PushSender,
	logger *slog.Logger,
) *PushNotifier {
	return &PushNotifier{
		deviceRepo: deviceRepo,
		pushSender: pushSender,
		logger:     logger,
	}
}

// NotifyUsers pushes the given message to every active device of the given
// users. Tokens FCM reports as gone are deactivated so they stop accumulating.
func (n *PushNotifier) NotifyUsers(ctx context.Context, userIDs []uuid.UUID, title, body string, data map[string]string) {
	if len(userIDs) == 0 {
		return
	}

	devices, err := n.deviceRepo.FindActiveDevicesByUsers(ctx, userIDs)
	if err != nil {
		n.logger.Warn("Failed to fetch devices for push delivery", "error", err)

		return
	}
	if len(devices) == 0 {
		return
	}

	tokens := make([]string, 0, len(devices))
	tokenDevice := make(map[string]uuid.UUID, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
		tokenDevice[device.FCMToken] = device.ID
	}

	for start := 0; start < len(tokens); start += firebaseBatchSize {
		end := min(start+firebaseBatchSize, len(tokens))
		batch := tokens[start:end]

		successCount, failureCount, invalidTokens, err := n.pushSender.SendBatchNotification(ctx, batch, title, body, data)
		if err != nil {
			n.logger.Warn("Push batch failed", "error", err, "batch_size", len(batch))

			continue
		}

		n.logger.Debug("Push batch sent",
			slog.Int("success", successCount),
			slog.Int("failure", failureCount),
			slog.Int("invalid_tokens", len(invalidTokens)),
		)

		for _, token := range invalidTokens {
			deviceID, ok := tokenDevice[token]
			if !ok {
				continue
			}
			if err := n.deviceRepo.DeleteDevice(ctx, deviceID); err != nil {
				n.logger.Warn("Failed to deactivate stale device", "device_id", deviceID, "error", err)
			}
		}
	}
}
