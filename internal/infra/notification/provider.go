package notification

import (
	"context"
	"log/slog"

	"repairdesk/config"
	"repairdesk/internal/domain/service"

	"go.uber.org/fx"
)

// noopSender is a no-op implementation when Firebase is not configured
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) SendBatchNotification(_ context.Context, tokens []string, _, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping", slog.Int("token_count", len(tokens)))

	return 0, 0, nil, nil
}

func (s *noopSender) SendSingleNotification(_ context.Context, _, _, _ string, _ map[string]string) error {
	return nil
}

// SenderParams holds dependencies for PushSender, injected by Fx
type SenderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushSender creates a PushSender based on configuration. Without Firebase
// credentials push delivery is disabled and in-app notifications stand alone.
func NewPushSender(params SenderParams) (service.PushSender, error) {
	cfg := params.Config.Firebase

	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push delivery disabled")

		return &noopSender{logger: params.Logger}, nil
	}

	params.Logger.Info("Using Firebase Cloud Messaging push sender",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseSender(params.Ctx, cfg.CredentialsPath)
}

// Module provides the push notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushSender),
)
