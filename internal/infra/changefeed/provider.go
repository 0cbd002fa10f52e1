package changefeed

import (
	"context"
	"log/slog"

	"repairdesk/config"
	"repairdesk/internal/domain/constants"
	"repairdesk/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PublisherParams holds dependencies for ChangeFeedPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Hub    *Hub
	Logger *slog.Logger
}

// NewChangeFeedPublisher creates a ChangeFeedPublisher based on configuration.
// The local provider dispatches inside this process only; the google provider
// additionally tees events through a Pub/Sub topic for the other instances.
func NewChangeFeedPublisher(params PublisherParams) (service.ChangeFeedPublisher, error) {
	cfg := params.Config.ChangeFeed
	logger := params.Logger

	var publisher service.ChangeFeedPublisher
	var err error

	switch {
	case cfg == nil || cfg.Provider == "" || cfg.Provider == constants.ChangeFeedProviderLocal:
		logger.Info("Using local in-process change feed")

		publisher = params.Hub

	case cfg.Provider == constants.ChangeFeedProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub change feed",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePublisher(params.Ctx, params.Hub, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown change feed provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing ChangeFeedPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// NewChangeFeed exposes the hub as the subscription side of the feed.
func NewChangeFeed(hub *Hub) service.ChangeFeed {
	return hub
}

// Module provides the change feed FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewHub),
	fx.Provide(NewChangeFeed),
	fx.Provide(NewChangeFeedPublisher),
)
