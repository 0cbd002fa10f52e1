package main

import (
	"context"
	"log/slog"
	"os"

	"repairdesk/config"
	"repairdesk/internal/delivery"
	"repairdesk/internal/delivery/http"
	"repairdesk/internal/delivery/http/middleware"
	"repairdesk/internal/delivery/http/router/handler"
	"repairdesk/internal/delivery/worker"
	workerhandler "repairdesk/internal/delivery/worker/handler"
	"repairdesk/internal/infra/auth"
	"repairdesk/internal/infra/changefeed"
	logs "repairdesk/internal/infra/log"
	"repairdesk/internal/infra/notification"
	"repairdesk/internal/infra/persistence/postgres"
	"repairdesk/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		changefeed.Module,
		notification.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCatalogRepository,
			postgres.NewCatalogAdminRepository,
			postgres.NewCartRepository,
			postgres.NewBookingRepository,
			postgres.NewNotificationRepository,
			postgres.NewProfileRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			impl.NewDisplayResolver,
			impl.NewPushNotifier,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewBookingService,
			impl.NewNotificationService,
			impl.NewAdminService,
			impl.NewDeviceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewBookingHandler,
			handler.NewNotificationHandler,
			handler.NewFeedHandler,
			handler.NewDeviceHandler,
			handler.NewAdminHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
