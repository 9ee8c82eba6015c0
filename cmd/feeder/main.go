package main

import (
	"context"
	"log/slog"
	"os"
	_ "time/tzdata"

	"petfeeder/config"
	"petfeeder/internal/delivery"
	"petfeeder/internal/delivery/api"
	"petfeeder/internal/delivery/api/middleware"
	"petfeeder/internal/delivery/api/router/handler"
	"petfeeder/internal/delivery/loop"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/infra/auth"
	logs "petfeeder/internal/infra/log"
	"petfeeder/internal/infra/persistence/postgres"
	"petfeeder/internal/infra/pubsub"
	"petfeeder/internal/infra/qrcode"
	"petfeeder/internal/infra/telemetry"
	"petfeeder/internal/usecase/impl"

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewDeviceOwnerRepository,
			postgres.NewDeviceStatusRepository,
			postgres.NewMotorTimingRepository,
			postgres.NewEventRepository,
			postgres.NewScheduleRepository,
			postgres.NewPetRepository,
			postgres.NewFeedingLogRepository,
			postgres.NewUserSettingsRepository,
			postgres.NewNotificationSettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewDeviceKeyGenerator,
			pubsub.NewEventPublisher,
			telemetry.NewRecorder,
			newQRCodeService,
		),
	)
}

// newQRCodeService points activation codes at the configured landing page.
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(cfg.Feeder.ActivationURL, 256, "M")
	}

	return qrcode.NewQRCodeService(cfg.Feeder.ActivationURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewDeviceService,
			impl.NewHeartbeatService,
			impl.NewEventService,
			impl.NewFeederService,
			impl.NewAlertService,
			impl.NewOfflineService,
			impl.NewScheduleService,
			impl.NewPetService,
			impl.NewMealService,
			impl.NewFeedingLogService,
			impl.NewSettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewDeviceHandler,
			handler.NewFeederHandler,
			handler.NewScheduleHandler,
			handler.NewSettingsHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				loop.NewOfflineSweeper,
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
