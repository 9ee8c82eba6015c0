package main

import (
	"context"
	"log/slog"

	"petfeeder/config"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/infra/auth"
	logs "petfeeder/internal/infra/log"
	"petfeeder/internal/infra/persistence/postgres"
	"petfeeder/internal/infra/qrcode"
	"petfeeder/internal/usecase"
	"petfeeder/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// deps is what the subcommands work with once the graph is started.
type deps struct {
	db       *gorm.DB
	logger   *slog.Logger
	deviceUC usecase.DeviceUsecase
	feederUC usecase.FeederUsecase
}

// withApp starts a minimal fx graph, runs fn and stops the graph again.
func withApp(ctx context.Context, fn func(ctx context.Context, d *deps) error) error {
	var d deps

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewDeviceOwnerRepository,
			postgres.NewDeviceStatusRepository,
			postgres.NewMotorTimingRepository,
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewDeviceKeyGenerator,
			newQRCodeService,
			impl.NewDeviceService,
			impl.NewFeederService,
		),
		fx.Populate(&d.db, &d.logger, &d.deviceUC, &d.feederUC),
	)

	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start")
	}
	defer func() {
		if err := app.Stop(context.WithoutCancel(ctx)); err != nil {
			slog.Error("Failed to stop", slog.Any("error", err))
		}
	}()

	return fn(ctx, &d)
}

func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(cfg.Feeder.ActivationURL, 0, "M")
	}

	return qrcode.NewQRCodeService(cfg.Feeder.ActivationURL, cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}
