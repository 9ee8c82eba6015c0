package impl

import (
	"context"
	"log/slog"
	"time"

	"petfeeder/config"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// offlineService implements the OfflineUsecase interface.
type offlineService struct {
	statusRepo repository.DeviceStatusRepository
	ownerRepo  repository.DeviceOwnerRepository
	alerts     usecase.AlertUsecase
	threshold  time.Duration
	logger     *slog.Logger
}

// OfflineServiceParams holds dependencies for OfflineService, injected by Fx.
type OfflineServiceParams struct {
	fx.In

	StatusRepo repository.DeviceStatusRepository
	OwnerRepo  repository.DeviceOwnerRepository
	Alerts     usecase.AlertUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOfflineService is the constructor for offlineService.
func NewOfflineService(params OfflineServiceParams) usecase.OfflineUsecase {
	threshold := defaultOfflineThreshold
	if params.Config != nil && params.Config.Feeder != nil && params.Config.Feeder.OfflineThreshold > 0 {
		threshold = params.Config.Feeder.OfflineThreshold
	}

	return &offlineService{
		statusRepo: params.StatusRepo,
		ownerRepo:  params.OwnerRepo,
		alerts:     params.Alerts,
		threshold:  threshold,
		logger:     params.Logger,
	}
}

// Sweep raises the offline alert for every silent device. A failure on one
// device is counted and the sweep moves on.
func (srv *offlineService) Sweep(ctx context.Context, now time.Time) (*usecase.SweepReport, error) {
	statuses, err := srv.statusRepo.FindSilentSince(ctx, now.Add(-srv.threshold))
	if err != nil {
		return nil, errors.Wrap(err, "failed to find silent devices")
	}

	report := &usecase.SweepReport{Silent: len(statuses)}
	for _, status := range statuses {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}

		owner, err := srv.ownerRepo.FindOwnerByDeviceID(ctx, status.DeviceID)
		if errors.Is(err, repository.ErrOwnerNotFound) {
			report.Unowned++

			continue
		}
		if err != nil {
			report.Failures++
			srv.logger.Error("Failed to resolve owner of silent device", slog.Any("deviceID", status.DeviceID), slog.Any("error", err))

			continue
		}

		raised, err := srv.alerts.RaiseOffline(ctx, owner, status, now.Sub(status.LastPing))
		if err != nil {
			report.Failures++
			srv.logger.Error("Failed to raise offline alert", slog.Any("ownerID", owner.ID), slog.Any("error", err))

			continue
		}
		if raised {
			report.Raised++
		}
	}

	level := slog.LevelDebug
	if report.Raised > 0 || report.Failures > 0 {
		level = slog.LevelInfo
	}
	srv.logger.Log(ctx, level, "Offline sweep finished",
		slog.Int("silent", report.Silent),
		slog.Int("raised", report.Raised),
		slog.Int("unowned", report.Unowned),
		slog.Int("failures", report.Failures),
	)

	return report, nil
}
