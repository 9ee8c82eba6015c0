package loop

import (
	"context"
	"log/slog"
	"time"

	"petfeeder/config"
	"petfeeder/internal/delivery"
	"petfeeder/internal/usecase"

	"go.uber.org/fx"
)

// OfflineSweeperParams holds dependencies for the offline sweeper, injected by Fx.
type OfflineSweeperParams struct {
	fx.In

	Lc        fx.Lifecycle
	Cfg       *config.Config
	Logger    *slog.Logger
	OfflineUC usecase.OfflineUsecase
}

// NewOfflineSweeper raises offline alerts for silent feeders every
// feeder.sweepInterval.
func NewOfflineSweeper(params OfflineSweeperParams) delivery.Delivery {
	return New(params.Lc, params.Logger, "offline-sweeper", params.Cfg.Feeder.SweepInterval,
		func(ctx context.Context, now time.Time) error {
			_, err := params.OfflineUC.Sweep(ctx, now)

			return err
		})
}

// DispatchPollerParams holds dependencies for the dispatch poller, injected by Fx.
type DispatchPollerParams struct {
	fx.In

	Lc         fx.Lifecycle
	Cfg        *config.Config
	Logger     *slog.Logger
	DispatchUC usecase.DispatchUsecase
}

// NewDispatchPoller drains pending messages every worker.pollInterval, so
// nothing is stranded when a push wakeup is lost.
func NewDispatchPoller(params DispatchPollerParams) delivery.Delivery {
	batchSize := params.Cfg.Worker.BatchSize

	return New(params.Lc, params.Logger, "dispatch-poller", params.Cfg.Worker.PollInterval,
		func(ctx context.Context, _ time.Time) error {
			_, err := params.DispatchUC.DispatchPending(ctx, batchSize)

			return err
		})
}
