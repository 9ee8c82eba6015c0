// Package loop runs use cases on a fixed interval as fx managed deliveries.
package loop

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"petfeeder/internal/delivery"
	"petfeeder/internal/domain/lifecycle"

	"go.uber.org/fx"
)

// Task is one iteration. Errors are logged and the loop carries on.
type Task func(ctx context.Context, now time.Time) error

type ticker struct {
	name     string
	interval time.Duration
	task     Task
	logger   *slog.Logger
	now      func() time.Time

	ctx     context.Context
	cancel  context.CancelFunc
	started atomic.Bool
	done    chan struct{}
}

// New returns a Delivery that runs task every interval until the fx app stops.
func New(lc fx.Lifecycle, logger *slog.Logger, name string, interval time.Duration, task Task) delivery.Delivery {
	ctx, cancel := context.WithCancel(context.Background())
	t := &ticker{
		name:     name,
		interval: interval,
		task:     task,
		logger:   logger.With(slog.String("loop", name)),
		now:      time.Now,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}

	lc.Append(fx.Hook{OnStop: t.stop})

	return t
}

// Serve blocks until ctx is cancelled or the app stops.
func (t *ticker) Serve(ctx context.Context) error {
	if !t.started.CompareAndSwap(false, true) {
		return nil
	}
	defer close(t.done)

	stopParent := context.AfterFunc(ctx, t.cancel)
	defer stopParent()

	t.logger.Info("Starting loop", slog.Duration("interval", t.interval))

	tick := time.NewTicker(t.interval)
	defer tick.Stop()

	for {
		select {
		case <-t.ctx.Done():
			return nil
		case <-tick.C:
			t.runOnce()
		}
	}
}

func (t *ticker) runOnce() {
	ctx, cancel := context.WithTimeout(t.ctx, t.interval)
	defer cancel()

	start := t.now()
	if err := t.task(ctx, start); err != nil {
		t.logger.Error("Loop iteration failed", slog.Any("error", err), slog.Duration("elapsed", time.Since(start)))
	}
}

func (t *ticker) stop(ctx context.Context) error {
	t.cancel()
	if !t.started.Load() {
		return nil
	}

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-t.done:
		t.logger.Info("Loop stopped")
	case <-waitCtx.Done():
		t.logger.Warn("Loop did not stop in time")
	}

	return nil
}
