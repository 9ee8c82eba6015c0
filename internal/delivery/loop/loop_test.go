package loop

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoop_RunsUntilStopped(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	var runs atomic.Int32

	d := New(lc, discardLogger(), "test", 5*time.Millisecond, func(context.Context, time.Time) error {
		if runs.Add(1)%2 == 0 {
			return errors.New("flaky")
		}

		return nil
	})

	lc.RequireStart()

	served := make(chan error, 1)
	go func() { served <- d.Serve(context.Background()) }()

	assert.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)

	lc.RequireStop()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after stop")
	}
}

func TestLoop_StopsWithServeContext(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	ctx, cancel := context.WithCancel(context.Background())

	d := New(lc, discardLogger(), "test", time.Hour, func(context.Context, time.Time) error {
		return nil
	})

	served := make(chan error, 1)
	go func() { served <- d.Serve(ctx) }()

	cancel()

	select {
	case err := <-served:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Serve did not return after its context was cancelled")
	}
}

func TestLoop_StopWithoutServe(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	New(lc, discardLogger(), "idle", time.Minute, func(context.Context, time.Time) error {
		return nil
	})

	lc.RequireStart()
	lc.RequireStop()
}

func TestLoop_TaskSeesDeadline(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	seen := make(chan bool, 1)

	d := New(lc, discardLogger(), "deadline", 5*time.Millisecond, func(ctx context.Context, _ time.Time) error {
		_, ok := ctx.Deadline()
		select {
		case seen <- ok:
		default:
		}

		return nil
	})

	go func() { _ = d.Serve(context.Background()) }()

	select {
	case ok := <-seen:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("task never ran")
	}

	lc.RequireStart()
	lc.RequireStop()
}
