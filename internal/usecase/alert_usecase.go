package usecase

import (
	"context"
	"time"

	"petfeeder/internal/domain/entity"
)

// AlertUsecase is the edge-triggered notification engine.
type AlertUsecase interface {
	// EvaluateHeartbeat runs every heartbeat driven alert kind for owner.
	EvaluateHeartbeat(ctx context.Context, owner *entity.DeviceOwner, status *entity.DeviceStatus) error

	// RaiseOffline reports a silent device. It never clears the alert, and
	// re-reads last_ping under the tracking lock so a ping newer than
	// status.LastPing cancels the raise.
	RaiseOffline(ctx context.Context, owner *entity.DeviceOwner, status *entity.DeviceStatus, silentFor time.Duration) (bool, error)
}

// OfflineUsecase sweeps for devices that stopped sending heartbeats.
type OfflineUsecase interface {
	Sweep(ctx context.Context, now time.Time) (*SweepReport, error)
}

// SweepReport summarises one sweep.
type SweepReport struct {
	Silent   int // Status rows past the threshold.
	Raised   int // Offline alerts newly raised.
	Unowned  int // Silent devices without a binding.
	Failures int
}
