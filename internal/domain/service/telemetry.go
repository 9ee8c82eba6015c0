package service

import (
	"context"

	"petfeeder/internal/domain/entity"
)

// TelemetryRecorder keeps heartbeat history outside the relational store.
// Record must not block on the backend.
type TelemetryRecorder interface {
	Record(ctx context.Context, owner *entity.DeviceOwner, status *entity.DeviceStatus)
	Close()
}
