package repository

import (
	"context"
	"time"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrStatusNotFound is returned when a device has no status row yet.
var ErrStatusNotFound = errors.New("device status not found")

// DeviceStatusRepository persists the latest health of each device.
type DeviceStatusRepository interface {
	FindStatusByDeviceID(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceStatus, error)

	// SaveStatus inserts or fully replaces the row of status.DeviceID. Use it
	// to create the row; concurrent writers go through the column updates.
	SaveStatus(ctx context.Context, status *entity.DeviceStatus) error

	// ApplyTelemetry writes the present fields of update and last_ping.
	ApplyTelemetry(ctx context.Context, deviceID uuid.UUID, update entity.TelemetryUpdate, at time.Time) error

	// TouchBoot sets last_boot and last_ping.
	TouchBoot(ctx context.Context, deviceID uuid.UUID, at time.Time) error

	// SetHasEvent, TouchPing, ApplyTelemetry and TouchBoot return
	// ErrStatusNotFound when the device has no row.
	SetHasEvent(ctx context.Context, deviceID uuid.UUID, hasEvent bool) error

	// TouchPing sets last_ping without touching telemetry.
	TouchPing(ctx context.Context, deviceID uuid.UUID, at time.Time) error

	// FindSilentSince returns every status whose last_ping is before cutoff.
	FindSilentSince(ctx context.Context, cutoff time.Time) ([]*entity.DeviceStatus, error)
}
