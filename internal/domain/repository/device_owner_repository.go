package repository

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrOwnerNotFound is returned when no binding matches.
	ErrOwnerNotFound = errors.New("device owner not found")
	// ErrDuplicateOwner is returned when the device is already bound.
	ErrDuplicateOwner = errors.New("device already has an owner")
)

// DeviceOwnerRepository persists device bindings.
type DeviceOwnerRepository interface {
	CreateOwner(ctx context.Context, owner *entity.DeviceOwner) error
	UpdateOwner(ctx context.Context, owner *entity.DeviceOwner) error
	DeleteOwner(ctx context.Context, id uuid.UUID) error

	FindOwnerByID(ctx context.Context, id uuid.UUID) (*entity.DeviceOwner, error)
	FindOwnerByDeviceID(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceOwner, error)

	// FindOwnerByUserAndKey authenticates a device call.
	FindOwnerByUserAndKey(ctx context.Context, userID uuid.UUID, deviceKey string) (*entity.DeviceOwner, error)

	// FindFeedersByUser returns the user's bindings joined with device identity and status.
	FindFeedersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Feeder, error)

	FindOwnersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceOwner, error)
}
