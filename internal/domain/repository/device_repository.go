// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device identifier already registered")
)

// DeviceRepository stores factory identities. Ownership lives in
// DeviceOwnerRepository.
type DeviceRepository interface {
	// CreateDevice returns ErrDuplicateDevice when the identifier is taken.
	CreateDevice(ctx context.Context, device *entity.Device) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.Device, error)
	FindDeviceByIdentifier(ctx context.Context, identifier string) (*entity.Device, error)
}
