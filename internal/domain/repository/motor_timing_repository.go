package repository

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMotorTimingNotFound is returned when a portion size is unknown.
var ErrMotorTimingNotFound = errors.New("motor timing not found")

// MotorTimingRepository persists the portion to motor calibration table.
type MotorTimingRepository interface {
	CreateMotorTiming(ctx context.Context, timing *entity.MotorTiming) error
	FindMotorTimingByID(ctx context.Context, id uuid.UUID) (*entity.MotorTiming, error)
	ListMotorTimings(ctx context.Context) ([]*entity.MotorTiming, error)
}
