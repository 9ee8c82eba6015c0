package repository

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrScheduleNotFound is returned when a schedule entry does not exist.
var ErrScheduleNotFound = errors.New("schedule not found")

// ScheduleRepository persists feeding schedule entries.
type ScheduleRepository interface {
	CreateSchedule(ctx context.Context, schedule *entity.FeedingSchedule) error
	UpdateSchedule(ctx context.Context, schedule *entity.FeedingSchedule) error
	DeleteSchedule(ctx context.Context, id uuid.UUID) error
	DeleteSchedulesByOwner(ctx context.Context, ownerID uuid.UUID) error

	FindScheduleByID(ctx context.Context, id uuid.UUID) (*entity.FeedingSchedule, error)
	FindSchedulesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.FeedingSchedule, error)

	// FindActiveMeals returns the owner's active entries joined with pet name
	// and motor timing, ordered by UTC time.
	FindActiveMeals(ctx context.Context, ownerID uuid.UUID) ([]entity.ScheduledMeal, error)
}
