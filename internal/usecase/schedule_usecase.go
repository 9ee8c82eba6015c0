package usecase

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
)

// ScheduleInput describes a weekly meal. Time is UTC, HH:MM or HH:MM:SS.
type ScheduleInput struct {
	PetID         uuid.UUID
	MotorTimingID uuid.UUID
	Label         string
	Days          entity.DayMask
	Time          string
	Active        bool
}

// ScheduleUsecase manages feeding schedules; every write queues a schedule sync.
type ScheduleUsecase interface {
	List(ctx context.Context, userID, ownerID uuid.UUID) ([]*entity.FeedingSchedule, error)
	Create(ctx context.Context, userID, ownerID uuid.UUID, input *ScheduleInput) (*entity.FeedingSchedule, error)
	Update(ctx context.Context, userID, ownerID, scheduleID uuid.UUID, input *ScheduleInput) (*entity.FeedingSchedule, error)
	Delete(ctx context.Context, userID, ownerID, scheduleID uuid.UUID) error
}

// PetUsecase keeps the minimal pet records schedules refer to.
type PetUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, name string) (*entity.Pet, error)
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Pet, error)
}
