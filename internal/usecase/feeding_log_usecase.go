package usecase

import (
	"context"
	"time"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedingLogInput is a portion reported by the device.
type FeedingLogInput struct {
	FeedType   entity.FeedType
	PetName    string
	FeedAmount entity.Portion
	FedAt      time.Time // Zero means now.
}

// FeedingLogUsecase stores dispense reports and notifies about them.
type FeedingLogUsecase interface {
	Record(ctx context.Context, owner *entity.DeviceOwner, input *FeedingLogInput) (*entity.FeedingLog, error)
	List(ctx context.Context, userID, ownerID uuid.UUID, limit int) ([]*entity.FeedingLog, error)
}
