package usecase

import (
	"context"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/schedule"

	"github.com/google/uuid"
)

// MealUsecase answers "when is the next meal". An empty tz falls back to the
// user's settings, then to the configured default.
type MealUsecase interface {
	NextFeeding(ctx context.Context, userID, ownerID uuid.UUID, tz string) (*schedule.NextMeal, error)
	NextFeedings(ctx context.Context, userID uuid.UUID, tz string) ([]*schedule.NextMeal, error)
	NextFeedingForDevice(ctx context.Context, owner *entity.DeviceOwner, tz string) (*schedule.NextMeal, error)
}
