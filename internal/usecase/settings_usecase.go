package usecase

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
)

// SettingsUsecase manages typed user settings and alert preferences.
type SettingsUsecase interface {
	// Get returns the stored record, upgraded to the current version, or a
	// fresh record when the user has none.
	Get(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// Update merges patch and queues a settings sync for every feeder.
	Update(ctx context.Context, userID uuid.UUID, patch entity.SettingsRecord) (*entity.UserSettings, error)

	GetNotificationSettings(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error)
	UpdateNotificationSettings(ctx context.Context, userID uuid.UUID, settings *entity.NotificationSettings) (*entity.NotificationSettings, error)
}
