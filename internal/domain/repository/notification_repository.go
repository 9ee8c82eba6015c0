package repository

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrNotificationSettingsNotFound is returned when a user never saved notification settings.
var ErrNotificationSettingsNotFound = errors.New("notification settings not found")

// NotificationSettingsRepository persists per-user alert toggles.
type NotificationSettingsRepository interface {
	FindNotificationSettings(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error)
	SaveNotificationSettings(ctx context.Context, settings *entity.NotificationSettings) error
}
