package repository

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSettingsNotFound is returned when a user has no settings record.
var ErrSettingsNotFound = errors.New("user settings not found")

// UserSettingsRepository persists the typed per-user settings record.
type UserSettingsRepository interface {
	FindUserSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)
	SaveUserSettings(ctx context.Context, settings *entity.UserSettings) error
}
