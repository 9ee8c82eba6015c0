package postgres

import (
	"context"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type notificationSettingsRepository struct {
	db *gorm.DB
}

// NewNotificationSettingsRepository is the constructor for notificationSettingsRepository.
func NewNotificationSettingsRepository(db *gorm.DB) repository.NotificationSettingsRepository {
	return &notificationSettingsRepository{
		db: db,
	}
}

func (repo *notificationSettingsRepository) FindNotificationSettings(ctx context.Context, userID uuid.UUID) (*entity.NotificationSettings, error) {
	var settingsM model.NotificationSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification settings")
	}

	return toNotificationSettingsDomain(&settingsM), nil
}

// SaveNotificationSettings upserts on user_id.
func (repo *notificationSettingsRepository) SaveNotificationSettings(ctx context.Context, settings *entity.NotificationSettings) error {
	settingsM := fromNotificationSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"pushover_user_key", "pushover_devices", "push_tokens",
				"auto_food", "manual_food", "feeder_offline",
				"low_hopper", "power_disconnected", "low_battery", "updated_at",
			}),
		}).
		Create(settingsM).Error; err != nil {
		return errors.Wrap(err, "failed to save notification settings")
	}
	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toNotificationSettingsDomain(data *model.NotificationSettingsModel) *entity.NotificationSettings {
	if data == nil {
		return nil
	}

	return &entity.NotificationSettings{
		UserID:            data.UserID,
		PushoverUserKey:   data.PushoverUserKey,
		PushoverDevices:   []string(data.PushoverDevices),
		PushTokens:        []string(data.PushTokens),
		AutoFood:          data.AutoFood,
		ManualFood:        data.ManualFood,
		FeederOffline:     data.FeederOffline,
		LowHopper:         data.LowHopper,
		PowerDisconnected: data.PowerDisconnected,
		LowBattery:        data.LowBattery,
		UpdatedAt:         data.UpdatedAt,
	}
}

func fromNotificationSettingsDomain(data *entity.NotificationSettings) *model.NotificationSettingsModel {
	if data == nil {
		return nil
	}

	return &model.NotificationSettingsModel{
		UserID:            data.UserID,
		PushoverUserKey:   data.PushoverUserKey,
		PushoverDevices:   datatypes.JSONSlice[string](nonNil(data.PushoverDevices)),
		PushTokens:        datatypes.JSONSlice[string](nonNil(data.PushTokens)),
		AutoFood:          data.AutoFood,
		ManualFood:        data.ManualFood,
		FeederOffline:     data.FeederOffline,
		LowHopper:         data.LowHopper,
		PowerDisconnected: data.PowerDisconnected,
		LowBattery:        data.LowBattery,
		UpdatedAt:         data.UpdatedAt,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
