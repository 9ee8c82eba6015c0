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

type userSettingsRepository struct {
	db *gorm.DB
}

// NewUserSettingsRepository is the constructor for userSettingsRepository.
func NewUserSettingsRepository(db *gorm.DB) repository.UserSettingsRepository {
	return &userSettingsRepository{
		db: db,
	}
}

func (repo *userSettingsRepository) FindUserSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	var settingsM model.UserSettingsModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&settingsM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSettingsNotFound
		}

		return nil, errors.Wrap(err, "failed to find user settings")
	}

	return toUserSettingsDomain(&settingsM), nil
}

func (repo *userSettingsRepository) SaveUserSettings(ctx context.Context, settings *entity.UserSettings) error {
	settingsM := fromUserSettingsDomain(settings)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"record", "updated_at"}),
		}).
		Create(settingsM).Error; err != nil {
		return errors.Wrap(err, "failed to save user settings")
	}
	settings.UpdatedAt = settingsM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

func toUserSettingsDomain(data *model.UserSettingsModel) *entity.UserSettings {
	if data == nil {
		return nil
	}

	record := data.Record.Data()

	return &entity.UserSettings{
		UserID: data.UserID,
		Record: entity.SettingsRecord{
			Version:     record.Version,
			Timezone:    record.Timezone,
			TzPosix:     record.TzPosix,
			IsSetupDone: record.IsSetupDone,
			Clock24h:    record.Clock24h,
		},
		UpdatedAt: data.UpdatedAt,
	}
}

func fromUserSettingsDomain(data *entity.UserSettings) *model.UserSettingsModel {
	if data == nil {
		return nil
	}

	return &model.UserSettingsModel{
		UserID: data.UserID,
		Record: datatypes.NewJSONType(model.UserSettingsRecord{
			Version:     data.Record.Version,
			Timezone:    data.Record.Timezone,
			TzPosix:     data.Record.TzPosix,
			IsSetupDone: data.Record.IsSetupDone,
			Clock24h:    data.Record.Clock24h,
		}),
		UpdatedAt: data.UpdatedAt,
	}
}
