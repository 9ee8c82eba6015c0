package postgres

import (
	"context"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type alertTrackingRepository struct {
	db *gorm.DB
}

// NewAlertTrackingRepository is the constructor for alertTrackingRepository.
func NewAlertTrackingRepository(db *gorm.DB) repository.AlertTrackingRepository {
	return &alertTrackingRepository{
		db: db,
	}
}

// LockTracking must run inside a transaction. The insert is a no-op when
// the row exists, so concurrent callers converge on the same row and then
// queue on its lock.
func (repo *alertTrackingRepository) LockTracking(ctx context.Context, ownerID uuid.UUID) (*entity.AlertTracking, error) {
	db := repo.db.WithContext(ctx)

	seed := &model.AlertTrackingModel{
		ID:            uuid.Must(uuid.NewV7()),
		DeviceOwnerID: ownerID,
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(seed).Error; err != nil {
		return nil, errors.Wrap(err, "failed to seed alert tracking")
	}

	var trackingM model.AlertTrackingModel
	if err := db.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("device_owner_id = ?", ownerID).
		First(&trackingM).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock alert tracking")
	}

	return toTrackingDomain(&trackingM), nil
}

func (repo *alertTrackingRepository) SaveTracking(ctx context.Context, tracking *entity.AlertTracking) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertTrackingModel{}).
		Where("device_owner_id = ?", tracking.DeviceOwnerID).
		Updates(map[string]any{
			"offline_alert":            tracking.Offline,
			"power_disconnected_alert": tracking.PowerDisconnected,
			"low_battery_alert":        tracking.LowBattery,
			"low_hopper_alert":         tracking.LowHopper,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to save alert tracking")
	}

	if result.RowsAffected == 0 {
		return errors.Errorf("alert tracking for owner %s vanished", tracking.DeviceOwnerID)
	}

	return nil
}

func (repo *alertTrackingRepository) DeleteTrackingByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("device_owner_id = ?", ownerID).
		Delete(&model.AlertTrackingModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete alert tracking")
	}

	return nil
}

// --- Mapper Functions ---

func toTrackingDomain(data *model.AlertTrackingModel) *entity.AlertTracking {
	if data == nil {
		return nil
	}

	return &entity.AlertTracking{
		ID:                data.ID,
		DeviceOwnerID:     data.DeviceOwnerID,
		Offline:           data.OfflineAlert,
		PowerDisconnected: data.PowerDisconnectedAlert,
		LowBattery:        data.LowBatteryAlert,
		LowHopper:         data.LowHopperAlert,
		UpdatedAt:         data.UpdatedAt,
	}
}
