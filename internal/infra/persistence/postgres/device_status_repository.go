package postgres

import (
	"context"
	"time"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type deviceStatusRepository struct {
	db *gorm.DB
}

// NewDeviceStatusRepository is the constructor for deviceStatusRepository.
func NewDeviceStatusRepository(db *gorm.DB) repository.DeviceStatusRepository {
	return &deviceStatusRepository{
		db: db,
	}
}

func (repo *deviceStatusRepository) FindStatusByDeviceID(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceStatus, error) {
	var statusM model.DeviceStatusModel

	if err := repo.db.WithContext(ctx).
		Where("device_id = ?", deviceID).
		First(&statusM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStatusNotFound
		}

		return nil, errors.Wrap(err, "failed to find device status")
	}

	return toStatusDomain(&statusM), nil
}

// SaveStatus writes every column, inserting when the row does not exist yet.
func (repo *deviceStatusRepository) SaveStatus(ctx context.Context, status *entity.DeviceStatus) error {
	if status.ID == uuid.Nil {
		status.ID = uuid.Must(uuid.NewV7())
	}
	statusM := fromStatusDomain(status)

	if err := repo.db.WithContext(ctx).Save(statusM).Error; err != nil {
		return errors.Wrap(err, "failed to save device status")
	}
	status.UpdatedAt = statusM.UpdatedAt

	return nil
}

func (repo *deviceStatusRepository) SetHasEvent(ctx context.Context, deviceID uuid.UUID, hasEvent bool) error {
	return repo.updateColumns(ctx, deviceID, map[string]any{"has_event": hasEvent}, "update has_event")
}

func (repo *deviceStatusRepository) TouchPing(ctx context.Context, deviceID uuid.UUID, at time.Time) error {
	return repo.updateColumns(ctx, deviceID, map[string]any{"last_ping": at}, "update last_ping")
}

func (repo *deviceStatusRepository) TouchBoot(ctx context.Context, deviceID uuid.UUID, at time.Time) error {
	return repo.updateColumns(ctx, deviceID, map[string]any{"last_boot": at, "last_ping": at}, "update last_boot")
}

// ApplyTelemetry writes the reported columns and last_ping. has_event and
// hopper_level belong to other writers and are never touched here.
func (repo *deviceStatusRepository) ApplyTelemetry(ctx context.Context, deviceID uuid.UUID, update entity.TelemetryUpdate, at time.Time) error {
	columns := map[string]any{"last_ping": at}
	if update.BatterySOC != nil {
		columns["battery_soc"] = *update.BatterySOC
	}
	if update.BatteryVoltage != nil {
		columns["battery_voltage"] = *update.BatteryVoltage
	}
	if update.BatteryCRate != nil {
		columns["battery_crate"] = *update.BatteryCRate
	}
	if update.OnPower != nil {
		columns["on_power"] = *update.OnPower
	}
	if update.ControlBoardRevision != nil {
		columns["control_board_revision"] = *update.ControlBoardRevision
	}
	if update.FirmwareVersion != nil {
		columns["firmware_version"] = *update.FirmwareVersion
	}
	if update.IsHopperLow != nil {
		columns["is_hopper_low"] = *update.IsHopperLow
	}

	return repo.updateColumns(ctx, deviceID, columns, "apply telemetry")
}

func (repo *deviceStatusRepository) updateColumns(ctx context.Context, deviceID uuid.UUID, columns map[string]any, op string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceStatusModel{}).
		Where("device_id = ?", deviceID).
		Updates(columns)
	if result.Error != nil {
		return errors.Wrapf(result.Error, "failed to %s", op)
	}

	if result.RowsAffected == 0 {
		return repository.ErrStatusNotFound
	}

	return nil
}

func (repo *deviceStatusRepository) FindSilentSince(ctx context.Context, cutoff time.Time) ([]*entity.DeviceStatus, error) {
	var statusModels []*model.DeviceStatusModel

	if err := repo.db.WithContext(ctx).
		Where("last_ping < ?", cutoff).
		Order("last_ping").
		Find(&statusModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find silent devices")
	}

	statuses := make([]*entity.DeviceStatus, 0, len(statusModels))
	for _, statusM := range statusModels {
		statuses = append(statuses, toStatusDomain(statusM))
	}

	return statuses, nil
}

// --- Mapper Functions ---

func toStatusDomain(data *model.DeviceStatusModel) *entity.DeviceStatus {
	if data == nil {
		return nil
	}

	return &entity.DeviceStatus{
		ID:                   data.ID,
		DeviceID:             data.DeviceID,
		LastBoot:             data.LastBoot,
		LastPing:             data.LastPing,
		BatteryVoltage:       data.BatteryVoltage,
		BatterySOC:           data.BatterySOC,
		BatteryCRate:         data.BatteryCRate,
		HopperLevel:          data.HopperLevel,
		IsHopperLow:          data.IsHopperLow,
		OnPower:              data.OnPower,
		HasEvent:             data.HasEvent,
		FirmwareVersion:      data.FirmwareVersion,
		ControlBoardRevision: data.ControlBoardRevision,
		UpdatedAt:            data.UpdatedAt,
	}
}

func fromStatusDomain(data *entity.DeviceStatus) *model.DeviceStatusModel {
	if data == nil {
		return nil
	}

	return &model.DeviceStatusModel{
		ID:                   data.ID,
		DeviceID:             data.DeviceID,
		LastBoot:             data.LastBoot,
		LastPing:             data.LastPing,
		BatteryVoltage:       data.BatteryVoltage,
		BatterySOC:           data.BatterySOC,
		BatteryCRate:         data.BatteryCRate,
		HopperLevel:          data.HopperLevel,
		IsHopperLow:          data.IsHopperLow,
		OnPower:              data.OnPower,
		HasEvent:             data.HasEvent,
		FirmwareVersion:      data.FirmwareVersion,
		ControlBoardRevision: data.ControlBoardRevision,
		UpdatedAt:            data.UpdatedAt,
	}
}
