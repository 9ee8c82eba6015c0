package postgres

import (
	"context"

	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type deviceOwnerRepository struct {
	db *gorm.DB
}

// NewDeviceOwnerRepository is the constructor for deviceOwnerRepository.
func NewDeviceOwnerRepository(db *gorm.DB) repository.DeviceOwnerRepository {
	return &deviceOwnerRepository{
		db: db,
	}
}

// CreateOwner persists a new binding. A second binding for the same device
// fails with ErrDuplicateOwner.
func (repo *deviceOwnerRepository) CreateOwner(ctx context.Context, owner *entity.DeviceOwner) error {
	if owner.ID == uuid.Nil {
		owner.ID = uuid.Must(uuid.NewV7())
	}
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(ownerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOwner
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device owner")
	}

	owner.CreatedAt = ownerM.CreatedAt
	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

func (repo *deviceOwnerRepository) UpdateOwner(ctx context.Context, owner *entity.DeviceOwner) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeviceOwnerModel{}).
		Where("id = ?", owner.ID).
		Updates(map[string]any{
			"name":            owner.Name,
			"device_key":      owner.DeviceKey,
			"motor_timing_id": owner.MotorTimingID,
			"manual_button":   owner.ManualButton,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update device owner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

func (repo *deviceOwnerRepository) DeleteOwner(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.DeviceOwnerModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device owner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

func (repo *deviceOwnerRepository) FindOwnerByID(ctx context.Context, id uuid.UUID) (*entity.DeviceOwner, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *deviceOwnerRepository) FindOwnerByDeviceID(ctx context.Context, deviceID uuid.UUID) (*entity.DeviceOwner, error) {
	return repo.findOne(ctx, "device_id = ?", deviceID)
}

func (repo *deviceOwnerRepository) FindOwnerByUserAndKey(ctx context.Context, userID uuid.UUID, deviceKey string) (*entity.DeviceOwner, error) {
	return repo.findOne(ctx, "user_id = ? AND device_key = ?", userID, deviceKey)
}

func (repo *deviceOwnerRepository) findOne(ctx context.Context, query string, args ...any) (*entity.DeviceOwner, error) {
	var ownerM model.DeviceOwnerModel

	if err := repo.db.WithContext(ctx).
		Where(query, args...).
		First(&ownerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find device owner")
	}

	return toOwnerDomain(&ownerM), nil
}

func (repo *deviceOwnerRepository) FindOwnersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceOwner, error) {
	var ownerModels []*model.DeviceOwnerModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&ownerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find device owners by user")
	}

	owners := make([]*entity.DeviceOwner, 0, len(ownerModels))
	for _, ownerM := range ownerModels {
		owners = append(owners, toOwnerDomain(ownerM))
	}

	return owners, nil
}

// FindFeedersByUser reads from a replica when one is configured.
func (repo *deviceOwnerRepository) FindFeedersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Feeder, error) {
	// Session makes the read clause reusable; a bare chain would carry each
	// query's table and conditions into the next.
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Read).Session(&gorm.Session{})

	var ownerModels []*model.DeviceOwnerModel
	if err := db.Model(&model.DeviceOwnerModel{}).Where("user_id = ?", userID).
		Order("created_at").
		Find(&ownerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find feeders by user")
	}
	if len(ownerModels) == 0 {
		return []*entity.Feeder{}, nil
	}

	deviceIDs := make([]uuid.UUID, 0, len(ownerModels))
	for _, ownerM := range ownerModels {
		deviceIDs = append(deviceIDs, ownerM.DeviceID)
	}

	var deviceModels []*model.DeviceModel
	if err := db.Model(&model.DeviceModel{}).Where("id IN ?", deviceIDs).Find(&deviceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find feeder devices")
	}
	var statusModels []*model.DeviceStatusModel
	if err := db.Model(&model.DeviceStatusModel{}).Where("device_id IN ?", deviceIDs).Find(&statusModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find feeder status")
	}

	identifiers := make(map[uuid.UUID]string, len(deviceModels))
	for _, deviceM := range deviceModels {
		identifiers[deviceM.ID] = deviceM.Identifier
	}
	statuses := make(map[uuid.UUID]*entity.DeviceStatus, len(statusModels))
	for _, statusM := range statusModels {
		statuses[statusM.DeviceID] = toStatusDomain(statusM)
	}

	feeders := make([]*entity.Feeder, 0, len(ownerModels))
	for _, ownerM := range ownerModels {
		feeders = append(feeders, &entity.Feeder{
			Owner:      toOwnerDomain(ownerM),
			Identifier: identifiers[ownerM.DeviceID],
			Status:     statuses[ownerM.DeviceID],
		})
	}

	return feeders, nil
}

// --- Mapper Functions ---

func toOwnerDomain(data *model.DeviceOwnerModel) *entity.DeviceOwner {
	if data == nil {
		return nil
	}

	return &entity.DeviceOwner{
		ID:            data.ID,
		DeviceID:      data.DeviceID,
		UserID:        data.UserID,
		Name:          data.Name,
		DeviceKey:     data.DeviceKey,
		MotorTimingID: data.MotorTimingID,
		ManualButton:  data.ManualButton,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromOwnerDomain(data *entity.DeviceOwner) *model.DeviceOwnerModel {
	if data == nil {
		return nil
	}

	return &model.DeviceOwnerModel{
		ID:            data.ID,
		DeviceID:      data.DeviceID,
		UserID:        data.UserID,
		Name:          data.Name,
		DeviceKey:     data.DeviceKey,
		MotorTimingID: data.MotorTimingID,
		ManualButton:  data.ManualButton,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
