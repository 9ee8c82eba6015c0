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
)

type feedingLogRepository struct {
	db *gorm.DB
}

// NewFeedingLogRepository is the constructor for feedingLogRepository.
func NewFeedingLogRepository(db *gorm.DB) repository.FeedingLogRepository {
	return &feedingLogRepository{
		db: db,
	}
}

func (repo *feedingLogRepository) CreateFeedingLog(ctx context.Context, log *entity.FeedingLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.Must(uuid.NewV7())
	}
	logM := fromFeedingLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create feeding log")
	}
	log.CreatedAt = logM.CreatedAt

	return nil
}

func (repo *feedingLogRepository) FindFeedingLogs(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.FeedingLog, error) {
	var logModels []*model.FeedingLogModel

	if err := repo.db.WithContext(ctx).
		Where("device_owner_id = ?", ownerID).
		Order("fed_at DESC").
		Limit(limit).
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find feeding logs")
	}

	logs := make([]*entity.FeedingLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toFeedingLogDomain(logM))
	}

	return logs, nil
}

func (repo *feedingLogRepository) DeleteFeedingLogsByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("device_owner_id = ?", ownerID).
		Delete(&model.FeedingLogModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete feeding logs")
	}

	return nil
}

// --- Mapper Functions ---

func toFeedingLogDomain(data *model.FeedingLogModel) *entity.FeedingLog {
	if data == nil {
		return nil
	}

	return &entity.FeedingLog{
		ID:            data.ID,
		DeviceOwnerID: data.DeviceOwnerID,
		PetName:       data.PetName,
		FeedType:      entity.FeedType(data.FeedType),
		FeedAmount:    entity.Portion{Num: data.FeedAmountNum, Den: data.FeedAmountDen},
		FedAt:         data.FedAt,
		CreatedAt:     data.CreatedAt,
	}
}

func fromFeedingLogDomain(data *entity.FeedingLog) *model.FeedingLogModel {
	if data == nil {
		return nil
	}

	return &model.FeedingLogModel{
		ID:            data.ID,
		DeviceOwnerID: data.DeviceOwnerID,
		PetName:       data.PetName,
		FeedType:      string(data.FeedType),
		FeedAmountNum: data.FeedAmount.Num,
		FeedAmountDen: data.FeedAmount.Den,
		FedAt:         data.FedAt,
		CreatedAt:     data.CreatedAt,
	}
}
