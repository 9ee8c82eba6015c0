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

type motorTimingRepository struct {
	db *gorm.DB
}

// NewMotorTimingRepository is the constructor for motorTimingRepository.
func NewMotorTimingRepository(db *gorm.DB) repository.MotorTimingRepository {
	return &motorTimingRepository{
		db: db,
	}
}

func (repo *motorTimingRepository) CreateMotorTiming(ctx context.Context, timing *entity.MotorTiming) error {
	if timing.ID == uuid.Nil {
		timing.ID = uuid.Must(uuid.NewV7())
	}

	if err := repo.db.WithContext(ctx).Create(fromMotorTimingDomain(timing)).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create motor timing")
	}

	return nil
}

func (repo *motorTimingRepository) FindMotorTimingByID(ctx context.Context, id uuid.UUID) (*entity.MotorTiming, error) {
	var timingM model.MotorTimingModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&timingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMotorTimingNotFound
		}

		return nil, errors.Wrap(err, "failed to find motor timing")
	}

	return toMotorTimingDomain(&timingM), nil
}

// ListMotorTimings returns every portion size, smallest first.
func (repo *motorTimingRepository) ListMotorTimings(ctx context.Context) ([]*entity.MotorTiming, error) {
	var timingModels []*model.MotorTimingModel

	if err := repo.db.WithContext(ctx).
		Order("CAST(feed_amount_num AS REAL) / feed_amount_den").
		Find(&timingModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list motor timings")
	}

	timings := make([]*entity.MotorTiming, 0, len(timingModels))
	for _, timingM := range timingModels {
		timings = append(timings, toMotorTimingDomain(timingM))
	}

	return timings, nil
}

// --- Mapper Functions ---

func toMotorTimingDomain(data *model.MotorTimingModel) *entity.MotorTiming {
	if data == nil {
		return nil
	}

	return &entity.MotorTiming{
		ID:               data.ID,
		FeedAmount:       entity.Portion{Num: data.FeedAmountNum, Den: data.FeedAmountDen},
		MotorDuration:    data.MotorDuration,
		InterrupterCount: data.InterrupterCount,
	}
}

func fromMotorTimingDomain(data *entity.MotorTiming) *model.MotorTimingModel {
	if data == nil {
		return nil
	}

	return &model.MotorTimingModel{
		ID:               data.ID,
		FeedAmountNum:    data.FeedAmount.Num,
		FeedAmountDen:    data.FeedAmount.Den,
		MotorDuration:    data.MotorDuration,
		InterrupterCount: data.InterrupterCount,
	}
}
