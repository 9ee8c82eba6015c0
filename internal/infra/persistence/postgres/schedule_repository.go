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

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository is the constructor for scheduleRepository.
func NewScheduleRepository(db *gorm.DB) repository.ScheduleRepository {
	return &scheduleRepository{
		db: db,
	}
}

func (repo *scheduleRepository) CreateSchedule(ctx context.Context, schedule *entity.FeedingSchedule) error {
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.Must(uuid.NewV7())
	}
	scheduleM := fromScheduleDomain(schedule)

	if err := repo.db.WithContext(ctx).Create(scheduleM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create schedule")
	}

	schedule.CreatedAt = scheduleM.CreatedAt
	schedule.UpdatedAt = scheduleM.UpdatedAt

	return nil
}

func (repo *scheduleRepository) UpdateSchedule(ctx context.Context, schedule *entity.FeedingSchedule) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FeedingScheduleModel{}).
		Where("id = ?", schedule.ID).
		Updates(map[string]any{
			"pet_id":          schedule.PetID,
			"motor_timing_id": schedule.MotorTimingID,
			"label":           schedule.Label,
			"day_mask":        int16(schedule.Days),
			"utc_seconds":     int(schedule.UTCTime),
			"local_seconds":   int(schedule.LocalTime),
			"active":          schedule.Active,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update schedule")
	}

	if result.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

func (repo *scheduleRepository) DeleteSchedule(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FeedingScheduleModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete schedule")
	}

	if result.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

func (repo *scheduleRepository) DeleteSchedulesByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("device_owner_id = ?", ownerID).
		Delete(&model.FeedingScheduleModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete schedules by owner")
	}

	return nil
}

func (repo *scheduleRepository) FindScheduleByID(ctx context.Context, id uuid.UUID) (*entity.FeedingSchedule, error) {
	var scheduleM model.FeedingScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&scheduleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrScheduleNotFound
		}

		return nil, errors.Wrap(err, "failed to find schedule")
	}

	return toScheduleDomain(&scheduleM), nil
}

func (repo *scheduleRepository) FindSchedulesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.FeedingSchedule, error) {
	var scheduleModels []*model.FeedingScheduleModel

	if err := repo.db.WithContext(ctx).
		Where("device_owner_id = ?", ownerID).
		Order("utc_seconds").
		Find(&scheduleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find schedules by owner")
	}

	schedules := make([]*entity.FeedingSchedule, 0, len(scheduleModels))
	for _, scheduleM := range scheduleModels {
		schedules = append(schedules, toScheduleDomain(scheduleM))
	}

	return schedules, nil
}

type scheduledMealRow struct {
	model.FeedingScheduleModel `gorm:"embedded"`

	PetName          string
	FeedAmountNum    int64
	FeedAmountDen    int64
	MotorDuration    int
	InterrupterCount int
}

// FindActiveMeals reads from a replica when one is configured.
func (repo *scheduleRepository) FindActiveMeals(ctx context.Context, ownerID uuid.UUID) ([]entity.ScheduledMeal, error) {
	var rows []scheduledMealRow

	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Read).
		Table("feeding_schedules AS s").
		Select("s.*, p.name AS pet_name, t.feed_amount_num, t.feed_amount_den, t.motor_duration, t.interrupter_count").
		Joins("JOIN pets p ON p.id = s.pet_id").
		Joins("JOIN motor_timings t ON t.id = s.motor_timing_id").
		Where("s.device_owner_id = ? AND s.active = ?", ownerID, true).
		Order("s.utc_seconds").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active meals")
	}

	meals := make([]entity.ScheduledMeal, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		meals = append(meals, entity.ScheduledMeal{
			Schedule: toScheduleDomain(&row.FeedingScheduleModel),
			PetName:  row.PetName,
			Timing: entity.MotorTiming{
				ID:               row.MotorTimingID,
				FeedAmount:       entity.Portion{Num: row.FeedAmountNum, Den: row.FeedAmountDen},
				MotorDuration:    row.MotorDuration,
				InterrupterCount: row.InterrupterCount,
			},
		})
	}

	return meals, nil
}

// --- Mapper Functions ---

func toScheduleDomain(data *model.FeedingScheduleModel) *entity.FeedingSchedule {
	if data == nil {
		return nil
	}

	return &entity.FeedingSchedule{
		ID:            data.ID,
		DeviceOwnerID: data.DeviceOwnerID,
		PetID:         data.PetID,
		MotorTimingID: data.MotorTimingID,
		Label:         data.Label,
		Days:          entity.DayMask(data.DayMask),
		UTCTime:       entity.TimeOfDay(data.UTCSeconds),
		LocalTime:     entity.TimeOfDay(data.LocalSeconds),
		Active:        data.Active,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromScheduleDomain(data *entity.FeedingSchedule) *model.FeedingScheduleModel {
	if data == nil {
		return nil
	}

	return &model.FeedingScheduleModel{
		ID:            data.ID,
		DeviceOwnerID: data.DeviceOwnerID,
		PetID:         data.PetID,
		MotorTimingID: data.MotorTimingID,
		Label:         data.Label,
		DayMask:       int16(data.Days),
		UTCSeconds:    int(data.UTCTime),
		LocalSeconds:  int(data.LocalTime),
		Active:        data.Active,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
