package postgres

import (
	"context"
	"encoding/json"
	"time"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{
		db: db,
	}
}

// GetOrCreatePending relies on the partial unique index over pending rows:
// a concurrent insert for the same owner and code becomes a no-op and the
// existing row is returned instead.
func (repo *eventRepository) GetOrCreatePending(ctx context.Context, entry *entity.EventQueueEntry) (*entity.EventQueueEntry, bool, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.Must(uuid.NewV7())
	}
	entry.Status = entity.EventStatusPending
	eventM := fromEventDomain(entry)

	db := repo.db.WithContext(ctx)
	result := db.Clauses(clause.OnConflict{DoNothing: true}).Create(eventM)
	if result.Error != nil {
		return nil, false, errors.Wrap(result.Error, "failed to insert event")
	}
	created := result.RowsAffected > 0

	var current model.EventQueueModel
	if err := db.Where("device_owner_id = ? AND event_code = ? AND status = ?",
		entry.DeviceOwnerID, int(entry.Code), string(entity.EventStatusPending)).
		Order("created_at").
		First(&current).Error; err != nil {
		return nil, false, errors.Wrap(err, "failed to load pending event")
	}

	return toEventDomain(&current), created, nil
}

func (repo *eventRepository) RefreshPayload(ctx context.Context, id uuid.UUID, payload json.RawMessage, at time.Time) error {
	err := repo.db.WithContext(ctx).
		Model(&model.EventQueueModel{}).
		Where("id = ? AND status = ?", id, string(entity.EventStatusPending)).
		Updates(map[string]any{
			"payload":    datatypes.JSON(payload),
			"updated_at": at,
		}).Error

	return errors.Wrap(err, "failed to refresh event payload")
}

func (repo *eventRepository) FindEventForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.EventQueueEntry, error) {
	var eventM model.EventQueueModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND device_owner_id = ?", id, ownerID).
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return toEventDomain(&eventM), nil
}

// MarkCompleted only touches rows that are still pending.
func (repo *eventRepository) MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.EventQueueModel{}).
		Where("id = ? AND status = ?", id, string(entity.EventStatusPending)).
		Updates(map[string]any{
			"status":     string(entity.EventStatusCompleted),
			"updated_at": at,
		})
	if result.Error != nil {
		return false, errors.Wrap(result.Error, "failed to complete event")
	}

	return result.RowsAffected > 0, nil
}

func (repo *eventRepository) FindOldestPending(ctx context.Context, ownerID uuid.UUID) (*entity.EventQueueEntry, error) {
	var eventM model.EventQueueModel

	if err := repo.db.WithContext(ctx).
		Where("device_owner_id = ? AND status = ?", ownerID, string(entity.EventStatusPending)).
		Order("created_at").
		Order("id").
		First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find oldest pending event")
	}

	return toEventDomain(&eventM), nil
}

func (repo *eventRepository) CountPending(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.EventQueueModel{}).
		Where("device_owner_id = ? AND status = ?", ownerID, string(entity.EventStatusPending)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count pending events")
	}

	return count, nil
}

func (repo *eventRepository) DeleteEventsByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("device_owner_id = ?", ownerID).
		Delete(&model.EventQueueModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete events by owner")
	}

	return nil
}

// --- Mapper Functions ---

func toEventDomain(data *model.EventQueueModel) *entity.EventQueueEntry {
	if data == nil {
		return nil
	}

	var payload json.RawMessage
	if len(data.Payload) > 0 {
		payload = json.RawMessage(data.Payload)
	}

	return &entity.EventQueueEntry{
		ID:            data.ID,
		DeviceOwnerID: data.DeviceOwnerID,
		Code:          entity.EventCode(data.EventCode),
		Payload:       payload,
		Status:        entity.EventStatus(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromEventDomain(data *entity.EventQueueEntry) *model.EventQueueModel {
	if data == nil {
		return nil
	}

	var payload datatypes.JSON
	if len(data.Payload) > 0 {
		payload = datatypes.JSON(data.Payload)
	}

	return &model.EventQueueModel{
		ID:            data.ID,
		DeviceOwnerID: data.DeviceOwnerID,
		EventCode:     int(data.Code),
		Payload:       payload,
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
