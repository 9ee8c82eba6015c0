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
	"gorm.io/gorm/clause"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

func (repo *messageRepository) CreateMessage(ctx context.Context, message *entity.MessageQueueEntry) error {
	if message.ID == uuid.Nil {
		message.ID = uuid.Must(uuid.NewV7())
	}
	if message.Status == "" {
		message.Status = entity.MessageStatusPending
	}
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to queue message")
	}

	message.CreatedAt = messageM.CreatedAt
	message.UpdatedAt = messageM.UpdatedAt

	return nil
}

func (repo *messageRepository) FindPendingMessageIDs(ctx context.Context, limit int) ([]uuid.UUID, error) {
	var ids []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.MessageQueueModel{}).
		Where("status = ?", string(entity.MessageStatusPending)).
		Order("created_at").
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find pending messages")
	}

	return ids, nil
}

// LockPendingMessage must run inside a transaction for the lock to hold.
func (repo *messageRepository) LockPendingMessage(ctx context.Context, id uuid.UUID) (*entity.MessageQueueEntry, error) {
	var messageM model.MessageQueueModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Options: clause.LockingOptionsSkipLocked}).
		Where("id = ? AND status = ?", id, string(entity.MessageStatusPending)).
		First(&messageM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to lock message")
	}

	return toMessageDomain(&messageM), nil
}

func (repo *messageRepository) UpdateMessageStatus(ctx context.Context, id uuid.UUID, status entity.MessageStatus, errText string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MessageQueueModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": string(status),
			"error":  errText,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update message status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMessageNotFound
	}

	return nil
}

func (repo *messageRepository) DetachOwner(ctx context.Context, ownerID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.MessageQueueModel{}).
		Where("device_owner_id = ?", ownerID).
		Update("device_owner_id", nil).Error; err != nil {
		return errors.Wrap(err, "failed to detach messages from owner")
	}

	return nil
}

// --- Mapper Functions ---

func toMessageDomain(data *model.MessageQueueModel) *entity.MessageQueueEntry {
	if data == nil {
		return nil
	}

	return &entity.MessageQueueEntry{
		ID:            data.ID,
		UserID:        data.UserID,
		DeviceOwnerID: data.DeviceOwnerID,
		Title:         data.Title,
		Message:       data.Message,
		Priority:      data.Priority,
		Status:        entity.MessageStatus(data.Status),
		Error:         data.Error,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromMessageDomain(data *entity.MessageQueueEntry) *model.MessageQueueModel {
	if data == nil {
		return nil
	}

	return &model.MessageQueueModel{
		ID:            data.ID,
		UserID:        data.UserID,
		DeviceOwnerID: data.DeviceOwnerID,
		Title:         data.Title,
		Message:       data.Message,
		Priority:      data.Priority,
		Status:        string(data.Status),
		Error:         data.Error,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
