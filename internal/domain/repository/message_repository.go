package repository

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrMessageNotFound is returned when a message is missing or no longer pending.
var ErrMessageNotFound = errors.New("message not found")

// MessageRepository persists the outbound notification queue.
type MessageRepository interface {
	CreateMessage(ctx context.Context, message *entity.MessageQueueEntry) error

	// FindPendingMessageIDs returns up to limit pending ids, oldest first.
	FindPendingMessageIDs(ctx context.Context, limit int) ([]uuid.UUID, error)

	// LockPendingMessage locks a pending row for delivery, skipping rows
	// another worker holds.
	LockPendingMessage(ctx context.Context, id uuid.UUID) (*entity.MessageQueueEntry, error)

	UpdateMessageStatus(ctx context.Context, id uuid.UUID, status entity.MessageStatus, errText string) error

	// DetachOwner clears the owner reference of every message about ownerID.
	DetachOwner(ctx context.Context, ownerID uuid.UUID) error
}
