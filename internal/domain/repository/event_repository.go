package repository

import (
	"context"
	"encoding/json"
	"time"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrEventNotFound is returned when no queue entry matches.
var ErrEventNotFound = errors.New("event not found")

// EventRepository persists the per-binding command queue.
type EventRepository interface {
	// GetOrCreatePending inserts entry unless a pending row with the same
	// owner and code exists. It returns the row that is pending afterwards
	// and whether it was created.
	GetOrCreatePending(ctx context.Context, entry *entity.EventQueueEntry) (*entity.EventQueueEntry, bool, error)

	// RefreshPayload replaces the payload of a still pending entry.
	RefreshPayload(ctx context.Context, id uuid.UUID, payload json.RawMessage, at time.Time) error

	// FindEventForOwner returns the entry only when it belongs to ownerID.
	FindEventForOwner(ctx context.Context, ownerID, id uuid.UUID) (*entity.EventQueueEntry, error)

	// MarkCompleted moves a pending entry to completed. It reports false when
	// the entry was no longer pending.
	MarkCompleted(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)

	// FindOldestPending returns the first pending entry by creation order.
	FindOldestPending(ctx context.Context, ownerID uuid.UUID) (*entity.EventQueueEntry, error)

	CountPending(ctx context.Context, ownerID uuid.UUID) (int64, error)
	DeleteEventsByOwner(ctx context.Context, ownerID uuid.UUID) error
}
