package usecase

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
)

// CompletionResult echoes the acknowledged command back to the device.
type CompletionResult struct {
	Status int                     `json:"status"`
	Event  *entity.EventQueueEntry `json:"event"`
}

// EventUsecase is the per-binding command queue.
type EventUsecase interface {
	// Enqueue get-or-creates a pending command and flags the device.
	Enqueue(ctx context.Context, ownerID uuid.UUID, code entity.EventCode, payload any) (*entity.EventQueueEntry, error)

	// Complete acknowledges entryID for the authenticated owner. Completing
	// twice is not an error.
	Complete(ctx context.Context, owner *entity.DeviceOwner, entryID uuid.UUID) (*CompletionResult, error)

	// PeekOldestPending returns nil when the queue is empty.
	PeekOldestPending(ctx context.Context, ownerID uuid.UUID) (*entity.EventQueueEntry, error)
}
