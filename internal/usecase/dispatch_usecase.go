package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DispatchReport counts the outcome of one dispatch pass.
type DispatchReport struct {
	Sent    int
	Failed  int
	Skipped int // Already handled or locked by another worker.
	Errored int // Left pending after a database error.
}

// DispatchUsecase hands queued messages to the notifier.
type DispatchUsecase interface {
	// DispatchPending delivers up to limit pending messages, oldest first.
	DispatchPending(ctx context.Context, limit int) (*DispatchReport, error)

	// DispatchMessages delivers the named messages that are still pending.
	DispatchMessages(ctx context.Context, ids []uuid.UUID) (*DispatchReport, error)
}
