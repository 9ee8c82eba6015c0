package usecase

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
)

// HeartbeatResult tells the device whether it has queued work.
type HeartbeatResult struct {
	Status   int                     `json:"status"`
	HasEvent bool                    `json:"has_event"`
	Event    *entity.EventQueueEntry `json:"event,omitempty"`
}

// HeartbeatUsecase ingests device telemetry.
type HeartbeatUsecase interface {
	Process(ctx context.Context, userID uuid.UUID, deviceKey string, telemetry entity.TelemetryUpdate) (*HeartbeatResult, error)
}
