package repository

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedingLogRepository persists dispensed portions.
type FeedingLogRepository interface {
	CreateFeedingLog(ctx context.Context, log *entity.FeedingLog) error

	// FindFeedingLogs returns the newest logs first.
	FindFeedingLogs(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.FeedingLog, error)

	DeleteFeedingLogsByOwner(ctx context.Context, ownerID uuid.UUID) error
}
