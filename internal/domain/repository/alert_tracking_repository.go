package repository

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertTrackingRepository persists alert edge flags.
type AlertTrackingRepository interface {
	// LockTracking returns the owner's tracking row locked for update,
	// creating it with every flag clear when missing.
	LockTracking(ctx context.Context, ownerID uuid.UUID) (*entity.AlertTracking, error)

	SaveTracking(ctx context.Context, tracking *entity.AlertTracking) error
	DeleteTrackingByOwner(ctx context.Context, ownerID uuid.UUID) error
}
