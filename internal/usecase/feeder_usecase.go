package usecase

import (
	"context"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
)

// FeederPatch holds the owner editable fields. Nil fields are unchanged.
type FeederPatch struct {
	Name          *string
	ManualButton  *bool
	MotorTimingID *uuid.UUID
}

// FeederUsecase covers owner side writes that produce device commands.
type FeederUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Feeder, error)
	Update(ctx context.Context, userID, ownerID uuid.UUID, patch *FeederPatch) (*entity.DeviceOwner, error)
	Delete(ctx context.Context, userID, ownerID uuid.UUID) error

	// RequestFeed queues a feed-now command. A nil motorTimingID uses the
	// feeder default.
	RequestFeed(ctx context.Context, userID, ownerID uuid.UUID, motorTimingID *uuid.UUID) (*entity.EventQueueEntry, error)

	RequestFirmwareUpgrade(ctx context.Context, ownerID uuid.UUID, upgrade *entity.FirmwareUpgradePayload) (*entity.EventQueueEntry, error)

	// Authenticate resolves the binding for a device call.
	Authenticate(ctx context.Context, userID uuid.UUID, deviceKey string) (*entity.DeviceOwner, error)
}
