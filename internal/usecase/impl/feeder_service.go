package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "petfeeder/internal/delivery/context"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feederService implements the FeederUsecase interface.
type feederService struct {
	txManager repository.TransactionManager
	ownerRepo repository.DeviceOwnerRepository
	logger    *slog.Logger
	now       func() time.Time
}

// FeederServiceParams holds dependencies for FeederService, injected by Fx.
type FeederServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OwnerRepo repository.DeviceOwnerRepository
	Logger    *slog.Logger
}

// NewFeederService is the constructor for feederService.
func NewFeederService(params FeederServiceParams) usecase.FeederUsecase {
	return &feederService{
		txManager: params.TxManager,
		ownerRepo: params.OwnerRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *feederService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *feederService) List(ctx context.Context, userID uuid.UUID) ([]*entity.Feeder, error) {
	feeders, err := srv.ownerRepo.FindFeedersByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list feeders")
	}

	return feeders, nil
}

// Update saves the patch and queues a settings sync so the device picks up
// the new name and button setting.
func (srv *feederService) Update(ctx context.Context, userID, ownerID uuid.UUID, patch *usecase.FeederPatch) (*entity.DeviceOwner, error) {
	now := srv.now()

	var updated *entity.DeviceOwner
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ownerRepo := repoFactory.NewDeviceOwnerRepository()

		owner, err := findUserOwner(ctx, ownerRepo, userID, ownerID)
		if err != nil {
			return err
		}

		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
			}
			owner.Name = name
		}
		if patch.ManualButton != nil {
			owner.ManualButton = *patch.ManualButton
		}
		if patch.MotorTimingID != nil {
			if _, err := repoFactory.NewMotorTimingRepository().FindMotorTimingByID(ctx, *patch.MotorTimingID); err != nil {
				if errors.Is(err, repository.ErrMotorTimingNotFound) {
					return domainerrors.ErrPortionNotFound
				}

				return errors.Wrap(err, "failed to find motor timing")
			}
			owner.MotorTimingID = patch.MotorTimingID
		}
		owner.UpdatedAt = now

		if err := ownerRepo.UpdateOwner(ctx, owner); err != nil {
			return errors.Wrap(err, "failed to update feeder")
		}
		updated = owner

		_, err = enqueueEvent(ctx, repoFactory, owner, entity.EventSettingsSync, nil, now)

		return err
	})
	if err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to update feeder")
	}

	return updated, nil
}

// Delete removes the binding and everything scoped to it. Queued messages
// stay with the user and lose the feeder reference.
func (srv *feederService) Delete(ctx context.Context, userID, ownerID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ownerRepo := repoFactory.NewDeviceOwnerRepository()

		owner, err := findUserOwner(ctx, ownerRepo, userID, ownerID)
		if err != nil {
			return err
		}

		if err := repoFactory.NewScheduleRepository().DeleteSchedulesByOwner(ctx, owner.ID); err != nil {
			return err
		}
		if err := repoFactory.NewEventRepository().DeleteEventsByOwner(ctx, owner.ID); err != nil {
			return err
		}
		if err := repoFactory.NewAlertTrackingRepository().DeleteTrackingByOwner(ctx, owner.ID); err != nil {
			return err
		}
		if err := repoFactory.NewFeedingLogRepository().DeleteFeedingLogsByOwner(ctx, owner.ID); err != nil {
			return err
		}
		if err := repoFactory.NewMessageRepository().DetachOwner(ctx, owner.ID); err != nil {
			return err
		}
		if err := ownerRepo.DeleteOwner(ctx, owner.ID); err != nil {
			return err
		}

		err = repoFactory.NewDeviceStatusRepository().SetHasEvent(ctx, owner.DeviceID, false)
		if errors.Is(err, repository.ErrStatusNotFound) {
			return nil
		}

		return err
	})
	if err != nil {
		return toAppError(srv.log(ctx), err, "failed to delete feeder")
	}

	srv.log(ctx).Info("Feeder deleted", slog.Any("ownerID", ownerID), slog.Any("userID", userID))

	return nil
}

// RequestFeed queues a feed-now command. An explicit timing must exist; the
// feeder's stored default falls back to a quarter cup when it is gone.
func (srv *feederService) RequestFeed(ctx context.Context, userID, ownerID uuid.UUID, motorTimingID *uuid.UUID) (*entity.EventQueueEntry, error) {
	now := srv.now()

	var entry *entity.EventQueueEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := findUserOwner(ctx, repoFactory.NewDeviceOwnerRepository(), userID, ownerID)
		if err != nil {
			return err
		}

		payload := entity.FeedNowPayload{
			FeedAmount: entity.DefaultManualPortion.Float64(),
			Ticks:      entity.DefaultManualTicks,
		}

		timingID, explicit := motorTimingID, motorTimingID != nil
		if !explicit {
			timingID = owner.MotorTimingID
		}
		if timingID != nil {
			timing, err := repoFactory.NewMotorTimingRepository().FindMotorTimingByID(ctx, *timingID)
			switch {
			case err == nil:
				payload.FeedAmount = timing.FeedAmount.Float64()
				payload.Ticks = timing.InterrupterCount
			case errors.Is(err, repository.ErrMotorTimingNotFound) && explicit:
				return domainerrors.ErrPortionNotFound
			case !errors.Is(err, repository.ErrMotorTimingNotFound):
				return errors.Wrap(err, "failed to find motor timing")
			}
		}

		entry, err = enqueueEvent(ctx, repoFactory, owner, entity.EventFeedNow, payload, now)

		return err
	})
	if err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to request feed")
	}

	srv.log(ctx).Info("Feed requested", slog.Any("ownerID", ownerID), slog.Any("eventID", entry.ID))

	return entry, nil
}

func (srv *feederService) RequestFirmwareUpgrade(ctx context.Context, ownerID uuid.UUID, upgrade *entity.FirmwareUpgradePayload) (*entity.EventQueueEntry, error) {
	if upgrade == nil || strings.TrimSpace(upgrade.Version) == "" || strings.TrimSpace(upgrade.URL) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("firmware version and url are required")
	}
	now := srv.now()

	var entry *entity.EventQueueEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := repoFactory.NewDeviceOwnerRepository().FindOwnerByID(ctx, ownerID)
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return domainerrors.ErrFeederNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find feeder")
		}

		entry, err = enqueueEvent(ctx, repoFactory, owner, entity.EventFirmwareUpgrade, upgrade, now)

		return err
	})
	if err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to request firmware upgrade")
	}

	srv.log(ctx).Info("Firmware upgrade requested", slog.Any("ownerID", ownerID), slog.String("version", upgrade.Version))

	return entry, nil
}

func (srv *feederService) Authenticate(ctx context.Context, userID uuid.UUID, deviceKey string) (*entity.DeviceOwner, error) {
	if deviceKey == "" {
		return nil, domainerrors.ErrDeviceKeyInvalid
	}

	owner, err := srv.ownerRepo.FindOwnerByUserAndKey(ctx, userID, deviceKey)
	if errors.Is(err, repository.ErrOwnerNotFound) {
		return nil, domainerrors.ErrDeviceKeyInvalid
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to authenticate device")
	}

	return owner, nil
}
