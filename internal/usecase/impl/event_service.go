package impl

import (
	"context"
	"log/slog"
	"net/http"
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

// eventService implements the EventUsecase interface.
type eventService struct {
	txManager repository.TransactionManager
	eventRepo repository.EventRepository
	logger    *slog.Logger
	now       func() time.Time
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	EventRepo repository.EventRepository
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		txManager: params.TxManager,
		eventRepo: params.EventRepo,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *eventService) Enqueue(ctx context.Context, ownerID uuid.UUID, code entity.EventCode, payload any) (*entity.EventQueueEntry, error) {
	var entry *entity.EventQueueEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		owner, err := repoFactory.NewDeviceOwnerRepository().FindOwnerByID(ctx, ownerID)
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return domainerrors.ErrFeederNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find device owner")
		}

		entry, err = enqueueEvent(ctx, repoFactory, owner, code, payload, srv.now())

		return err
	})
	if err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to enqueue event")
	}

	srv.log(ctx).Debug("Event queued", slog.Any("ownerID", ownerID), slog.Int("code", int(code)), slog.Any("eventID", entry.ID))

	return entry, nil
}

// Complete acknowledges an entry for the authenticated device. Completing an
// entry twice returns the stored row without touching it again.
func (srv *eventService) Complete(ctx context.Context, owner *entity.DeviceOwner, entryID uuid.UUID) (*usecase.CompletionResult, error) {
	now := srv.now()

	var completed *entity.EventQueueEntry
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		eventRepo := repoFactory.NewEventRepository()
		statusRepo := repoFactory.NewDeviceStatusRepository()

		entry, err := eventRepo.FindEventForOwner(ctx, owner.ID, entryID)
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find event")
		}
		if !entry.IsPending() {
			completed = entry

			return nil
		}

		changed, err := eventRepo.MarkCompleted(ctx, entry.ID, now)
		if err != nil {
			return err
		}
		// Report the stored row so a repeated Complete returns the same
		// updated_at the database kept.
		completed, err = eventRepo.FindEventForOwner(ctx, owner.ID, entryID)
		if err != nil {
			return errors.Wrap(err, "failed to reload event")
		}
		if !changed {
			return nil
		}

		remaining, err := eventRepo.CountPending(ctx, owner.ID)
		if err != nil {
			return err
		}
		if err := markHasEvent(ctx, statusRepo, owner.DeviceID, remaining > 0, now); err != nil {
			return err
		}

		return errors.Wrap(statusRepo.TouchPing(ctx, owner.DeviceID, now), "failed to touch last ping")
	})
	if err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to complete event")
	}

	return &usecase.CompletionResult{Status: http.StatusOK, Event: completed}, nil
}

// PeekOldestPending returns nil when the queue is empty.
func (srv *eventService) PeekOldestPending(ctx context.Context, ownerID uuid.UUID) (*entity.EventQueueEntry, error) {
	entry, err := srv.eventRepo.FindOldestPending(ctx, ownerID)
	if errors.Is(err, repository.ErrEventNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to peek event queue")
	}

	return entry, nil
}
