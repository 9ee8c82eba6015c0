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
	"petfeeder/internal/domain/service"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// heartbeatService implements the HeartbeatUsecase interface.
type heartbeatService struct {
	txManager  repository.TransactionManager
	ownerRepo  repository.DeviceOwnerRepository
	statusRepo repository.DeviceStatusRepository
	alerts     usecase.AlertUsecase
	events     usecase.EventUsecase
	telemetry  service.TelemetryRecorder
	logger     *slog.Logger
	now        func() time.Time
}

// HeartbeatServiceParams holds dependencies for HeartbeatService, injected by Fx.
type HeartbeatServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	OwnerRepo  repository.DeviceOwnerRepository
	StatusRepo repository.DeviceStatusRepository
	Alerts     usecase.AlertUsecase
	Events     usecase.EventUsecase
	Telemetry  service.TelemetryRecorder
	Logger     *slog.Logger
}

// NewHeartbeatService is the constructor for heartbeatService.
func NewHeartbeatService(params HeartbeatServiceParams) usecase.HeartbeatUsecase {
	return &heartbeatService{
		txManager:  params.TxManager,
		ownerRepo:  params.OwnerRepo,
		statusRepo: params.StatusRepo,
		alerts:     params.Alerts,
		events:     params.Events,
		telemetry:  params.Telemetry,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *heartbeatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Process applies one heartbeat. Reapplying the same telemetry is harmless, so
// a device that gets an error simply retries on its next poll.
func (srv *heartbeatService) Process(ctx context.Context, userID uuid.UUID, deviceKey string, update entity.TelemetryUpdate) (*usecase.HeartbeatResult, error) {
	owner, err := srv.ownerRepo.FindOwnerByUserAndKey(ctx, userID, deviceKey)
	if errors.Is(err, repository.ErrOwnerNotFound) {
		srv.log(ctx).Warn("Heartbeat with unknown device key", slog.Any("userID", userID))

		return nil, domainerrors.ErrDeviceKeyInvalid
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to authenticate device")
	}

	status, err := srv.applyTelemetry(ctx, owner, update)
	if err != nil {
		srv.log(ctx).Error("Failed to apply telemetry", slog.Any("ownerID", owner.ID), slog.Any("error", err))

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to apply telemetry")
	}

	srv.telemetry.Record(ctx, owner, status)

	if err := srv.alerts.EvaluateHeartbeat(ctx, owner, status); err != nil {
		return nil, err
	}

	event, err := srv.events.PeekOldestPending(ctx, owner.ID)
	if err != nil {
		return nil, err
	}

	hasEvent := event != nil
	if hasEvent != status.HasEvent {
		srv.log(ctx).Debug("Correcting stale has_event", slog.Any("ownerID", owner.ID), slog.Bool("hasEvent", hasEvent))
		if err := srv.statusRepo.SetHasEvent(ctx, owner.DeviceID, hasEvent); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to correct has_event")
		}
	}

	return &usecase.HeartbeatResult{
		Status:   http.StatusOK,
		HasEvent: hasEvent,
		Event:    event,
	}, nil
}

func (srv *heartbeatService) applyTelemetry(ctx context.Context, owner *entity.DeviceOwner, update entity.TelemetryUpdate) (*entity.DeviceStatus, error) {
	now := srv.now()

	var status *entity.DeviceStatus
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		statusRepo := repoFactory.NewDeviceStatusRepository()

		err := statusRepo.ApplyTelemetry(ctx, owner.DeviceID, update, now)
		if errors.Is(err, repository.ErrStatusNotFound) {
			current := entity.NewDeviceStatus(owner.DeviceID, now)
			update.Apply(current)
			if err := statusRepo.SaveStatus(ctx, current); err != nil {
				return err
			}
			status = current

			return nil
		} else if err != nil {
			return err
		}

		current, err := statusRepo.FindStatusByDeviceID(ctx, owner.DeviceID)
		if err != nil {
			return errors.Wrap(err, "failed to reload device status")
		}
		status = current

		return nil
	})

	return status, err
}
