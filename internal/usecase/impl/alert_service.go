package impl

import (
	"context"
	"log/slog"
	"time"

	"petfeeder/config"
	deliverycontext "petfeeder/internal/delivery/context"
	"petfeeder/internal/domain/alert"
	"petfeeder/internal/domain/entity"
	domainerrors "petfeeder/internal/domain/errors"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultOfflineThreshold = 5 * time.Minute

// alertService implements the AlertUsecase interface.
type alertService struct {
	txManager        repository.TransactionManager
	settingsRepo     repository.NotificationSettingsRepository
	publisher        service.EventPublisher
	offlineThreshold time.Duration
	logger           *slog.Logger
	now              func() time.Time
}

// AlertServiceParams holds dependencies for AlertService, injected by Fx.
type AlertServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SettingsRepo repository.NotificationSettingsRepository
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAlertService is the constructor for alertService.
func NewAlertService(params AlertServiceParams) usecase.AlertUsecase {
	threshold := defaultOfflineThreshold
	if params.Config != nil && params.Config.Feeder != nil && params.Config.Feeder.OfflineThreshold > 0 {
		threshold = params.Config.Feeder.OfflineThreshold
	}

	return &alertService{
		txManager:        params.TxManager,
		settingsRepo:     params.SettingsRepo,
		publisher:        params.Publisher,
		offlineThreshold: threshold,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *alertService) EvaluateHeartbeat(ctx context.Context, owner *entity.DeviceOwner, status *entity.DeviceStatus) error {
	settings, err := srv.notificationSettings(ctx, owner)
	if err != nil || settings == nil {
		return err
	}

	var queued []uuid.UUID
	defer func() { srv.publish(ctx, queued) }()

	for _, kind := range entity.HeartbeatAlertKinds {
		if !settings.AlertEnabled(kind) {
			continue
		}

		messageID, _, err := srv.transition(ctx, owner, kind, status, func(_ repository.RepositoryFactory, alerting bool) (alert.Edge, error) {
			return alert.DecideHeartbeat(kind, alerting, status), nil
		})
		if err != nil {
			return err
		}
		if messageID != nil {
			queued = append(queued, *messageID)
		}
	}

	return nil
}

func (srv *alertService) RaiseOffline(ctx context.Context, owner *entity.DeviceOwner, status *entity.DeviceStatus, silentFor time.Duration) (bool, error) {
	settings, err := srv.notificationSettings(ctx, owner)
	if err != nil || settings == nil || !settings.AlertEnabled(entity.AlertOffline) {
		return false, err
	}

	messageID, edge, err := srv.transition(ctx, owner, entity.AlertOffline, status, func(repoFactory repository.RepositoryFactory, alerting bool) (alert.Edge, error) {
		if alerting {
			return alert.EdgeNone, nil
		}

		// A heartbeat may have landed since the sweep read last_ping.
		current, err := repoFactory.NewDeviceStatusRepository().FindStatusByDeviceID(ctx, status.DeviceID)
		if err != nil {
			return alert.EdgeNone, errors.Wrap(err, "failed to reread device status")
		}
		if current.LastPing.After(status.LastPing) {
			silentFor = srv.now().Sub(current.LastPing)
		}

		return alert.DecideSilence(alerting, silentFor, srv.offlineThreshold), nil
	})
	if err != nil {
		return false, err
	}
	if messageID != nil {
		srv.publish(ctx, []uuid.UUID{*messageID})
	}

	return edge == alert.EdgeRaise, nil
}

// notificationSettings returns nil without error when the user never saved any.
func (srv *alertService) notificationSettings(ctx context.Context, owner *entity.DeviceOwner) (*entity.NotificationSettings, error) {
	settings, err := srv.settingsRepo.FindNotificationSettings(ctx, owner.UserID)
	if errors.Is(err, repository.ErrNotificationSettingsNotFound) {
		srv.log(ctx).Info("No notification settings, skipping alerts", slog.Any("userID", owner.UserID), slog.Any("ownerID", owner.ID))

		return nil, nil
	}
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load notification settings")
	}

	return settings, nil
}

// transition runs one alert kind under the tracking row lock: decide, queue at
// most one message, flip the flag.
func (srv *alertService) transition(
	ctx context.Context,
	owner *entity.DeviceOwner,
	kind entity.AlertKind,
	status *entity.DeviceStatus,
	decide func(repoFactory repository.RepositoryFactory, alerting bool) (alert.Edge, error),
) (*uuid.UUID, alert.Edge, error) {
	now := srv.now()

	var (
		messageID *uuid.UUID
		edge      alert.Edge
	)
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		trackingRepo := repoFactory.NewAlertTrackingRepository()

		tracking, err := trackingRepo.LockTracking(ctx, owner.ID)
		if err != nil {
			return errors.Wrap(err, "failed to lock alert tracking")
		}

		edge, err = decide(repoFactory, tracking.Alerting(kind))
		if err != nil || edge == alert.EdgeNone {
			return err
		}

		if text, ok := alert.Message(kind, edge, status); ok {
			message := entity.NewOwnerMessage(owner, text, now)
			if err := repoFactory.NewMessageRepository().CreateMessage(ctx, message); err != nil {
				return errors.Wrap(err, "failed to queue alert message")
			}
			messageID = &message.ID
		}

		tracking.SetAlerting(kind, edge == alert.EdgeRaise)
		tracking.UpdatedAt = now

		return errors.Wrap(trackingRepo.SaveTracking(ctx, tracking), "failed to save alert tracking")
	})
	if err != nil {
		srv.log(ctx).Error("Alert transition failed", slog.Any("ownerID", owner.ID), slog.String("kind", string(kind)), slog.Any("error", err))

		return nil, alert.EdgeNone, domainerrors.NewDatabaseExecuteError(err, "failed to evaluate alert")
	}

	if edge != alert.EdgeNone {
		srv.log(ctx).Info("Alert edge",
			slog.Any("ownerID", owner.ID),
			slog.String("kind", string(kind)),
			slog.String("edge", edge.String()),
			slog.Bool("queued", messageID != nil),
		)
	}

	return messageID, edge, nil
}

func (srv *alertService) publish(ctx context.Context, ids []uuid.UUID) {
	publishQueued(ctx, srv.publisher, srv.log(ctx), deliverycontext.GetRequestIDFromContext(ctx), ids)
}
