package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
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

const (
	defaultFeedingLogLimit = 50
	maxFeedingLogLimit     = 500
)

// feedingLogService implements the FeedingLogUsecase interface.
type feedingLogService struct {
	txManager repository.TransactionManager
	ownerRepo repository.DeviceOwnerRepository
	logRepo   repository.FeedingLogRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// FeedingLogServiceParams holds dependencies for FeedingLogService, injected by Fx.
type FeedingLogServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OwnerRepo repository.DeviceOwnerRepository
	LogRepo   repository.FeedingLogRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewFeedingLogService is the constructor for feedingLogService.
func NewFeedingLogService(params FeedingLogServiceParams) usecase.FeedingLogUsecase {
	return &feedingLogService{
		txManager: params.TxManager,
		ownerRepo: params.OwnerRepo,
		logRepo:   params.LogRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *feedingLogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Record stores a dispensed portion and, when the user asked for it, queues a
// notification in the same transaction.
func (srv *feedingLogService) Record(ctx context.Context, owner *entity.DeviceOwner, input *usecase.FeedingLogInput) (*entity.FeedingLog, error) {
	switch input.FeedType {
	case entity.FeedTypeManual, entity.FeedTypeScheduled, entity.FeedTypeRemote:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("feed_type must be M, S or R")
	}

	now := srv.now()
	fedAt := input.FedAt
	if fedAt.IsZero() {
		fedAt = now
	}
	record := &entity.FeedingLog{
		ID:            uuid.Must(uuid.NewV7()),
		DeviceOwnerID: owner.ID,
		PetName:       strings.TrimSpace(input.PetName),
		FeedType:      input.FeedType,
		FeedAmount:    input.FeedAmount,
		FedAt:         fedAt,
		CreatedAt:     now,
	}

	var queued []uuid.UUID
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewFeedingLogRepository().CreateFeedingLog(ctx, record); err != nil {
			return errors.Wrap(err, "failed to create feeding log")
		}

		settings, err := repoFactory.NewNotificationSettingsRepository().FindNotificationSettings(ctx, owner.UserID)
		if errors.Is(err, repository.ErrNotificationSettingsNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to load notification settings")
		}

		text, ok := feedingMessage(settings, record)
		if !ok {
			return nil
		}
		message := entity.NewOwnerMessage(owner, text, now)
		if err := repoFactory.NewMessageRepository().CreateMessage(ctx, message); err != nil {
			return errors.Wrap(err, "failed to queue feeding message")
		}
		queued = append(queued, message.ID)

		return nil
	})
	if err != nil {
		return nil, toAppError(srv.log(ctx), err, "failed to record feeding")
	}

	publishQueued(ctx, srv.publisher, srv.log(ctx), deliverycontext.GetRequestIDFromContext(ctx), queued)

	return record, nil
}

func (srv *feedingLogService) List(ctx context.Context, userID, ownerID uuid.UUID, limit int) ([]*entity.FeedingLog, error) {
	owner, err := findUserOwner(ctx, srv.ownerRepo, userID, ownerID)
	if err != nil {
		return nil, err
	}

	switch {
	case limit <= 0:
		limit = defaultFeedingLogLimit
	case limit > maxFeedingLogLimit:
		limit = maxFeedingLogLimit
	}

	logs, err := srv.logRepo.FindFeedingLogs(ctx, owner.ID, limit)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list feeding logs")
	}

	return logs, nil
}

// feedingMessage returns the notification for a log entry when the matching
// toggle is on.
func feedingMessage(settings *entity.NotificationSettings, record *entity.FeedingLog) (string, bool) {
	amount := record.FeedAmount.String()

	switch record.FeedType {
	case entity.FeedTypeManual:
		if settings.ManualFood {
			return fmt.Sprintf("%s cup was manually dispensed from the feeder.", amount), true
		}
	case entity.FeedTypeRemote:
		if settings.ManualFood {
			return fmt.Sprintf("%s cup was manually dispensed from a remote computer or mobile device.", amount), true
		}
	case entity.FeedTypeScheduled:
		if settings.AutoFood {
			return fmt.Sprintf("%s cup was automatically dispensed for %s.", amount, record.PetName), true
		}
	}

	return "", false
}
