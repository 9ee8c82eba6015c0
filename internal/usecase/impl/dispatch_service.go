package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/repository"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	errNoDeliveryTarget = "no delivery target configured"
	maxErrorTextLength  = 500
)

type dispatchOutcome int

const (
	outcomeSkipped dispatchOutcome = iota
	outcomeSent
	outcomeFailed
)

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	txManager   repository.TransactionManager
	messageRepo repository.MessageRepository
	notifier    service.Notifier
	logger      *slog.Logger
}

// DispatchServiceParams holds dependencies for DispatchService, injected by Fx.
type DispatchServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	MessageRepo repository.MessageRepository
	Notifier    service.Notifier
	Logger      *slog.Logger
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(params DispatchServiceParams) usecase.DispatchUsecase {
	return &dispatchService{
		txManager:   params.TxManager,
		messageRepo: params.MessageRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

func (srv *dispatchService) DispatchPending(ctx context.Context, limit int) (*usecase.DispatchReport, error) {
	ids, err := srv.messageRepo.FindPendingMessageIDs(ctx, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pending messages")
	}

	return srv.DispatchMessages(ctx, ids)
}

// DispatchMessages delivers each message in its own transaction. The row stays
// locked while the notifier runs so two workers never send it twice. A message
// whose transaction fails stays pending and is counted as Errored; the rest of
// the batch still runs and the last such error is returned.
func (srv *dispatchService) DispatchMessages(ctx context.Context, ids []uuid.UUID) (*usecase.DispatchReport, error) {
	report := &usecase.DispatchReport{}
	var lastErr error
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, errors.WithStack(err)
		}

		outcome, err := srv.dispatchOne(ctx, id)
		if err != nil {
			report.Errored++
			lastErr = err

			continue
		}
		switch outcome {
		case outcomeSent:
			report.Sent++
		case outcomeFailed:
			report.Failed++
		default:
			report.Skipped++
		}
	}

	if len(ids) > 0 {
		srv.logger.Info("Dispatched messages",
			slog.Int("sent", report.Sent),
			slog.Int("failed", report.Failed),
			slog.Int("skipped", report.Skipped),
			slog.Int("errored", report.Errored),
		)
	}

	if lastErr != nil {
		return report, errors.Wrapf(lastErr, "%d of %d messages left pending", report.Errored, len(ids))
	}

	return report, nil
}

func (srv *dispatchService) dispatchOne(ctx context.Context, id uuid.UUID) (dispatchOutcome, error) {
	outcome := outcomeSkipped
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		messageRepo := repoFactory.NewMessageRepository()

		message, err := messageRepo.LockPendingMessage(ctx, id)
		if errors.Is(err, repository.ErrMessageNotFound) {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock message")
		}

		settings, err := repoFactory.NewNotificationSettingsRepository().FindNotificationSettings(ctx, message.UserID)
		if err != nil && !errors.Is(err, repository.ErrNotificationSettingsNotFound) {
			return errors.Wrap(err, "failed to load notification settings")
		}
		if settings == nil || !settings.HasDeliveryTarget() {
			outcome = outcomeFailed

			return messageRepo.UpdateMessageStatus(ctx, id, entity.MessageStatusError, errNoDeliveryTarget)
		}

		if sendErr := srv.notifier.Send(ctx, settings, message); sendErr != nil {
			srv.logger.Warn("Message delivery failed", slog.Any("messageID", id), slog.Any("error", sendErr))
			outcome = outcomeFailed

			return messageRepo.UpdateMessageStatus(ctx, id, entity.MessageStatusError, truncate(sendErr.Error(), maxErrorTextLength))
		}

		outcome = outcomeSent

		return messageRepo.UpdateMessageStatus(ctx, id, entity.MessageStatusSent, "")
	})
	if err != nil {
		srv.logger.Error("Failed to dispatch message", slog.Any("messageID", id), slog.Any("error", err))

		return outcomeSkipped, err
	}

	return outcome, nil
}

// truncate cuts s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}

	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
