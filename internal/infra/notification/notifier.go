// Package notification implements the outbound delivery channels used by the notifier worker.
package notification

import (
	"context"
	"log/slog"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/errors"
)

// ErrNoChannel is returned when none of the configured channels can reach the user.
var ErrNoChannel = errors.New("no configured notification channel for user")

// Channel is one delivery backend.
type Channel interface {
	Name() string
	// Accepts reports whether settings hold a target for this channel.
	Accepts(settings *entity.NotificationSettings) bool
	Send(ctx context.Context, settings *entity.NotificationSettings, message *entity.MessageQueueEntry) error
}

type multiNotifier struct {
	channels []Channel
	logger   *slog.Logger
}

// NewMultiNotifier fans a message out to every channel that accepts the user.
// Delivery succeeds when at least one channel succeeds.
func NewMultiNotifier(logger *slog.Logger, channels ...Channel) service.Notifier {
	return &multiNotifier{channels: channels, logger: logger}
}

func (n *multiNotifier) Send(ctx context.Context, settings *entity.NotificationSettings, message *entity.MessageQueueEntry) error {
	var (
		attempted int
		failures  []error
	)

	for _, ch := range n.channels {
		if !ch.Accepts(settings) {
			continue
		}
		attempted++

		if err := ch.Send(ctx, settings, message); err != nil {
			n.logger.Warn("Notification channel failed",
				slog.String("channel", ch.Name()),
				slog.String("message_id", message.ID.String()),
				slog.Any("error", err),
			)
			failures = append(failures, errors.Wrap(err, ch.Name()))
		}
	}

	if attempted == 0 {
		return ErrNoChannel
	}
	if len(failures) == attempted {
		return errors.Join(failures...)
	}

	return nil
}
