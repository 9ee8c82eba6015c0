package notification

import (
	"context"
	"strings"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/errors"

	"github.com/gregdel/pushover"
	"golang.org/x/time/rate"
)

const defaultPushoverRate = 2

type pushoverSender interface {
	SendMessage(message *pushover.Message, recipient *pushover.Recipient) (*pushover.Response, error)
}

// pushoverNotifier delivers through the Pushover API, spacing requests with a limiter.
type pushoverNotifier struct {
	app     pushoverSender
	limiter *rate.Limiter
}

// NewPushoverNotifier creates a Pushover channel for the given application token.
func NewPushoverNotifier(appToken string, ratePerSecond float64) Channel {
	return newPushoverNotifier(pushover.New(appToken), ratePerSecond)
}

func newPushoverNotifier(app pushoverSender, ratePerSecond float64) *pushoverNotifier {
	if ratePerSecond <= 0 {
		ratePerSecond = defaultPushoverRate
	}

	return &pushoverNotifier{
		app:     app,
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), 1),
	}
}

func (n *pushoverNotifier) Name() string {
	return "pushover"
}

func (n *pushoverNotifier) Accepts(settings *entity.NotificationSettings) bool {
	return settings.PushoverUserKey != ""
}

func (n *pushoverNotifier) Send(ctx context.Context, settings *entity.NotificationSettings, message *entity.MessageQueueEntry) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return errors.WithStack(err)
	}

	msg := &pushover.Message{
		Title:    message.Title,
		Message:  message.Message,
		Priority: clampPriority(message.Priority),
	}
	if len(settings.PushoverDevices) > 0 {
		msg.DeviceName = strings.Join(settings.PushoverDevices, ",")
	}

	resp, err := n.app.SendMessage(msg, pushover.NewRecipient(settings.PushoverUserKey))
	if err != nil {
		return errors.Wrap(err, "pushover send failed")
	}
	if resp != nil && resp.Status != 1 {
		return errors.Errorf("pushover rejected message: %s", strings.Join(resp.Errors, "; "))
	}

	return nil
}

func clampPriority(p int) int {
	return max(pushover.PriorityLowest, min(p, pushover.PriorityHigh))
}
