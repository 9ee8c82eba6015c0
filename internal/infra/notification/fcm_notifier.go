package notification

import (
	"context"
	"strconv"

	"petfeeder/internal/domain/entity"
	"petfeeder/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// fcmMaxTokens is the multicast limit of the FCM API.
const fcmMaxTokens = 500

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

// fcmNotifier pushes messages to the companion app through Firebase Cloud Messaging.
type fcmNotifier struct {
	client multicastSender
}

// NewFCMNotifier creates a Firebase messaging backed channel.
func NewFCMNotifier(ctx context.Context, credentialsPath string) (Channel, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &fcmNotifier{client: client}, nil
}

func (n *fcmNotifier) Name() string {
	return "fcm"
}

func (n *fcmNotifier) Accepts(settings *entity.NotificationSettings) bool {
	return len(settings.PushTokens) > 0
}

// Send fails only when no token accepted the message.
func (n *fcmNotifier) Send(ctx context.Context, settings *entity.NotificationSettings, message *entity.MessageQueueEntry) error {
	tokens := settings.PushTokens
	if len(tokens) > fcmMaxTokens {
		tokens = tokens[:fcmMaxTokens]
	}

	data := map[string]string{
		"message_id": message.ID.String(),
		"priority":   strconv.Itoa(message.Priority),
	}
	if message.DeviceOwnerID != nil {
		data["device_owner_id"] = message.DeviceOwnerID.String()
	}

	resp, err := n.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Message,
		},
		Data: data,
	})
	if err != nil {
		return errors.Wrap(err, "failed to send multicast notification")
	}

	if resp.SuccessCount == 0 {
		for _, r := range resp.Responses {
			if r.Error != nil {
				return errors.Wrap(r.Error, "no push token accepted the notification")
			}
		}

		return errors.New("no push token accepted the notification")
	}

	return nil
}
