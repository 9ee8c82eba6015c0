package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "petfeeder/internal/delivery/context"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/errors"

	"github.com/google/uuid"
)

const (
	localPushTimeout      = 10 * time.Second
	localPushSubscription = "projects/local/subscriptions/notifier-wakeup"
)

// localHTTPPublisher skips the broker and POSTs push envelopes straight at
// the notifier, the same shape Google would deliver.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
}

// PushMessage is the envelope of a Pub/Sub push delivery.
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
		now:        time.Now,
	}
}

func (p *localHTTPPublisher) envelope(event *service.MessagesQueuedEvent) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var msg PushMessage
	msg.Subscription = localPushSubscription
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = eventAttributes(event)
	msg.Message.MessageID = uuid.NewString()
	msg.Message.PublishTime = p.now().UTC().Format(time.RFC3339Nano)

	body, err := json.Marshal(msg)

	return body, errors.WithStack(err)
}

func (p *localHTTPPublisher) PublishMessagesQueued(ctx context.Context, event *service.MessagesQueuedEvent) error {
	body, err := p.envelope(event)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "push wakeup")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return errors.Errorf("notifier answered wakeup with %d", resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "wakeup pushed",
		slog.String("endpoint", p.endpoint),
		slog.Int("message_count", len(event.MessageIDs)),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}

// eventAttributes lets subscribers filter without decoding the payload.
func eventAttributes(event *service.MessagesQueuedEvent) map[string]string {
	attributes := map[string]string{
		"event":         "messages_queued",
		"message_count": strconv.Itoa(len(event.MessageIDs)),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
