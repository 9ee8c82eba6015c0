package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"petfeeder/internal/domain/service"
	"petfeeder/internal/errors"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
)

// Wakeups are tiny and latency sensitive, so batching is kept short.
const wakeupBatchDelay = 10 * time.Millisecond

type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher fails fast when the topic is missing, so a
// misconfigured deployment does not start silently without wakeups.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "create pubsub client")
	}

	topic := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "lookup topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = wakeupBatchDelay

	logger.Info("notifier wakeups via google pubsub", slog.String("topic", topic))

	return &googlePubSubPublisher{client: client, publisher: publisher, logger: logger}, nil
}

// PublishMessagesQueued blocks until the server acknowledges the wakeup.
func (p *googlePubSubPublisher) PublishMessagesQueued(ctx context.Context, event *service.MessagesQueuedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: eventAttributes(event),
	}).Get(ctx)
	if err != nil {
		return errors.Wrap(err, "publish wakeup")
	}

	p.logger.DebugContext(ctx, "wakeup published",
		slog.String("server_id", serverID),
		slog.Int("message_count", len(event.MessageIDs)),
	)

	return nil
}

func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.WithStack(p.client.Close())
}
