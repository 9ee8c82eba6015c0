// Package pubsub wakes the notifier worker when alert messages are queued.
// Publishing is best effort: the notifier also polls the queue.
package pubsub

import (
	"context"
	"log/slog"

	"petfeeder/config"
	"petfeeder/internal/domain/constants"
	"petfeeder/internal/domain/service"
	"petfeeder/internal/errors"

	"go.uber.org/fx"
)

// disabledPublisher drops wakeups. The notifier's poll loop still drains the
// queue, only with more latency.
type disabledPublisher struct {
	logger *slog.Logger
}

func (p disabledPublisher) PublishMessagesQueued(ctx context.Context, event *service.MessagesQueuedEvent) error {
	p.logger.DebugContext(ctx, "wakeup dropped, no pubsub provider configured",
		slog.Int("message_count", len(event.MessageIDs)),
	)

	return nil
}

func (disabledPublisher) Close() error { return nil }

type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the wakeup transport from config and closes it on
// shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := selectPublisher(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.StopHook(func() error {
		return publisher.Close()
	}))

	return publisher, nil
}

func selectPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	if cfg == nil || cfg.Provider == "" {
		logger.Info("notifier wakeups disabled")

		return disabledPublisher{logger: logger}, nil
	}

	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("pubsub.localEndpoint must point at the notifier push route")
		}
		logger.Info("notifier wakeups via direct push", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		switch {
		case cfg.ProjectID == "":
			return nil, errors.New("pubsub.projectId is required for the google provider")
		case cfg.TopicID == "":
			return nil, errors.New("pubsub.topicId is required for the google provider")
		}

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider %q", cfg.Provider)
	}
}
