package service

import (
	"context"
)

// MessagesQueuedEvent tells the notifier worker that messages are waiting.
type MessagesQueuedEvent struct {
	RequestID  string   `json:"request_id,omitempty"` // For distributed tracing
	MessageIDs []string `json:"message_ids"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMessagesQueued publishes a wakeup for the notifier worker.
	PublishMessagesQueued(ctx context.Context, event *MessagesQueuedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
