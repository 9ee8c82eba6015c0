package service

import (
	"context"

	"petfeeder/internal/domain/entity"
)

// Notifier delivers one queued message to the targets in settings.
type Notifier interface {
	Send(ctx context.Context, settings *entity.NotificationSettings, message *entity.MessageQueueEntry) error
}
