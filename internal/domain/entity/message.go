package entity

import (
	"time"

	"github.com/google/uuid"
)

// MessageStatus tracks delivery of a queued notification.
type MessageStatus string

const (
	MessageStatusPending MessageStatus = "pending"
	MessageStatusSent    MessageStatus = "sent"
	MessageStatusError   MessageStatus = "error"
)

// MessageQueueEntry is a fully formed notification awaiting delivery.
type MessageQueueEntry struct {
	ID            uuid.UUID     `json:"id"`              // The Global Unique Identifier (GUID) for the message.
	UserID        uuid.UUID     `json:"user_id"`         // Recipient.
	DeviceOwnerID *uuid.UUID    `json:"device_owner_id"` // Feeder the message is about, if any.
	Title         string        `json:"title"`           // Usually the feeder name.
	Message       string        `json:"message"`         // Notification body.
	Priority      int           `json:"priority"`        // Pushover priority, -2..2.
	Status        MessageStatus `json:"status"`          // pending, sent or error.
	Error         string        `json:"error,omitempty"` // Last delivery failure.
	CreatedAt     time.Time     `json:"created_at"`      // Timestamp of when the message was queued.
	UpdatedAt     time.Time     `json:"updated_at"`      // Timestamp of the last status change.
}

// NewOwnerMessage builds a pending message about a feeder.
func NewOwnerMessage(owner *DeviceOwner, text string, now time.Time) *MessageQueueEntry {
	ownerID := owner.ID

	return &MessageQueueEntry{
		ID:            uuid.Must(uuid.NewV7()),
		UserID:        owner.UserID,
		DeviceOwnerID: &ownerID,
		Title:         owner.Name,
		Message:       text,
		Status:        MessageStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
