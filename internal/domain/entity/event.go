package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventCode is the command a device executes when it drains its queue.
type EventCode int

// Known device commands.
const (
	EventFeedNow         EventCode = 100
	EventFirmwareUpgrade EventCode = 200
	EventScheduleSync    EventCode = 300
	EventSettingsSync    EventCode = 400
)

// EventStatus is the lifecycle state of a queued command.
type EventStatus string

const (
	EventStatusPending   EventStatus = "pending"
	EventStatusCompleted EventStatus = "completed"
)

// EventQueueEntry is a command waiting for, or acknowledged by, a device.
type EventQueueEntry struct {
	ID            uuid.UUID       `json:"id"`
	DeviceOwnerID uuid.UUID       `json:"device_owner_id"`
	Code          EventCode       `json:"event_code"`
	Payload       json.RawMessage `json:"payload,omitempty"`
	Status        EventStatus     `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// IsPending reports whether the device still has to run the command.
func (e *EventQueueEntry) IsPending() bool {
	return e.Status == EventStatusPending
}

// FeedNowPayload is carried by EventFeedNow.
type FeedNowPayload struct {
	FeedAmount float64 `json:"feed_amt"`
	Ticks      int     `json:"ticks"`
}

// FirmwareUpgradePayload is carried by EventFirmwareUpgrade.
type FirmwareUpgradePayload struct {
	Version string `json:"version"`
	URL     string `json:"url"`
	SHA256  string `json:"sha256,omitempty"`
	Size    int64  `json:"size,omitempty"`
}
