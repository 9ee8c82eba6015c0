package entity

import (
	"time"

	"github.com/google/uuid"
)

// FeedType tells how a portion was triggered.
type FeedType string

const (
	FeedTypeManual    FeedType = "M" // Button on the feeder.
	FeedTypeScheduled FeedType = "S"
	FeedTypeRemote    FeedType = "R" // Feed-now request from the app.
)

// FeedingLog records one dispensed portion as reported by the device.
type FeedingLog struct {
	ID            uuid.UUID `json:"id"`
	DeviceOwnerID uuid.UUID `json:"device_owner_id"`
	PetName       string    `json:"pet_name"`
	FeedType      FeedType  `json:"feed_type"`
	FeedAmount    Portion   `json:"feed_amt"`
	FedAt         time.Time `json:"fed_at"`
	CreatedAt     time.Time `json:"created_at"`
}
