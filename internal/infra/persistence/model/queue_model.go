package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EventQueueModel is the GORM-specific struct for the 'event_queue' table.
// The partial unique index keeps at most one pending row per owner and code.
type EventQueueModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	DeviceOwnerID uuid.UUID      `gorm:"type:uuid;not null;index:idx_event_queue_pending,unique,where:status = 'pending';index:idx_event_queue_owner_created"`
	EventCode     int            `gorm:"not null;index:idx_event_queue_pending,unique,where:status = 'pending'"`
	Payload       datatypes.JSON `gorm:"type:json"`
	Status        string         `gorm:"type:varchar(16);not null"`
	CreatedAt     time.Time      `gorm:"index:idx_event_queue_owner_created"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (EventQueueModel) TableName() string {
	return "event_queue"
}

// MessageQueueModel is the GORM-specific struct for the 'message_queue' table.
type MessageQueueModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	DeviceOwnerID *uuid.UUID `gorm:"type:uuid;index"`
	Title         string     `gorm:"type:varchar(255);not null"`
	Message       string     `gorm:"type:text;not null"`
	Priority      int        `gorm:"not null;default:0"`
	Status        string     `gorm:"type:varchar(16);not null;index:idx_message_queue_status_created"`
	Error         string     `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"index:idx_message_queue_status_created"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (MessageQueueModel) TableName() string {
	return "message_queue"
}
