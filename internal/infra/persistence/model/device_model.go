package model

import (
	"time"

	"github.com/google/uuid"
)

// DeviceModel is the GORM-specific struct for the 'devices' table.
// Rows are never deleted.
type DeviceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Identifier  string    `gorm:"type:varchar(19);not null;uniqueIndex"`
	SecretHash  string    `gorm:"type:varchar(255);not null"`
	Provisioned bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

// DeviceOwnerModel is the GORM-specific struct for the 'device_owners' table.
// The unique device_id enforces single ownership.
type DeviceOwnerModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeviceID      uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name          string     `gorm:"type:varchar(100);not null"`
	DeviceKey     string     `gorm:"type:varchar(64);not null;uniqueIndex"`
	MotorTimingID *uuid.UUID `gorm:"type:uuid"`
	ManualButton  bool       `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceOwnerModel) TableName() string {
	return "device_owners"
}

// DeviceStatusModel is the GORM-specific struct for the 'device_status' table.
type DeviceStatusModel struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceID             uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	LastBoot             time.Time `gorm:"not null"`
	LastPing             time.Time `gorm:"not null;index"`
	BatteryVoltage       float64   `gorm:"not null;default:0"`
	BatterySOC           float64   `gorm:"column:battery_soc;not null;default:0"`
	BatteryCRate         float64   `gorm:"column:battery_crate;not null;default:0"`
	HopperLevel          float64   `gorm:"not null;default:0"`
	IsHopperLow          bool      `gorm:"not null;default:false"`
	OnPower              bool      `gorm:"not null"`
	HasEvent             bool      `gorm:"not null;default:false"`
	FirmwareVersion      string    `gorm:"type:varchar(32)"`
	ControlBoardRevision string    `gorm:"type:varchar(32)"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeviceStatusModel) TableName() string {
	return "device_status"
}
