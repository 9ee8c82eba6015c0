package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AlertTrackingModel is the GORM-specific struct for the 'notification_alert_tracking' table.
type AlertTrackingModel struct {
	ID                     uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeviceOwnerID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	OfflineAlert           bool      `gorm:"not null;default:false"`
	PowerDisconnectedAlert bool      `gorm:"not null;default:false"`
	LowBatteryAlert        bool      `gorm:"not null;default:false"`
	LowHopperAlert         bool      `gorm:"not null;default:false"`
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertTrackingModel) TableName() string {
	return "notification_alert_tracking"
}

// NotificationSettingsModel is the GORM-specific struct for the 'notification_settings' table.
type NotificationSettingsModel struct {
	UserID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	PushoverUserKey   string                      `gorm:"type:varchar(64)"`
	PushoverDevices   datatypes.JSONSlice[string] `gorm:"type:json"`
	PushTokens        datatypes.JSONSlice[string] `gorm:"type:json"`
	AutoFood          bool                        `gorm:"not null;default:false"`
	ManualFood        bool                        `gorm:"not null;default:false"`
	FeederOffline     bool                        `gorm:"not null"`
	LowHopper         bool                        `gorm:"not null"`
	PowerDisconnected bool                        `gorm:"not null"`
	LowBattery        bool                        `gorm:"not null"`
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationSettingsModel) TableName() string {
	return "notification_settings"
}

// UserSettingsModel is the GORM-specific struct for the 'user_settings' table.
type UserSettingsModel struct {
	UserID    uuid.UUID                              `gorm:"type:uuid;primaryKey"`
	Record    datatypes.JSONType[UserSettingsRecord] `gorm:"type:json"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// UserSettingsRecord is the stored shape of the typed settings record.
type UserSettingsRecord struct {
	Version     int     `json:"version"`
	Timezone    *string `json:"timezone,omitempty"`
	TzPosix     *string `json:"tz_posix,omitempty"`
	IsSetupDone *bool   `json:"is_setup_done,omitempty"`
	Clock24h    *bool   `json:"clock_24h,omitempty"`
}
