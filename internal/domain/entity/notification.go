package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationSettings are a user's alert toggles and delivery targets.
type NotificationSettings struct {
	UserID            uuid.UUID `json:"user_id"`            // The owning user.
	PushoverUserKey   string    `json:"pushover_user_key"`  // Pushover user or group key.
	PushoverDevices   []string  `json:"pushover_devices"`   // Pushover device names; empty means all.
	PushTokens        []string  `json:"push_tokens"`        // FCM registration tokens of the companion app.
	AutoFood          bool      `json:"auto_food"`          // Notify on scheduled feeds.
	ManualFood        bool      `json:"manual_food"`        // Notify on manual and remote feeds.
	FeederOffline     bool      `json:"feeder_offline"`     // Offline alert enabled.
	LowHopper         bool      `json:"low_hopper"`         // Low hopper alert enabled.
	PowerDisconnected bool      `json:"power_disconnected"` // Power alert enabled.
	LowBattery        bool      `json:"low_battery"`        // Low battery alert enabled.
	UpdatedAt         time.Time `json:"updated_at"`         // Timestamp of the last modification.
}

// AlertEnabled reports whether the user wants notifications for kind.
func (n *NotificationSettings) AlertEnabled(kind AlertKind) bool {
	switch kind {
	case AlertOffline:
		return n.FeederOffline
	case AlertPowerDisconnected:
		return n.PowerDisconnected
	case AlertLowBattery:
		return n.LowBattery
	case AlertLowHopper:
		return n.LowHopper
	}

	return false
}

// HasDeliveryTarget reports whether any notifier can reach the user.
func (n *NotificationSettings) HasDeliveryTarget() bool {
	return n.PushoverUserKey != "" || len(n.PushTokens) > 0
}
