package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertKind names one independently tracked health signal.
type AlertKind string

const (
	AlertOffline           AlertKind = "offline"
	AlertPowerDisconnected AlertKind = "power_disconnected"
	AlertLowBattery        AlertKind = "low_battery"
	AlertLowHopper         AlertKind = "low_hopper"
)

// HeartbeatAlertKinds are evaluated on every heartbeat, in this order.
var HeartbeatAlertKinds = []AlertKind{
	AlertOffline,
	AlertPowerDisconnected,
	AlertLowBattery,
	AlertLowHopper,
}

// AlertTracking holds the "currently alerting" flag per kind for one binding.
type AlertTracking struct {
	ID                uuid.UUID `json:"id"`
	DeviceOwnerID     uuid.UUID `json:"device_owner_id"`
	Offline           bool      `json:"offline_alert"`
	PowerDisconnected bool      `json:"power_disconnected_alert"`
	LowBattery        bool      `json:"low_battery_alert"`
	LowHopper         bool      `json:"low_hopper_alert"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Alerting returns the flag for kind.
func (a *AlertTracking) Alerting(kind AlertKind) bool {
	switch kind {
	case AlertOffline:
		return a.Offline
	case AlertPowerDisconnected:
		return a.PowerDisconnected
	case AlertLowBattery:
		return a.LowBattery
	case AlertLowHopper:
		return a.LowHopper
	}

	return false
}

// SetAlerting sets the flag for kind.
func (a *AlertTracking) SetAlerting(kind AlertKind, alerting bool) {
	switch kind {
	case AlertOffline:
		a.Offline = alerting
	case AlertPowerDisconnected:
		a.PowerDisconnected = alerting
	case AlertLowBattery:
		a.LowBattery = alerting
	case AlertLowHopper:
		a.LowHopper = alerting
	}
}
