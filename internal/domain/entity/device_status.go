package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// DeviceStatus is the latest known health of a device.
type DeviceStatus struct {
	ID                   uuid.UUID `json:"id"`
	DeviceID             uuid.UUID `json:"device_id"`
	LastBoot             time.Time `json:"last_boot"`
	LastPing             time.Time `json:"last_ping"`
	BatteryVoltage       float64   `json:"battery_voltage"`
	BatterySOC           float64   `json:"battery_soc"`   // State of charge, percent.
	BatteryCRate         float64   `json:"battery_crate"` // Percent per hour; negative while discharging.
	HopperLevel          float64   `json:"hopper_level"`  // Percent, set by the owner.
	IsHopperLow          bool      `json:"is_hopper_low"`
	OnPower              bool      `json:"on_power"`
	HasEvent             bool      `json:"has_event"`
	FirmwareVersion      string    `json:"firmware_version"`
	ControlBoardRevision string    `json:"control_board_revision"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewDeviceStatus returns the status a device has before its first heartbeat.
func NewDeviceStatus(deviceID uuid.UUID, now time.Time) *DeviceStatus {
	return &DeviceStatus{
		ID:       uuid.Must(uuid.NewV7()),
		DeviceID: deviceID,
		LastBoot: now,
		LastPing: now,
		OnPower:  true,
	}
}

// RuntimeSeconds estimates battery time from the charge rate. A positive rate
// yields time to full, a negative rate time to empty, zero yields zero.
func (s *DeviceStatus) RuntimeSeconds() float64 {
	switch {
	case s.BatteryCRate > 0:
		return ((100 - s.BatterySOC) / s.BatteryCRate) * 3600
	case s.BatteryCRate < 0:
		return (s.BatterySOC / math.Abs(s.BatteryCRate)) * 3600
	default:
		return 0
	}
}

// TelemetryUpdate is the allow-listed set of fields a heartbeat may change.
// Nil fields are left untouched.
type TelemetryUpdate struct {
	BatterySOC           *float64 `json:"battery_soc"`
	BatteryVoltage       *float64 `json:"battery_voltage"`
	BatteryCRate         *float64 `json:"battery_crate"`
	OnPower              *bool    `json:"on_power"`
	ControlBoardRevision *string  `json:"control_board_revision"`
	FirmwareVersion      *string  `json:"firmware_version"`
	IsHopperLow          *bool    `json:"is_hopper_low"`
}

// Apply copies the present telemetry fields onto s.
func (u TelemetryUpdate) Apply(s *DeviceStatus) {
	if u.BatterySOC != nil {
		s.BatterySOC = *u.BatterySOC
	}
	if u.BatteryVoltage != nil {
		s.BatteryVoltage = *u.BatteryVoltage
	}
	if u.BatteryCRate != nil {
		s.BatteryCRate = *u.BatteryCRate
	}
	if u.OnPower != nil {
		s.OnPower = *u.OnPower
	}
	if u.ControlBoardRevision != nil {
		s.ControlBoardRevision = *u.ControlBoardRevision
	}
	if u.FirmwareVersion != nil {
		s.FirmwareVersion = *u.FirmwareVersion
	}
	if u.IsHopperLow != nil {
		s.IsHopperLow = *u.IsHopperLow
	}
}
