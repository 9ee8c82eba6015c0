// Package entity contains the core business objects of the project.
package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Device identity format. Lengths are exact, not minimums.
const (
	DeviceIdentifierLength = 19
	DeviceSecretLength     = 15
)

var deviceIdentifierPattern = regexp.MustCompile(`^ESP32-[0-9a-f]{4}-[0-9a-f]{8}$`)

// Device is a physical feeder as known to the backend. It is never deleted.
type Device struct {
	ID          uuid.UUID `json:"id"`          // The Global Unique Identifier (GUID) for the device record.
	Identifier  string    `json:"identifier"`  // Factory identifier, e.g. ESP32-ab12-deadbeef.
	SecretHash  string    `json:"-"`           // bcrypt hash of the factory secret.
	Provisioned bool      `json:"provisioned"` // True when loaded out of band rather than self-registered.
	CreatedAt   time.Time `json:"created_at"`  // Timestamp of first contact or provisioning.
	UpdatedAt   time.Time `json:"updated_at"`  // Timestamp of the last secret rotation.
}

// ValidDeviceCredentials reports whether identifier and secret satisfy the
// factory format contract.
func ValidDeviceCredentials(identifier, secret string) bool {
	return len(identifier) == DeviceIdentifierLength &&
		len(secret) == DeviceSecretLength &&
		deviceIdentifierPattern.MatchString(identifier)
}

// DeviceOwner binds one Device to one user. It is the unit of authorization
// for schedules, events and alerts.
type DeviceOwner struct {
	ID            uuid.UUID  `json:"id"`              // The Global Unique Identifier (GUID) for the binding.
	DeviceID      uuid.UUID  `json:"device_id"`       // The bound device.
	UserID        uuid.UUID  `json:"user_id"`         // The owning user (accounts live outside this service).
	Name          string     `json:"name"`            // Human label, also used as notification title.
	DeviceKey     string     `json:"-"`               // Per-binding credential presented by the device.
	MotorTimingID *uuid.UUID `json:"motor_timing_id"` // Default portion for manual feeds.
	ManualButton  bool       `json:"manual_button"`   // Whether the physical feed button is enabled.
	CreatedAt     time.Time  `json:"created_at"`      // Timestamp of activation.
	UpdatedAt     time.Time  `json:"updated_at"`      // Timestamp of the last modification.
}

// Feeder is a binding enriched with its device identity and health for listings.
type Feeder struct {
	Owner      *DeviceOwner  `json:"owner"`
	Identifier string        `json:"identifier"`
	Status     *DeviceStatus `json:"status,omitempty"`
}
