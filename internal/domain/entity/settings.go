package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SettingsVersion is the current layout of SettingsRecord.
const SettingsVersion = 2

// SettingsRecord is the typed per-user configuration. Optional fields are
// pointers so an unset value can be told apart from a zero value.
type SettingsRecord struct {
	Version     int     `json:"version"`
	Timezone    *string `json:"timezone,omitempty"`      // IANA name, e.g. Europe/Berlin.
	TzPosix     *string `json:"tz_posix,omitempty"`      // POSIX TZ string handed to the device.
	IsSetupDone *bool   `json:"is_setup_done,omitempty"` // Onboarding finished.
	Clock24h    *bool   `json:"clock_24h,omitempty"`     // Display preference, added in version 2.
}

// UserSettings stores a SettingsRecord for one user.
type UserSettings struct {
	UserID    uuid.UUID      `json:"user_id"`
	Record    SettingsRecord `json:"settings"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// TimezoneOr returns the configured timezone or fallback.
func (r *SettingsRecord) TimezoneOr(fallback string) string {
	if r.Timezone == nil || *r.Timezone == "" {
		return fallback
	}

	return *r.Timezone
}

// Upgrade migrates an older record to SettingsVersion in place and reports
// whether anything changed.
func (r *SettingsRecord) Upgrade() bool {
	changed := false
	if r.Version < 1 {
		// Version 0 records came from the flat table and may lack the setup flag.
		if r.IsSetupDone == nil {
			done := false
			r.IsSetupDone = &done
		}
		r.Version = 1
		changed = true
	}
	if r.Version < 2 {
		if r.Clock24h == nil {
			on := true
			r.Clock24h = &on
		}
		r.Version = 2
		changed = true
	}

	return changed
}

// Merge overlays the fields set in patch onto r.
func (r *SettingsRecord) Merge(patch SettingsRecord) {
	if patch.Timezone != nil {
		r.Timezone = patch.Timezone
	}
	if patch.TzPosix != nil {
		r.TzPosix = patch.TzPosix
	}
	if patch.IsSetupDone != nil {
		r.IsSetupDone = patch.IsSetupDone
	}
	if patch.Clock24h != nil {
		r.Clock24h = patch.Clock24h
	}
}

// SettingsFromLegacy converts the old name/value rows into a record.
// Unknown names are ignored.
func SettingsFromLegacy(pairs map[string]string) SettingsRecord {
	var rec SettingsRecord
	for name, value := range pairs {
		value = strings.TrimSpace(value)
		switch name {
		case "timezone":
			tz := value
			rec.Timezone = &tz
		case "tz_esp32":
			tz := value
			rec.TzPosix = &tz
		case "is_setup_done":
			done, err := strconv.ParseBool(value)
			if err != nil {
				done = value != "" && value != "0"
			}
			rec.IsSetupDone = &done
		}
	}
	rec.Upgrade()

	return rec
}
