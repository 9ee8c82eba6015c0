package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// DayMask encodes active weekdays, bit 0 is Sunday and bit 6 Saturday.
type DayMask uint8

// AllDays has every weekday bit set.
const AllDays DayMask = 0x7f

// ErrInvalidTimeOfDay is returned when a clock time cannot be parsed.
var ErrInvalidTimeOfDay = errors.New("invalid time of day")

// DayBit returns the mask bit for a weekday.
func DayBit(day time.Weekday) DayMask {
	return DayMask(1) << uint(day)
}

// Has reports whether day is active in the mask.
func (m DayMask) Has(day time.Weekday) bool {
	return m&DayBit(day) != 0
}

// Valid reports whether at least one day and no unknown bits are set.
func (m DayMask) Valid() bool {
	return m != 0 && m&^AllDays == 0
}

// TimeOfDay is a wall clock time stored as seconds after midnight.
type TimeOfDay int

// ParseTimeOfDay accepts HH:MM or HH:MM:SS.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{time.TimeOnly, "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second()), nil
		}
	}

	return 0, ErrInvalidTimeOfDay
}

// ClockOf returns the time of day of t in t's own location.
func ClockOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// Duration returns the offset from midnight.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t) * time.Second
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, int(t)%3600/60, int(t)%60)
}

// MarshalJSON renders HH:MM:SS.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts HH:MM or HH:MM:SS.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.WithStack(err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed

	return nil
}

// Pet is the animal a schedule entry feeds.
type Pet struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedingSchedule is one weekly recurring meal of a feeder.
type FeedingSchedule struct {
	ID            uuid.UUID `json:"id"`
	DeviceOwnerID uuid.UUID `json:"device_owner_id"`
	PetID         uuid.UUID `json:"pet_id"`
	MotorTimingID uuid.UUID `json:"motor_timing_id"`
	Label         string    `json:"label"`
	Days          DayMask   `json:"dow"`
	UTCTime       TimeOfDay `json:"time"`       // Authoritative trigger time in UTC.
	LocalTime     TimeOfDay `json:"local_time"` // Display only, derived at write time.
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ScheduledMeal is a schedule entry joined with what the resolver reports.
type ScheduledMeal struct {
	Schedule *FeedingSchedule
	PetName  string
	Timing   MotorTiming
}
