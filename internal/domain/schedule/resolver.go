// Package schedule resolves the next occurrence of a weekly feeding schedule.
package schedule

import (
	"sort"
	"strings"
	"time"

	"petfeeder/internal/domain/entity"

	"github.com/google/uuid"
)

// NoMealName is reported when nothing is scheduled within a week.
const NoMealName = "No scheduled meal"

const daysPerWeek = 7

// Occurrence is a schedule entry pinned to a concrete instant.
type Occurrence struct {
	Meal      entity.ScheduledMeal
	At        time.Time // UTC
	DaysAhead int
}

// Resolve returns the first active meal at or after now. Days are matched in
// UTC since schedule times are stored in UTC. The search looks at the rest of
// today first, then each following day until a full week has been covered,
// including today's earlier meals one week out.
func Resolve(meals []entity.ScheduledMeal, now time.Time) (Occurrence, bool) {
	now = now.UTC()
	clock := entity.ClockOf(now)
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	for offset := 0; offset <= daysPerWeek; offset++ {
		day := time.Weekday((int(now.Weekday()) + offset) % daysPerWeek)

		var candidates []entity.ScheduledMeal
		for _, m := range meals {
			s := m.Schedule
			if s == nil || !s.Active || !s.Days.Has(day) {
				continue
			}
			if offset == 0 && s.UTCTime < clock {
				continue
			}
			candidates = append(candidates, m)
		}
		if len(candidates) == 0 {
			continue
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			a, b := candidates[i].Schedule, candidates[j].Schedule
			if a.UTCTime != b.UTCTime {
				return a.UTCTime < b.UTCTime
			}

			return a.ID.String() < b.ID.String()
		})
		first := candidates[0]

		return Occurrence{
			Meal:      first,
			At:        midnight.AddDate(0, 0, offset).Add(first.Schedule.UTCTime.Duration()),
			DaysAhead: offset,
		}, true
	}

	return Occurrence{}, false
}

// NextMeal is the wire shape of a resolved occurrence.
type NextMeal struct {
	HasMeal          bool       `json:"has_meal"`
	MealID           *uuid.UUID `json:"meal_id"`
	MealName         string     `json:"meal_name"`
	PetName          string     `json:"pet_name"`
	Size             string     `json:"size"`
	Duration         int        `json:"duration"`
	InterrupterCount int        `json:"interrupter_count"`
	FeedTimeUTC      string     `json:"feed_time_utc"`
	FeedTimeTZ       string     `json:"feed_time_tz"`
	FeedAt           *time.Time `json:"feed_at,omitempty"`
	Day              string     `json:"day"`
	DaysAhead        int        `json:"days_ahead"`
	DeviceOwnerID    *uuid.UUID `json:"device_owner_id,omitempty"`
}

// NoMeal is the sentinel returned when no occurrence exists.
func NoMeal() NextMeal {
	return NextMeal{MealName: NoMealName}
}

// Describe renders occ for a caller in loc.
func Describe(occ Occurrence, loc *time.Location) NextMeal {
	s := occ.Meal.Schedule
	id := s.ID
	ownerID := s.DeviceOwnerID
	local := occ.At.In(loc)

	return NextMeal{
		HasMeal:          true,
		MealID:           &id,
		MealName:         s.Label,
		PetName:          occ.Meal.PetName,
		Size:             occ.Meal.Timing.FeedAmount.String(),
		Duration:         occ.Meal.Timing.MotorDuration,
		InterrupterCount: occ.Meal.Timing.InterrupterCount,
		FeedTimeUTC:      occ.At.Format(time.TimeOnly),
		FeedTimeTZ:       local.Format(time.TimeOnly),
		FeedAt:           &local,
		Day:              DayLabel(occ.DaysAhead, occ.At),
		DaysAhead:        occ.DaysAhead,
		DeviceOwnerID:    &ownerID,
	}
}

// DayLabel names the day of an occurrence relative to the search start.
func DayLabel(daysAhead int, at time.Time) string {
	switch daysAhead {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return strings.ToLower(at.Weekday().String())
	}
}

// LoadLocation parses an IANA zone name. Empty means UTC.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}

	return time.LoadLocation(name)
}
