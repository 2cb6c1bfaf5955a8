package domain

import (
	"fmt"
	"regexp"
	"sort"
	"time"
)

var startTimePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Activity is one scheduled (or unscheduled) entry in a trip's day plan.
// Time is a zero-padded "HH:MM" local wall-clock string, or empty when the
// activity has no fixed start; unscheduled activities are excluded from
// travel computations.
type Activity struct {
	ID        string
	TripID    string
	Name      string
	Location  string
	Time      string
	Day       int
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateTime checks that Time, if set, is a well-formed zero-padded HH:MM
// value with hour in [0,23] and minute in [0,59].
func (a *Activity) ValidateTime() error {
	if a.Time == "" {
		return nil
	}
	if !startTimePattern.MatchString(a.Time) {
		return fmt.Errorf("time %q must be HH:MM (00:00-23:59)", a.Time)
	}
	return nil
}

// Scheduled reports whether the activity carries a start time.
func (a *Activity) Scheduled() bool {
	return a.Time != ""
}

// StartOn anchors the activity's HH:MM time onto the calendar date of ref,
// in ref's location. Returns the zero time for unscheduled activities.
func (a *Activity) StartOn(ref time.Time) time.Time {
	if a.Time == "" {
		return time.Time{}
	}
	t, err := time.Parse("15:04", a.Time)
	if err != nil {
		return time.Time{}
	}
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour(), t.Minute(), 0, 0, ref.Location())
}

// Place returns the free-text location used for travel estimation,
// falling back to the activity name when no location was entered.
func (a *Activity) Place() string {
	if a.Location != "" {
		return a.Location
	}
	return a.Name
}

// SortByTime orders activities ascending by their HH:MM start string.
// Plain lexicographic comparison is intentional: it matches chronological
// order for zero-padded times, and sorts unscheduled (empty) entries first.
func SortByTime(activities []*Activity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].Time < activities[j].Time
	})
}

// MinDay returns the smallest day number among activities, or 0 when the
// slice is empty.
func MinDay(activities []*Activity) int {
	day := 0
	for _, a := range activities {
		if day == 0 || a.Day < day {
			day = a.Day
		}
	}
	return day
}
