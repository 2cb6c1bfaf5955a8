package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/triply-app/triply/internal/domain"
)

// Trip options
type TripOption func(*domain.Trip)

func WithTripStatus(s domain.TripStatus) TripOption {
	return func(t *domain.Trip) {
		t.Status = s
	}
}

func WithEndDate(d time.Time) TripOption {
	return func(t *domain.Trip) {
		t.EndDate = &d
	}
}

func NewTestTrip(name string, opts ...TripOption) *domain.Trip {
	now := time.Now().UTC()
	t := &domain.Trip{
		ID:          uuid.New().String(),
		Name:        name,
		Destination: "Paris",
		StartDate:   now.AddDate(0, 0, 7),
		Status:      domain.TripPlanning,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Activity options
type ActivityOption func(*domain.Activity)

func WithLocation(loc string) ActivityOption {
	return func(a *domain.Activity) {
		a.Location = loc
	}
}

func WithDay(day int) ActivityOption {
	return func(a *domain.Activity) {
		a.Day = day
	}
}

// NewTestActivity builds an activity on day 1 of the given trip.
// An empty startTime means unscheduled.
func NewTestActivity(tripID, name, startTime string, opts ...ActivityOption) *domain.Activity {
	now := time.Now().UTC()
	a := &domain.Activity{
		ID:        uuid.New().String(),
		TripID:    tripID,
		Name:      name,
		Location:  name,
		Time:      startTime,
		Day:       1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
