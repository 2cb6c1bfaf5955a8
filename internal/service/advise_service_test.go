package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triply-app/triply/internal/contract"
	"github.com/triply-app/triply/internal/domain"
	"github.com/triply-app/triply/internal/notify"
)

type adviseFixture struct {
	trips      TripService
	activities ActivityService
	settings   SettingsService
	advise     AdviseService
	sink       *notify.MemorySink
	trip       *domain.Trip
}

// newAdviseFixture seeds a one-day Paris plan: breakfast at the hotel,
// a museum visit at 10:00, dinner at 19:00.
func newAdviseFixture(t *testing.T) *adviseFixture {
	t.Helper()
	trips, activities, prefs := setupRepos(t)

	f := &adviseFixture{
		trips:      NewTripService(trips),
		activities: NewActivityService(activities, trips),
		settings:   NewSettingsService(prefs),
		sink:       notify.NewMemorySink(),
	}
	f.advise = NewAdviseService(trips, activities, f.settings, f.sink)
	f.trip = seedTrip(t, f.trips, "Paris")

	seedActivity(t, f.activities, f.trip.ID, "Breakfast", "09:00", "Hotel Lutetia", 1)
	seedActivity(t, f.activities, f.trip.ID, "Museum", "10:00", "Musee d'Orsay", 1)
	seedActivity(t, f.activities, f.trip.ID, "Dinner", "19:00", "Bistro Paul Bert", 1)
	return f
}

func adviseAt(tripID string, hhmm string) contract.AdviseRequest {
	parsed, _ := time.Parse("15:04", hhmm)
	now := time.Date(2025, 6, 10, parsed.Hour(), parsed.Minute(), 0, 0, time.UTC)
	req := contract.NewAdviseRequest(tripID)
	req.Now = &now
	return req
}

func TestAdviseService_Advise_AllOnTime(t *testing.T) {
	f := newAdviseFixture(t)

	resp, err := f.advise.Advise(context.Background(), adviseAt(f.trip.ID, "08:00"))
	require.NoError(t, err)

	assert.Equal(t, f.trip.ID, resp.TripID)
	assert.Equal(t, 1, resp.Day)
	assert.Equal(t, domain.ModeWalk, resp.Mode)
	require.Len(t, resp.Pairs, 2)
	assert.Nil(t, resp.Nudge)

	first := resp.Pairs[0]
	assert.Equal(t, "Breakfast", first.FromName)
	assert.Equal(t, "Museum", first.ToName)
	assert.Equal(t, domain.ModeWalk, first.Mode)
	assert.Equal(t, domain.LeaveOnTime, first.Status)
	assert.InDelta(t, first.DurationMin+first.BufferMin, first.TotalMin, 1e-9)
	assert.True(t, first.LeaveByAt.Before(time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC)))
}

func TestAdviseService_Advise_LateSetsNudge(t *testing.T) {
	f := newAdviseFixture(t)

	resp, err := f.advise.Advise(context.Background(), adviseAt(f.trip.ID, "10:30"))
	require.NoError(t, err)

	require.NotNil(t, resp.Nudge)
	assert.Equal(t, domain.SeverityAlert, resp.Nudge.Severity)
	assert.Equal(t, domain.LeaveLate, resp.Pairs[0].Status)
}

func TestAdviseService_Advise_ModeOverride(t *testing.T) {
	f := newAdviseFixture(t)

	req := adviseAt(f.trip.ID, "08:00")
	req.ModeOverride = domain.ModeDrive
	resp, err := f.advise.Advise(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeDrive, resp.Mode)
	for _, p := range resp.Pairs {
		assert.Equal(t, domain.ModeDrive, p.Mode)
	}
}

func TestAdviseService_Advise_InvalidModeOverride(t *testing.T) {
	f := newAdviseFixture(t)

	req := adviseAt(f.trip.ID, "08:00")
	req.ModeOverride = "teleport"
	_, err := f.advise.Advise(context.Background(), req)

	var advErr *contract.AdviseError
	require.True(t, errors.As(err, &advErr))
	assert.Equal(t, contract.ErrInvalidMode, advErr.Code)
}

func TestAdviseService_Advise_TripNotFound(t *testing.T) {
	f := newAdviseFixture(t)

	_, err := f.advise.Advise(context.Background(), adviseAt("no-such-trip", "08:00"))

	var advErr *contract.AdviseError
	require.True(t, errors.As(err, &advErr))
	assert.Equal(t, contract.ErrTripNotFound, advErr.Code)
}

func TestAdviseService_Advise_ExplicitDay(t *testing.T) {
	f := newAdviseFixture(t)
	seedActivity(t, f.activities, f.trip.ID, "Versailles", "09:00", "Chateau de Versailles", 2)
	seedActivity(t, f.activities, f.trip.ID, "Gardens", "14:00", "Versailles Gardens", 2)

	req := adviseAt(f.trip.ID, "08:00")
	req.Day = 2
	resp, err := f.advise.Advise(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Day)
	require.Len(t, resp.Pairs, 1)
	assert.Equal(t, "Versailles", resp.Pairs[0].FromName)
}

// Activity times are local wall-clock HH:MM, so when no explicit time is
// given Advise must read the local clock. A UTC default shifts every status
// by the zone offset on non-UTC hosts.
func TestAdviseService_Advise_NilNowUsesLocalClock(t *testing.T) {
	trips, activities, prefs := setupRepos(t)
	settings := NewSettingsService(prefs)
	advise := NewAdviseService(trips, activities, settings, notify.NewMemorySink())
	tripSvc := NewTripService(trips)
	actSvc := NewActivityService(activities, trips)
	trip := seedTrip(t, tripSvc, "Paris")

	// Pin the local zone hours away from UTC, placing the local wall clock
	// mid-afternoon so the plan stays on one calendar day.
	offset := (14 - time.Now().UTC().Hour()) * 3600
	if offset == 0 {
		offset = 3600
	}
	prevLocal := time.Local
	time.Local = time.FixedZone("UTC+X", offset)
	t.Cleanup(func() { time.Local = prevLocal })

	// Breakfast now, museum six minutes out. The walk there needs about 27
	// minutes including buffer, so departure is already overdue on the
	// local clock while a UTC clock would not even place it today.
	now := time.Now()
	seedActivity(t, actSvc, trip.ID, "Breakfast", now.Format("15:04"), "Hotel Lutetia", 1)
	seedActivity(t, actSvc, trip.ID, "Museum", now.Add(6*time.Minute).Format("15:04"), "Musee d'Orsay", 1)

	resp, err := advise.Advise(context.Background(), contract.NewAdviseRequest(trip.ID))
	require.NoError(t, err)
	require.Len(t, resp.Pairs, 1)
	assert.Equal(t, domain.LeaveLate, resp.Pairs[0].Status)

	_, gotOffset := resp.GeneratedAt.Zone()
	assert.Equal(t, offset, gotOffset)
}

func TestAdviseService_RecomputeSchedules_ReplacesBatch(t *testing.T) {
	f := newAdviseFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	// A stale alert from an earlier schedule must not survive a recompute.
	_, err := f.sink.Schedule("stale", "old plan", now.Add(time.Hour))
	require.NoError(t, err)

	accepted, err := f.advise.RecomputeSchedules(ctx, f.trip.ID, now)
	require.NoError(t, err)

	// Two pairs, each with a main alert and a heads-up.
	assert.Equal(t, 4, accepted)
	pending := f.sink.Pending()
	require.Len(t, pending, 4)
	for _, p := range pending {
		assert.NotEqual(t, "stale", p.Title)
	}
}

func TestAdviseService_RecomputeSchedules_Idempotent(t *testing.T) {
	f := newAdviseFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	first, err := f.advise.RecomputeSchedules(ctx, f.trip.ID, now)
	require.NoError(t, err)
	second, err := f.advise.RecomputeSchedules(ctx, f.trip.ID, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, f.sink.Pending(), first)
}

func TestAdviseService_RecomputeSchedules_UnknownTrip(t *testing.T) {
	f := newAdviseFixture(t)

	_, err := f.advise.RecomputeSchedules(context.Background(),
		"no-such-trip", time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC))
	assert.Error(t, err)
}
