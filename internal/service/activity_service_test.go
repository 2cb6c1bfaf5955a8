package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triply-app/triply/internal/domain"
)

func TestActivityService_Create_Roundtrip(t *testing.T) {
	trips, activities, _ := setupRepos(t)
	ctx := context.Background()

	tripSvc := NewTripService(trips)
	actSvc := NewActivityService(activities, trips)

	trip := seedTrip(t, tripSvc, "Paris")
	act := seedActivity(t, actSvc, trip.ID, "Louvre visit", "10:30", "Louvre", 1)

	assert.NotEmpty(t, act.ID)
	fetched, err := actSvc.GetByID(ctx, act.ID)
	require.NoError(t, err)
	assert.Equal(t, "Louvre visit", fetched.Name)
	assert.Equal(t, "10:30", fetched.Time)
	assert.Equal(t, 1, fetched.Day)
}

func TestActivityService_Create_RejectsBadTime(t *testing.T) {
	trips, activities, _ := setupRepos(t)
	ctx := context.Background()

	tripSvc := NewTripService(trips)
	actSvc := NewActivityService(activities, trips)
	trip := seedTrip(t, tripSvc, "Paris")

	for _, bad := range []string{"9:30", "25:00", "12:60", "noonish"} {
		err := actSvc.Create(ctx, &domain.Activity{
			TripID: trip.ID,
			Name:   "Bad time",
			Time:   bad,
			Day:    1,
		})
		assert.Error(t, err, "time %q should be rejected", bad)
	}
}

func TestActivityService_Create_AllowsUnscheduled(t *testing.T) {
	trips, activities, _ := setupRepos(t)
	tripSvc := NewTripService(trips)
	actSvc := NewActivityService(activities, trips)
	trip := seedTrip(t, tripSvc, "Paris")

	err := actSvc.Create(context.Background(), &domain.Activity{
		TripID: trip.ID,
		Name:   "Wander the Marais",
		Day:    2,
	})
	require.NoError(t, err)
}

func TestActivityService_Create_RejectsUnknownTrip(t *testing.T) {
	trips, activities, _ := setupRepos(t)
	actSvc := NewActivityService(activities, trips)

	err := actSvc.Create(context.Background(), &domain.Activity{
		TripID: "no-such-trip",
		Name:   "Orphan",
		Day:    1,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "resolving trip")
}

func TestActivityService_Create_RejectsDayBelowOne(t *testing.T) {
	trips, activities, _ := setupRepos(t)
	tripSvc := NewTripService(trips)
	actSvc := NewActivityService(activities, trips)
	trip := seedTrip(t, tripSvc, "Paris")

	err := actSvc.Create(context.Background(), &domain.Activity{
		TripID: trip.ID,
		Name:   "Day zero",
		Day:    0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "day must be 1 or greater")
}

func TestActivityService_ListForDay_SortedByTime(t *testing.T) {
	trips, activities, _ := setupRepos(t)
	ctx := context.Background()

	tripSvc := NewTripService(trips)
	actSvc := NewActivityService(activities, trips)
	trip := seedTrip(t, tripSvc, "Paris")

	seedActivity(t, actSvc, trip.ID, "Dinner", "19:00", "Bistro", 1)
	seedActivity(t, actSvc, trip.ID, "Breakfast", "08:00", "Cafe", 1)
	seedActivity(t, actSvc, trip.ID, "Museum", "10:00", "Musee d'Orsay", 1)
	seedActivity(t, actSvc, trip.ID, "Other day", "09:00", "Versailles", 2)

	day1, err := actSvc.ListForDay(ctx, trip.ID, 1)
	require.NoError(t, err)
	require.Len(t, day1, 3)
	assert.Equal(t, []string{"08:00", "10:00", "19:00"}, []string{day1[0].Time, day1[1].Time, day1[2].Time})
}
