package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/triply-app/triply/internal/domain"
	"github.com/triply-app/triply/internal/repository"
	"github.com/triply-app/triply/internal/testutil"
)

func setupRepos(t *testing.T) (repository.TripRepo, repository.ActivityRepo, repository.TravelPrefsRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repository.NewSQLiteTripRepo(database),
		repository.NewSQLiteActivityRepo(database),
		repository.NewSQLiteTravelPrefsRepo(database)
}

// seedTrip creates a trip through the service so IDs and timestamps are
// assigned the same way production code does.
func seedTrip(t *testing.T, trips TripService, name string) *domain.Trip {
	t.Helper()
	trip := &domain.Trip{
		Name:        name,
		Destination: "Paris",
		StartDate:   time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, trips.Create(context.Background(), trip))
	return trip
}

func seedActivity(t *testing.T, activities ActivityService, tripID, name, startTime, location string, day int) *domain.Activity {
	t.Helper()
	act := &domain.Activity{
		TripID:   tripID,
		Name:     name,
		Location: location,
		Time:     startTime,
		Day:      day,
	}
	require.NoError(t, activities.Create(context.Background(), act))
	return act
}
