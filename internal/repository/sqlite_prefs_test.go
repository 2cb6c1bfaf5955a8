package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triply-app/triply/internal/domain"
	"github.com/triply-app/triply/internal/testutil"
)

func TestTravelPrefsRepo_MissingRowsReturnNil(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTravelPrefsRepo(db)
	ctx := context.Background()

	global, err := repo.GetGlobal(ctx)
	require.NoError(t, err)
	assert.Nil(t, global)

	trip, err := repo.GetForTrip(ctx, "some-trip")
	require.NoError(t, err)
	assert.Nil(t, trip)
}

func TestTravelPrefsRepo_SetAndGetGlobal(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTravelPrefsRepo(db)
	ctx := context.Background()

	p := domain.TravelPrefs{
		Mode:     domain.ModeTransit,
		Settings: domain.TravelSettings{WalkingSpeedKmh: 5.2, DefaultBufferMin: 8},
	}
	require.NoError(t, repo.SetGlobal(ctx, p))

	got, err := repo.GetGlobal(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.ModeTransit, got.Mode)
	assert.Equal(t, 5.2, got.Settings.WalkingSpeedKmh)
	assert.Equal(t, 8.0, got.Settings.DefaultBufferMin)
}

func TestTravelPrefsRepo_SetGlobal_Upserts(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTravelPrefsRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.SetGlobal(ctx, domain.DefaultTravelPrefs()))
	p := domain.DefaultTravelPrefs()
	p.Mode = domain.ModeAuto
	require.NoError(t, repo.SetGlobal(ctx, p))

	got, err := repo.GetGlobal(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAuto, got.Mode)
}

func TestTravelPrefsRepo_PerTripScopeIsIndependent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTravelPrefsRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.SetGlobal(ctx, domain.DefaultTravelPrefs()))

	override := domain.TravelPrefs{
		Mode:     domain.ModeDrive,
		Settings: domain.TravelSettings{WalkingSpeedKmh: 4.5, DefaultBufferMin: 12},
	}
	require.NoError(t, repo.SetForTrip(ctx, "trip-1", override))

	global, err := repo.GetGlobal(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeWalk, global.Mode)

	trip, err := repo.GetForTrip(ctx, "trip-1")
	require.NoError(t, err)
	require.NotNil(t, trip)
	assert.Equal(t, domain.ModeDrive, trip.Mode)

	require.NoError(t, repo.ClearForTrip(ctx, "trip-1"))
	trip, err = repo.GetForTrip(ctx, "trip-1")
	require.NoError(t, err)
	assert.Nil(t, trip)
}
