package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triply-app/triply/internal/testutil"
)

func TestActivityRepo_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	trips := NewSQLiteTripRepo(db)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	trip := testutil.NewTestTrip("Paris")
	require.NoError(t, trips.Create(ctx, trip))

	a := testutil.NewTestActivity(trip.ID, "Louvre", "09:30", testutil.WithLocation("Rue de Rivoli"))
	a.Notes = "book tickets"
	require.NoError(t, repo.Create(ctx, a))

	fetched, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Louvre", fetched.Name)
	assert.Equal(t, "Rue de Rivoli", fetched.Location)
	assert.Equal(t, "09:30", fetched.Time)
	assert.Equal(t, 1, fetched.Day)
	assert.Equal(t, "book tickets", fetched.Notes)
}

func TestActivityRepo_ListByTrip_OrderedByDayThenTime(t *testing.T) {
	db := testutil.NewTestDB(t)
	trips := NewSQLiteTripRepo(db)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	trip := testutil.NewTestTrip("Paris")
	require.NoError(t, trips.Create(ctx, trip))

	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity(trip.ID, "dinner", "19:00", testutil.WithDay(2))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity(trip.ID, "lunch", "12:30")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity(trip.ID, "museum", "09:00")))

	got, err := repo.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "museum", got[0].Name)
	assert.Equal(t, "lunch", got[1].Name)
	assert.Equal(t, "dinner", got[2].Name)
}

func TestActivityRepo_ListByTripDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	trips := NewSQLiteTripRepo(db)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	trip := testutil.NewTestTrip("Paris")
	require.NoError(t, trips.Create(ctx, trip))

	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity(trip.ID, "day1", "09:00")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestActivity(trip.ID, "day2", "09:00", testutil.WithDay(2))))

	got, err := repo.ListByTripDay(ctx, trip.ID, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "day2", got[0].Name)
}

func TestActivityRepo_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	trips := NewSQLiteTripRepo(db)
	repo := NewSQLiteActivityRepo(db)
	ctx := context.Background()

	trip := testutil.NewTestTrip("Paris")
	require.NoError(t, trips.Create(ctx, trip))

	a := testutil.NewTestActivity(trip.ID, "Louvre", "09:30")
	require.NoError(t, repo.Create(ctx, a))

	a.Time = "10:15"
	a.Day = 3
	a.UpdatedAt = time.Now().UTC()
	require.NoError(t, repo.Update(ctx, a))

	fetched, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "10:15", fetched.Time)
	assert.Equal(t, 3, fetched.Day)
}

func TestActivityRepo_Delete_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteActivityRepo(db)

	err := repo.Delete(context.Background(), "missing")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
