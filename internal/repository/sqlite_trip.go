package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/triply-app/triply/internal/domain"
)

// tripColumns is the canonical SELECT column list for trips.
const tripColumns = `id, name, destination, start_date, end_date, status, archived_at, created_at, updated_at`

// SQLiteTripRepo implements TripRepo using a SQLite database.
type SQLiteTripRepo struct {
	db *sql.DB
}

// NewSQLiteTripRepo creates a new SQLiteTripRepo.
func NewSQLiteTripRepo(db *sql.DB) *SQLiteTripRepo {
	return &SQLiteTripRepo{db: db}
}

func (r *SQLiteTripRepo) Create(ctx context.Context, t *domain.Trip) error {
	query := `INSERT INTO trips (` + tripColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Destination,
		t.StartDate.Format(dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		string(t.Status),
		nullableTimeToString(t.ArchivedAt, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting trip: %w", err)
	}
	return nil
}

func (r *SQLiteTripRepo) GetByID(ctx context.Context, id string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	t, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("trip %s not found", id)
	}
	return t, err
}

func (r *SQLiteTripRepo) List(ctx context.Context, includeArchived bool) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips`
	if !includeArchived {
		query += ` WHERE archived_at IS NULL`
	}
	query += ` ORDER BY start_date, created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing trips: %w", err)
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

func (r *SQLiteTripRepo) Update(ctx context.Context, t *domain.Trip) error {
	query := `UPDATE trips SET name = ?, destination = ?, start_date = ?, end_date = ?,
		status = ?, archived_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Name,
		t.Destination,
		t.StartDate.Format(dateLayout),
		nullableTimeToString(t.EndDate, dateLayout),
		string(t.Status),
		nullableTimeToString(t.ArchivedAt, time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip %s not found", t.ID)
	}
	return nil
}

func (r *SQLiteTripRepo) Archive(ctx context.Context, id string) error {
	query := `UPDATE trips SET status = 'archived', archived_at = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, nowUTC(), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("archiving trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking archive result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip %s not found", id)
	}
	return nil
}

func (r *SQLiteTripRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM trips WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting trip: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("trip %s not found", id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTrip(row rowScanner) (*domain.Trip, error) {
	var t domain.Trip
	var startDate, createdAt, updatedAt string
	var endDate, archivedAt sql.NullString
	var status string

	err := row.Scan(&t.ID, &t.Name, &t.Destination, &startDate, &endDate, &status, &archivedAt, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning trip: %w", err)
	}

	t.Status = domain.TripStatus(status)
	if t.StartDate, err = time.Parse(dateLayout, startDate); err != nil {
		return nil, fmt.Errorf("parsing trip start date: %w", err)
	}
	t.EndDate = parseNullableTime(endDate, dateLayout)
	t.ArchivedAt = parseNullableTime(archivedAt, time.RFC3339)
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing trip created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing trip updated_at: %w", err)
	}
	return &t, nil
}
