package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/triply-app/triply/internal/domain"
)

const globalScope = "global"

// SQLiteTravelPrefsRepo implements TravelPrefsRepo using a SQLite database.
// A missing row is not an error: Get methods return nil to let the service
// layer fall back to defaults or the global scope.
type SQLiteTravelPrefsRepo struct {
	db *sql.DB
}

// NewSQLiteTravelPrefsRepo creates a new SQLiteTravelPrefsRepo.
func NewSQLiteTravelPrefsRepo(db *sql.DB) *SQLiteTravelPrefsRepo {
	return &SQLiteTravelPrefsRepo{db: db}
}

func (r *SQLiteTravelPrefsRepo) GetGlobal(ctx context.Context) (*domain.TravelPrefs, error) {
	return r.get(ctx, globalScope)
}

func (r *SQLiteTravelPrefsRepo) GetForTrip(ctx context.Context, tripID string) (*domain.TravelPrefs, error) {
	return r.get(ctx, tripID)
}

func (r *SQLiteTravelPrefsRepo) get(ctx context.Context, scope string) (*domain.TravelPrefs, error) {
	query := `SELECT mode, walking_speed_kmh, buffer_min FROM travel_prefs WHERE scope = ?`
	var mode string
	var p domain.TravelPrefs
	err := r.db.QueryRowContext(ctx, query, scope).Scan(&mode, &p.Settings.WalkingSpeedKmh, &p.Settings.DefaultBufferMin)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading travel prefs for %s: %w", scope, err)
	}
	p.Mode = domain.TravelMode(mode)
	return &p, nil
}

func (r *SQLiteTravelPrefsRepo) SetGlobal(ctx context.Context, p domain.TravelPrefs) error {
	return r.set(ctx, globalScope, p)
}

func (r *SQLiteTravelPrefsRepo) SetForTrip(ctx context.Context, tripID string, p domain.TravelPrefs) error {
	return r.set(ctx, tripID, p)
}

func (r *SQLiteTravelPrefsRepo) set(ctx context.Context, scope string, p domain.TravelPrefs) error {
	query := `INSERT INTO travel_prefs (scope, mode, walking_speed_kmh, buffer_min, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(scope) DO UPDATE SET
			mode = excluded.mode,
			walking_speed_kmh = excluded.walking_speed_kmh,
			buffer_min = excluded.buffer_min,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query, scope, string(p.Mode), p.Settings.WalkingSpeedKmh, p.Settings.DefaultBufferMin, nowUTC())
	if err != nil {
		return fmt.Errorf("saving travel prefs for %s: %w", scope, err)
	}
	return nil
}

func (r *SQLiteTravelPrefsRepo) ClearForTrip(ctx context.Context, tripID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM travel_prefs WHERE scope = ?`, tripID); err != nil {
		return fmt.Errorf("clearing travel prefs for %s: %w", tripID, err)
	}
	return nil
}
