// Package advisor implements the leave-by advisory engine: a pure
// per-cycle evaluation over a day's activities, a recurring re-evaluation
// loop owning the single active nudge, and the cancel/replace notification
// batch planner.
package advisor

import (
	"context"
	"time"

	"github.com/triply-app/triply/internal/domain"
)

// Clock supplies the current wall-clock time. Injectable for tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// NotificationSink schedules one-shot OS-level alerts. Implementations are
// treated as best effort: the advisor swallows sink errors because the
// in-app nudge is the primary signal.
type NotificationSink interface {
	Schedule(title, body string, fireAt time.Time) (string, error)
	CancelAll() error
}

// ActivitySource provides the per-cycle read-only activity snapshot.
type ActivitySource interface {
	ListByTrip(ctx context.Context, tripID string) ([]*domain.Activity, error)
}

// PrefsSource resolves the effective travel preferences for a trip
// (per-trip override over global defaults).
type PrefsSource interface {
	Effective(ctx context.Context, tripID string) (domain.TravelPrefs, error)
}
