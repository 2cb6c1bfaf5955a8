package advisor

import (
	"context"
	"sync"
	"time"

	"github.com/triply-app/triply/internal/domain"
)

// DefaultInterval is the recurring re-evaluation period.
const DefaultInterval = 30 * time.Second

// Advisor owns the advisory loop for one trip: the recurring evaluation
// cycle and the single current-nudge slot. The slot has exactly two
// transitions, set and clear, and is fully replaced each cycle.
type Advisor struct {
	tripID     string
	activities ActivitySource
	prefs      PrefsSource
	sink       NotificationSink
	clock      Clock
	interval   time.Duration
	observer   Observer

	mu      sync.Mutex
	current *domain.Nudge

	done chan struct{}
}

// Option configures an Advisor.
type Option func(*Advisor)

// WithInterval overrides the default 30 second cycle interval.
func WithInterval(d time.Duration) Option {
	return func(a *Advisor) {
		a.interval = d
	}
}

// WithClock injects a clock.
func WithClock(c Clock) Option {
	return func(a *Advisor) {
		a.clock = c
	}
}

// WithObserver injects a cycle observer.
func WithObserver(o Observer) Option {
	return func(a *Advisor) {
		a.observer = o
	}
}

// New creates an Advisor for the given trip.
func New(tripID string, activities ActivitySource, prefs PrefsSource, sink NotificationSink, opts ...Option) *Advisor {
	a := &Advisor{
		tripID:     tripID,
		activities: activities,
		prefs:      prefs,
		sink:       sink,
		clock:      SystemClock{},
		interval:   DefaultInterval,
		observer:   NoopObserver{},
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start runs one immediate cycle, then re-evaluates on every tick until
// ctx is cancelled. It should be called in a goroutine; cancelling ctx
// stops the ticker and closes the done channel.
func (a *Advisor) Start(ctx context.Context) {
	ticker := time.NewTicker(a.interval)
	defer func() {
		ticker.Stop()
		close(a.done)
	}()

	a.RunCycle(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.RunCycle(ctx)
		}
	}
}

// Wait blocks until the loop has stopped.
func (a *Advisor) Wait() {
	<-a.done
}

// Current returns the active nudge, or nil when none is set.
func (a *Advisor) Current() *domain.Nudge {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// RunCycle performs one evaluation: snapshot, pure evaluate, publish the
// nudge slot, and apply the immediate-alert side effect if requested.
// Any error leaves the previous nudge untouched for the next cycle.
func (a *Advisor) RunCycle(ctx context.Context) {
	activities, err := a.activities.ListByTrip(ctx, a.tripID)
	if err != nil {
		return
	}
	prefs, err := a.prefs.Effective(ctx, a.tripID)
	if err != nil {
		return
	}

	now := a.clock.Now()
	decision := Evaluate(activities, prefs.Mode, prefs.Settings, now)

	a.mu.Lock()
	a.current = decision.Nudge
	a.mu.Unlock()

	event := CycleEvent{
		TripID:       a.tripID,
		PairsChecked: decision.PairsChecked,
		PairsSkipped: decision.PairsSkipped,
		NudgeSet:     decision.Nudge != nil,
	}
	if decision.Immediate != nil {
		// Best effort: the nudge stays correct even when the sink cannot
		// deliver.
		if _, err := a.sink.Schedule(decision.Immediate.Title, decision.Immediate.Body, decision.Immediate.FireAt); err != nil {
			event.SinkError = err.Error()
		}
	}
	a.observer.OnCycleComplete(event)
}
