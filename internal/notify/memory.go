// Package notify provides notification sinks for the advisory engine:
// a desktop sink that fires OS notifications through a configurable
// command, and an in-memory sink for tests and non-interactive runs.
package notify

import (
	"fmt"
	"sync"
	"time"
)

// PendingAlert is one scheduled, not-yet-fired notification.
type PendingAlert struct {
	ID     string
	Title  string
	Body   string
	FireAt time.Time
}

// MemorySink records scheduled alerts without delivering anything.
type MemorySink struct {
	mu      sync.Mutex
	nextID  int
	pending []PendingAlert
}

// NewMemorySink creates an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (s *MemorySink) Schedule(title, body string, fireAt time.Time) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := fmt.Sprintf("alert-%d", s.nextID)
	s.pending = append(s.pending, PendingAlert{ID: id, Title: title, Body: body, FireAt: fireAt})
	return id, nil
}

func (s *MemorySink) CancelAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	return nil
}

// Pending returns a snapshot of the currently scheduled alerts.
func (s *MemorySink) Pending() []PendingAlert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]PendingAlert, len(s.pending))
	copy(out, s.pending)
	return out
}
