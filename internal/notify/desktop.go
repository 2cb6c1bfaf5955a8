package notify

import (
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultNotifyCmd = "notify-send"

// DesktopSink schedules one-shot desktop notifications. Desktop
// notification daemons have no future-delivery API, so each schedule arms
// an in-process timer that runs the notify command at the fire instant.
// CancelAll stops every armed timer, which gives the scheduler its
// cancel/replace batch semantics.
type DesktopSink struct {
	cmd string

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// NewDesktopSink creates a sink that delivers through the given command
// (title and body passed as arguments). Empty cmd uses notify-send.
func NewDesktopSink(cmd string) *DesktopSink {
	if cmd == "" {
		cmd = defaultNotifyCmd
	}
	return &DesktopSink{
		cmd:    cmd,
		timers: make(map[string]*time.Timer),
	}
}

func (s *DesktopSink) Schedule(title, body string, fireAt time.Time) (string, error) {
	if _, err := exec.LookPath(s.cmd); err != nil {
		return "", fmt.Errorf("notify command %q unavailable: %w", s.cmd, err)
	}

	id := uuid.New().String()
	delay := time.Until(fireAt)
	if delay < 0 {
		delay = 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.timers[id] = time.AfterFunc(delay, func() {
		// Delivery is best effort; a failed exec is not reported anywhere.
		_ = exec.Command(s.cmd, title, body).Run()

		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
	})
	return id, nil
}

func (s *DesktopSink) CancelAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	return nil
}

// PendingCount returns the number of armed timers.
func (s *DesktopSink) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}
