package advisor

import (
	"fmt"
	"io"
	"time"
)

// CycleEvent records the outcome of one advisory evaluation cycle.
type CycleEvent struct {
	TripID       string
	PairsChecked int
	PairsSkipped int
	NudgeSet     bool
	SinkError    string
}

// Observer receives events about advisory cycles for logging.
type Observer interface {
	OnCycleComplete(event CycleEvent)
}

// LogObserver writes cycle events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCycleComplete(event CycleEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	nudge := "clear"
	if event.NudgeSet {
		nudge = "set"
	}
	line := fmt.Sprintf("[%s] advisor_cycle trip=%s pairs=%d skipped=%d nudge=%s",
		ts, event.TripID, event.PairsChecked, event.PairsSkipped, nudge)
	if event.SinkError != "" {
		line += " sink_err=" + event.SinkError
	}
	fmt.Fprintln(o.w, line)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCycleComplete(CycleEvent) {}
