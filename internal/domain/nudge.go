package domain

// Nudge is the single active advisory message shown to the user. It is
// recomputed on every advisor cycle and never persisted.
type Nudge struct {
	Text     string
	Severity NudgeSeverity
}
