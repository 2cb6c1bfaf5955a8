package domain

type TravelMode string

const (
	ModeWalk    TravelMode = "walk"
	ModeDrive   TravelMode = "drive"
	ModeTransit TravelMode = "transit"
	// ModeAuto defers concrete mode selection to a policy. It never appears
	// in a computed estimate's Mode field.
	ModeAuto TravelMode = "auto"
)

// ValidTravelModes is the canonical set of accepted travel mode strings.
var ValidTravelModes = map[string]bool{
	"walk": true, "drive": true, "transit": true, "auto": true,
}

type LeaveStatus string

const (
	LeaveOnTime LeaveStatus = "on_time"
	LeaveAtRisk LeaveStatus = "at_risk"
	LeaveLate   LeaveStatus = "late"
)

type NudgeSeverity string

const (
	SeverityInfo  NudgeSeverity = "info"
	SeverityWarn  NudgeSeverity = "warn"
	SeverityAlert NudgeSeverity = "alert"
)

type TripStatus string

const (
	TripPlanning  TripStatus = "planning"
	TripActive    TripStatus = "active"
	TripCompleted TripStatus = "completed"
	TripArchived  TripStatus = "archived"
)
