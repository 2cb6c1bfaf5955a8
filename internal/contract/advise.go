package contract

import (
	"time"

	"github.com/triply-app/triply/internal/domain"
)

// AdviseRequest asks for the leave-by picture of one trip day at a given
// instant.
type AdviseRequest struct {
	TripID       string
	Day          int
	Now          *time.Time
	ModeOverride domain.TravelMode
}

func NewAdviseRequest(tripID string) AdviseRequest {
	return AdviseRequest{TripID: tripID}
}

// LeaveByView is one consecutive activity pair with its computed travel
// estimate, leave-by time, and temporal status, ready for display.
type LeaveByView struct {
	FromName       string
	FromTime       string
	ToName         string
	ToTime         string
	Mode           domain.TravelMode
	DistanceKm     float64
	DurationMin    float64
	BufferMin      float64
	TotalMin       float64
	LeaveByAt      time.Time
	Status         domain.LeaveStatus
	MinutesToLeave int
}

type AdviseResponse struct {
	GeneratedAt time.Time
	TripID      string
	Day         int
	Mode        domain.TravelMode
	Pairs       []LeaveByView
	Nudge       *domain.Nudge
	Skipped     int
}

type AdviseErrorCode string

const (
	ErrTripNotFound    AdviseErrorCode = "TRIP_NOT_FOUND"
	ErrInvalidMode     AdviseErrorCode = "INVALID_MODE"
	ErrInvalidSettings AdviseErrorCode = "INVALID_SETTINGS"
	ErrInternalError   AdviseErrorCode = "INTERNAL_ERROR"
)

type AdviseError struct {
	Code    AdviseErrorCode
	Message string
}

func (e *AdviseError) Error() string {
	return string(e.Code) + ": " + e.Message
}
