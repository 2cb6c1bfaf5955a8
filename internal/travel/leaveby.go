package travel

import (
	"time"

	"github.com/triply-app/triply/internal/domain"
)

// LeaveByResult is a travel estimate anchored to a concrete next start
// time: the latest departure instant and how the current moment relates
// to it.
type LeaveByResult struct {
	Estimate
	LeaveByAt time.Time
	Status    domain.LeaveStatus
}

// MinutesToLeave returns the whole minutes remaining until the departure
// instant, rounded to nearest; negative once the leave-by time has passed.
func (r LeaveByResult) MinutesToLeave(now time.Time) int {
	return int(r.LeaveByAt.Sub(now).Round(time.Minute) / time.Minute)
}

// ComputeLeaveBy combines a pair of consecutive activities into a single
// leave-by timestamp and a temporal status. mode must already be resolved
// to a concrete mode (callers resolve auto beforehand). currentStart is
// accepted for interface symmetry but does not affect the result.
//
// Status against now:
//
//	now <= leaveByAt            on_time
//	leaveByAt < now <= nextStart  at_risk
//	now > nextStart             late
func ComputeLeaveBy(currentStart, nextStart time.Time, from, to Location, mode domain.TravelMode, now time.Time, s domain.TravelSettings) (LeaveByResult, error) {
	_ = currentStart

	est, err := EstimateTravel(from, to, mode, s)
	if err != nil {
		return LeaveByResult{}, err
	}

	leaveBy := nextStart.Add(-time.Duration(est.TotalMin * float64(time.Minute)))

	status := domain.LeaveOnTime
	if now.After(leaveBy) {
		if now.After(nextStart) {
			status = domain.LeaveLate
		} else {
			status = domain.LeaveAtRisk
		}
	}

	return LeaveByResult{
		Estimate:  est,
		LeaveByAt: leaveBy,
		Status:    status,
	}, nil
}
