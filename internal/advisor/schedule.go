package advisor

import (
	"fmt"
	"time"

	"github.com/triply-app/triply/internal/domain"
)

// headsUpLeadMin is how far ahead of the leave-by instant the optional
// heads-up alert fires.
const headsUpLeadMin = 5

// PlannedAlert is one alert the batch planner wants scheduled.
type PlannedAlert struct {
	Title  string
	Body   string
	FireAt time.Time
}

// PlanBatch computes the full alert schedule for a day plan: for each
// consecutive pair whose leave-by time is still ahead of now and falls on
// the same calendar day, one alert at the leave-by instant, plus a
// heads-up five minutes earlier when that is also still ahead. Pairs with
// a failing estimate are skipped. Pure; apply the result with ApplyBatch.
func PlanBatch(activities []*domain.Activity, mode domain.TravelMode, s domain.TravelSettings, now time.Time) []PlannedAlert {
	plan := dayPlan(activities)

	var alerts []PlannedAlert
	for i := 0; i < len(plan)-1; i++ {
		cur, next := plan[i], plan[i+1]
		if !next.Scheduled() {
			continue
		}

		res, err := resolvePair(cur, next, mode, s, now)
		if err != nil {
			continue
		}

		leaveBy := res.LeaveByAt
		if !leaveBy.After(now) || !sameDay(leaveBy, now) {
			continue
		}

		alerts = append(alerts, PlannedAlert{
			Title:  "Time to leave",
			Body:   fmt.Sprintf("Depart to make %s", next.Name),
			FireAt: leaveBy,
		})

		headsUp := leaveBy.Add(-headsUpLeadMin * time.Minute)
		if headsUp.After(now) {
			alerts = append(alerts, PlannedAlert{
				Title:  "Heads up",
				Body:   fmt.Sprintf("Leave in 5 min for %s", next.Name),
				FireAt: headsUp,
			})
		}
	}
	return alerts
}

// ApplyBatch cancels every pending alert on the sink and schedules the
// planned batch. Sink failures are swallowed: at most one live schedule
// exists per leave-by event, and a failed schedule is superseded by the
// next full recompute anyway. Returns the number of alerts accepted by
// the sink.
func ApplyBatch(sink NotificationSink, alerts []PlannedAlert) int {
	if err := sink.CancelAll(); err != nil {
		return 0
	}
	accepted := 0
	for _, a := range alerts {
		if _, err := sink.Schedule(a.Title, a.Body, a.FireAt); err == nil {
			accepted++
		}
	}
	return accepted
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
