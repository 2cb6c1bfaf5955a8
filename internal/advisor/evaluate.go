package advisor

import (
	"fmt"
	"time"

	"github.com/triply-app/triply/internal/domain"
	"github.com/triply-app/triply/internal/travel"
)

// nudgeWindowMin is the minutes-to-leave threshold at which an at-risk
// pair starts nudging and an immediate alert is requested.
const nudgeWindowMin = 5

// PairAdvice is the computed leave-by outcome for one consecutive
// activity pair.
type PairAdvice struct {
	From           *domain.Activity
	To             *domain.Activity
	Result         travel.LeaveByResult
	MinutesToLeave int
}

// ImmediateAlert is a just-in-time notification request produced by an
// evaluation; the caller applies it as a side effect.
type ImmediateAlert struct {
	Title  string
	Body   string
	FireAt time.Time
}

// Decision is the pure result of one advisory cycle: the nudge to publish
// (nil clears the slot) and an optional immediate alert.
type Decision struct {
	Nudge        *domain.Nudge
	Immediate    *ImmediateAlert
	Pair         *PairAdvice
	PairsChecked int
	PairsSkipped int
}

// dayPlan selects the activities for the day with the minimum day number
// among all loaded activities, sorted ascending by start time. The minimum
// day is a proxy for "today"; see the open-question note on multi-day
// trips in DESIGN.md.
func dayPlan(activities []*domain.Activity) []*domain.Activity {
	day := domain.MinDay(activities)
	var plan []*domain.Activity
	for _, a := range activities {
		if a.Day == day {
			plan = append(plan, a)
		}
	}
	domain.SortByTime(plan)
	return plan
}

// resolvePair computes the leave-by result for a consecutive pair,
// anchoring both HH:MM times onto now's calendar date. A mode of auto is
// resolved through the threshold selector on the pair's distance.
func resolvePair(cur, next *domain.Activity, mode domain.TravelMode, s domain.TravelSettings, now time.Time) (travel.LeaveByResult, error) {
	from := travel.Location{Name: cur.Place()}
	to := travel.Location{Name: next.Place()}

	if mode == domain.ModeAuto {
		mode = travel.PickAutoMode(travel.DistanceKm(from, to))
	}

	return travel.ComputeLeaveBy(cur.StartOn(now), next.StartOn(now), from, to, mode, now, s)
}

// Evaluate runs one advisory cycle over the given activity snapshot.
// Consecutive pairs are walked strictly in ascending time order; the first
// pair that is late, or at risk with five minutes or less left to leave,
// wins and becomes the nudge. Pairs whose estimate fails (invalid
// settings) are skipped, never fatal. An empty decision clears the nudge.
func Evaluate(activities []*domain.Activity, mode domain.TravelMode, s domain.TravelSettings, now time.Time) Decision {
	plan := dayPlan(activities)

	var d Decision
	for i := 0; i < len(plan)-1; i++ {
		cur, next := plan[i], plan[i+1]
		if !next.Scheduled() {
			continue
		}
		d.PairsChecked++

		res, err := resolvePair(cur, next, mode, s, now)
		if err != nil {
			d.PairsSkipped++
			continue
		}

		mins := res.MinutesToLeave(now)
		if res.Status != domain.LeaveLate && !(res.Status == domain.LeaveAtRisk && mins <= nudgeWindowMin) {
			continue
		}

		startText := next.StartOn(now).Format("15:04")
		nudge := &domain.Nudge{
			Text:     fmt.Sprintf("Time to leave: depart now to make %s", startText),
			Severity: domain.SeverityWarn,
		}
		if res.Status == domain.LeaveLate {
			nudge.Text = fmt.Sprintf("You are late: depart now to make %s", startText)
			nudge.Severity = domain.SeverityAlert
		}

		d.Nudge = nudge
		d.Pair = &PairAdvice{From: cur, To: next, Result: res, MinutesToLeave: mins}
		if mins <= nudgeWindowMin {
			d.Immediate = &ImmediateAlert{
				Title:  "Time to leave",
				Body:   fmt.Sprintf("Depart now to make %s", next.Name),
				FireAt: now,
			}
		}
		return d
	}
	return d
}

// EvaluatePairs computes leave-by advice for every consecutive pair of the
// day plan, for display. Pairs with an unscheduled next activity or a
// failing estimate are omitted.
func EvaluatePairs(activities []*domain.Activity, mode domain.TravelMode, s domain.TravelSettings, now time.Time) []PairAdvice {
	plan := dayPlan(activities)

	var advice []PairAdvice
	for i := 0; i < len(plan)-1; i++ {
		cur, next := plan[i], plan[i+1]
		if !next.Scheduled() {
			continue
		}
		res, err := resolvePair(cur, next, mode, s, now)
		if err != nil {
			continue
		}
		advice = append(advice, PairAdvice{
			From:           cur,
			To:             next,
			Result:         res,
			MinutesToLeave: res.MinutesToLeave(now),
		})
	}
	return advice
}
