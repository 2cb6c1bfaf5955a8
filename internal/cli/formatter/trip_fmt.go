package formatter

import (
	"fmt"
	"strings"

	"github.com/triply-app/triply/internal/domain"
)

// FormatTripList renders a styled trip list inside a bordered box.
func FormatTripList(trips []*domain.Trip) string {
	if len(trips) == 0 {
		return RenderBox("Trips", Dim("No trips yet. Create one with: triply trip add"))
	}

	headers := []string{"ID", "NAME", "DESTINATION", "START", "STATUS"}
	rows := make([][]string, 0, len(trips))
	for _, t := range trips {
		rows = append(rows, []string{
			Dim(TruncID(t.ID)),
			Bold(t.Name),
			StyleFg.Render(t.Destination),
			StyleFg.Render(t.StartDate.Format("2006-01-02")),
			TripStatusPill(t.Status),
		})
	}
	return RenderBox("Trips", RenderTable(headers, rows))
}

// FormatTripInspect renders a trip card with its activities grouped by day.
func FormatTripInspect(trip *domain.Trip, activities []*domain.Activity) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(trip.Name) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("STATUS"), TripStatusPill(trip.Status)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("DEST  "), StyleFg.Render(trip.Destination)))
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("START "), StyleFg.Render(trip.StartDate.Format("2006-01-02"))))
	if trip.EndDate != nil {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("END   "), StyleFg.Render(trip.EndDate.Format("2006-01-02"))))
	}
	b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render("UUID  "), Dim(TruncID(trip.ID))))

	if len(activities) > 0 {
		b.WriteString("\n" + FormatActivityList(activities))
	}

	return RenderBox("", b.String())
}

// FormatActivityList renders activities grouped by day, scheduled entries
// first within each day in start-time order.
func FormatActivityList(activities []*domain.Activity) string {
	if len(activities) == 0 {
		return Dim("No activities.")
	}

	byDay := map[int][]*domain.Activity{}
	maxDay := 0
	for _, a := range activities {
		byDay[a.Day] = append(byDay[a.Day], a)
		if a.Day > maxDay {
			maxDay = a.Day
		}
	}

	var b strings.Builder
	for day := 1; day <= maxDay; day++ {
		plan := byDay[day]
		if len(plan) == 0 {
			continue
		}
		domain.SortByTime(plan)

		b.WriteString(Header(fmt.Sprintf("Day %d", day)) + "\n")
		for _, a := range plan {
			timeStr := a.Time
			if timeStr == "" {
				timeStr = "--:--"
			}
			line := fmt.Sprintf("%s  %s", StyleBlue.Render(timeStr), Bold(a.Name))
			if a.Location != "" && a.Location != a.Name {
				line += "  " + Dim("@ "+a.Location)
			}
			b.WriteString(line + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
