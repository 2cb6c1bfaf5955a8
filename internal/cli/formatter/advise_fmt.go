package formatter

import (
	"fmt"
	"math"
	"strings"

	"github.com/triply-app/triply/internal/contract"
	"github.com/triply-app/triply/internal/domain"
)

// FormatAdvise renders the leave-by picture for one trip day: a table of
// consecutive activity pairs plus the active nudge, if any.
func FormatAdvise(resp *contract.AdviseResponse) string {
	if len(resp.Pairs) == 0 {
		content := Dim("No consecutive scheduled activities to advise on.")
		if resp.Skipped > 0 {
			content += "\n" + Dim(fmt.Sprintf("%d pair(s) skipped due to estimate errors.", resp.Skipped))
		}
		return RenderBox(fmt.Sprintf("Day %d", resp.Day), content)
	}

	headers := []string{"FROM", "TO", "MODE", "DIST", "TRAVEL", "LEAVE BY", "STATUS"}
	rows := make([][]string, 0, len(resp.Pairs))
	for _, p := range resp.Pairs {
		rows = append(rows, []string{
			fmt.Sprintf("%s %s", Dim(p.FromTime), Bold(p.FromName)),
			fmt.Sprintf("%s %s", Dim(p.ToTime), Bold(p.ToName)),
			ModeBadge(p.Mode),
			fmt.Sprintf("%.1f km", p.DistanceKm),
			FormatMinutes(p.TotalMin),
			StatusColor(p.Status).Render(p.LeaveByAt.Format("15:04")),
			StatusIndicator(p.Status),
		})
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	if resp.Skipped > 0 {
		b.WriteString("\n" + Dim(fmt.Sprintf("%d pair(s) skipped due to estimate errors.", resp.Skipped)))
	}
	if resp.Nudge != nil {
		b.WriteString("\n" + FormatNudge(resp.Nudge))
	}

	return RenderBox(fmt.Sprintf("Day %d", resp.Day), b.String())
}

// FormatNudge renders the active advisory message with severity coloring.
func FormatNudge(n *domain.Nudge) string {
	return SeverityStyle(n.Severity).Render("▲ " + n.Text)
}

// FormatMinutes renders a fractional minute count as whole minutes.
func FormatMinutes(min float64) string {
	return fmt.Sprintf("%d min", int(math.Round(min)))
}
