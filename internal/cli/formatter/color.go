package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/triply-app/triply/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusColor returns the lipgloss style for a leave status.
func StatusColor(status domain.LeaveStatus) lipgloss.Style {
	switch status {
	case domain.LeaveOnTime:
		return StyleGreen
	case domain.LeaveAtRisk:
		return StyleYellow
	case domain.LeaveLate:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored status string such as "● ON TIME".
func StatusIndicator(status domain.LeaveStatus) string {
	switch status {
	case domain.LeaveOnTime:
		return StyleGreen.Render("● ON TIME")
	case domain.LeaveAtRisk:
		return StyleYellow.Render("● AT RISK")
	case domain.LeaveLate:
		return StyleRed.Render("● LATE")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}

// SeverityStyle returns the lipgloss style for a nudge severity.
func SeverityStyle(sev domain.NudgeSeverity) lipgloss.Style {
	switch sev {
	case domain.SeverityAlert:
		return StyleRed
	case domain.SeverityWarn:
		return StyleYellow
	default:
		return StyleBlue
	}
}

// TripStatusPill returns a colored status indicator for a trip status.
func TripStatusPill(status domain.TripStatus) string {
	switch status {
	case domain.TripPlanning:
		return StyleBlue.Render("planning")
	case domain.TripActive:
		return StyleGreen.Render("active")
	case domain.TripCompleted:
		return StylePurple.Render("completed")
	case domain.TripArchived:
		return StyleDim.Render("archived")
	default:
		return StyleDim.Render(string(status))
	}
}

// ModeBadge returns a colored travel mode label.
func ModeBadge(mode domain.TravelMode) string {
	switch mode {
	case domain.ModeWalk:
		return StyleGreen.Render("walk")
	case domain.ModeTransit:
		return StyleBlue.Render("transit")
	case domain.ModeDrive:
		return StylePurple.Render("drive")
	default:
		return StyleDim.Render(string(mode))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
