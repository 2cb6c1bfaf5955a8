package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/triply-app/triply/internal/cli/formatter"
	"github.com/triply-app/triply/internal/domain"
)

// triplyHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func triplyHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateOptionalTime(s string) error {
	if s == "" {
		return nil
	}
	a := domain.Activity{Time: s}
	return a.ValidateTime()
}

func validatePositiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("must be a positive number")
	}
	return nil
}

// runActivityWizard collects the activity fields interactively, pre-filling
// from whatever flags were already provided.
func runActivityWizard(a *domain.Activity) error {
	dayStr := strconv.Itoa(a.Day)
	if a.Day < 1 {
		dayStr = "1"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity name").
				Placeholder("Louvre visit").
				Value(&a.Name).
				Validate(validateRequired),
			huh.NewInput().
				Title("Location (blank to reuse the name)").
				Placeholder("Louvre").
				Value(&a.Location),
			huh.NewInput().
				Title("Start time (HH:MM, blank for unscheduled)").
				Placeholder("10:30").
				Value(&a.Time).
				Validate(validateOptionalTime),
			huh.NewInput().
				Title("Trip day").
				Placeholder("1").
				Value(&dayStr).
				Validate(validatePositiveInt),
			huh.NewText().
				Title("Notes").
				Value(&a.Notes),
		),
	).WithTheme(triplyHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return err
	}

	day, err := strconv.Atoi(dayStr)
	if err != nil {
		return fmt.Errorf("invalid day %q: %w", dayStr, err)
	}
	a.Day = day
	return nil
}
