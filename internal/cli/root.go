package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/triply-app/triply/internal/advisor"
	"github.com/triply-app/triply/internal/service"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Trips      service.TripService
	Activities service.ActivityService
	Settings   service.SettingsService
	Advise     service.AdviseService

	// Sink receives just-in-time alerts raised by the watch loop.
	Sink advisor.NotificationSink
	// AdvisorInterval overrides the watch loop period when positive.
	AdvisorInterval time.Duration
}

// NewRootCmd creates the top-level "triply" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "triply",
		Short: "Trip planner with leave-by travel advisories",
	}

	root.AddCommand(
		newTripCmd(app),
		newActivityCmd(app),
		newSettingsCmd(app),
		newAdviseCmd(app),
		newNotifyCmd(app),
		newWatchCmd(app),
	)

	return root
}
