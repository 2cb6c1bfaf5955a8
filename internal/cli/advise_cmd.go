package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/triply-app/triply/internal/cli/formatter"
	"github.com/triply-app/triply/internal/contract"
	"github.com/triply-app/triply/internal/domain"
)

func newAdviseCmd(app *App) *cobra.Command {
	var tripInput, at string
	var mode domain.TravelMode
	var day int

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Show leave-by times for a trip day",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, tripInput)
			if err != nil {
				return err
			}

			req := contract.NewAdviseRequest(tripID)
			if cmd.Flags().Changed("day") {
				req.Day = day
			}
			if mode != "" {
				req.ModeOverride = mode
			}
			if at != "" {
				parsed, err := time.Parse("15:04", at)
				if err != nil {
					return fmt.Errorf("invalid time %q: %w", at, err)
				}
				now := time.Now()
				pinned := time.Date(now.Year(), now.Month(), now.Day(),
					parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
				req.Now = &pinned
			}

			resp, err := app.Advise.Advise(ctx, req)
			if err != nil {
				return err
			}

			fmt.Println(formatter.FormatAdvise(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&tripInput, "trip", "", "Trip name, UUID, or UUID prefix")
	cmd.Flags().IntVar(&day, "day", 0, "Trip day number (defaults to the earliest day with activities)")
	cmd.Flags().Var(newModeFlag(&mode), "mode", "Override travel mode (walk, drive, transit, auto)")
	cmd.Flags().StringVar(&at, "at", "", "Evaluate as of this time today (HH:MM)")
	_ = cmd.MarkFlagRequired("trip")

	return cmd
}
