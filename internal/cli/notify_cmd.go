package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newNotifyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Manage scheduled departure notifications",
	}

	cmd.AddCommand(newNotifySyncCmd(app))

	return cmd
}

func newNotifySyncCmd(app *App) *cobra.Command {
	var tripInput string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Recompute and reschedule all departure alerts for a trip",
		Long: `Cancels every scheduled departure alert for the trip, then plans a
fresh batch from the current day plan.

Alert timers live inside the running process. Keep a "triply watch" session
open for them to fire; once the process exits the schedule is gone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, tripInput)
			if err != nil {
				return err
			}

			accepted, err := app.Advise.RecomputeSchedules(ctx, tripID, time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("Scheduled %d alert(s); they fire while a watch session is running\n", accepted)
			return nil
		},
	}

	cmd.Flags().StringVar(&tripInput, "trip", "", "Trip name, UUID, or UUID prefix")
	_ = cmd.MarkFlagRequired("trip")

	return cmd
}
