package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/triply-app/triply/internal/cli/formatter"
	"github.com/triply-app/triply/internal/domain"
)

func newTripCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Manage trips",
	}

	cmd.AddCommand(
		newTripAddCmd(app),
		newTripListCmd(app),
		newTripShowCmd(app),
		newTripArchiveCmd(app),
		newTripDeleteCmd(app),
	)

	return cmd
}

func newTripAddCmd(app *App) *cobra.Command {
	var name, destination, start, end string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			startDate, err := time.Parse("2006-01-02", start)
			if err != nil {
				return fmt.Errorf("invalid start date %q: %w", start, err)
			}

			t := &domain.Trip{
				Name:        name,
				Destination: destination,
				StartDate:   startDate,
			}
			if end != "" {
				endDate, err := time.Parse("2006-01-02", end)
				if err != nil {
					return fmt.Errorf("invalid end date %q: %w", end, err)
				}
				t.EndDate = &endDate
			}

			if err := app.Trips.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created trip %s [%s]\n", t.Name, t.DisplayID())
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Trip name")
	cmd.Flags().StringVar(&destination, "destination", "", "Destination city or region")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "End date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newTripListCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := app.Trips.List(context.Background(), all)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTripList(trips))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include archived trips")

	return cmd
}

func newTripShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <trip>",
		Short: "Show a trip and its day-by-day activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			trip, err := app.Trips.GetByID(ctx, id)
			if err != nil {
				return err
			}
			activities, err := app.Activities.ListByTrip(ctx, id)
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatTripInspect(trip, activities))
			return nil
		},
	}

	return cmd
}

func newTripArchiveCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <trip>",
		Short: "Archive a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trips.Archive(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Archived trip %s\n", formatter.TruncID(id))
			return nil
		},
	}

	return cmd
}

func newTripDeleteCmd(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <trip>",
		Short: "Delete a trip and its activities",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trips.Delete(ctx, id, force); err != nil {
				return err
			}
			fmt.Printf("Deleted trip %s\n", formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Delete even if the trip is not archived")

	return cmd
}
