package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/triply-app/triply/internal/cli/formatter"
	"github.com/triply-app/triply/internal/domain"
)

func newActivityCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage trip activities",
	}

	cmd.AddCommand(
		newActivityAddCmd(app),
		newActivityListCmd(app),
		newActivityEditCmd(app),
		newActivityDeleteCmd(app),
	)

	return cmd
}

func newActivityAddCmd(app *App) *cobra.Command {
	var tripInput, name, location, startTime, notes string
	var day int
	var wizard bool

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an activity to a trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, tripInput)
			if err != nil {
				return err
			}

			a := &domain.Activity{
				TripID:   tripID,
				Name:     name,
				Location: location,
				Time:     startTime,
				Day:      day,
				Notes:    notes,
			}

			if wizard {
				if err := runActivityWizard(a); err != nil {
					return err
				}
			}

			if err := app.Activities.Create(ctx, a); err != nil {
				return err
			}

			when := a.Time
			if when == "" {
				when = "unscheduled"
			}
			fmt.Printf("Added %s (day %d, %s)\n", a.Name, a.Day, when)
			return nil
		},
	}

	cmd.Flags().StringVar(&tripInput, "trip", "", "Trip name, UUID, or UUID prefix")
	cmd.Flags().StringVar(&name, "name", "", "Activity name")
	cmd.Flags().StringVar(&location, "location", "", "Location (free text; defaults to the name)")
	cmd.Flags().StringVar(&startTime, "time", "", "Start time (HH:MM, empty for unscheduled)")
	cmd.Flags().IntVar(&day, "day", 1, "Trip day number (1-based)")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().BoolVar(&wizard, "wizard", false, "Fill in the activity interactively")
	_ = cmd.MarkFlagRequired("trip")

	return cmd
}

func newActivityListCmd(app *App) *cobra.Command {
	var tripInput string
	var day int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a trip's activities",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, tripInput)
			if err != nil {
				return err
			}

			var activities []*domain.Activity
			if cmd.Flags().Changed("day") {
				activities, err = app.Activities.ListForDay(ctx, tripID, day)
			} else {
				activities, err = app.Activities.ListByTrip(ctx, tripID)
			}
			if err != nil {
				return err
			}
			fmt.Println(formatter.FormatActivityList(activities))
			return nil
		},
	}

	cmd.Flags().StringVar(&tripInput, "trip", "", "Trip name, UUID, or UUID prefix")
	cmd.Flags().IntVar(&day, "day", 1, "Only show this day")
	_ = cmd.MarkFlagRequired("trip")

	return cmd
}

func newActivityEditCmd(app *App) *cobra.Command {
	var name, location, startTime, notes, dayStr string

	cmd := &cobra.Command{
		Use:   "edit <activity-id>",
		Short: "Edit an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			a, err := app.Activities.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				a.Name = name
			}
			if cmd.Flags().Changed("location") {
				a.Location = location
			}
			if cmd.Flags().Changed("time") {
				a.Time = startTime
			}
			if cmd.Flags().Changed("notes") {
				a.Notes = notes
			}
			if cmd.Flags().Changed("day") {
				d, err := strconv.Atoi(dayStr)
				if err != nil {
					return fmt.Errorf("invalid day %q: %w", dayStr, err)
				}
				a.Day = d
			}

			if err := app.Activities.Update(ctx, a); err != nil {
				return err
			}
			fmt.Printf("Updated %s\n", a.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Activity name")
	cmd.Flags().StringVar(&location, "location", "", "Location")
	cmd.Flags().StringVar(&startTime, "time", "", "Start time (HH:MM, empty to unschedule)")
	cmd.Flags().StringVar(&dayStr, "day", "", "Trip day number")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")

	return cmd
}

func newActivityDeleteCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <activity-id>",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Activities.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted activity")
			return nil
		},
	}

	return cmd
}
