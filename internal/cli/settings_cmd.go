package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triply-app/triply/internal/cli/formatter"
	"github.com/triply-app/triply/internal/domain"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change travel settings",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsClearCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *App) *cobra.Command {
	var tripInput string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective travel settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			tripID := ""
			scope := "global"
			if tripInput != "" {
				id, err := resolveTripID(ctx, app, tripInput)
				if err != nil {
					return err
				}
				tripID = id
				scope = "trip " + formatter.TruncID(id)
			}

			prefs, err := app.Settings.Effective(ctx, tripID)
			if err != nil {
				return err
			}

			content := fmt.Sprintf("%s  %s\n%s  %.1f km/h\n%s  %.0f min",
				formatter.Dim("MODE   "), formatter.ModeBadge(prefs.Mode),
				formatter.Dim("SPEED  "), prefs.Settings.WalkingSpeedKmh,
				formatter.Dim("BUFFER "), prefs.Settings.DefaultBufferMin)
			fmt.Println(formatter.RenderBox("Travel settings ("+scope+")", content))
			return nil
		},
	}

	cmd.Flags().StringVar(&tripInput, "trip", "", "Show the settings effective for this trip")

	return cmd
}

func newSettingsSetCmd(app *App) *cobra.Command {
	var tripInput string
	var mode domain.TravelMode
	var speed, buffer float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set travel settings globally or for one trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			tripID := ""
			if tripInput != "" {
				id, err := resolveTripID(ctx, app, tripInput)
				if err != nil {
					return err
				}
				tripID = id
			}

			// Start from what is currently effective so partial flag sets
			// keep the other values.
			prefs, err := app.Settings.Effective(ctx, tripID)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("mode") {
				prefs.Mode = mode
			}
			if cmd.Flags().Changed("speed") {
				prefs.Settings.WalkingSpeedKmh = speed
			}
			if cmd.Flags().Changed("buffer") {
				prefs.Settings.DefaultBufferMin = buffer
			}

			if tripID != "" {
				err = app.Settings.SetForTrip(ctx, tripID, prefs)
			} else {
				err = app.Settings.SetGlobal(ctx, prefs)
			}
			if err != nil {
				return err
			}

			fmt.Println("Settings updated")
			return nil
		},
	}

	cmd.Flags().StringVar(&tripInput, "trip", "", "Apply to this trip only")
	cmd.Flags().Var(newModeFlag(&mode), "mode", "Default travel mode (walk, drive, transit, auto)")
	cmd.Flags().Float64Var(&speed, "speed", 0, "Walking speed in km/h")
	cmd.Flags().Float64Var(&buffer, "buffer", 0, "Buffer minutes added to every estimate")

	return cmd
}

func newSettingsClearCmd(app *App) *cobra.Command {
	var tripInput string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove a trip's settings override",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveTripID(ctx, app, tripInput)
			if err != nil {
				return err
			}
			if err := app.Settings.ClearForTrip(ctx, id); err != nil {
				return err
			}
			fmt.Printf("Cleared settings override for trip %s\n", formatter.TruncID(id))
			return nil
		},
	}

	cmd.Flags().StringVar(&tripInput, "trip", "", "Trip name, UUID, or UUID prefix")
	_ = cmd.MarkFlagRequired("trip")

	return cmd
}
