package main

import (
	"fmt"
	"os"

	"github.com/triply-app/triply/internal/cli"
	"github.com/triply-app/triply/internal/config"
	"github.com/triply-app/triply/internal/db"
	"github.com/triply-app/triply/internal/notify"
	"github.com/triply-app/triply/internal/repository"
	"github.com/triply-app/triply/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	tripRepo := repository.NewSQLiteTripRepo(database)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	prefsRepo := repository.NewSQLiteTravelPrefsRepo(database)

	sink := notify.NewDesktopSink(cfg.NotifyCmd)
	settingsSvc := service.NewSettingsService(prefsRepo)

	app := &cli.App{
		Trips:           service.NewTripService(tripRepo),
		Activities:      service.NewActivityService(activityRepo, tripRepo),
		Settings:        settingsSvc,
		Advise:          service.NewAdviseService(tripRepo, activityRepo, settingsSvc, sink),
		Sink:            sink,
		AdvisorInterval: cfg.AdvisorInterval,
	}

	return cli.NewRootCmd(app).Execute()
}
