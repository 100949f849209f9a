package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/station-farmer/internal/adapter"
	"github.com/MKhiriev/station-farmer/internal/client"
	"github.com/MKhiriev/station-farmer/internal/config"
	"github.com/MKhiriev/station-farmer/internal/logger"
	"github.com/MKhiriev/station-farmer/internal/store"
	"github.com/MKhiriev/station-farmer/internal/tui"
	"github.com/MKhiriev/station-farmer/internal/workers"
	"github.com/MKhiriev/station-farmer/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(tui.RenderBanner(models.NewBuildInfo(string(config.ModeSequential), buildVersion, buildDate, buildCommit)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetFarmerConfig(config.ModeSequential)
	if err != nil {
		logger.NewConsoleLogger("station-farmer").Fatal().Err(err).Msg("error getting configs")
	}

	log := newLogger(cfg.App.LogFormat)

	storages := store.NewStorages(*cfg)
	waiter := tui.SelectWaiter(workers.TimerWaiter{})

	app, err := client.NewApp(*cfg, storages, adapter.NewFactory(cfg.Adapter), waiter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init farmer app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("farmer run error")
	}
}

func newLogger(format string) *logger.Logger {
	if format == config.LogFormatJSON {
		return logger.NewLogger("station-farmer")
	}
	return logger.NewConsoleLogger("station-farmer")
}
