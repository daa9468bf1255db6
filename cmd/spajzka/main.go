package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/PsyChonek/spajzka-client/internal/adapter"
	"github.com/PsyChonek/spajzka-client/internal/client"
	"github.com/PsyChonek/spajzka-client/internal/config"
	"github.com/PsyChonek/spajzka-client/internal/connectivity"
	"github.com/PsyChonek/spajzka-client/internal/events"
	"github.com/PsyChonek/spajzka-client/internal/logger"
	"github.com/PsyChonek/spajzka-client/internal/service"
	"github.com/PsyChonek/spajzka-client/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("spajzka-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient, err := adapter.NewClient(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create http client")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	bus := events.NewBus(log)
	oracle := connectivity.NewOracle()
	monitor := connectivity.NewMonitor(httpClient, oracle, bus, log)
	services := service.NewClientServices(httpClient, storages, oracle, bus, log)

	app, err := client.NewApp(services, storages, monitor, bus, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
	if err = app.Close(); err != nil {
		log.Fatal().Err(err).Msg("client shutdown error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
