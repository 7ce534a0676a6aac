package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-refute/internal/adapter"
	"github.com/MKhiriev/go-refute/internal/client"
	"github.com/MKhiriev/go-refute/internal/config"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/service"
	"github.com/MKhiriev/go-refute/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	log := logger.NewClientLogger("refute")

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	var serverAdapter adapter.ServerAdapter
	if cfg.Adapter.Remote() {
		serverAdapter, err = adapter.NewServerAdapter(cfg.Adapter, log)
		if err != nil {
			log.Err(err).Msg("create server adapter")
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer func() { _ = serverAdapter.Close() }()
	}

	services := service.NewClientServices(cfg.App, serverAdapter, log)
	app := client.NewApp(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		return 1
	}
	return 0
}
