package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-refute/internal/config"
	"github.com/MKhiriev/go-refute/internal/handler"
	"github.com/MKhiriev/go-refute/internal/logger"
	"github.com/MKhiriev/go-refute/internal/server"
	"github.com/MKhiriev/go-refute/internal/service"
	"github.com/MKhiriev/go-refute/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("refute-server")
	cfg, err := config.GetServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	logCollisions(services.ShareService, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// logCollisions warns about candidates that derive the same key. Such a list
// still works, but the first of the pair always wins.
func logCollisions(share service.ShareService, log *logger.Logger) {
	report, err := share.CheckCandidates(context.Background())
	if err != nil {
		log.Err(err).Msg("error checking candidates")
		return
	}

	if report.OK {
		log.Info().Msg("candidate list has no key collisions")
		return
	}
	for _, c := range report.Collisions {
		log.Warn().
			Str("first", c.First).
			Str("second", c.Second).
			Str("key", c.Key).
			Msg("candidates derive the same key")
	}
}
