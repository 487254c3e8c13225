package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/testgen/internal/config"
	"github.com/MKhiriev/testgen/internal/crypto"
	"github.com/MKhiriev/testgen/internal/handler"
	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/server"
	"github.com/MKhiriev/testgen/internal/service"
	"github.com/MKhiriev/testgen/internal/store"
	"github.com/MKhiriev/testgen/internal/workers"
	"github.com/MKhiriev/testgen/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("testgen-server", "")

	if err := config.Bootstrap(config.EnvProvider{}); err != nil {
		log.Fatal().Err(err).Msg("error exporting env file")
	}

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// reopen the logger once the log directory is known
	log = logger.NewLogger("testgen-server", cfg.Log.FilePath)

	db, err := store.NewConnectPostgres(context.Background(), cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to metadata database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db, log)
	cipher := crypto.NewSecretCipher(cfg.Crypto)
	services := service.NewServices(storages, cipher, cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	workers.NewWorkers(services, cfg.Workers, log).Run()

	srv.RunServer()
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
