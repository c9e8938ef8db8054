package main

import (
	"context"
	"fmt"

	"github.com/copypasta/copypasta-server/internal/authgate"
	"github.com/copypasta/copypasta-server/internal/config"
	"github.com/copypasta/copypasta-server/internal/handler"
	"github.com/copypasta/copypasta-server/internal/logger"
	"github.com/copypasta/copypasta-server/internal/notifier"
	"github.com/copypasta/copypasta-server/internal/server"
	"github.com/copypasta/copypasta-server/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("copypasta-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.Open(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening database")
	}

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStore(db, log)
	defer storages.Close()

	// the notifier and the auth gate are process-wide singletons by role,
	// constructed here and passed down explicitly
	notifications := notifier.New()
	gate := authgate.NewGate(storages.Users, cfg.App, log)

	handlers, err := handler.NewHandlers(gate, storages, notifications, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

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
