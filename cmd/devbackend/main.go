package main

import (
	"context"
	"fmt"

	"github.com/domy-v-italii/portal/internal/blob"
	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/internal/hosted"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/server"
	"github.com/domy-v-italii/portal/internal/store"
	"github.com/domy-v-italii/portal/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("portal-devbackend")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	blobStorage, err := blob.NewS3Storage(ctx, cfg.Storage.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob storage")
	}

	storages := store.NewStorages(db, log)
	handler := hosted.NewHandler(storages, blobStorage, cfg.Auth, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
