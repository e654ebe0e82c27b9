package main

import (
	"fmt"

	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/catalog"
	"github.com/domy-v-italii/portal/internal/config"
	handlerhttp "github.com/domy-v-italii/portal/internal/handler/http"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/server"
	"github.com/domy-v-italii/portal/internal/service"
	"github.com/domy-v-italii/portal/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("portal-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	backendClient := backend.NewClient(cfg.Backend)
	if !backendClient.Configured() {
		log.Warn().Msg("backend url or anon key missing, auth endpoints will answer 503")
	}

	services := service.NewServices(backendClient, log)
	jobs := workers.NewJobRunner(log)

	version := cfg.App.Version
	if version == "" {
		version = buildVersion
	}
	handlerhttp.SetVersion(version)

	handler := handlerhttp.NewHandler(services, catalog.New(), jobs, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
	jobs.Wait()
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
