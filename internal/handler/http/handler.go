package http

import (
	"github.com/domy-v-italii/portal/internal/catalog"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/service"
	"github.com/domy-v-italii/portal/internal/workers"
)

type Handler struct {
	services *service.Services
	catalog  *catalog.Catalog
	jobs     *workers.JobRunner

	logger *logger.Logger
}

func NewHandler(services *service.Services, cat *catalog.Catalog, jobs *workers.JobRunner, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		catalog:  cat,
		jobs:     jobs,
		logger:   logger,
	}
}
