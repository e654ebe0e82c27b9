package service

import (
	"github.com/domy-v-italii/portal/internal/backend"
	"github.com/domy-v-italii/portal/internal/logger"
)

type Services struct {
	AuthService      AuthService
	ProfileService   ProfileService
	DashboardService DashboardService
}

func NewServices(client *backend.Client, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(client, logger),
		ProfileService:   NewProfileService(client, logger),
		DashboardService: NewDashboardService(client, logger),
	}
}
