package store

import (
	"context"
	"fmt"

	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/internal/logger"
)

// ClientStorages groups the client-side repositories into a single
// value that can be passed around the client application.
type ClientStorages struct {
	// SessionRepository persists the portal session cookies.
	SessionRepository LocalSessionRepository

	// RecentRepository keeps the recently viewed listings.
	RecentRepository LocalRecentRepository
}

// NewClientStorages initialises the client storage layer: it opens the
// SQLite file named in cfg.LocalDBPath (creating it if missing),
// applies the schema and wires the repositories.
func NewClientStorages(cfg *config.ClientConfig, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.LocalDBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewLocalSessionRepository(db, logger),
		RecentRepository:  NewLocalRecentRepository(db, logger),
	}, nil
}
