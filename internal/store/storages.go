package store

import "github.com/domy-v-italii/portal/internal/logger"

// Storages bundles the dev backend's repositories behind one value.
type Storages struct {
	AccountRepository AccountRepository
	SessionRepository SessionRepository
	RowRepository     RowRepository
}

// NewStorages wires every repository to the shared database connection.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		AccountRepository: NewAccountRepository(db, logger),
		SessionRepository: NewSessionRepository(db, logger),
		RowRepository:     NewRowRepository(db, logger),
	}
}
