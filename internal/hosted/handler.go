// Package hosted is a local, runnable implementation of the auth/data
// service the portal talks to in production. It exposes the same HTTP
// surface the portal's backend SDK expects: the password-grant token
// endpoint, signup, logout, current-user, row access to allowlisted
// tables and object storage. cmd/devbackend serves it.
package hosted

import (
	"github.com/domy-v-italii/portal/internal/blob"
	"github.com/domy-v-italii/portal/internal/config"
	"github.com/domy-v-italii/portal/internal/logger"
	"github.com/domy-v-italii/portal/internal/store"
	"github.com/domy-v-italii/portal/internal/validators"
)

const (
	accessTokenCookie  = "sb-access-token"
	refreshTokenCookie = "sb-refresh-token"
)

// Handler carries the dev backend's dependencies.
type Handler struct {
	storages    *store.Storages
	blob        blob.Storage
	auth        config.Auth
	credentials validators.CredentialsValidator
	logger      *logger.Logger
}

// NewHandler wires repositories, blob storage and the auth settings
// into one handler set.
func NewHandler(storages *store.Storages, blobStorage blob.Storage, auth config.Auth, log *logger.Logger) *Handler {
	return &Handler{
		storages:    storages,
		blob:        blobStorage,
		auth:        auth,
		credentials: validators.NewCredentialsValidator(),
		logger:      log,
	}
}
