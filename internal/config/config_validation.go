package config

import "time"

const (
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 30 * time.Second
	defaultBackendTimeout = 15 * time.Second
	defaultTokenDuration  = time.Hour
)

// validate fills defaults and rejects contradictory settings.
//
// A missing Backend.URL or Backend.AnonKey is NOT an error here: the
// auth proxies degrade to a 503 response when the backend is
// unconfigured, so the server must still be able to start.
func (c *StructuredConfig) validate() error {
	if c.Server.HTTPAddress == "" {
		c.Server.HTTPAddress = defaultHTTPAddress
	}
	if c.Server.RequestTimeout <= 0 {
		c.Server.RequestTimeout = defaultRequestTimeout
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = defaultBackendTimeout
	}
	if c.Auth.TokenDuration <= 0 {
		c.Auth.TokenDuration = defaultTokenDuration
	}
	if c.Auth.TokenIssuer == "" {
		c.Auth.TokenIssuer = "domy-v-italii-dev-backend"
	}

	return nil
}
