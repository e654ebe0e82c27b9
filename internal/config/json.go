package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can use human
// strings like "30s" or "1h".
type Duration struct {
	time.Duration
}

// UnmarshalJSON accepts either a duration string ("15s") or a number of
// nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		d.Duration = parsed
	default:
		return fmt.Errorf("invalid duration value %v", v)
	}

	return nil
}

// jsonConfig mirrors StructuredConfig with file-friendly field types.
type jsonConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Backend struct {
		URL     string   `json:"url"`
		AnonKey string   `json:"anon_key"`
		Timeout Duration `json:"timeout"`
	} `json:"backend,omitempty"`

	Auth struct {
		TokenSignKey        string   `json:"token_sign_key"`
		TokenIssuer         string   `json:"token_issuer"`
		TokenDuration       Duration `json:"token_duration"`
		RequireEmailConfirm bool     `json:"require_email_confirm"`
	} `json:"auth,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
		Blob struct {
			Endpoint  string `json:"endpoint"`
			Region    string `json:"region"`
			Bucket    string `json:"bucket"`
			AccessKey string `json:"access_key"`
			SecretKey string `json:"secret_key"`
		} `json:"blob,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`
}

// parseJSON reads the JSON config file at path and converts it into a
// *StructuredConfig suitable for merging.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading json config %q: %w", path, err)
	}

	var fileCfg jsonConfig
	if err = json.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error parsing json config %q: %w", path, err)
	}

	cfg := &StructuredConfig{
		App: App{Version: fileCfg.App.Version},
		Backend: Backend{
			URL:     fileCfg.Backend.URL,
			AnonKey: fileCfg.Backend.AnonKey,
			Timeout: fileCfg.Backend.Timeout.Duration,
		},
		Auth: Auth{
			TokenSignKey:        fileCfg.Auth.TokenSignKey,
			TokenIssuer:         fileCfg.Auth.TokenIssuer,
			TokenDuration:       fileCfg.Auth.TokenDuration.Duration,
			RequireEmailConfirm: fileCfg.Auth.RequireEmailConfirm,
		},
		Storage: Storage{
			DB: DB{DSN: fileCfg.Storage.DB.DSN},
			Blob: Blob{
				Endpoint:  fileCfg.Storage.Blob.Endpoint,
				Region:    fileCfg.Storage.Blob.Region,
				Bucket:    fileCfg.Storage.Blob.Bucket,
				AccessKey: fileCfg.Storage.Blob.AccessKey,
				SecretKey: fileCfg.Storage.Blob.SecretKey,
			},
		},
		Server: Server{
			HTTPAddress:    fileCfg.Server.Address,
			RequestTimeout: fileCfg.Server.RequestTimeout.Duration,
		},
	}

	return cfg, nil
}
