package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envConfig mirrors Config for envconfig processing under the EDITAIS
// prefix, e.g. EDITAIS_BACKEND_BASE_URL, EDITAIS_REQUEST_TIMEOUT=5s.
type envConfig struct {
	BackendBaseURL   *string        `envconfig:"BACKEND_BASE_URL"`
	BackendAPIKey    *string        `envconfig:"BACKEND_API_KEY"`
	DatabasePath     *string        `envconfig:"DATABASE_PATH"`
	RequestTimeout   *time.Duration `envconfig:"REQUEST_TIMEOUT"`
	PerUserFavorites *bool          `envconfig:"PER_USER_FAVORITES"`
}

// parseEnv overlays cfg with values from the environment. Unset variables
// leave the corresponding field untouched.
func parseEnv(cfg *Config) {
	var ec envConfig
	if err := envconfig.Process("editais", &ec); err != nil {
		panic(err)
	}

	if ec.BackendBaseURL != nil {
		cfg.BackendBaseURL = *ec.BackendBaseURL
	}
	if ec.BackendAPIKey != nil {
		cfg.BackendAPIKey = *ec.BackendAPIKey
	}
	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.PerUserFavorites != nil {
		cfg.PerUserFavorites = *ec.PerUserFavorites
	}
}
