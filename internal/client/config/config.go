package config

import "time"

// Config holds runtime settings for the EditaisBR client.
//
// Fields:
//   - BackendBaseURL: base URL of the backend-as-a-service. Empty means the
//     backend is not configured and the app runs in local-only mode.
//   - BackendAPIKey: application key sent on every backend request.
//   - DatabasePath: sqlite DSN of the persisted local store.
//   - RequestTimeout: per-request timeout for backend calls. Zero disables
//     the timeout entirely, matching the original client behavior.
//   - PerUserFavorites: when true, favorites are kept remotely per account
//     instead of under the single local browser-wide key.
type Config struct {
	BackendBaseURL   string
	BackendAPIKey    string
	DatabasePath     string
	RequestTimeout   time.Duration
	PerUserFavorites bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendBaseURL = ""
	c.BackendAPIKey = ""
	c.DatabasePath = "editais.db"
	c.RequestTimeout = 0
	c.PerUserFavorites = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
