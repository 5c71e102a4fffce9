package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/editaisbr/editais/internal/flagx"
	"github.com/editaisbr/editais/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "5s" or as integer nanoseconds. Pointer fields distinguish "absent" from
// "set to the zero value".
type JsonConfig struct {
	BackendBaseURL   *string         `json:"backend_base_url"`
	BackendAPIKey    *string         `json:"backend_api_key"`
	DatabasePath     *string         `json:"database_path"`
	RequestTimeout   *timex.Duration `json:"request_timeout"`
	PerUserFavorites *bool           `json:"per_user_favorites"`
}

// parseJson overlays cfg with values loaded from the JSON file given via
// the -c/-config flags. When no file is configured, nothing happens.
// Read or unmarshal errors panic; the caller decides whether to recover.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.BackendBaseURL != nil {
		cfg.BackendBaseURL = *jc.BackendBaseURL
	}
	if jc.BackendAPIKey != nil {
		cfg.BackendAPIKey = *jc.BackendAPIKey
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.PerUserFavorites != nil {
		cfg.PerUserFavorites = *jc.PerUserFavorites
	}
}
