package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "", cfg.BackendBaseURL)
	assert.Equal(t, "", cfg.BackendAPIKey)
	assert.Equal(t, "editais.db", cfg.DatabasePath)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
	assert.False(t, cfg.PerUserFavorites)
}

func TestParseJson(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")

	data := `{
		"backend_base_url": "https://api.editaisbr.example",
		"backend_api_key": "app-key-1",
		"database_path": "/tmp/editais.db",
		"request_timeout": "5s",
		"per_user_favorites": true
	}`
	require.NoError(t, os.WriteFile(file, []byte(data), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test", "-config", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://api.editaisbr.example", cfg.BackendBaseURL)
	assert.Equal(t, "app-key-1", cfg.BackendAPIKey)
	assert.Equal(t, "/tmp/editais.db", cfg.DatabasePath)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.PerUserFavorites)
}

func TestParseJsonPartial(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.json")

	require.NoError(t, os.WriteFile(file, []byte(`{"backend_base_url": "https://api"}`), 0o600))

	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test", "-c", file}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "https://api", cfg.BackendBaseURL)
	assert.Equal(t, "editais.db", cfg.DatabasePath, "fields absent from JSON keep defaults")
}

func TestParseJsonNoFile(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "editais.db", cfg.DatabasePath)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("EDITAIS_BACKEND_BASE_URL", "https://env.example")
	t.Setenv("EDITAIS_REQUEST_TIMEOUT", "3s")
	t.Setenv("EDITAIS_PER_USER_FAVORITES", "true")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://env.example", cfg.BackendBaseURL)
	assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.PerUserFavorites)
	assert.Equal(t, "editais.db", cfg.DatabasePath, "unset variables keep defaults")
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"test", "-b", "https://flags.example", "-k", "key2", "-d", "other.db"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "https://flags.example", cfg.BackendBaseURL)
	assert.Equal(t, "key2", cfg.BackendAPIKey)
	assert.Equal(t, "other.db", cfg.DatabasePath)
}
