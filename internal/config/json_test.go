package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTestJSON(t, `{
		"auth": {
			"token_sign_key": "sign",
			"token_issuer": "notelock",
			"token_duration": "1h"
		},
		"storage": {
			"db": {"dsn": "postgres://localhost/notelock"},
			"local": {"path": "/tmp/notelock.db"}
		},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "30s"},
		"adapter": {"http_address": "localhost:8080", "request_timeout": "15s"},
		"workers": {"sync_interval": "45s", "idle_lock_timeout": "5m"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "sign", cfg.Auth.TokenSignKey)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/notelock", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/notelock.db", cfg.Storage.Local.Path)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.IdleLockTimeout)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	path := writeTestJSON(t, `{"workers": {"sync_interval": 1000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Workers.SyncInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/nonexistent/config.json")
	require.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := writeTestJSON(t, `{not json`)
	_, err := parseJSON(path)
	require.Error(t, err)
}
