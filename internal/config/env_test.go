package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_FullConfig(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "sign")
	t.Setenv("AUTH_TOKEN_ISSUER", "notelock")
	t.Setenv("AUTH_TOKEN_DURATION", "2h")
	t.Setenv("AUTH_PASSWORD_HASH_KEY", "pepper")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost:5432/notelock")
	t.Setenv("STORAGE_LOCAL_PATH", "/tmp/notelock.db")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")
	t.Setenv("ADAPTER_ADDRESS", "localhost:8080")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "15s")
	t.Setenv("WORKERS_SYNC_INTERVAL", "45s")
	t.Setenv("WORKERS_IDLE_LOCK_TIMEOUT", "5m")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "sign", cfg.Auth.TokenSignKey)
	assert.Equal(t, "notelock", cfg.Auth.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "pepper", cfg.Auth.PasswordHashKey)
	assert.Equal(t, "postgres://localhost:5432/notelock", cfg.Storage.DB.DSN)
	assert.Equal(t, "/tmp/notelock.db", cfg.Storage.Local.Path)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 45*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.IdleLockTimeout)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))
	assert.Empty(t, cfg.Auth.TokenSignKey)
	assert.Zero(t, cfg.Workers.SyncInterval)
}

func TestParseEnv_BadDuration(t *testing.T) {
	t.Setenv("AUTH_TOKEN_DURATION", "not-a-duration")

	var cfg StructuredConfig
	require.Error(t, parseEnv(&cfg))
}
