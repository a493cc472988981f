package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestFlags(t *testing.T, args ...string) *StructuredConfig {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	return parseFlagsFrom(fs, args)
}

func TestParseFlags_ServerAddress(t *testing.T) {
	cfg := parseTestFlags(t, "-a", "localhost:8080")
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
}

func TestParseFlags_Defaults(t *testing.T) {
	cfg := parseTestFlags(t)
	assert.Empty(t, cfg.Server.HTTPAddress)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Workers.SyncInterval)
}

func TestParseFlags_ClientGroup(t *testing.T) {
	cfg := parseTestFlags(t,
		"-remote-address", "localhost:8080",
		"-l", "/tmp/notelock.db",
		"-sync-interval", "30s",
		"-idle-lock", "5m",
	)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "/tmp/notelock.db", cfg.Storage.Local.Path)
	assert.Equal(t, 30*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, 5*time.Minute, cfg.Workers.IdleLockTimeout)
}

func TestParseFlags_AuthGroup(t *testing.T) {
	cfg := parseTestFlags(t,
		"-token-sign-key", "sign",
		"-token-issuer", "notelock",
		"-token-duration", "1h",
		"-password-hash-key", "pepper",
	)
	assert.Equal(t, "sign", cfg.Auth.TokenSignKey)
	assert.Equal(t, "notelock", cfg.Auth.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "pepper", cfg.Auth.PasswordHashKey)
}

func TestParseFlags_ConfigAlias(t *testing.T) {
	cfg := parseTestFlags(t, "-config", "/etc/notelock.json")
	assert.Equal(t, "/etc/notelock.json", cfg.JSONFilePath)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "localhost with port", input: "localhost:9090", wantErr: false},
		{name: "ip with port", input: "127.0.0.1:8080", wantErr: false},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:zero", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad host", input: "not-an-ip:8080", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, addr.String())
		})
	}
}

func TestNetAddress_String_Empty(t *testing.T) {
	var addr NetAddress
	assert.Empty(t, addr.String())
}
