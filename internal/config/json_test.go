package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"auth": {
			"password_salt": "file-salt",
			"token_sign_key": "file-key",
			"token_issuer": "file-issuer",
			"token_duration": "2h"
		},
		"storage": {"db": {"dsn": "postgres://localhost/contacts"}},
		"server": {"http_address": "0.0.0.0:8888", "request_timeout": "30s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "file-salt", cfg.Auth.PasswordSalt)
	assert.Equal(t, "file-key", cfg.Auth.TokenSignKey)
	assert.Equal(t, "file-issuer", cfg.Auth.TokenIssuer)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "postgres://localhost/contacts", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8888", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeConfigFile(t, `{"auth": {"token_duration": 3600000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "does-not-exist.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := parseJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
