package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_RUNTIME_DIR", filepath.Join(home, "run"))

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, DefaultServerAddr, cfg.ServerAddr)
	assert.Empty(t, cfg.ServerURL)
	assert.Equal(t, DefaultLoginBaseURL, cfg.LoginBaseURL)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Zero(t, cfg.HTTPTimeout)
	assert.Equal(t, filepath.Join(home, ".config", "gp", "state.toml"), cfg.StatePath)
	assert.Equal(t, filepath.Join(home, "run", "gp"), cfg.SessionDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "gp")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
[server]
addr = "0.0.0.0:8080"
url = "http://127.0.0.1:3000/"

[http]
timeout = "30s"

[log]
level = "debug"
`), 0o600))
	t.Setenv("GP_LOG_LEVEL", "warn")
	t.Setenv("GP_GRAPH_API_BASE_URL", "http://graph.test/v1.0/")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.ServerAddr)
	assert.Equal(t, "http://127.0.0.1:3000", cfg.ServerURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "http://graph.test/v1.0", cfg.APIBaseURL)
}

func TestLoadRejectsBrokenConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "gp")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[server\n"), 0o600))

	_, err := Load(viper.New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}
