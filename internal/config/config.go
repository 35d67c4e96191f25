// Package config resolves gp settings. GP_* environment variables win over
// config.toml, which wins over the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/gp"
	envPrefix  = "GP"

	KeyServerAddr   = "server.addr"
	KeyServerURL    = "server.url"
	KeyLoginBaseURL = "graph.login_base_url"
	KeyAPIBaseURL   = "graph.api_base_url"
	KeyHTTPTimeout  = "http.timeout"
	KeyStatePath    = "state.path"
	KeySessionDir   = "session.dir"
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"

	DefaultServerAddr   = "127.0.0.1:3000"
	DefaultLoginBaseURL = "https://login.microsoftonline.com"
	DefaultAPIBaseURL   = "https://graph.microsoft.com/v1.0"
)

type Config struct {
	ServerAddr string
	// ServerURL points client commands at a running "gp serve". Empty means
	// the endpoints run in-process.
	ServerURL    string
	LoginBaseURL string
	APIBaseURL   string
	// HTTPTimeout of zero leaves timeouts to the transport and the remote side.
	HTTPTimeout time.Duration
	StatePath   string
	SessionDir  string
	LogLevel    string
	LogFormat   string
}

// Load reads configuration into cfg. A missing config file is not an error.
func Load(cfg *viper.Viper) (Config, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve home directory: %w", err)
	}
	dir := filepath.Join(homeDir, configDir)

	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(KeyServerAddr, DefaultServerAddr)
	cfg.SetDefault(KeyServerURL, "")
	cfg.SetDefault(KeyLoginBaseURL, DefaultLoginBaseURL)
	cfg.SetDefault(KeyAPIBaseURL, DefaultAPIBaseURL)
	cfg.SetDefault(KeyHTTPTimeout, time.Duration(0))
	cfg.SetDefault(KeyStatePath, filepath.Join(dir, "state.toml"))
	cfg.SetDefault(KeySessionDir, defaultSessionDir())
	cfg.SetDefault(KeyLogLevel, "info")
	cfg.SetDefault(KeyLogFormat, "text")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	out := Config{
		ServerAddr:   cfg.GetString(KeyServerAddr),
		ServerURL:    strings.TrimRight(cfg.GetString(KeyServerURL), "/"),
		LoginBaseURL: strings.TrimRight(cfg.GetString(KeyLoginBaseURL), "/"),
		APIBaseURL:   strings.TrimRight(cfg.GetString(KeyAPIBaseURL), "/"),
		HTTPTimeout:  cfg.GetDuration(KeyHTTPTimeout),
		StatePath:    cfg.GetString(KeyStatePath),
		SessionDir:   cfg.GetString(KeySessionDir),
		LogLevel:     cfg.GetString(KeyLogLevel),
		LogFormat:    cfg.GetString(KeyLogFormat),
	}
	if err := out.validate(); err != nil {
		return Config{}, err
	}
	return out, nil
}

func (c Config) validate() error {
	switch {
	case c.LoginBaseURL == "":
		return errors.New("graph login base url is empty")
	case c.APIBaseURL == "":
		return errors.New("graph api base url is empty")
	case c.StatePath == "":
		return errors.New("state path is empty")
	case c.SessionDir == "":
		return errors.New("session dir is empty")
	case c.HTTPTimeout < 0:
		return fmt.Errorf("http timeout must not be negative, got %s", c.HTTPTimeout)
	}
	return nil
}

// defaultSessionDir prefers the login-session runtime dir, which the OS
// clears on logout.
func defaultSessionDir() string {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return filepath.Join(runtimeDir, "gp")
	}
	return filepath.Join(os.TempDir(), "gp-"+strconv.Itoa(os.Getuid()))
}
