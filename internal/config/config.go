package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// DefaultServiceURL is used when the configuration does not name a service.
const DefaultServiceURL = "https://legend.lnbits.com/scrum/api/v1"

// Config is the client configuration record. Validation is deliberately not
// done at load time: a configuration with no credentials only fails once a
// client is constructed from it.
type Config struct {
	ServiceURL  string `yaml:"service_url" envconfig:"SERVICE_URL"`
	AccessToken string `yaml:"access_token" envconfig:"ACCESS_TOKEN"`
	UserID      string `yaml:"user_id" envconfig:"USER_ID"`
	Usr         string `yaml:"usr" envconfig:"USR"`
	WalletID    string `yaml:"wallet_id" envconfig:"WALLET_ID"`
}

// DefaultPath returns the well-known config file location,
// $HOME/.satsboard.yaml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".satsboard.yaml"
	}
	return filepath.Join(home, ".satsboard.yaml")
}

// Load reads the config file at path and applies SATSBOARD_* environment
// overrides on top. A missing file is an empty configuration; unparsable
// content is logged and likewise treated as empty. Loading never fails.
func Load(path string, logger zerolog.Logger) *Config {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			logger.Warn().Str("path", path).Err(err).Msg("config file unparsable, starting from empty configuration")
			*cfg = Config{}
		}
	case os.IsNotExist(err):
		// deferred failure: credentials are checked at client construction
	default:
		logger.Warn().Str("path", path).Err(err).Msg("config file unreadable, starting from empty configuration")
	}

	if err := envconfig.Process("satsboard", cfg); err != nil {
		logger.Warn().Err(err).Msg("environment overrides not applied")
	}

	return cfg
}

// BaseURL returns the configured service URL, or the default when absent,
// without a trailing slash.
func (c *Config) BaseURL() string {
	u := strings.TrimSpace(c.ServiceURL)
	if u == "" {
		u = DefaultServiceURL
	}
	return strings.TrimRight(u, "/")
}

// User returns the configured user identifier, preferring user_id over the
// legacy usr alias.
func (c *Config) User() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Usr
}
