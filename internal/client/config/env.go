package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "APICLIENT"

// envConfig mirrors Config for envconfig. Variables are APICLIENT_<NAME>;
// the base URL also falls back to a bare API_URL.
type envConfig struct {
	APIBaseURL      string        `envconfig:"API_URL"`
	StateDir        string        `split_words:"true"`
	DatabaseFile    string        `split_words:"true"`
	HTTPTimeout     time.Duration `split_words:"true"`
	Debug           bool
	LogLevel        string `split_words:"true"`
	TokenPassphrase string `split_words:"true"`
}

// parseEnv overlays Config with environment variables. Unset variables keep
// the current values.
func parseEnv(cfg *Config) error {
	ec := envConfig{
		APIBaseURL:      cfg.APIBaseURL,
		StateDir:        cfg.StateDir,
		DatabaseFile:    cfg.DatabaseFile,
		HTTPTimeout:     cfg.HTTPTimeout,
		Debug:           cfg.Debug,
		LogLevel:        cfg.LogLevel,
		TokenPassphrase: cfg.TokenPassphrase,
	}
	if err := envconfig.Process(envPrefix, &ec); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	cfg.APIBaseURL = ec.APIBaseURL
	cfg.StateDir = ec.StateDir
	cfg.DatabaseFile = ec.DatabaseFile
	cfg.HTTPTimeout = ec.HTTPTimeout
	cfg.Debug = ec.Debug
	cfg.LogLevel = ec.LogLevel
	cfg.TokenPassphrase = ec.TokenPassphrase
	return nil
}
