package config

import (
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/apiclient/internal/common"
)

const memoryDatabase = ":memory:"

// Config holds runtime settings for the API client CLI.
//
// Fields:
//   - APIBaseURL: scheme://host[:port][/prefix] of the API server.
//   - StateDir: directory holding local state (the session database).
//   - DatabaseFile: SQLite file name inside StateDir, an absolute path, or ":memory:".
//   - HTTPTimeout: per-request bound; 0 leaves cancellation to the caller's context.
//   - Debug: dump HTTP traffic through the logger.
//   - LogLevel: debug, info, warn or error.
//   - TokenPassphrase: when set, the persisted session token is encrypted with it.
type Config struct {
	APIBaseURL      string
	StateDir        string
	DatabaseFile    string
	HTTPTimeout     time.Duration
	Debug           bool
	LogLevel        string
	TokenPassphrase string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = common.DefaultAPIBaseURL
	c.StateDir = ".apiclient"
	c.DatabaseFile = "client.db"
	c.HTTPTimeout = 0
	c.Debug = false
	c.LogLevel = "info"
	c.TokenPassphrase = ""
}

// InMemory reports whether the session database lives only in memory.
func (c *Config) InMemory() bool {
	return c.DatabaseFile == memoryDatabase
}

// DatabaseDSN resolves DatabaseFile against stateDir.
func (c *Config) DatabaseDSN(stateDir string) string {
	if c.InMemory() || filepath.IsAbs(c.DatabaseFile) {
		return c.DatabaseFile
	}
	return filepath.Join(stateDir, c.DatabaseFile)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}
