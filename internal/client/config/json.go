package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/apiclient/internal/flagx"
	"github.com/dmitrijs2005/apiclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "zero" so a file can set only some keys.
type JsonConfig struct {
	APIBaseURL      *string         `json:"api_url"`
	StateDir        *string         `json:"state_dir"`
	DatabaseFile    *string         `json:"database_file"`
	HTTPTimeout     *timex.Duration `json:"http_timeout"`
	Debug           *bool           `json:"debug"`
	LogLevel        *string         `json:"log_level"`
	TokenPassphrase *string         `json:"token_passphrase"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without the flag nothing happens. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}
	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.StateDir != nil {
		cfg.StateDir = *jc.StateDir
	}
	if jc.DatabaseFile != nil {
		cfg.DatabaseFile = *jc.DatabaseFile
	}
	if jc.HTTPTimeout != nil {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	if jc.Debug != nil {
		cfg.Debug = *jc.Debug
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.TokenPassphrase != nil {
		cfg.TokenPassphrase = *jc.TokenPassphrase
	}
}
