// Package config loads runtime configuration for the API client CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the APICLIENT_ prefix (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string     API base URL
//	-d string     session database file
//	-t duration   HTTP request timeout
//	-v            dump HTTP traffic
//
// # Environment
//
//	APICLIENT_API_URL (or API_URL), APICLIENT_STATE_DIR, APICLIENT_DATABASE_FILE,
//	APICLIENT_HTTP_TIMEOUT, APICLIENT_DEBUG, APICLIENT_LOG_LEVEL,
//	APICLIENT_TOKEN_PASSPHRASE
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "10s" or integer
// nanoseconds. Every key is optional:
//
//	{
//	  "api_url": "http://localhost:3001",
//	  "state_dir": ".apiclient",
//	  "database_file": "client.db",
//	  "http_timeout": "10s",
//	  "debug": false,
//	  "log_level": "info",
//	  "token_passphrase": ""
//	}
package config
