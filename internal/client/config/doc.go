// Package config loads runtime configuration for the LMS terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, including an optional .env file (see parseEnv).
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend server
//	-g string   GraphQL endpoint path
//	-t int      request timeout (seconds)
//	-d string   path of the local token database
//	-l string   log level
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "15s" or integer nanoseconds:
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "graphql_path": "/graphql",
//	  "request_timeout": "15s",
//	  "database_dsn": "iron-lms.db",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — holds the client's runtime settings
//   - func LoadConfig() *Config       — builds Config by applying defaults, env, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
