package config

import "time"

// Config holds runtime settings for the LMS terminal client.
//
// Fields:
//   - ServerURL: base URL of the backend (REST auth endpoints live under it).
//   - GraphQLPath: path of the GraphQL endpoint relative to ServerURL.
//   - RequestTimeout: per-request deadline for the HTTP client.
//   - DatabaseDSN: path of the local SQLite file holding the session token.
//   - LogLevel: minimum level for the structured logger (debug/info/warn/error).
type Config struct {
	ServerURL      string
	GraphQLPath    string
	RequestTimeout time.Duration
	DatabaseDSN    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.GraphQLPath = "/graphql"
	c.RequestTimeout = 15 * time.Second
	c.DatabaseDSN = "iron-lms.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (including an optional .env file), a JSON file (if present)
// and command-line flags (if present). Later sources take precedence over
// earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
