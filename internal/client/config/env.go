package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables. A .env
// file in the working directory is loaded first; a missing file is not an
// error. Unset variables leave the current value in place.
//
// Recognized variables:
//
//	LMS_SERVER_URL       base URL of the backend
//	LMS_GRAPHQL_PATH     GraphQL endpoint path
//	LMS_REQUEST_TIMEOUT  request deadline, e.g. "15s"
//	LMS_DATABASE_DSN     SQLite file for the local token store
//	LMS_LOG_LEVEL        debug, info, warn or error
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("LMS_SERVER_URL"); v != "" {
		cfg.ServerURL = v
	}
	if v := os.Getenv("LMS_GRAPHQL_PATH"); v != "" {
		cfg.GraphQLPath = v
	}
	if v := os.Getenv("LMS_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("LMS_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("LMS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}
