package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by parseEnv.
const (
	envAPIBaseURL     = "BOOKMARKET_API_URL"
	envRequestTimeout = "BOOKMARKET_TIMEOUT"
	envDBPath         = "BOOKMARKET_DB_PATH"
	envLogLevel       = "BOOKMARKET_LOG_LEVEL"
)

// parseEnv overlays Config with values from the environment. A .env file
// in the working directory is sourced first when present; variables
// already set in the real environment win over the file.
//
// BOOKMARKET_TIMEOUT accepts either a time.ParseDuration string ("15s")
// or a plain integer interpreted as seconds. Unparseable values are
// ignored and the earlier value stands.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		} else if secs, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(envDBPath); v != "" {
		cfg.CredentialsDBPath = v
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
