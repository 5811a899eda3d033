package config

import "time"

// Config holds runtime settings for the bookmarket CLI.
//
// Fields:
//   - APIBaseURL: base URL of the bookmarket REST API, including the
//     /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - CredentialsDBPath: path to the local sqlite file holding the
//     persisted token pair.
//   - LogLevel: minimum level for the structured logger.
type Config struct {
	APIBaseURL        string
	RequestTimeout    time.Duration
	CredentialsDBPath string
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.RequestTimeout = 15 * time.Second
	c.CredentialsDBPath = "bookmarket.db"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
