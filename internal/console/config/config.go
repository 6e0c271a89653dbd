package config

import "time"

// Config holds runtime settings for the RoadFleet admin console.
//
// Fields:
//   - ServerBaseURL: base URL of the rental platform's REST API.
//   - CredentialDB: path of the local SQLite credential database.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerBaseURL  string
	CredentialDB   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:5000"
	c.CredentialDB = "console.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
