// Package config handles configuration for the terminal client, including
// defaults, environment variables, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the accountd CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the account server, e.g. "http://localhost:3000".
//   - StatePath: SQLite file holding durable auth state.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerBaseURL  string
	StatePath      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.StatePath = "accountd.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, an optional JSON file, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
