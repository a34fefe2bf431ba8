// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the foodprint CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend API.
//   - DatabaseDSN: path of the local SQLite database holding remembered
//     sessions.
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerEndpointAddr string
	DatabaseDSN        string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:5000"
	c.DatabaseDSN = "foodprint.db"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
