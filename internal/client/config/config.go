package config

import "time"

// Config holds runtime settings for the SafeSnap CLI.
//
// Fields:
//   - ServerBaseURL: base address of the REST API gateway.
//   - RequestTimeout: per-request timeout for gateway calls.
//   - DatabasePath: path of the local sqlite file holding durable client
//     state (the persisted session).
type Config struct {
	ServerBaseURL  string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.DatabasePath = "safesnap.db"
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
