package config

import "time"

// Config holds runtime settings for the group planner CLI.
//
// Fields:
//   - ServerBaseURL: http(s) base URL of the backend.
//   - SessionCheckInterval: how often the client verifies the session cookie
//     is still accepted.
type Config struct {
	ServerBaseURL        string
	SessionCheckInterval time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.SessionCheckInterval = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
