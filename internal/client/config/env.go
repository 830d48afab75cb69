package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from environment variables, after
// loading an optional .env file from the working directory. A missing .env
// is not an error. Unparseable durations panic, like the other loaders.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("GROUPPLAN_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("GROUPPLAN_SESSION_CHECK_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.SessionCheckInterval = d
	}
}
