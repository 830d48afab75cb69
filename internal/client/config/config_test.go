package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8000", c.ServerBaseURL)
	assert.Equal(t, 30*time.Second, c.SessionCheckInterval)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, "http://127.0.0.1:8000", cfg.ServerBaseURL)
	assert.Equal(t, 30*time.Second, cfg.SessionCheckInterval)
}

func TestParseEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("GROUPPLAN_SERVER_URL", "https://plan.example.com")
	t.Setenv("GROUPPLAN_SESSION_CHECK_INTERVAL", "90s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, "https://plan.example.com", cfg.ServerBaseURL)
	assert.Equal(t, 90*time.Second, cfg.SessionCheckInterval)
}

func TestParseEnv_BadDurationPanics(t *testing.T) {
	t.Setenv("GROUPPLAN_SESSION_CHECK_INTERVAL", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	require.Panics(t, func() { parseEnv(cfg) })
}
