package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/avdenisov/groupplan/internal/flagx"
	"github.com/avdenisov/groupplan/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. After parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	ServerBaseURL        string         `json:"server_base_url"`
	SessionCheckInterval timex.Duration `json:"session_check_interval"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c or -config flag via flagx.JsonConfigFlags; when
// neither is set, nothing is loaded. Read or unmarshal errors panic, the
// caller recovers if desired.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerBaseURL = jc.ServerBaseURL
	cfg.SessionCheckInterval = time.Duration(jc.SessionCheckInterval.Duration)
}
