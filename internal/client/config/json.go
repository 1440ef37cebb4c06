package config

import (
	"encoding/json"
	"os"

	"github.com/myflix/myflix-client/internal/flagx"
	"github.com/myflix/myflix-client/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Fields left out of the
// file keep whatever value the Config already had.
type JsonConfig struct {
	APIBaseURL        string          `json:"api_base_url"`
	SessionDBPath     string          `json:"session_db_path"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	RequestsPerSecond *float64        `json:"requests_per_second"`
	LogLevel          string          `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Read and decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigPath(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *jc.RequestsPerSecond
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
