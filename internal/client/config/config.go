package config

import (
	"os"
	"time"
)

const DefaultAPIBaseURL = "https://moviewebapp.herokuapp.com/"

// Config holds runtime settings for the myFlix CLI.
type Config struct {
	APIBaseURL        string        `env:"MYFLIX_API_URL"`
	SessionDBPath     string        `env:"MYFLIX_SESSION_DB"`
	RequestTimeout    time.Duration `env:"MYFLIX_REQUEST_TIMEOUT"`
	RequestsPerSecond float64       `env:"MYFLIX_RPS"`
	LogLevel          string        `env:"MYFLIX_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.SessionDBPath = "session.db"
	c.RequestTimeout = 30 * time.Second
	c.RequestsPerSecond = 0
	c.LogLevel = "info"
}

// LoadConfig builds a Config from defaults, then the JSON file, then the
// environment, then flags. Later sources win. It panics on malformed input
// so a misconfigured client never starts.
func LoadConfig() *Config {
	args := os.Args[1:]

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg)
	parseFlags(cfg, args)
	return cfg
}
