package config

import (
	"os"
	"strconv"
	"time"
)

// FromEnv overlays STOPWATCH_* environment variables onto cfg. Unparseable
// values are ignored.
func FromEnv(cfg *Config) {
	if v := os.Getenv("STOPWATCH_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("STOPWATCH_LAPS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Laps = n
		}
	}
	if v := os.Getenv("STOPWATCH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Interval = Duration(d)
		}
	}
	if v := os.Getenv("STOPWATCH_RESTART_MODE"); v != "" {
		cfg.RestartMode = v
	}
	if v, ok := os.LookupEnv("STOPWATCH_ID_PREFIX"); ok {
		cfg.IDPrefix = v
	}
	if v := os.Getenv("STOPWATCH_FILTER"); v != "" {
		cfg.Filter = v
	}
	if v := os.Getenv("STOPWATCH_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STOPWATCH_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}
