package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rzbill/stopwatch/pkg/stopwatch"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	Workers     int      `json:"workers"`
	Laps        int      `json:"laps"`
	Interval    Duration `json:"interval"`
	RestartMode string   `json:"restartMode"`
	IDPrefix    string   `json:"idPrefix"`
	Filter      string   `json:"filter"`
	Log         Log      `json:"log"`
}

// Log captures logger settings.
type Log struct {
	Level  string `json:"level"`
	Format string `json:"format"`
}

// Duration is a time.Duration that unmarshals from a Go duration string
// ("250ms") or a number of milliseconds.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}
	var ms int64
	if err := json.Unmarshal(b, &ms); err != nil {
		return fmt.Errorf("duration must be a string like \"1s\" or milliseconds: %w", err)
	}
	*d = Duration(time.Duration(ms) * time.Millisecond)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Default returns built-in defaults, matching the classic single "slow
// thinker" run: one worker, ten one-second laps.
func Default() Config {
	return Config{
		Workers:     1,
		Laps:        10,
		Interval:    Duration(time.Second),
		RestartMode: stopwatch.RestartMerge.String(),
		IDPrefix:    "ID ",
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a JSON file. If path is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return Config{}, errors.New("yaml config not supported; use JSON")
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers must be >= 1, got %d", c.Workers)
	}
	if c.Laps < 0 {
		return fmt.Errorf("laps must be >= 0, got %d", c.Laps)
	}
	if c.Interval < 0 {
		return fmt.Errorf("interval must be >= 0, got %s", c.Interval.Std())
	}
	if _, err := stopwatch.ParseRestartMode(c.RestartMode); err != nil {
		return err
	}
	return nil
}
