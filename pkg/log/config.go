package log

import (
	"fmt"
	"io"
	"strings"
)

// Config declares a logger in terms of plain strings, typically sourced from
// flags or environment variables.
type Config struct {
	Level  string
	Format string
	// Writer overrides the console destination when set.
	Writer io.Writer
}

// ApplyConfig builds a Logger from cfg. Format is "text" or "json"; an empty
// format means text.
func ApplyConfig(cfg *Config) (Logger, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	var formatter Formatter
	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "", "text":
		formatter = &TextFormatter{}
	case "json":
		formatter = &JSONFormatter{}
	default:
		return nil, fmt.Errorf("unknown log format %q; use text|json", cfg.Format)
	}
	out := NewConsoleOutput()
	if cfg.Writer != nil {
		out = NewWriterOutput(cfg.Writer)
	}
	return NewLogger(WithLevel(level), WithFormatter(formatter), WithOutput(out)), nil
}
