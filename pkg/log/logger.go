// Package log provides a structured logging system for stopwatch components.
package log

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// Level represents the severity level of a log message.
type Level int

// Log levels
const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// String returns the string representation of the log level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugLevel, nil
	case "info", "":
		return InfoLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "error":
		return ErrorLevel, nil
	default:
		return InfoLevel, fmt.Errorf("unknown log level %q", s)
	}
}

// Fields is a map of field names to values.
type Fields map[string]interface{}

// ComponentKey is the field name used by WithComponent.
const ComponentKey = "component"

// Entry represents a single log entry.
type Entry struct {
	Level     Level
	Message   string
	Fields    Fields
	Timestamp time.Time
}

// Logger defines the core logging interface for stopwatch components.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// With adds multiple fields to the logger
	With(fields ...Field) Logger

	// WithComponent tags logs with a component name
	WithComponent(component string) Logger

	SetLevel(level Level)
	GetLevel() Level
}

// Formatter defines the interface for formatting log entries.
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// Output defines the interface for log outputs.
type Output interface {
	Write(entry *Entry, formattedEntry []byte) error
	Close() error
}

// LoggerOption is a function that configures a logger.
type LoggerOption func(*sink)

// sink is shared by a logger and every logger derived from it via With, so
// SetLevel on any of them is visible to all.
type sink struct {
	mu        sync.RWMutex
	level     Level
	formatter Formatter
	outputs   []Output
}

func (s *sink) enabled(level Level) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.level <= level
}

// BaseLogger implements the Logger interface.
type BaseLogger struct {
	sink       *sink
	slogLogger *slog.Logger
}

// NewLogger creates a new logger with the given options.
func NewLogger(options ...LoggerOption) Logger {
	s := &sink{
		level:     InfoLevel,
		formatter: &JSONFormatter{},
	}
	for _, option := range options {
		option(s)
	}
	if len(s.outputs) == 0 {
		s.outputs = append(s.outputs, NewConsoleOutput())
	}
	return &BaseLogger{sink: s, slogLogger: slog.New(newBridgeHandler(s))}
}

// NewNopLogger returns a logger that discards everything. Library packages
// use it when no logger is injected.
func NewNopLogger() Logger {
	return NewLogger(WithLevel(ErrorLevel+1), WithOutput(NullOutput{}))
}

// WithLevel sets the minimum log level.
func WithLevel(level Level) LoggerOption {
	return func(s *sink) {
		s.level = level
	}
}

// WithFormatter sets the log formatter.
func WithFormatter(formatter Formatter) LoggerOption {
	return func(s *sink) {
		s.formatter = formatter
	}
}

// WithOutput adds an output to the logger.
func WithOutput(output Output) LoggerOption {
	return func(s *sink) {
		s.outputs = append(s.outputs, output)
	}
}

func (l *BaseLogger) log(level Level, msg string, fields []Field) {
	if !l.sink.enabled(level) {
		return
	}
	l.slogLogger.LogAttrs(context.Background(), toSlogLevel(level), msg, attrsFromFields(fields)...)
}

func (l *BaseLogger) Debug(msg string, fields ...Field) { l.log(DebugLevel, msg, fields) }
func (l *BaseLogger) Info(msg string, fields ...Field)  { l.log(InfoLevel, msg, fields) }
func (l *BaseLogger) Warn(msg string, fields ...Field)  { l.log(WarnLevel, msg, fields) }
func (l *BaseLogger) Error(msg string, fields ...Field) { l.log(ErrorLevel, msg, fields) }

// With returns a logger that adds fields to every entry.
func (l *BaseLogger) With(fields ...Field) Logger {
	if len(fields) == 0 {
		return l
	}
	return &BaseLogger{sink: l.sink, slogLogger: l.slogLogger.With(attrsToAny(attrsFromFields(fields))...)}
}

// WithComponent tags logs with a component name.
func (l *BaseLogger) WithComponent(component string) Logger {
	return l.With(Component(component))
}

// SetLevel sets the minimum log level.
func (l *BaseLogger) SetLevel(level Level) {
	l.sink.mu.Lock()
	l.sink.level = level
	l.sink.mu.Unlock()
}

// GetLevel returns the current minimum log level.
func (l *BaseLogger) GetLevel() Level {
	l.sink.mu.RLock()
	defer l.sink.mu.RUnlock()
	return l.sink.level
}
