// Package log provides the structured logging facade used across the
// stopwatch module.
//
// # Overview
//
// The package exposes a small Logger interface with leveled methods and a
// Field type for structured context. Internally it is backed by the standard
// library slog via a bridge handler that feeds a Formatter and a set of
// Outputs.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("demo"))
//	l.Info("stopwatch stopped", log.Str("id", "ID 1"), log.Int("laps", 10))
//
// # Configuration
//
// Use ApplyConfig to build a logger from a declarative Config with text or
// JSON formatting. Libraries default to NewNopLogger and accept a Logger via
// options.
package log
