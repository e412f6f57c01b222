// Package config provides loading and environment overlay for the stopwatch
// demo. It exposes a Default() baseline, JSON file loading, STOPWATCH_*
// environment overrides and validation.
//
// Example:
//
//	cfg := config.Default()
//	if fileCfg, err := config.Load("stopwatch.json"); err == nil {
//	    cfg = fileCfg
//	}
//	config.FromEnv(&cfg)
//	if err := cfg.Validate(); err != nil { /* handle */ }
package config
