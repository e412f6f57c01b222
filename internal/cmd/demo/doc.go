// Package demo implements the `stopwatch demo` command: a set of "slow
// thinker" worker goroutines that each create a uniquely named stopwatch,
// record a number of laps at a fixed interval, stop it and log the lap
// times. When every worker is done the registry is printed, optionally
// narrowed by a CEL filter.
//
// Example:
//
//	reg, err := demo.Run(ctx, demo.Options{Config: config.Default(), Logger: logger})
//	_, _ = report.Write(os.Stdout, reg.List(), report.Filter{})
package demo
