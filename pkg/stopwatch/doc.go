// Package stopwatch provides named, concurrency-safe stopwatches and the
// Registry that hands them out under unique identifiers.
//
// A Stopwatch is obtained only from Registry.Create and is then driven
// directly by its owner: Start, Lap, Stop and Reset are mutually exclusive
// on one instance, and LapTimes/Snapshot always return an independent copy.
//
// Example:
//
//	reg := stopwatch.NewRegistry()
//	sw, err := reg.Create("build")
//	if err != nil { /* ErrInvalidArgument or ErrAlreadyExists */ }
//	_ = sw.Start()
//	_ = sw.Lap()
//	_ = sw.Stop()
//	fmt.Print(sw) // id, state and one line per lap in ms
//
// # Restart behavior
//
// With the default RestartMerge, calling Start after Stop retracts the lap
// recorded by Stop and resumes timing into it, so start/stop/start/stop
// yields a single lap. RestartFresh keeps every recorded lap and begins a new
// segment instead.
package stopwatch
