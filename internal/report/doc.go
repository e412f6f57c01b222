// Package report renders registry contents for humans and narrows them with
// an optional CEL expression evaluated against each stopwatch snapshot.
//
// Variables available to filter expressions:
//
//	id         string        stopwatch identifier
//	running    bool          whether it is currently running
//	laps_ms    list(int)     laps in whole milliseconds, recording order
//	lap_count  int           number of laps
//	total_ms   int           sum of laps in whole milliseconds
//
// Example:
//
//	f, err := report.NewFilter(`!running && lap_count >= 10 && total_ms > 9000`)
//	if err != nil { /* bad expression */ }
//	n, err := report.Write(os.Stdout, reg.List(), f)
package report
