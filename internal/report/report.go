package report

import (
	"fmt"
	"io"

	"github.com/rzbill/stopwatch/pkg/stopwatch"
)

// Select returns the snapshots of watches that match f, in input order.
func Select(watches []*stopwatch.Stopwatch, f Filter) []stopwatch.Snapshot {
	out := make([]stopwatch.Snapshot, 0, len(watches))
	for _, sw := range watches {
		snap := sw.Snapshot()
		if f.Match(snap) {
			out = append(out, snap)
		}
	}
	return out
}

// Write prints every matching stopwatch separated by a blank line and
// returns how many were written.
func Write(w io.Writer, watches []*stopwatch.Stopwatch, f Filter) (int, error) {
	snaps := Select(watches, f)
	for i, snap := range snaps {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return i, err
			}
		}
		if _, err := io.WriteString(w, snap.String()); err != nil {
			return i, err
		}
	}
	if len(snaps) == 0 {
		if _, err := fmt.Fprintln(w, "No stopwatches matched."); err != nil {
			return 0, err
		}
	}
	return len(snaps), nil
}
