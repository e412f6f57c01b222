package stopwatch

import (
	"strconv"
	"strings"
	"time"
)

// Snapshot is an immutable copy of a stopwatch's observable state.
type Snapshot struct {
	ID      string
	Running bool
	Laps    []time.Duration
}

// Total returns the sum of all laps.
func (s Snapshot) Total() time.Duration {
	var total time.Duration
	for _, d := range s.Laps {
		total += d
	}
	return total
}

// LapsMs returns the laps truncated to whole milliseconds.
func (s Snapshot) LapsMs() []int64 {
	out := make([]int64, len(s.Laps))
	for i, d := range s.Laps {
		out[i] = d.Milliseconds()
	}
	return out
}

// Equal compares id, running state and laps (content and order).
func (s Snapshot) Equal(o Snapshot) bool {
	if s.ID != o.ID || s.Running != o.Running || len(s.Laps) != len(o.Laps) {
		return false
	}
	for i := range s.Laps {
		if s.Laps[i] != o.Laps[i] {
			return false
		}
	}
	return true
}

// String renders the snapshot as
//
//	Stopwatch Id - build
//	Stopwatch State - stop (not running)
//	List of lap times as below.
//	Lap - 1: 13 ms.
func (s Snapshot) String() string {
	var b strings.Builder
	b.WriteString("Stopwatch Id - " + s.ID + "\n")
	if s.Running {
		b.WriteString("Stopwatch State - running\n")
	} else {
		b.WriteString("Stopwatch State - stop (not running)\n")
	}
	b.WriteString("List of lap times as below.\n")
	if len(s.Laps) == 0 {
		b.WriteString("No laps so far...\n")
		return b.String()
	}
	for i, ms := range s.LapsMs() {
		b.WriteString("Lap - " + strconv.Itoa(i+1) + ": " + strconv.FormatInt(ms, 10) + " ms.\n")
	}
	return b.String()
}
