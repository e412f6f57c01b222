package stopwatch

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// RestartMode selects what Start does when laps were already recorded.
type RestartMode int

const (
	// RestartMerge retracts the last lap and back-dates the reference
	// instant by its duration, continuing the interrupted segment.
	RestartMerge RestartMode = iota
	// RestartFresh keeps all laps and starts a new segment at now.
	RestartFresh
)

func (m RestartMode) String() string {
	switch m {
	case RestartMerge:
		return "merge"
	case RestartFresh:
		return "fresh"
	default:
		return "unknown"
	}
}

// ParseRestartMode parses "merge" or "fresh". Empty means merge.
func ParseRestartMode(s string) (RestartMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "merge":
		return RestartMerge, nil
	case "fresh":
		return RestartFresh, nil
	default:
		return RestartMerge, fmt.Errorf("unknown restart mode %q; use merge|fresh", s)
	}
}

// now is the monotonic clock. Tests replace it.
var now = time.Now

// Stopwatch is a named timer with a running/stopped state and a list of lap
// durations. All methods are safe for concurrent use.
type Stopwatch struct {
	id   string
	mode RestartMode

	mu      sync.Mutex
	running bool
	laps    []time.Duration
	ref     time.Time
}

func newStopwatch(id string, mode RestartMode) *Stopwatch {
	return &Stopwatch{id: id, mode: mode, laps: []time.Duration{}}
}

// ID returns the identifier the stopwatch was created with.
func (s *Stopwatch) ID() string { return s.id }

// Mode returns the restart mode.
func (s *Stopwatch) Mode() RestartMode { return s.mode }

// IsRunning reports whether the stopwatch is running.
func (s *Stopwatch) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Start starts the stopwatch. It fails with ErrIllegalState if already running.
func (s *Stopwatch) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return fmt.Errorf("stopwatch %q: start: already running: %w", s.id, ErrIllegalState)
	}
	t := now()
	if s.mode == RestartMerge && len(s.laps) > 0 {
		last := s.laps[len(s.laps)-1]
		s.laps = s.laps[:len(s.laps)-1]
		t = t.Add(-last)
	}
	s.ref = t
	s.running = true
	return nil
}

// Lap records the time elapsed since the previous lap (or since Start).
// It fails with ErrIllegalState if the stopwatch is not running.
func (s *Stopwatch) Lap() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return fmt.Errorf("stopwatch %q: lap: not running: %w", s.id, ErrIllegalState)
	}
	s.recordLap()
	return nil
}

// Stop records one final lap and stops the stopwatch. It fails with
// ErrIllegalState if the stopwatch is not running.
func (s *Stopwatch) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return fmt.Errorf("stopwatch %q: stop: not running: %w", s.id, ErrIllegalState)
	}
	s.recordLap()
	s.running = false
	return nil
}

// Reset discards all laps and leaves the stopwatch stopped. No final lap is
// recorded.
func (s *Stopwatch) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.laps = s.laps[:0:0]
}

// recordLap must be called with mu held.
func (s *Stopwatch) recordLap() {
	t := now()
	d := t.Sub(s.ref)
	if d < 0 {
		d = 0
	}
	s.laps = append(s.laps, d)
	s.ref = t
}

// LapTimes returns a copy of the recorded laps in recording order. It never
// returns nil.
func (s *Stopwatch) LapTimes() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lapsCopy()
}

func (s *Stopwatch) lapsCopy() []time.Duration {
	out := make([]time.Duration, len(s.laps))
	copy(out, s.laps)
	return out
}

// Snapshot returns a consistent point-in-time view of the stopwatch.
func (s *Stopwatch) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{ID: s.id, Running: s.running, Laps: s.lapsCopy()}
}

// Equal reports whether both stopwatches have the same id, running state and
// lap sequence. Each side is snapshotted separately so the two locks are
// never held together.
func (s *Stopwatch) Equal(other *Stopwatch) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s == other {
		return true
	}
	return s.Snapshot().Equal(other.Snapshot())
}

// String renders the stopwatch id, state and laps in whole milliseconds.
func (s *Stopwatch) String() string {
	return s.Snapshot().String()
}
