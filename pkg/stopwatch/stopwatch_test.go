package stopwatch

import (
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestWatch(t *testing.T, id string, opts ...RegistryOption) *Stopwatch {
	t.Helper()
	sw, err := NewRegistry(opts...).Create(id)
	if err != nil {
		t.Fatalf("create %q: %v", id, err)
	}
	return sw
}

func TestNewStopwatchIsStopped(t *testing.T) {
	sw := newTestWatch(t, "fresh")
	if sw.ID() != "fresh" {
		t.Fatalf("id = %q", sw.ID())
	}
	if sw.IsRunning() {
		t.Fatalf("new stopwatch should be stopped")
	}
	if laps := sw.LapTimes(); laps == nil || len(laps) != 0 {
		t.Fatalf("expected empty non-nil laps, got %#v", laps)
	}
}

func TestIllegalStateTransitions(t *testing.T) {
	sw := newTestWatch(t, "x")

	if err := sw.Lap(); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("lap on stopped: expected ErrIllegalState, got %v", err)
	}
	if err := sw.Stop(); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("stop on stopped: expected ErrIllegalState, got %v", err)
	}
	if len(sw.LapTimes()) != 0 || sw.IsRunning() {
		t.Fatalf("failed calls must not mutate state")
	}

	mustNoErr(t, sw.Start())
	if err := sw.Start(); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("second start: expected ErrIllegalState, got %v", err)
	}
	if !sw.IsRunning() || len(sw.LapTimes()) != 0 {
		t.Fatalf("failed start must leave state untouched")
	}
}

func TestLapsAndStop(t *testing.T) {
	clk := useFakeClock(t)
	sw := newTestWatch(t, "laps")

	mustNoErr(t, sw.Start())
	clk.Advance(10 * time.Millisecond)
	mustNoErr(t, sw.Lap())
	clk.Advance(20 * time.Millisecond)
	mustNoErr(t, sw.Lap())
	clk.Advance(5 * time.Millisecond)
	mustNoErr(t, sw.Stop())

	if sw.IsRunning() {
		t.Fatalf("expected stopped")
	}
	assertLaps(t, sw, ms(10, 20, 5))
}

func TestStartLapLapStopRealClock(t *testing.T) {
	sw := newTestWatch(t, "real")
	mustNoErr(t, sw.Start())
	mustNoErr(t, sw.Lap())
	mustNoErr(t, sw.Lap())
	mustNoErr(t, sw.Stop())
	laps := sw.LapTimes()
	if len(laps) != 3 {
		t.Fatalf("expected 3 laps, got %d", len(laps))
	}
	for i, d := range laps {
		if d < 0 {
			t.Fatalf("lap %d negative: %v", i, d)
		}
	}
	if sw.IsRunning() {
		t.Fatalf("expected stopped")
	}
}

func TestRestartMergeRetractsFinalLap(t *testing.T) {
	clk := useFakeClock(t)
	sw := newTestWatch(t, "merge")

	mustNoErr(t, sw.Start())
	clk.Advance(10 * time.Millisecond)
	mustNoErr(t, sw.Stop())
	assertLaps(t, sw, ms(10))

	clk.Advance(time.Second) // idle time is not counted
	mustNoErr(t, sw.Start())
	if len(sw.LapTimes()) != 0 {
		t.Fatalf("merge restart should retract the final lap")
	}
	clk.Advance(7 * time.Millisecond)
	mustNoErr(t, sw.Stop())
	assertLaps(t, sw, ms(17))
}

func TestRestartMergeKeepsEarlierLaps(t *testing.T) {
	clk := useFakeClock(t)
	sw := newTestWatch(t, "merge-laps")

	mustNoErr(t, sw.Start())
	clk.Advance(5 * time.Millisecond)
	mustNoErr(t, sw.Lap())
	clk.Advance(10 * time.Millisecond)
	mustNoErr(t, sw.Stop())
	clk.Advance(50 * time.Millisecond)
	mustNoErr(t, sw.Start())
	clk.Advance(3 * time.Millisecond)
	mustNoErr(t, sw.Stop())

	assertLaps(t, sw, ms(5, 13))
}

func TestRestartFreshKeepsAllLaps(t *testing.T) {
	clk := useFakeClock(t)
	sw := newTestWatch(t, "fresh", WithRestartMode(RestartFresh))
	if sw.Mode() != RestartFresh {
		t.Fatalf("mode = %v", sw.Mode())
	}

	mustNoErr(t, sw.Start())
	clk.Advance(10 * time.Millisecond)
	mustNoErr(t, sw.Stop())
	clk.Advance(time.Second)
	mustNoErr(t, sw.Start())
	clk.Advance(7 * time.Millisecond)
	mustNoErr(t, sw.Stop())

	assertLaps(t, sw, ms(10, 7))
}

func TestResetRunningDiscardsLaps(t *testing.T) {
	clk := useFakeClock(t)
	sw := newTestWatch(t, "reset")

	mustNoErr(t, sw.Start())
	clk.Advance(10 * time.Millisecond)
	mustNoErr(t, sw.Lap())
	clk.Advance(10 * time.Millisecond)
	sw.Reset()

	if sw.IsRunning() {
		t.Fatalf("reset should stop the stopwatch")
	}
	assertLaps(t, sw, nil)

	// behaves as new: fresh reference instant, nothing to retract
	clk.Advance(time.Second)
	mustNoErr(t, sw.Start())
	clk.Advance(4 * time.Millisecond)
	mustNoErr(t, sw.Stop())
	assertLaps(t, sw, ms(4))
}

func TestResetStoppedIsHarmless(t *testing.T) {
	sw := newTestWatch(t, "idle")
	sw.Reset()
	sw.Reset()
	if sw.IsRunning() || len(sw.LapTimes()) != 0 {
		t.Fatalf("reset on a new stopwatch should be a no-op")
	}
}

func TestLapTimesReturnsCopy(t *testing.T) {
	clk := useFakeClock(t)
	sw := newTestWatch(t, "copy")
	mustNoErr(t, sw.Start())
	clk.Advance(time.Millisecond)
	mustNoErr(t, sw.Stop())

	laps := sw.LapTimes()
	laps[0] = time.Hour
	_ = append(laps, time.Hour)
	assertLaps(t, sw, ms(1))

	snap := sw.Snapshot()
	snap.Laps[0] = time.Hour
	assertLaps(t, sw, ms(1))
}

func TestEqual(t *testing.T) {
	clk := useFakeClock(t)
	build := func(id string, laps []time.Duration, running bool) *Stopwatch {
		sw := newTestWatch(t, id)
		if len(laps) > 0 || running {
			mustNoErr(t, sw.Start())
		}
		for i, d := range laps {
			clk.Advance(d)
			if i == len(laps)-1 && !running {
				mustNoErr(t, sw.Stop())
			} else {
				mustNoErr(t, sw.Lap())
			}
		}
		return sw
	}

	base := build("a", ms(1, 2), false)
	tests := []struct {
		name  string
		other *Stopwatch
		want  bool
	}{
		{name: "identical", other: build("a", ms(1, 2), false), want: true},
		{name: "different id", other: build("b", ms(1, 2), false), want: false},
		{name: "different laps", other: build("a", ms(1, 3), false), want: false},
		{name: "different order", other: build("a", ms(2, 1), false), want: false},
		{name: "different length", other: build("a", ms(1), false), want: false},
		{name: "running", other: build("a", ms(1, 2), true), want: false},
		{name: "nil", other: nil, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Equal(tt.other); got != tt.want {
				t.Fatalf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
	if !base.Equal(base) {
		t.Fatalf("stopwatch should equal itself")
	}
}

func TestEqualConcurrentBothDirections(t *testing.T) {
	a := newTestWatch(t, "same")
	b := newTestWatch(t, "same")
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); _ = a.Equal(b) }()
		go func() { defer wg.Done(); _ = b.Equal(a) }()
	}
	wg.Wait()
	if !a.Equal(b) {
		t.Fatalf("untouched stopwatches with the same id should be equal")
	}
}

func TestString(t *testing.T) {
	clk := useFakeClock(t)
	sw := newTestWatch(t, "1")

	want := "Stopwatch Id - 1\nStopwatch State - stop (not running)\nList of lap times as below.\nNo laps so far...\n"
	if got := sw.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	mustNoErr(t, sw.Start())
	clk.Advance(13*time.Millisecond + 999*time.Microsecond)
	mustNoErr(t, sw.Lap())
	clk.Advance(1 * time.Millisecond)
	mustNoErr(t, sw.Lap())

	got := sw.String()
	for _, line := range []string{
		"Stopwatch State - running\n",
		"Lap - 1: 13 ms.\n",
		"Lap - 2: 1 ms.\n",
	} {
		if !strings.Contains(got, line) {
			t.Fatalf("missing %q in %q", line, got)
		}
	}
}

func TestConcurrentLapsNeverLost(t *testing.T) {
	sw := newTestWatch(t, "busy")
	mustNoErr(t, sw.Start())

	const workers, perWorker = 32, 50
	var wg sync.WaitGroup
	var failed atomic.Int64
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if err := sw.Lap(); err != nil {
					failed.Add(1)
				}
				_ = sw.LapTimes()
			}
		}()
	}
	wg.Wait()
	if failed.Load() != 0 {
		t.Fatalf("%d laps failed", failed.Load())
	}
	if got := len(sw.LapTimes()); got != workers*perWorker {
		t.Fatalf("expected %d laps, got %d", workers*perWorker, got)
	}
}

func TestConcurrentStartSingleWinner(t *testing.T) {
	sw := newTestWatch(t, "race")
	const n = 64
	var wg sync.WaitGroup
	var ok, illegal atomic.Int64
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			switch err := sw.Start(); {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, ErrIllegalState):
				illegal.Add(1)
			}
		}()
	}
	wg.Wait()
	if ok.Load() != 1 || illegal.Load() != n-1 {
		t.Fatalf("expected 1 winner and %d ErrIllegalState, got %d/%d", n-1, ok.Load(), illegal.Load())
	}
}

func TestParseRestartMode(t *testing.T) {
	tests := []struct {
		in      string
		want    RestartMode
		wantErr bool
	}{
		{in: "", want: RestartMerge},
		{in: "merge", want: RestartMerge},
		{in: "FRESH", want: RestartFresh},
		{in: "sometimes", want: RestartMerge, wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseRestartMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Fatalf("ParseRestartMode(%q) = %v, %v", tt.in, got, err)
		}
	}
	if RestartFresh.String() != "fresh" || RestartMerge.String() != "merge" {
		t.Fatalf("unexpected mode strings")
	}
}
