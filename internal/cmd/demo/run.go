package demo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	cfgpkg "github.com/rzbill/stopwatch/internal/config"
	"github.com/rzbill/stopwatch/pkg/id"
	logpkg "github.com/rzbill/stopwatch/pkg/log"
	"github.com/rzbill/stopwatch/pkg/stopwatch"
)

// Options for a demo run.
type Options struct {
	Config cfgpkg.Config
	// Registry receives the workers' stopwatches. A new one is built from
	// Config when nil.
	Registry *stopwatch.Registry
	// IDs names the workers' stopwatches. A new generator is used when nil.
	IDs    *id.Generator
	Logger logpkg.Logger
}

// Run starts Config.Workers workers and blocks until all of them finish or
// ctx is cancelled. A cancelled worker stops its stopwatch before returning,
// so the registry always holds stopped watches when Run returns.
func Run(ctx context.Context, opts Options) (*stopwatch.Registry, error) {
	cfg := opts.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, _ := stopwatch.ParseRestartMode(cfg.RestartMode)

	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewNopLogger()
	}
	reg := opts.Registry
	if reg == nil {
		reg = stopwatch.NewRegistry(stopwatch.WithLogger(logger), stopwatch.WithRestartMode(mode))
	}
	ids := opts.IDs
	if ids == nil {
		ids = id.NewGenerator()
	}
	logger = logger.WithComponent("demo")

	logger.Info("starting slow thinkers",
		logpkg.Int("workers", cfg.Workers),
		logpkg.Int("laps", cfg.Laps),
		logpkg.Dur("interval", cfg.Interval.Std()),
		logpkg.Str("restart_mode", mode.String()),
	)

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			t := thinker{
				reg:      reg,
				name:     cfg.IDPrefix + ids.Next().String(),
				laps:     cfg.Laps,
				interval: cfg.Interval.Std(),
				logger:   logger.With(logpkg.Int("worker", worker)),
			}
			if err := t.think(ctx); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return reg, err
	}
	return reg, errors.Join(errs...)
}

// thinker drives one stopwatch.
type thinker struct {
	reg      *stopwatch.Registry
	name     string
	laps     int
	interval time.Duration
	logger   logpkg.Logger
}

func (t thinker) think(ctx context.Context) error {
	sw, err := t.reg.Create(t.name)
	if err != nil {
		t.logger.Error("create stopwatch failed", logpkg.Str("id", t.name), logpkg.Err(err))
		return err
	}
	logger := t.logger.With(logpkg.Str("id", sw.ID()))

	if err := sw.Start(); err != nil {
		return err
	}
	for i := 0; i < t.laps; i++ {
		if err := sleep(ctx, t.interval); err != nil {
			_ = sw.Stop()
			logger.Warn("interrupted", logpkg.Int("laps_recorded", len(sw.LapTimes())), logpkg.Err(err))
			return fmt.Errorf("%s: %w", sw.ID(), err)
		}
		if err := sw.Lap(); err != nil {
			return err
		}
		logger.Debug("lap", logpkg.Int("lap", i+1))
	}
	if err := sw.Stop(); err != nil {
		return err
	}

	snap := sw.Snapshot()
	logger.Info("lap times",
		logpkg.Any("laps_ms", snap.LapsMs()),
		logpkg.Dur("total", snap.Total()),
	)
	return nil
}

// sleep waits for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
