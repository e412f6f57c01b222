package demo

import (
	"fmt"

	"github.com/spf13/cobra"

	cfgpkg "github.com/rzbill/stopwatch/internal/config"
	"github.com/rzbill/stopwatch/internal/report"
	logpkg "github.com/rzbill/stopwatch/pkg/log"
)

// NewCommand constructs the `demo` command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run slow-thinker workers that each time laps on their own stopwatch",
		Long: `Run slow-thinker workers that each time laps on their own stopwatch.

Every worker creates a uniquely named stopwatch, starts it, records --laps laps
sleeping --interval between them, stops it and logs the lap times. Once all
workers finish, every stopwatch in the registry is printed.

Settings are resolved as: defaults < --config file < STOPWATCH_* env < flags.

Examples:
  stopwatch demo
  stopwatch demo --workers 4 --laps 3 --interval 250ms
  stopwatch demo --workers 8 --filter 'total_ms > 500'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			filter, err := report.NewFilter(cfg.Filter)
			if err != nil {
				return fmt.Errorf("invalid --filter: %w", err)
			}
			logger, err := logpkg.ApplyConfig(&logpkg.Config{
				Level:  cfg.Log.Level,
				Format: cfg.Log.Format,
				Writer: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			reg, runErr := Run(cmd.Context(), Options{Config: cfg, Logger: logger})
			if reg != nil {
				if _, err := report.Write(cmd.OutOrStdout(), reg.List(), filter); err != nil {
					return err
				}
			}
			if runErr != nil {
				return fmt.Errorf("demo: %w", runErr)
			}
			return nil
		},
	}

	def := cfgpkg.Default()
	cmd.Flags().String("config", "", "Path to a JSON config file")
	cmd.Flags().Int("workers", def.Workers, "Number of concurrent workers")
	cmd.Flags().Int("laps", def.Laps, "Laps recorded by each worker before stopping")
	cmd.Flags().Duration("interval", def.Interval.Std(), "Sleep between laps")
	cmd.Flags().String("restart-mode", def.RestartMode, "Restart behavior after stop: merge|fresh")
	cmd.Flags().String("id-prefix", def.IDPrefix, "Prefix for generated stopwatch ids")
	cmd.Flags().String("filter", "", "CEL expression selecting which stopwatches to print")
	cmd.Flags().String("log-level", "", "Log level: debug|info|warn|error")
	cmd.Flags().String("log-format", "", "Log format: text|json (default text)")
	return cmd
}

// resolveConfig layers file, env and explicitly set flags over defaults.
func resolveConfig(cmd *cobra.Command) (cfgpkg.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := cfgpkg.Load(path)
	if err != nil {
		return cfgpkg.Config{}, err
	}
	cfgpkg.FromEnv(&cfg)

	flags := cmd.Flags()
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("laps") {
		cfg.Laps, _ = flags.GetInt("laps")
	}
	if flags.Changed("interval") {
		d, _ := flags.GetDuration("interval")
		cfg.Interval = cfgpkg.Duration(d)
	}
	if flags.Changed("restart-mode") {
		cfg.RestartMode, _ = flags.GetString("restart-mode")
	}
	if flags.Changed("id-prefix") {
		cfg.IDPrefix, _ = flags.GetString("id-prefix")
	}
	if flags.Changed("filter") {
		cfg.Filter, _ = flags.GetString("filter")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.Log.Format, _ = flags.GetString("log-format")
	}
	return cfg, cfg.Validate()
}
