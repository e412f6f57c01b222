package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	democmd "github.com/rzbill/stopwatch/internal/cmd/demo"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:           "stopwatch",
		Short:         "Named, concurrency-safe stopwatches",
		Long:          "stopwatch exercises a registry of named lap timers from many goroutines.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(democmd.NewCommand())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		cancel()
		os.Exit(1)
	}
}
