package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"csv-adapter/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "csv-adapter",
	Short: "CSV batch adapter",
	Long: `csv-adapter normalizes heterogeneous CSV files into the canonical
schema (column set, order, names, delimiter) expected by the downstream
batch processor.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	// An interrupt cancels the context; the batch stops before starting
	// the next file.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := RootCmd.ExecuteContext(ctx); err != nil {
		// Use the application's standard logger for error reporting
		// We default to console format to match user expectations (CLI tool)
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			// Log the error with structured logger (Console encoding will make it pretty)
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
