package cmd

import (
	"fmt"
	"os"

	"asset-loader/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "asset-loader",
	Short: "Lazy Asset Loader Service",
	Long: `Asset Loader serves client assets lazily out of object storage.
Assets are fetched on first demand, cached for the process lifetime, and
warmed opportunistically: a critical-path batch at startup, client hints,
and idle-period warming.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Report through the standard structured logger. Console format and
		// debug level give readable, ISO8601-stamped output for a CLI tool.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
