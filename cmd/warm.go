package cmd

import (
	"context"
	"fmt"

	"asset-loader/core/config"
	"asset-loader/core/loader"
	"asset-loader/core/logger"
	"asset-loader/core/storage"
	"asset-loader/core/timing"
	"asset-loader/feature/assets"
	"asset-loader/feature/preload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// warmCmd represents the warm command
var warmCmd = &cobra.Command{
	Use:   "warm",
	Short: "Load the critical-path assets once and exit",
	Long: `Runs the critical preload batch against the configured storage bucket.
Useful for smoke-testing the PRELOAD_CRITICAL list and for priming an
external cache in front of the bucket. Failures are reported but do not
abort the batch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		ld := loader.New(assets.NewResolver(store, cfg.Storage.Bucket), logg, timing.NewRecorder(logg), cfg.Loader)
		warmer := preload.NewWarmer(func(ctx context.Context, key string) error {
			_, err := ld.Load(ctx, key)
			return err
		}, logg, cfg.Preload)

		loaded, failed := warmer.WarmCritical(cmd.Context())
		logg.Info("Warm batch done",
			zap.Int("loaded", loaded),
			zap.Int("failed", failed),
		)

		if loaded == 0 && failed == 0 {
			logg.Warn("No critical keys configured; set PRELOAD_CRITICAL")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(warmCmd)
}
