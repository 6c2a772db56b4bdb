package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"asset-loader/core/config"
	"asset-loader/core/database"
	"asset-loader/core/loader"
	"asset-loader/core/logger"
	"asset-loader/core/registry"
	"asset-loader/core/storage"
	"asset-loader/core/timing"
	"asset-loader/feature/assets"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify that every registered asset exists in storage",
	Long: `Resolves every registry mapping (manifest and database) and stats the
backing object in the bucket. Prints a JSON report and exits non-zero if
any registered asset is missing.`,
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

		reg := registry.New()
		if cfg.Registry.ManifestPath != "" {
			if _, err := reg.LoadManifest(cfg.Registry.ManifestPath); err != nil {
				return fmt.Errorf("failed to load registry manifest: %w", err)
			}
		}
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else if _, err := reg.LoadFromDB(cmd.Context(), db); err != nil {
			return fmt.Errorf("failed to load registry from database: %w", err)
		}

		if reg.Len() == 0 {
			logg.Warn("Registry is empty; nothing to verify")
			return nil
		}

		recorder := timing.NewRecorder(logg)
		ld := loader.New(assets.NewResolver(store, cfg.Storage.Bucket), logg, recorder, cfg.Loader)
		svc := assets.NewService(ld, reg, recorder, store, cfg.Storage.Bucket, logg)

		report, err := svc.VerifyRegistered(cmd.Context())
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))

		if len(report.Missing) > 0 {
			logg.Error("Registered assets missing in storage", zap.Int("missing", len(report.Missing)))
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(verifyCmd)
}
