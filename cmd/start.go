package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"asset-loader/core/config"
	"asset-loader/core/database"
	"asset-loader/core/feature"
	"asset-loader/core/loader"
	"asset-loader/core/logger"
	"asset-loader/core/middleware/activity"
	"asset-loader/core/middleware/auth"
	"asset-loader/core/middleware/rayid"
	"asset-loader/core/registry"
	"asset-loader/core/storage"
	"asset-loader/core/timing"

	"asset-loader/feature/assets"
	"asset-loader/feature/preload"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-loader/docs/swagger"
)

// @title Asset Loader API
// @version 1.0
// @description API for lazily loading and preloading client assets.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset loader server",
	Long:  `Starts the HTTP server, wires the loader and registry, and kicks off preloading.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Storage
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}

		// 4. Build the Registry (manifest and database are both optional)
		reg := registry.New()
		if cfg.Registry.ManifestPath != "" {
			if n, err := reg.LoadManifest(cfg.Registry.ManifestPath); err != nil {
				logg.Warn("Registry manifest not loaded", zap.Error(err))
			} else {
				logg.Info("Registry manifest loaded", zap.Int("entries", n))
			}
		}
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			if n, err := reg.LoadFromDB(cmd.Context(), db); err != nil {
				logg.Warn("Database registry entries not loaded", zap.Error(err))
			} else {
				logg.Info("Database registry entries loaded", zap.Int("entries", n))
			}
		}

		// 5. Build the Loader (the one cache every request and preload share)
		recorder := timing.NewRecorder(logg)
		ld := loader.New(assets.NewResolver(store, cfg.Storage.Bucket), logg, recorder, cfg.Loader)

		warmer := preload.NewWarmer(func(ctx context.Context, key string) error {
			_, err := ld.Load(ctx, key)
			return err
		}, logg, cfg.Preload)

		// 6. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 7. Register Features
		mgr := feature.NewManager(logg)
		mgr.Register(assets.NewFeature(ld, reg, recorder, store, cfg.Storage.Bucket, logg))
		mgr.Register(preload.NewFeature(warmer, reg, logg, cfg.Preload))

		// Middleware Registration
		// RayID must come first so everything downstream can trace.
		app.Use(rayid.New())

		// Activity feeds the idle warmer.
		tracker := activity.NewTracker()
		app.Use(activity.New(tracker))

		// Request logging with Zap + RayID.
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 8. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 9. Preloading: critical batch in the background, idle warmer on a
		// subscription we stop during shutdown.
		var idleSub *preload.Subscription
		if cfg.Preload.Enabled {
			go warmer.WarmCritical(context.Background())
			idleSub = warmer.StartIdleWarmer(tracker)
		}

		// 10. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 11. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		if idleSub != nil {
			idleSub.Stop()
		}
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
