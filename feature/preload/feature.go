package preload

import (
	"asset-loader/core/registry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the feature.Feature interface.
type Feature struct {
	warmer  *Warmer
	handler *Handler
	enabled bool
}

// NewFeature creates the preload feature.
func NewFeature(warmer *Warmer, reg *registry.Registry, logger *zap.Logger, cfg Config) *Feature {
	return &Feature{
		warmer:  warmer,
		handler: NewHandler(warmer, reg, logger),
		enabled: cfg.Enabled,
	}
}

// Warmer exposes the warmer for startup wiring (critical batch, idle warmer).
func (f *Feature) Warmer() *Warmer {
	return f.warmer
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "preload"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
