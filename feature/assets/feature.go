package assets

import (
	"asset-loader/core/loader"
	"asset-loader/core/registry"
	"asset-loader/core/storage"
	"asset-loader/core/timing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the feature.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the assets feature around the shared loader.
func NewFeature(ld *loader.Loader, reg *registry.Registry, recorder *timing.Recorder, client storage.Client, bucket string, logger *zap.Logger) *Feature {
	svc := NewService(ld, reg, recorder, client, bucket, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Service exposes the underlying service, e.g. for CLI commands.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "assets"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
