package assets

import (
	"errors"

	"asset-loader/core/logger"
	"asset-loader/core/registry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for assets.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the asset routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/assets")
	group.Get("/stats", h.HandleStats)
	group.Post("/cache/clear", h.HandleClearCache)
	group.Get("/verify", h.HandleVerify)
	// Object keys contain slashes, so the asset route is a wildcard and must
	// be registered after the fixed routes above.
	group.Get("/*", h.HandleGetAsset)

	app.Get("/views/:name", h.HandleGetView)
	app.Get("/features/:name", h.HandleGetFeature)
}

// HandleGetAsset serves an asset by its raw object key.
// @Summary Get Asset
// @Description Lazily loads the asset stored under the given object key and serves its body. Loaded assets are cached for the process lifetime.
// @Tags assets
// @Produce octet-stream
// @Param key path string true "Object key (e.g. 'views/catalog.bundle')"
// @Success 200 {string} string "Asset body"
// @Failure 500 {object} map[string]string "Load failed after retries"
// @Router /assets/{key} [get]
func (h *Handler) HandleGetAsset(c *fiber.Ctx) error {
	key := c.Params("*")
	return h.serve(c, func() (*Asset, error) {
		return h.service.GetAsset(c.Context(), key)
	})
}

// HandleGetView serves the asset backing a registered view name.
// @Summary Get View Asset
// @Description Resolves a symbolic view name through the registry and serves the backing asset. Unregistered names fail with 404 before any load is attempted.
// @Tags assets
// @Produce octet-stream
// @Param name path string true "View name (e.g. 'catalog')"
// @Success 200 {string} string "Asset body"
// @Failure 404 {object} map[string]string "Unknown view"
// @Failure 500 {object} map[string]string "Load failed after retries"
// @Router /views/{name} [get]
func (h *Handler) HandleGetView(c *fiber.Ctx) error {
	name := c.Params("name")
	return h.serve(c, func() (*Asset, error) {
		return h.service.GetView(c.Context(), name)
	})
}

// HandleGetFeature serves the asset backing a registered feature name.
// @Summary Get Feature Asset
// @Description Resolves a symbolic feature name through the registry and serves the backing asset.
// @Tags assets
// @Produce octet-stream
// @Param name path string true "Feature name (e.g. 'chat')"
// @Success 200 {string} string "Asset body"
// @Failure 404 {object} map[string]string "Unknown feature"
// @Failure 500 {object} map[string]string "Load failed after retries"
// @Router /features/{name} [get]
func (h *Handler) HandleGetFeature(c *fiber.Ctx) error {
	name := c.Params("name")
	return h.serve(c, func() (*Asset, error) {
		return h.service.GetFeature(c.Context(), name)
	})
}

func (h *Handler) serve(c *fiber.Ctx, get func() (*Asset, error)) error {
	l := logger.WithRayID(h.service.logger, c)

	asset, err := get()
	if err != nil {
		var unknown *registry.UnknownResourceError
		if errors.As(err, &unknown) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": unknown.Error(),
			})
		}
		l.Error("Asset load failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, asset.ContentType)
	return c.Send(asset.Data)
}

// HandleStats reports the loader cache state and timing aggregates.
// @Summary Loader Stats
// @Description Returns cached/in-flight counts, the sorted cached identifiers, and per-label duration aggregates.
// @Tags assets
// @Produce json
// @Success 200 {object} assets.StatsReport "Loader statistics"
// @Router /assets/stats [get]
func (h *Handler) HandleStats(c *fiber.Ctx) error {
	return c.JSON(h.service.Stats())
}

// HandleClearCache drops every cached asset.
// @Summary Clear Asset Cache
// @Description Drops all cached assets and in-flight bookkeeping; subsequent requests load from storage again.
// @Tags assets
// @Produce json
// @Success 200 {object} map[string]string "Confirmation"
// @Router /assets/cache/clear [post]
func (h *Handler) HandleClearCache(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	h.service.ClearCache()
	l.Info("Asset cache cleared via API")
	return c.JSON(fiber.Map{"status": "cleared"})
}

// HandleVerify checks that every registered object key exists in storage.
// @Summary Verify Registered Assets
// @Description Stats every registered object key and reports mappings whose object is missing.
// @Tags assets
// @Produce json
// @Success 200 {object} assets.VerifyReport "Verification report"
// @Failure 500 {object} map[string]string "Storage error"
// @Router /assets/verify [get]
func (h *Handler) HandleVerify(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.VerifyRegistered(c.Context())
	if err != nil {
		l.Error("Asset verification failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(report)
}
