package preload

import (
	"errors"

	"asset-loader/core/logger"
	"asset-loader/core/registry"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles preload hint requests.
type Handler struct {
	warmer   *Warmer
	registry *registry.Registry
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(warmer *Warmer, reg *registry.Registry, logger *zap.Logger) *Handler {
	return &Handler{warmer: warmer, registry: reg, logger: logger}
}

// RegisterRoutes registers the preload routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/preload")
	group.Post("/hint/:name", h.HandleHint)
}

// HandleHint warms the asset backing a registered name in the background.
// @Summary Preload Hint
// @Description Signals that a client will likely need the named view or feature soon. The backing asset is warmed in the background; the request returns immediately.
// @Tags preload
// @Produce json
// @Param name path string true "Registered name (e.g. 'catalog')"
// @Param kind query string false "Namespace, 'view' (default) or 'feature'"
// @Success 202 {object} map[string]string "Hint accepted"
// @Failure 400 {object} map[string]string "Invalid kind"
// @Failure 404 {object} map[string]string "Unknown name"
// @Router /preload/hint/{name} [post]
func (h *Handler) HandleHint(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)
	name := c.Params("name")

	var kind registry.Kind
	switch c.Query("kind", string(registry.KindView)) {
	case string(registry.KindView):
		kind = registry.KindView
	case string(registry.KindFeature):
		kind = registry.KindFeature
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "kind must be 'view' or 'feature'",
		})
	}

	key, err := h.registry.Resolve(kind, name)
	if err != nil {
		var unknown *registry.UnknownResourceError
		if errors.As(err, &unknown) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": unknown.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	h.warmer.Hint(key)
	l.Info("Preload hint accepted",
		zap.String("name", name),
		zap.String("key", key),
	)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"status": "accepted",
		"key":    key,
	})
}
