package feature_test

import (
	"errors"
	"testing"

	"asset-loader/core/feature"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(app fiber.Router) error {
	s.loaded = true
	return s.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	mgr := feature.NewManager(zap.NewNop())

	enabled := &stubFeature{name: "assets", enabled: true}
	disabled := &stubFeature{name: "preload", enabled: false}
	mgr.Register(enabled)
	mgr.Register(disabled)

	app := fiber.New()
	err := mgr.LoadAll(app)
	assert.NoError(t, err)
	assert.True(t, enabled.loaded)
	assert.False(t, disabled.loaded, "disabled features must not be mounted")
}

func TestManager_LoadAllError(t *testing.T) {
	mgr := feature.NewManager(nil)
	mgr.Register(&stubFeature{name: "broken", enabled: true, loadErr: errors.New("boom")})

	err := mgr.LoadAll(fiber.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}
