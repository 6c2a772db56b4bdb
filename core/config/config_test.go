package config_test

import (
	"testing"

	"asset-loader/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "assets", cfg.Storage.Bucket)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Loader.MaxAttempts)
	assert.Equal(t, 1000, cfg.Loader.BackoffMillis)
	assert.True(t, cfg.Preload.Enabled)
	assert.Empty(t, cfg.Preload.CriticalKeys())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOADER_MAX_ATTEMPTS", "5")
	t.Setenv("PRELOAD_CRITICAL", "views/catalog.bundle,views/profile.bundle")
	t.Setenv("REGISTRY_MANIFEST_PATH", "registry.yaml")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Loader.MaxAttempts)
	assert.Equal(t, []string{"views/catalog.bundle", "views/profile.bundle"}, cfg.Preload.CriticalKeys())
	assert.Equal(t, "registry.yaml", cfg.Registry.ManifestPath)
}
