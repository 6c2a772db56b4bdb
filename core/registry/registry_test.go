package registry_test

import (
	"os"
	"path/filepath"
	"testing"

	"asset-loader/core/registry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	reg := registry.New()
	reg.Register(registry.KindView, "catalog", "views/catalog.bundle")

	key, err := reg.Resolve(registry.KindView, "catalog")
	require.NoError(t, err)
	assert.Equal(t, "views/catalog.bundle", key)

	// Same name under another kind is a different mapping.
	_, err = reg.Resolve(registry.KindFeature, "catalog")
	assert.Error(t, err)
}

func TestRegistry_UnknownResource(t *testing.T) {
	reg := registry.New()

	_, err := reg.Resolve(registry.KindView, "missing-view")
	require.Error(t, err)

	var unknown *registry.UnknownResourceError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, registry.KindView, unknown.Kind)
	assert.Equal(t, "missing-view", unknown.Name)
	assert.Contains(t, err.Error(), "missing-view")
}

func TestRegistry_LaterRegistrationOverrides(t *testing.T) {
	reg := registry.New()
	reg.Register(registry.KindFeature, "chat", "features/chat-v1.bundle")
	reg.Register(registry.KindFeature, "chat", "features/chat-v2.bundle")

	key, err := reg.Resolve(registry.KindFeature, "chat")
	require.NoError(t, err)
	assert.Equal(t, "features/chat-v2.bundle", key)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_NamesSorted(t *testing.T) {
	reg := registry.New()
	reg.Register(registry.KindView, "profile", "views/profile.bundle")
	reg.Register(registry.KindView, "catalog", "views/catalog.bundle")
	reg.Register(registry.KindFeature, "chat", "features/chat.bundle")

	assert.Equal(t, []string{"catalog", "profile"}, reg.Names(registry.KindView))
	assert.Equal(t, []string{"chat"}, reg.Names(registry.KindFeature))
}

func TestRegistry_Entries(t *testing.T) {
	reg := registry.New()
	reg.Register(registry.KindView, "profile", "views/profile.bundle")
	reg.Register(registry.KindFeature, "chat", "features/chat.bundle")

	entries := reg.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, registry.KindFeature, entries[0].Kind)
	assert.Equal(t, registry.KindView, entries[1].Kind)
}

func TestRegistry_LoadManifest(t *testing.T) {
	manifest := `
views:
  catalog: views/catalog.bundle
  profile: views/profile.bundle
features:
  chat: features/chat.bundle
`
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	reg := registry.New()
	n, err := reg.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	key, err := reg.Resolve(registry.KindView, "profile")
	require.NoError(t, err)
	assert.Equal(t, "views/profile.bundle", key)

	key, err = reg.Resolve(registry.KindFeature, "chat")
	require.NoError(t, err)
	assert.Equal(t, "features/chat.bundle", key)
}

func TestRegistry_LoadManifestMissingFile(t *testing.T) {
	reg := registry.New()
	_, err := reg.LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
