package registry

// Config holds configuration for the symbolic name registry.
type Config struct {
	// ManifestPath points to an optional YAML or JSON manifest file holding
	// "views" and "features" name-to-object-key maps. Empty disables it.
	ManifestPath string `mapstructure:"manifest_path" default:""`
}
