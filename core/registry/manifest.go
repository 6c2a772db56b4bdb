package registry

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadManifest merges the mappings from a manifest file into the registry.
// The file holds two flat maps, "views" and "features", each from symbolic
// name to object key. Format is whatever viper can read (YAML, JSON, TOML),
// detected from the file extension.
func (r *Registry) LoadManifest(path string) (int, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return 0, fmt.Errorf("failed to read registry manifest %s: %w", path, err)
	}

	n := 0
	for name, key := range v.GetStringMapString("views") {
		r.Register(KindView, name, key)
		n++
	}
	for name, key := range v.GetStringMapString("features") {
		r.Register(KindFeature, name, key)
		n++
	}
	return n, nil
}
