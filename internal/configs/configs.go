// Package configs bundles the shipped model-type configuration. All state
// is rebuilt from these files on every process start; nothing is
// persisted.
package configs

import (
	"embed"
	"fmt"

	"modelnum/internal/catalog"
)

//go:embed *.yaml
var files embed.FS

// bundled lists the shipped model types in presentation order. The first
// entry is the default active type.
var bundled = []string{"electric.yaml", "gas.yaml"}

// Load parses and validates every bundled model type.
func Load() ([]*catalog.ModelType, error) {
	types := make([]*catalog.ModelType, 0, len(bundled))
	for _, name := range bundled {
		data, err := files.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read bundled config %s: %w", name, err)
		}
		mt, err := catalog.Load(data)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", name, err)
		}
		types = append(types, mt)
	}
	return types, nil
}
