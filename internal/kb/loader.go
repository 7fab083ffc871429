package kb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk YAML layout of a catalog.
type catalogFile struct {
	Topics []TopicEntry `yaml:"topics"`
}

// Load reads a catalog from a YAML file. When path is empty, the compiled-in
// default catalog is returned. The loaded catalog replaces the default
// entirely; there is no merging.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("kb: failed to read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("kb: failed to parse catalog file %s: %w", path, err)
	}

	catalog, err := NewCatalog(file.Topics)
	if err != nil {
		return nil, fmt.Errorf("kb: invalid catalog in %s: %w", path, err)
	}

	return catalog, nil
}
