package yamlreader

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NewConfig reads the YAML file at path into a new T.
func NewConfig[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	var cfg T
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal %s: %w", path, err)
	}

	return &cfg, nil
}
