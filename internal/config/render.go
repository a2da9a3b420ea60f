package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RenderYAML serializes the configuration for display.
func (config ApplicationConfiguration) RenderYAML() (string, error) {
	encoded, err := yaml.Marshal(config)
	if err != nil {
		return "", fmt.Errorf("encode configuration: %w", err)
	}
	return string(encoded), nil
}
