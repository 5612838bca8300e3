package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string) (*Config, error) {
	b, err := readFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &cfg, nil
}
