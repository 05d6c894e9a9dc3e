package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds store settings loadable from a yaml file.
// Flags override whatever the file says.
type Config struct {
	// Location is a database path or the literal ":memory:".
	Location string `yaml:"location"`

	// InMemory forces an ephemeral store regardless of Location.
	InMemory bool `yaml:"in_memory"`
}

// LoadConfig reads and parses a yaml config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
