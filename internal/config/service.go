package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Service is a configuration provider.
type Service interface {
	// GetValue returns the value stored under key, or nil when it is not set.
	GetValue(ctx context.Context, key string) (any, error)
}

// Values is an in-memory Service.
type Values map[string]any

// GetValue implements Service.
func (v Values) GetValue(_ context.Context, key string) (any, error) {
	return v[key], nil
}

// LoadFile reads a configuration file. The format is chosen by extension:
// .toml is TOML, anything else is parsed as YAML (which also covers JSON).
func LoadFile(path string) (Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return ParseTOML(data)
	}

	return ParseYAML(data)
}

// ParseYAML parses a YAML or JSON configuration document.
func ParseYAML(data []byte) (Values, error) {
	var v Values

	err := yaml.Unmarshal(data, &v)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	if v == nil {
		v = Values{}
	}

	return v, nil
}

// ParseTOML parses a TOML configuration document.
func ParseTOML(data []byte) (Values, error) {
	v := Values{}

	err := toml.Unmarshal(data, &v)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config TOML: %w", err)
	}

	return v, nil
}
