package codemodel

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// LoadFile loads and parses a YAML model file from the given path.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Model.
func Parse(data []byte) (*Model, error) {
	var m Model

	err := yaml.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model YAML: %w", err)
	}

	applyDefaults(&m)

	return &m, nil
}

// applyDefaults fills in empty collections and drops null entries.
func applyDefaults(m *Model) {
	if m.Commands == nil {
		m.Commands = make(map[string]*Command)
	}

	if m.Schemas == nil {
		m.Schemas = make(map[string]*Schema)
	}

	for key, cmd := range m.Commands {
		if cmd == nil {
			delete(m.Commands, key)
		}
	}
}

// Marshal serializes a Model to YAML.
func Marshal(m *Model) ([]byte, error) {
	return yaml.Marshal(m)
}

// WriteFile writes a Model to the given path, creating its directory.
func WriteFile(m *Model, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write model file %s: %w", path, err)
	}

	return nil
}
