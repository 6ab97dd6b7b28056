package body

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a body table from a YAML file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse body table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid body table: %w", err)
	}
	return &t, nil
}

// Save writes a body table to a YAML file.
func Save(path string, t *Table) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
