package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDataset reads a snapshot from a YAML dataset file. The file shape
// mirrors Snapshot: entity lists plus the three relation lists.
func LoadDataset(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}
	var snap Snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}
	return &snap, nil
}

// LoadStore builds a store from a YAML dataset file, or the seeded mock
// dataset when path is empty.
func LoadStore(path string) (*StaticStore, error) {
	if path == "" {
		return NewMockStore(), nil
	}
	snap, err := LoadDataset(path)
	if err != nil {
		return nil, err
	}
	return NewStaticStore(snap), nil
}
