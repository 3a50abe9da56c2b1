package store

import (
	"fmt"

	"github.com/MKhiriev/go-config-keeper/internal/config"
)

// Storages groups the backends the configuration server reads from.
type Storages struct {
	ConfigSource ConfigSource
}

// NewStorages selects the configuration source: the YAML node definitions
// file when one is configured, the random reference source otherwise.
func NewStorages(cfg config.Source) (*Storages, error) {
	if cfg.NodesFile == "" {
		return &Storages{ConfigSource: NewRandomConfigSource(nil)}, nil
	}

	source, err := NewFileConfigSource(cfg.NodesFile)
	if err != nil {
		return nil, fmt.Errorf("error creating file config source: %w", err)
	}

	return &Storages{ConfigSource: source}, nil
}
