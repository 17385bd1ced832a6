package server

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"whispertunnel/infrastructure/PAL/configuration"
)

// ConfigurationManager reads and writes the server configuration file.
type ConfigurationManager interface {
	Configuration() (*Configuration, error)
	Write(conf Configuration) error
}

type Manager struct {
	resolver configuration.Resolver
}

func NewManager(resolver configuration.Resolver) ConfigurationManager {
	return &Manager{resolver: resolver}
}

func (m *Manager) Configuration() (*Configuration, error) {
	path, pathErr := m.resolver.Resolve()
	if pathErr != nil {
		return nil, pathErr
	}

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, readErr
	}

	var conf Configuration
	if err := json.Unmarshal(data, &conf); err != nil {
		return nil, fmt.Errorf("malformed server configuration (%s): %w", path, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration (%s): %w", path, err)
	}
	return &conf, nil
}

func (m *Manager) Write(conf Configuration) error {
	path, pathErr := m.resolver.Resolve()
	if pathErr != nil {
		return pathErr
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}
	data, marshalErr := json.MarshalIndent(conf, "", "  ")
	if marshalErr != nil {
		return marshalErr
	}
	return os.WriteFile(path, data, 0o600)
}
