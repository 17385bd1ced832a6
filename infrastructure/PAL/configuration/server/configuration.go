package server

import (
	"fmt"

	"whispertunnel/infrastructure/PAL/configuration"
	"whispertunnel/infrastructure/settings"
)

// Configuration is the server endpoint's resolved configuration. The
// Server field of the embedded settings is the bind address.
type Configuration struct {
	Settings settings.Settings `json:"Settings"`
	Key      string            `json:"Key"`
}

// Validate checks that the configuration has the minimum required fields set.
func (c *Configuration) Validate() error {
	if err := c.Settings.Validate(); err != nil {
		return err
	}
	if _, err := configuration.DecodeKey(c.Key); err != nil {
		return fmt.Errorf("invalid Key: %w", err)
	}
	return nil
}

// SessionKey decodes the stored key into the 32-byte session secret.
func (c *Configuration) SessionKey() ([]byte, error) {
	return configuration.DecodeKey(c.Key)
}
