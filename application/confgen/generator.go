// Package confgen produces a paired client/server configuration sharing
// one freshly generated 256-bit key.
package confgen

import (
	"crypto/rand"
	"fmt"
	"io"

	"whispertunnel/infrastructure/PAL/configuration"
	clientConfiguration "whispertunnel/infrastructure/PAL/configuration/client"
	serverConfiguration "whispertunnel/infrastructure/PAL/configuration/server"
	"whispertunnel/infrastructure/cryptography/aead"
	"whispertunnel/infrastructure/settings"
)

const (
	defaultTunName       = "wtun0"
	defaultServerAddress = "10.8.0.1/24"
	defaultClientAddress = "10.8.0.2/24"
	defaultBindHost      = "0.0.0.0"
	defaultPort          = 8000
)

// Pair is one matched set of endpoint configurations.
type Pair struct {
	Client clientConfiguration.Configuration
	Server serverConfiguration.Configuration
}

type Generator struct {
	rand io.Reader
}

func NewGenerator() *Generator {
	return &Generator{rand: rand.Reader}
}

// Generate builds a client/server pair for the given public server
// address. Zero port falls back to the default.
func (g *Generator) Generate(serverHost string, port int) (Pair, error) {
	if serverHost == "" {
		return Pair{}, fmt.Errorf("server address is required")
	}
	if port == 0 {
		port = defaultPort
	}
	if port < 1 || port > 65535 {
		return Pair{}, fmt.Errorf("invalid port: %d", port)
	}

	key := make([]byte, aead.KeySize)
	if _, err := io.ReadFull(g.rand, key); err != nil {
		return Pair{}, fmt.Errorf("failed to generate session key: %w", err)
	}
	encodedKey := configuration.EncodeKey(key)

	base := settings.Settings{
		TunName:       defaultTunName,
		MTU:           settings.DefaultTunnelMTU,
		Port:          port,
		Encryption:    settings.AESGCM,
		DialTimeoutMs: settings.DefaultDialTimeoutMs,
		ClockSkewSec:  settings.DefaultClockSkewSec,
	}

	clientSettings := base
	clientSettings.TunAddress = defaultClientAddress
	clientSettings.Server = serverHost

	serverSettings := base
	serverSettings.TunAddress = defaultServerAddress
	serverSettings.Server = defaultBindHost

	pair := Pair{
		Client: clientConfiguration.Configuration{Settings: clientSettings, Key: encodedKey},
		Server: serverConfiguration.Configuration{Settings: serverSettings, Key: encodedKey},
	}
	if err := pair.Client.Validate(); err != nil {
		return Pair{}, fmt.Errorf("generated client configuration is invalid: %w", err)
	}
	if err := pair.Server.Validate(); err != nil {
		return Pair{}, fmt.Errorf("generated server configuration is invalid: %w", err)
	}
	return pair, nil
}
