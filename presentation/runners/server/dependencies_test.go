package server

import (
	"bytes"
	"path/filepath"
	"testing"

	"whispertunnel/infrastructure/PAL/configuration"
	serverConfiguration "whispertunnel/infrastructure/PAL/configuration/server"
)

func TestDependenciesInitialize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server_configuration.json")
	manager := serverConfiguration.NewManager(configuration.NewStaticResolver(path))

	key := bytes.Repeat([]byte{0x42}, 32)
	conf := serverConfiguration.Configuration{
		Settings: endpointSettings(8000, "10.9.0.1/24"),
		Key:      configuration.EncodeKey(key),
	}
	if err := manager.Write(conf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	deps := NewDependencies(manager)
	if err := deps.Initialize(); err != nil {
		t.Fatalf("Initialize: %v", err)
	}

	if !bytes.Equal(deps.SessionKey(), key) {
		t.Error("SessionKey does not round-trip")
	}
	if deps.TunManager() == nil {
		t.Error("TunManager must be configured after Initialize")
	}
}

func TestDependenciesInitializeInvalidKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server_configuration.json")
	resolver := configuration.NewStaticResolver(path)
	manager := serverConfiguration.NewManager(resolver)

	conf := serverConfiguration.Configuration{
		Settings: endpointSettings(8000, "10.9.0.1/24"),
		Key:      "not-base64!",
	}
	// Manager.Write does not validate; the read path must reject this.
	if err := manager.Write(conf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	deps := NewDependencies(serverConfiguration.NewManager(resolver))
	if err := deps.Initialize(); err == nil {
		t.Fatal("expected error for malformed key")
	}
}
