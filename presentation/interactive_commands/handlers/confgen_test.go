package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	clientConfiguration "whispertunnel/infrastructure/PAL/configuration/client"
	serverConfiguration "whispertunnel/infrastructure/PAL/configuration/server"
)

type recordingServerManager struct {
	written  []serverConfiguration.Configuration
	writeErr error
}

func (m *recordingServerManager) Configuration() (*serverConfiguration.Configuration, error) {
	return nil, errors.New("not implemented")
}

func (m *recordingServerManager) Write(conf serverConfiguration.Configuration) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	m.written = append(m.written, conf)
	return nil
}

func newTestHandler(manager *recordingServerManager, output *bytes.Buffer, prompt AddressPrompt) *ConfGenHandler {
	handler := NewConfGenHandler(manager, output)
	handler.prompt = prompt
	return handler
}

func TestGenerateNewConfWritesServerAndPrintsClient(t *testing.T) {
	manager := &recordingServerManager{}
	var output bytes.Buffer
	handler := newTestHandler(manager, &output, func() (string, error) {
		return "203.0.113.7", nil
	})

	if err := handler.GenerateNewConf(); err != nil {
		t.Fatalf("GenerateNewConf: %v", err)
	}

	if len(manager.written) != 1 {
		t.Fatalf("server configurations written = %d, want 1", len(manager.written))
	}

	jsonStart := strings.Index(output.String(), "{")
	if jsonStart < 0 {
		t.Fatal("output contains no client configuration JSON")
	}
	var clientConf clientConfiguration.Configuration
	if err := json.Unmarshal([]byte(output.String()[jsonStart:]), &clientConf); err != nil {
		t.Fatalf("printed client configuration is not valid JSON: %v", err)
	}
	if clientConf.Key != manager.written[0].Key {
		t.Error("printed client configuration does not share the server key")
	}
	if clientConf.Settings.Server != "203.0.113.7" {
		t.Errorf("client Server = %q, want the prompted address", clientConf.Settings.Server)
	}
}

func TestGenerateNewConfPromptError(t *testing.T) {
	manager := &recordingServerManager{}
	var output bytes.Buffer
	handler := newTestHandler(manager, &output, func() (string, error) {
		return "", errors.New("input cancelled")
	})

	if err := handler.GenerateNewConf(); err == nil {
		t.Fatal("expected error when prompt fails")
	}
	if len(manager.written) != 0 {
		t.Error("no configuration must be written when the prompt fails")
	}
}

func TestGenerateNewConfWriteError(t *testing.T) {
	manager := &recordingServerManager{writeErr: errors.New("disk full")}
	var output bytes.Buffer
	handler := newTestHandler(manager, &output, func() (string, error) {
		return "203.0.113.7", nil
	})

	err := handler.GenerateNewConf()
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
	if strings.Contains(output.String(), "{") {
		t.Error("client configuration must not be printed when the server write fails")
	}
}
