package handlers

import (
	"encoding/json"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"whispertunnel/application/confgen"
	serverConfiguration "whispertunnel/infrastructure/PAL/configuration/server"
	"whispertunnel/presentation/bubble_tea"
)

// AddressPrompt asks the operator for the server's public address.
type AddressPrompt func() (string, error)

// ConfGenHandler generates a paired configuration: the server half is
// written to this host's configuration path, the client half is printed
// for the operator to carry to the peer.
type ConfGenHandler struct {
	generator     *confgen.Generator
	serverManager serverConfiguration.ConfigurationManager
	prompt        AddressPrompt
	output        io.Writer
}

func NewConfGenHandler(
	serverManager serverConfiguration.ConfigurationManager,
	output io.Writer,
) *ConfGenHandler {
	return &ConfGenHandler{
		generator:     confgen.NewGenerator(),
		serverManager: serverManager,
		prompt:        promptForServerAddress,
		output:        output,
	}
}

func (h *ConfGenHandler) GenerateNewConf() error {
	serverAddress, promptErr := h.prompt()
	if promptErr != nil {
		return fmt.Errorf("failed to read server address: %w", promptErr)
	}

	pair, generateErr := h.generator.Generate(serverAddress, 0)
	if generateErr != nil {
		return fmt.Errorf("failed to generate configuration: %w", generateErr)
	}

	if err := h.serverManager.Write(pair.Server); err != nil {
		return fmt.Errorf("failed to write server configuration: %w", err)
	}

	marshalled, marshalErr := json.MarshalIndent(pair.Client, "", "  ")
	if marshalErr != nil {
		return fmt.Errorf("failed to marshal client configuration: %w", marshalErr)
	}

	_, _ = fmt.Fprintln(h.output, "Server configuration written. Client configuration:")
	_, _ = fmt.Fprintln(h.output, string(marshalled))
	return nil
}

func promptForServerAddress() (string, error) {
	input := bubble_tea.NewTextInput("server public address, e.g. 203.0.113.7")
	program, programErr := tea.NewProgram(input).Run()
	if programErr != nil {
		return "", programErr
	}

	result, ok := program.(*bubble_tea.TextInput)
	if !ok || result.Cancelled() {
		return "", fmt.Errorf("input cancelled")
	}
	return result.Value(), nil
}
