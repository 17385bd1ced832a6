package client

import (
	"os"
	"path/filepath"
)

type Resolver struct {
}

func NewResolver() Resolver {
	return Resolver{}
}

func (r Resolver) Resolve() (string, error) {
	programData := os.Getenv("PROGRAMDATA")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, "whispertunnel", "client_configuration.json"), nil
}
