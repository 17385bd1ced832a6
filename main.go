package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"whispertunnel/domain/app"
	"whispertunnel/domain/mode"
	serverConfiguration "whispertunnel/infrastructure/PAL/configuration/server"
	"whispertunnel/presentation"
	"whispertunnel/presentation/elevation"
	"whispertunnel/presentation/interactive_commands/handlers"
	"whispertunnel/presentation/mode_selection"
	"whispertunnel/presentation/runners/version"
)

func main() {
	processElevation := elevation.NewProcessElevation()
	if !processElevation.IsElevated() {
		fmt.Printf("Warning: %s must be run with admin privileges\n", app.Name)
		return
	}

	appCtx, appCtxCancel := context.WithCancel(context.Background())
	defer appCtxCancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupt received. Shutting down...")
		appCtxCancel()
	}()

	am := mode_selection.NewTeaAppMode(os.Args)
	selectedMode, selectedModeErr := am.Mode()
	if selectedModeErr != nil {
		fmt.Println(selectedModeErr)
		os.Exit(1)
	}

	switch selectedMode {
	case mode.Server:
		fmt.Printf("Starting server...\n")
		if err := presentation.StartServer(appCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
	case mode.Client:
		fmt.Printf("Starting client...\n")
		if err := presentation.StartClient(appCtx); err != nil && !errors.Is(err, context.Canceled) {
			log.Fatal(err)
		}
	case mode.ConfGen:
		manager := serverConfiguration.NewManager(serverConfiguration.NewResolver())
		if err := handlers.NewConfGenHandler(manager, os.Stdout).GenerateNewConf(); err != nil {
			log.Fatal(err)
		}
	case mode.Version:
		version.NewRunner().Run(appCtx)
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`Usage: %s <mode>
Modes:
  c    - Client
  s    - Server
  gen  - Generate paired configuration
  v    - Version
`, app.Name)
}
