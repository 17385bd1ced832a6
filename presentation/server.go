package presentation

import (
	"context"

	serverConfiguration "whispertunnel/infrastructure/PAL/configuration/server"
	"whispertunnel/presentation/runners/server"
)

func StartServer(ctx context.Context) error {
	manager := serverConfiguration.NewManager(serverConfiguration.NewResolver())
	deps := server.NewDependencies(manager)
	if err := deps.Initialize(); err != nil {
		return err
	}

	return server.NewRunner(deps).Run(ctx)
}
