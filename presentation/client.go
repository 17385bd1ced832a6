package presentation

import (
	"context"

	clientConfiguration "whispertunnel/infrastructure/PAL/configuration/client"
	"whispertunnel/presentation/runners/client"
)

func StartClient(ctx context.Context) error {
	manager := clientConfiguration.NewManager(clientConfiguration.NewResolver())
	deps := client.NewDependencies(manager)
	if err := deps.Initialize(); err != nil {
		return err
	}

	return client.NewRunner(deps).Run(ctx)
}
