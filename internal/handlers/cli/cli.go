package cli

import (
	"context"
	"os"

	"github.com/vito-labs/vito/internal/txpool"

	"github.com/urfave/cli/v3"
)

// ServiceBuilder constructs a transaction pool service for one invocation.
// The RPC endpoint and pool override come from command flags; an empty
// endpoint means the configured or built-in default, and an empty pool
// override means the network-derived pool address.
type ServiceBuilder func(rpcEndpoint, poolOverride string) (txpool.Service, error)

// Run initializes and executes the vito CLI application.
//
// It registers all available commands, including:
//
//   - `tx`: Fetches one pool transaction by hash, or lists all pending ones.
//   - `signed`: Reports whether a signer has already signed a pool transaction.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - build: Factory used by commands to construct the transaction pool
//     service from their flags.
func Run(ctx context.Context, build ServiceBuilder) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "vito",
		Description:           "Command-line interface for inspecting SafeTxPool multi-signature transactions.",
		Usage:                 "vito [command] [flags]",
		Commands: []*cli.Command{
			transactionCommand(build),
			signedCommand(build),
		},
	}

	return app.Run(ctx, os.Args)
}
