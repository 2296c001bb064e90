package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vito-labs/vito/internal/config"
	handler "github.com/vito-labs/vito/internal/handlers/cli"
	"github.com/vito-labs/vito/internal/infra/blockchain/ethereum"
	"github.com/vito-labs/vito/internal/networks"
	"github.com/vito-labs/vito/internal/pkg/logger"
	"github.com/vito-labs/vito/internal/pkg/telemetry"
	"github.com/vito-labs/vito/internal/pkg/transport/jsonrpc"
	"github.com/vito-labs/vito/internal/pkg/validator"
	"github.com/vito-labs/vito/internal/txpool"
)

const serviceName = "vito"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	validator.Init()

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			logger.Fatal(ctx, "failed to initialize telemetry", "error", err)
		}
		defer shutdown(ctx)
	}

	resolver := networks.NewResolver()

	build := func(rpcEndpoint, poolOverride string) (txpool.Service, error) {
		endpoint := rpcEndpoint
		if endpoint == "" {
			endpoint = cfg.RPCEndpoint
		}
		if endpoint == "" {
			logger.Info(ctx, "no RPC endpoint provided, using default Ethereum mainnet RPC")
			endpoint = networks.DefaultRPCEndpoint
		}

		conn := jsonrpc.NewClient(endpoint,
			jsonrpc.WithTimeout(cfg.HTTPTimeout),
			jsonrpc.WithRetryMax(cfg.HTTPRetryMax),
		)

		chain, err := ethereum.NewClient(conn)
		if err != nil {
			return nil, err
		}

		var opts []txpool.Option
		if poolOverride != "" {
			opts = append(opts, txpool.WithPoolAddress(poolOverride))
		}

		return txpool.New(chain, resolver, opts...), nil
	}

	if err := handler.Run(ctx, build); err != nil {
		logger.Fatal(ctx, "command failed", "error", err)
	}
}
