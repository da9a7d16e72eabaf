package main

import (
	"context"
	"log"
	"os"

	"github.com/gabapcia/chainflow/internal/account"
	"github.com/gabapcia/chainflow/internal/block"
	"github.com/gabapcia/chainflow/internal/config"
	"github.com/gabapcia/chainflow/internal/contract"
	"github.com/gabapcia/chainflow/internal/defi"
	"github.com/gabapcia/chainflow/internal/event"
	"github.com/gabapcia/chainflow/internal/handlers/cli"
	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	explorerinfra "github.com/gabapcia/chainflow/internal/infra/explorer"
	"github.com/gabapcia/chainflow/internal/infra/storage/redis"
	"github.com/gabapcia/chainflow/internal/network"
	"github.com/gabapcia/chainflow/internal/nft"
	"github.com/gabapcia/chainflow/internal/pkg/logger"
	"github.com/gabapcia/chainflow/internal/pkg/telemetry"
	explorertransport "github.com/gabapcia/chainflow/internal/pkg/transport/explorer"
	"github.com/gabapcia/chainflow/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/chainflow/internal/pkg/validation"
	"github.com/gabapcia/chainflow/internal/token"
	"github.com/gabapcia/chainflow/internal/transaction"
	"github.com/gabapcia/chainflow/internal/trigger"
	"github.com/gabapcia/chainflow/internal/utility"
)

const serviceName = "chainflow"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading configuration: %v", err)
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			log.Fatalf("initializing telemetry: %v", err)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	validation.Init()

	node := ethereum.NewClient(jsonrpc.NewClient(
		cfg.NodeEndpoint,
		jsonrpc.WithTimeout(cfg.RequestTimeout),
	))

	explorer := explorerinfra.NewClient(explorertransport.NewClient(
		cfg.ExplorerEndpoint,
		cfg.ExplorerAPIKey,
		explorertransport.WithTimeout(cfg.RequestTimeout),
	))

	triggerOpts := []trigger.Option{trigger.WithPollInterval(cfg.PollInterval)}
	checkpoints, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Error(ctx, "redis unavailable, trigger checkpoints disabled", "error", err)
	} else {
		defer checkpoints.Close()
		triggerOpts = append(triggerOpts, trigger.WithCheckpointStorage(checkpoints))
	}

	services := cli.Services{
		Account:     account.NewService(node, explorer),
		Transaction: transaction.NewService(node),
		Block:       block.NewService(node),
		Contract:    contract.NewService(node, explorer),
		Token:       token.NewService(node, explorer),
		NFT:         nft.NewService(node, explorer),
		DeFi:        defi.NewService(node),
		Network:     network.NewService(node),
		Event:       event.NewService(node),
		Utility:     utility.NewService(),
		Trigger:     trigger.New(cfg.Network, node, triggerOpts...),
	}

	if err := cli.Run(ctx, services); err != nil {
		logger.Error(ctx, "chainflow exited with error", "error", err)
		os.Exit(1)
	}
}
