// Package cli wires the chainflow action services into a command-line
// surface. Every action prints its normalized result as JSON on stdout;
// the watch command runs the block trigger loop until interrupted.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/gabapcia/chainflow/internal/account"
	"github.com/gabapcia/chainflow/internal/block"
	"github.com/gabapcia/chainflow/internal/contract"
	"github.com/gabapcia/chainflow/internal/defi"
	"github.com/gabapcia/chainflow/internal/event"
	"github.com/gabapcia/chainflow/internal/network"
	"github.com/gabapcia/chainflow/internal/nft"
	"github.com/gabapcia/chainflow/internal/token"
	"github.com/gabapcia/chainflow/internal/transaction"
	"github.com/gabapcia/chainflow/internal/trigger"
	"github.com/gabapcia/chainflow/internal/utility"

	"github.com/urfave/cli/v3"
)

// Services bundles the action services the CLI exposes.
type Services struct {
	Account     account.Service
	Transaction transaction.Service
	Block       block.Service
	Contract    contract.Service
	Token       token.Service
	NFT         nft.Service
	DeFi        defi.Service
	Network     network.Service
	Event       event.Service
	Utility     utility.Service
	Trigger     trigger.Service
}

// Run initializes and executes the chainflow CLI application.
//
// It registers one command group per action family (account, tx, block,
// contract, token, nft, defi, network, events, util) plus the watch
// command that runs the block trigger loop.
func Run(ctx context.Context, svcs Services) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "chainflow",
		Description:           "Command-line interface for the chainflow EVM action services.",
		Usage:                 "chainflow [command] [flags]",
		Commands: []*cli.Command{
			accountCommand(svcs.Account),
			transactionCommand(svcs.Transaction),
			blockCommand(svcs.Block),
			contractCommand(svcs.Contract),
			tokenCommand(svcs.Token),
			nftCommand(svcs.NFT),
			defiCommand(svcs.DeFi),
			networkCommand(svcs.Network),
			eventsCommand(svcs.Event),
			utilityCommand(svcs.Utility),
			watchCommand(svcs.Trigger),
		},
	}

	return app.Run(ctx, os.Args)
}

// printJSON renders a result on stdout. Errors from the services reach the
// CLI framework untouched; this only handles successful outputs.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}
