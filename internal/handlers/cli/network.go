package cli

import (
	"context"

	"github.com/gabapcia/chainflow/internal/network"

	"github.com/urfave/cli/v3"
)

// networkCommand groups the node-introspection actions.
func networkCommand(svc network.Service) *cli.Command {
	return &cli.Command{
		Name:        "network",
		Description: "Node introspection: chain identity, gas price, sync status.",
		Usage:       "chainflow network [subcommand]",
		Commands: []*cli.Command{
			{
				Name:  "info",
				Usage: "Fetch the chain id, network id and node software version.",
				Action: func(ctx context.Context, c *cli.Command) error {
					info, err := svc.Info(ctx)
					if err != nil {
						return err
					}
					return printJSON(info)
				},
			},
			{
				Name:  "gas-price",
				Usage: "Fetch the node's suggested gas price in wei and gwei.",
				Action: func(ctx context.Context, c *cli.Command) error {
					price, err := svc.SuggestedGasPrice(ctx)
					if err != nil {
						return err
					}
					return printJSON(price)
				},
			},
			{
				Name:  "sync",
				Usage: "Report whether the node is caught up with the chain.",
				Action: func(ctx context.Context, c *cli.Command) error {
					status, err := svc.SyncStatus(ctx)
					if err != nil {
						return err
					}
					return printJSON(status)
				},
			},
		},
	}
}
