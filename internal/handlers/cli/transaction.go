package cli

import (
	"context"

	"github.com/gabapcia/chainflow/internal/transaction"

	"github.com/urfave/cli/v3"
)

// transactionCommand groups the transaction actions: lookup, receipt, and
// pre-signed broadcast.
func transactionCommand(svc transaction.Service) *cli.Command {
	hashFlag := &cli.StringFlag{
		Name:     "hash",
		Usage:    "Transaction hash (0x-prefixed)",
		Required: true,
	}

	return &cli.Command{
		Name:        "tx",
		Description: "Transaction actions: lookup by hash, receipt, raw broadcast.",
		Usage:       "chainflow tx [subcommand] [flags]",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Fetch and normalize a transaction by hash.",
				Flags: []cli.Flag{hashFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					tx, err := svc.Get(ctx, c.String("hash"))
					if err != nil {
						return err
					}
					return printJSON(tx)
				},
			},
			{
				Name:  "receipt",
				Usage: "Fetch the receipt of a mined transaction, including its exact fee.",
				Flags: []cli.Flag{hashFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					receipt, err := svc.GetReceipt(ctx, c.String("hash"))
					if err != nil {
						return err
					}
					return printJSON(receipt)
				},
			},
			{
				Name:  "broadcast",
				Usage: "Broadcast a pre-signed transaction blob. Signing never happens here.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "signed",
						Usage:    "Signed transaction blob (0x-prefixed hex)",
						Required: true,
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					hash, err := svc.Broadcast(ctx, c.String("signed"))
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"hash": hash})
				},
			},
		},
	}
}
