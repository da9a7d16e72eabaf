package cli

import (
	"context"

	"github.com/gabapcia/chainflow/internal/account"
	"github.com/gabapcia/chainflow/internal/infra/explorer"

	"github.com/urfave/cli/v3"
)

// accountCommand groups the account actions: native balance, nonce, and
// explorer transaction history.
//
// Usage example:
//
//	chainflow account balance --address 0xABC123...
func accountCommand(svc account.Service) *cli.Command {
	return &cli.Command{
		Name:        "account",
		Description: "Account-centric actions: balance, nonce, transaction history.",
		Usage:       "chainflow account [subcommand] [flags]",
		Commands: []*cli.Command{
			{
				Name:  "balance",
				Usage: "Fetch the native-coin balance of an address.",
				Flags: []cli.Flag{addressFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					balance, err := svc.NativeBalance(ctx, c.String("address"))
					if err != nil {
						return err
					}
					return printJSON(balance)
				},
			},
			{
				Name:  "nonce",
				Usage: "Fetch the transaction count of an address.",
				Flags: []cli.Flag{addressFlag()},
				Action: func(ctx context.Context, c *cli.Command) error {
					nonce, err := svc.Nonce(ctx, c.String("address"))
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"nonce": nonce})
				},
			},
			{
				Name:  "history",
				Usage: "List an address's transactions via the block explorer.",
				Flags: []cli.Flag{
					addressFlag(),
					&cli.IntFlag{Name: "page", Usage: "Result page, 1-based"},
					&cli.IntFlag{Name: "offset", Usage: "Rows per page"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					items, err := svc.History(ctx, c.String("address"), explorer.HistoryQuery{
						Page:   int(c.Int("page")),
						Offset: int(c.Int("offset")),
					})
					if err != nil {
						return err
					}
					return printJSON(items)
				},
			},
		},
	}
}

// addressFlag is the required --address flag shared by account subcommands.
func addressFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "address",
		Usage:    "Account address (0x-prefixed)",
		Required: true,
	}
}
