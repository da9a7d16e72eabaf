package cli

import (
	"context"

	"github.com/gabapcia/chainflow/internal/infra/explorer"
	"github.com/gabapcia/chainflow/internal/token"

	"github.com/urfave/cli/v3"
)

// tokenCommand groups the ERC-20 actions.
func tokenCommand(svc token.Service) *cli.Command {
	tokenFlag := &cli.StringFlag{
		Name:     "token",
		Usage:    "Token contract address (0x-prefixed)",
		Required: true,
	}

	return &cli.Command{
		Name:        "token",
		Description: "ERC-20 actions: metadata, balances, supply, allowance, transfers.",
		Usage:       "chainflow token [subcommand] [flags]",
		Commands: []*cli.Command{
			{
				Name:  "meta",
				Usage: "Fetch the token's name, symbol and decimals.",
				Flags: []cli.Flag{tokenFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					meta, err := svc.Metadata(ctx, c.String("token"))
					if err != nil {
						return err
					}
					return printJSON(meta)
				},
			},
			{
				Name:  "balance",
				Usage: "Fetch a holder's balance, normalized by the token's decimals.",
				Flags: []cli.Flag{
					tokenFlag,
					&cli.StringFlag{Name: "holder", Usage: "Holder address", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					amount, err := svc.BalanceOf(ctx, c.String("token"), c.String("holder"))
					if err != nil {
						return err
					}
					return printJSON(amount)
				},
			},
			{
				Name:  "supply",
				Usage: "Fetch the token's total supply.",
				Flags: []cli.Flag{tokenFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					amount, err := svc.TotalSupply(ctx, c.String("token"))
					if err != nil {
						return err
					}
					return printJSON(amount)
				},
			},
			{
				Name:  "allowance",
				Usage: "Fetch how much a spender may move on the owner's behalf.",
				Flags: []cli.Flag{
					tokenFlag,
					&cli.StringFlag{Name: "owner", Usage: "Owner address", Required: true},
					&cli.StringFlag{Name: "spender", Usage: "Spender address", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					amount, err := svc.Allowance(ctx, c.String("token"), c.String("owner"), c.String("spender"))
					if err != nil {
						return err
					}
					return printJSON(amount)
				},
			},
			{
				Name:  "transfer-data",
				Usage: "Build unsigned transfer(to, amount) call data.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to", Usage: "Recipient address", Required: true},
					&cli.StringFlag{Name: "amount", Usage: "Human-readable amount", Required: true},
					&cli.UintFlag{Name: "decimals", Usage: "Token decimals", Value: 18},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					data, err := svc.TransferCallData(c.String("to"), c.String("amount"), uint(c.Uint("decimals")))
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"data": data})
				},
			},
			{
				Name:  "transfers",
				Usage: "List an address's ERC-20 transfer history.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Usage: "Account address", Required: true},
					&cli.StringFlag{Name: "token", Usage: "Optional token contract filter"},
					&cli.IntFlag{Name: "page", Usage: "Result page, 1-based"},
					&cli.IntFlag{Name: "offset", Usage: "Rows per page"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					transfers, err := svc.Transfers(ctx, c.String("address"), c.String("token"), explorer.HistoryQuery{
						Page:   int(c.Int("page")),
						Offset: int(c.Int("offset")),
					})
					if err != nil {
						return err
					}
					return printJSON(transfers)
				},
			},
		},
	}
}
