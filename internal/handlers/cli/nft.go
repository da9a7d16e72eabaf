package cli

import (
	"context"

	"github.com/gabapcia/chainflow/internal/infra/explorer"
	"github.com/gabapcia/chainflow/internal/nft"

	"github.com/urfave/cli/v3"
)

// nftCommand groups the ERC-721 actions.
func nftCommand(svc nft.Service) *cli.Command {
	collectionFlag := &cli.StringFlag{
		Name:     "collection",
		Usage:    "Collection contract address (0x-prefixed)",
		Required: true,
	}
	tokenIDFlag := &cli.StringFlag{
		Name:     "id",
		Usage:    "Token id, decimal",
		Required: true,
	}

	return &cli.Command{
		Name:        "nft",
		Description: "ERC-721 actions: ownership, balances, metadata URI, transfers.",
		Usage:       "chainflow nft [subcommand] [flags]",
		Commands: []*cli.Command{
			{
				Name:  "owner",
				Usage: "Fetch the current owner of a token.",
				Flags: []cli.Flag{collectionFlag, tokenIDFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					owner, err := svc.OwnerOf(ctx, c.String("collection"), c.String("id"))
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"owner": owner})
				},
			},
			{
				Name:  "balance",
				Usage: "Fetch how many tokens of the collection an owner holds.",
				Flags: []cli.Flag{
					collectionFlag,
					&cli.StringFlag{Name: "owner", Usage: "Owner address", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					count, err := svc.BalanceOf(ctx, c.String("collection"), c.String("owner"))
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"balance": count})
				},
			},
			{
				Name:  "uri",
				Usage: "Resolve the metadata URI of a token.",
				Flags: []cli.Flag{collectionFlag, tokenIDFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					uri, err := svc.TokenURI(ctx, c.String("collection"), c.String("id"))
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"uri": uri})
				},
			},
			{
				Name:  "transfers",
				Usage: "List an address's NFT transfer history.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Usage: "Account address", Required: true},
					&cli.StringFlag{Name: "collection", Usage: "Optional collection filter"},
					&cli.IntFlag{Name: "page", Usage: "Result page, 1-based"},
					&cli.IntFlag{Name: "offset", Usage: "Rows per page"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					transfers, err := svc.Transfers(ctx, c.String("address"), c.String("collection"), explorer.HistoryQuery{
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
