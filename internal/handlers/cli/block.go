package cli

import (
	"context"

	"github.com/gabapcia/chainflow/internal/block"

	"github.com/urfave/cli/v3"
)

// blockCommand groups the block actions: head height and block lookup.
func blockCommand(svc block.Service) *cli.Command {
	return &cli.Command{
		Name:        "block",
		Description: "Block actions: latest height, block lookup with normalized fields.",
		Usage:       "chainflow block [subcommand] [flags]",
		Commands: []*cli.Command{
			{
				Name:  "number",
				Usage: "Fetch the latest block number.",
				Action: func(ctx context.Context, c *cli.Command) error {
					number, err := svc.LatestNumber(ctx)
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"number": number})
				},
			},
			{
				Name:  "get",
				Usage: "Fetch a block by height, or the chain head when no height is given.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "number", Usage: "Block height, decimal; empty means latest"},
					&cli.BoolFlag{Name: "full", Usage: "Include per-transaction summaries"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					var (
						number = c.String("number")
						fullTx = c.Bool("full")
					)

					var (
						blk block.Block
						err error
					)
					if number == "" {
						blk, err = svc.Latest(ctx, fullTx)
					} else {
						blk, err = svc.ByNumber(ctx, number, fullTx)
					}
					if err != nil {
						return err
					}
					return printJSON(blk)
				},
			},
		},
	}
}
