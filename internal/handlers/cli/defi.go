package cli

import (
	"context"

	"github.com/gabapcia/chainflow/internal/defi"

	"github.com/urfave/cli/v3"
)

// defiCommand groups the DEX-pair actions.
func defiCommand(svc defi.Service) *cli.Command {
	return &cli.Command{
		Name:        "defi",
		Description: "DEX-pair actions: reserve inspection, exact quoting.",
		Usage:       "chainflow defi [subcommand] [flags]",
		Commands: []*cli.Command{
			{
				Name:  "reserves",
				Usage: "Fetch the current reserves of a V2-style pair contract.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "pair", Usage: "Pair contract address", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					reserves, err := svc.Reserves(ctx, c.String("pair"))
					if err != nil {
						return err
					}
					return printJSON(reserves)
				},
			},
			{
				Name:  "quote",
				Usage: "Compute the proportional output for an input amount against known reserves.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "amount", Usage: "Input amount, human-readable", Required: true},
					&cli.StringFlag{Name: "reserve-in", Usage: "Input-token reserve, smallest units", Required: true},
					&cli.StringFlag{Name: "reserve-out", Usage: "Output-token reserve, smallest units", Required: true},
					&cli.UintFlag{Name: "decimals-in", Usage: "Input token decimals", Value: 18},
					&cli.UintFlag{Name: "decimals-out", Usage: "Output token decimals", Value: 18},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					quote, err := svc.Quote(defi.QuoteInput{
						AmountIn:    c.String("amount"),
						ReserveIn:   c.String("reserve-in"),
						ReserveOut:  c.String("reserve-out"),
						DecimalsIn:  uint(c.Uint("decimals-in")),
						DecimalsOut: uint(c.Uint("decimals-out")),
					})
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"amountOut": quote})
				},
			},
		},
	}
}
