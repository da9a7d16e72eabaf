package cli

import (
	"context"

	"github.com/gabapcia/chainflow/internal/utility"

	"github.com/urfave/cli/v3"
)

// utilityCommand exposes the pure conversion and encoding helpers.
func utilityCommand(svc utility.Service) *cli.Command {
	decimalsFlag := &cli.UintFlag{
		Name:  "decimals",
		Usage: "Fractional digit count",
		Value: 18,
	}

	return &cli.Command{
		Name:        "util",
		Description: "Pure helpers: base conversion, unit conversion, ABI encode/decode, validation.",
		Usage:       "chainflow util [subcommand] [flags]",
		Commands: []*cli.Command{
			{
				Name:      "hex-to-decimal",
				Usage:     "Convert a hex quantity to decimal.",
				ArgsUsage: "<hex>",
				Action: func(ctx context.Context, c *cli.Command) error {
					decimal, err := svc.HexToDecimal(c.Args().First())
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"decimal": decimal})
				},
			},
			{
				Name:      "decimal-to-hex",
				Usage:     "Convert a decimal quantity to hex.",
				ArgsUsage: "<decimal>",
				Action: func(ctx context.Context, c *cli.Command) error {
					hex, err := svc.DecimalToHex(c.Args().First())
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"hex": hex})
				},
			},
			{
				Name:      "wei-to-human",
				Usage:     "Render a wei amount at a decimal count.",
				ArgsUsage: "<wei>",
				Flags:     []cli.Flag{decimalsFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					human, err := svc.WeiToHuman(c.Args().First(), uint(c.Uint("decimals")))
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"human": human})
				},
			},
			{
				Name:      "human-to-wei",
				Usage:     "Parse a human-readable amount into wei.",
				ArgsUsage: "<amount>",
				Flags:     []cli.Flag{decimalsFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					wei, err := svc.HumanToWei(c.Args().First(), uint(c.Uint("decimals")))
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"wei": wei})
				},
			},
			{
				Name:      "validate",
				Usage:     "Check whether a value is a well-formed address or transaction hash.",
				ArgsUsage: "<value>",
				Action: func(ctx context.Context, c *cli.Command) error {
					value := c.Args().First()
					return printJSON(map[string]bool{
						"address": svc.IsValidAddress(value),
						"txHash":  svc.IsValidTxHash(value),
					})
				},
			},
			{
				Name:      "decode",
				Usage:     "Decode ABI words against declared types.",
				ArgsUsage: "<hexData>",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{Name: "type", Usage: "Declared word type (repeatable, in order)"},
					&cli.BoolFlag{Name: "call-data", Usage: "Strip a leading 4-byte selector first"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					var (
						data  = c.Args().First()
						types = c.StringSlice("type")
					)

					var (
						values []string
						err    error
					)
					if c.Bool("call-data") {
						values, err = svc.DecodeCallData(data, types)
					} else {
						values, err = svc.DecodeWords(data, types)
					}
					if err != nil {
						return err
					}
					return printJSON(values)
				},
			},
			{
				Name:      "decode-string",
				Usage:     "Decode return data holding a single dynamic string.",
				ArgsUsage: "<hexData>",
				Action: func(ctx context.Context, c *cli.Command) error {
					value, err := svc.DecodeSingleDynamicString(c.Args().First())
					if err != nil {
						return err
					}
					return printJSON(map[string]string{"value": value})
				},
			},
		},
	}
}
