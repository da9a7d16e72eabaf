package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/chainflow/internal/contract"
	"github.com/gabapcia/chainflow/internal/pkg/evm"

	"github.com/urfave/cli/v3"
)

// contractCommand groups the generic contract actions: arbitrary read-only
// calls, bytecode checks, and verified-ABI lookup.
//
// Usage example:
//
//	chainflow contract read --contract 0xABC... --selector 0x70a08231 \
//	    --param address:0xDEF... --return uint256
func contractCommand(svc contract.Service) *cli.Command {
	contractFlag := &cli.StringFlag{
		Name:     "contract",
		Usage:    "Contract address (0x-prefixed)",
		Required: true,
	}

	return &cli.Command{
		Name:        "contract",
		Description: "Generic contract actions: read-only calls, code checks, ABI lookup.",
		Usage:       "chainflow contract [subcommand] [flags]",
		Commands: []*cli.Command{
			{
				Name:  "read",
				Usage: "Encode, execute and decode a read-only contract call.",
				Flags: []cli.Flag{
					contractFlag,
					&cli.StringFlag{
						Name:     "selector",
						Usage:    "4-byte function selector (0x-prefixed)",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "param",
						Usage: "Typed parameter as type:value (repeatable, in order)",
					},
					&cli.StringSliceFlag{
						Name:  "return",
						Usage: "Declared return type per word (repeatable, in order)",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					params, err := parseParams(c.StringSlice("param"))
					if err != nil {
						return err
					}

					values, err := svc.Read(ctx, contract.ReadInput{
						Contract:    c.String("contract"),
						Selector:    c.String("selector"),
						Params:      params,
						ReturnTypes: c.StringSlice("return"),
					})
					if err != nil {
						return err
					}
					return printJSON(values)
				},
			},
			{
				Name:  "check",
				Usage: "Report whether an address has deployed bytecode.",
				Flags: []cli.Flag{contractFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					isContract, err := svc.IsContract(ctx, c.String("contract"))
					if err != nil {
						return err
					}
					return printJSON(map[string]bool{"contract": isContract})
				},
			},
			{
				Name:  "abi",
				Usage: "Fetch the verified ABI of a contract from the block explorer.",
				Flags: []cli.Flag{contractFlag},
				Action: func(ctx context.Context, c *cli.Command) error {
					abi, err := svc.ABI(ctx, c.String("contract"))
					if err != nil {
						return err
					}
					fmt.Println(abi)
					return nil
				},
			},
		},
	}
}

// parseParams converts repeated type:value flags into typed parameters.
func parseParams(raw []string) ([]evm.Param, error) {
	params := make([]evm.Param, 0, len(raw))
	for _, entry := range raw {
		typ, value, found := strings.Cut(entry, ":")
		if !found {
			return nil, fmt.Errorf("parameter %q must be in type:value form", entry)
		}
		params = append(params, evm.Param{Type: typ, Value: value})
	}
	return params, nil
}
