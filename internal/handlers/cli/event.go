package cli

import (
	"context"

	"github.com/gabapcia/chainflow/internal/event"

	"github.com/urfave/cli/v3"
)

// eventsCommand exposes the log-query action.
//
// Usage example:
//
//	chainflow events --contract 0xABC... \
//	    --signature 0xddf252ad... --from 100 --to 200 --data-type uint256
func eventsCommand(svc event.Service) *cli.Command {
	return &cli.Command{
		Name:        "events",
		Description: "Search event logs with topic construction and word-level data decoding.",
		Usage:       "chainflow events [flags]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "contract",
				Usage:    "Emitting contract address (0x-prefixed)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "signature",
				Usage:    "Event signature hash, topic 0 (0x-prefixed, 32 bytes)",
				Required: true,
			},
			&cli.StringFlag{Name: "indexed-address", Usage: "Optional indexed address for topic 1"},
			&cli.StringFlag{Name: "from", Usage: "Lowest block height, decimal"},
			&cli.StringFlag{Name: "to", Usage: "Highest block height, decimal"},
			&cli.StringSliceFlag{Name: "data-type", Usage: "Declared data word type (repeatable, in order)"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logs, err := svc.Search(ctx, event.Query{
				Contract:       c.String("contract"),
				SignatureTopic: c.String("signature"),
				IndexedAddress: c.String("indexed-address"),
				FromBlock:      c.String("from"),
				ToBlock:        c.String("to"),
				DataTypes:      c.StringSlice("data-type"),
			})
			if err != nil {
				return err
			}
			return printJSON(logs)
		},
	}
}
