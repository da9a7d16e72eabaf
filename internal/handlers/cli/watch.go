package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/chainflow/internal/trigger"

	"github.com/urfave/cli/v3"
)

// watchEvent is the printable shape of a trigger event. The domain event
// carries its failure as an error value, which encoding/json renders as an
// empty object; the message is lifted into a plain string here.
type watchEvent struct {
	Network string
	Block   trigger.Block
	Error   string `json:",omitempty"`
}

func newWatchEvent(event trigger.Event) watchEvent {
	out := watchEvent{
		Network: event.Network,
		Block:   event.Block,
	}
	if event.Error != nil {
		out.Error = event.Error.Error()
	}
	return out
}

// watchCommand returns a CLI command that runs the block polling trigger,
// printing one JSON event per observed block.
//
// Usage example:
//
//	chainflow watch
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM).
func watchCommand(svc trigger.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Runs the block polling trigger, emitting one event per new block.",
		Usage:       "Polls for new blocks and prints trigger events. Terminates gracefully on Ctrl+C.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			eventsCh, err := svc.Start(ctx)
			if err != nil {
				return err
			}
			defer svc.Close()

			for {
				select {
				case <-quit:
					return nil
				case event, open := <-eventsCh:
					if !open {
						return nil
					}
					if err := printJSON(newWatchEvent(event)); err != nil {
						return err
					}
				}
			}
		},
	}
}
