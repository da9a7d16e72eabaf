package ethereum

import (
	"context"

	"github.com/gabapcia/chainflow/internal/pkg/types"
	"github.com/gabapcia/chainflow/internal/trigger"
)

// Ensure the node adapter satisfies the trigger's polling surface.
var _ trigger.Blockchain = (*client)(nil)

// LatestHeight implements the trigger.Blockchain interface.
func (c *client) LatestHeight(ctx context.Context) (types.Hex, error) {
	return c.BlockNumber(ctx)
}

// BlockSummary implements the trigger.Blockchain interface. Blocks are
// fetched without transaction bodies, only the count survives into the
// trigger event.
func (c *client) BlockSummary(ctx context.Context, height types.Hex) (trigger.Block, error) {
	block, err := c.BlockByNumber(ctx, string(height), false)
	if err != nil {
		return trigger.Block{}, err
	}

	return trigger.Block{
		Height:           block.Number,
		Hash:             block.Hash,
		Timestamp:        block.Timestamp,
		TransactionCount: block.TransactionCount,
	}, nil
}
