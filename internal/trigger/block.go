// Package trigger implements the polling trigger behind workflow
// activations: it watches an EVM network for new blocks, resumes from a
// persisted checkpoint across restarts, and emits one event per block for
// the workflow host to fan out.
package trigger

import (
	"context"

	"github.com/gabapcia/chainflow/internal/pkg/types"
)

// Block is the summary of a newly observed block delivered to workflows.
type Block struct {
	Height           types.Hex // Block height as a hex quantity
	Hash             string    // Block hash
	Timestamp        types.Hex // Block timestamp as a hex quantity (unix seconds)
	TransactionCount int       // Number of transactions included in the block
}

// Event is one trigger activation. Either Block is populated or Error
// explains why a poll iteration failed; consumers decide whether a failed
// iteration aborts the workflow run.
type Event struct {
	Network string // Network label the event originated from
	Block   Block  // The newly observed block
	Error   error  // Non-nil when the poll iteration failed
}

// Blockchain is the minimal node surface the trigger polls. The
// infra/blockchain adapters implement it.
type Blockchain interface {
	// LatestHeight returns the current chain head height.
	LatestHeight(ctx context.Context) (types.Hex, error)

	// BlockSummary returns the summary of the block at the given height.
	BlockSummary(ctx context.Context, height types.Hex) (Block, error)
}
