// Package ethereum provides the JSON-RPC adapter behind every chainflow
// action that talks to an EVM-compatible node. Each method shapes one RPC
// call and returns the raw wire values (hex quantities, hex blobs) for the
// action services to normalize.
package ethereum

import (
	"github.com/gabapcia/chainflow/internal/pkg/transport/jsonrpc"
)

// latestBlockTag is the canonical block parameter for state queries against
// the chain head.
const latestBlockTag = "latest"

// client performs typed calls against an EVM node via a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the node
}

// NewClient creates a node adapter over the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
