// Package explorer provides the block-explorer adapter behind the history
// and contract-metadata actions. It answers questions the node cannot:
// which transactions touched an address, which token transfers it made,
// and what a verified contract's ABI looks like.
package explorer

import (
	transport "github.com/gabapcia/chainflow/internal/pkg/transport/explorer"
)

// client performs typed queries against an Etherscan-compatible explorer.
type client struct {
	conn transport.Client // Underlying explorer REST client
}

// NewClient creates an explorer adapter over the provided REST connection.
func NewClient(conn transport.Client) *client {
	return &client{
		conn: conn,
	}
}
