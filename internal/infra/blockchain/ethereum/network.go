package ethereum

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/chainflow/internal/pkg/types"
)

// SyncStatus reports node synchronization progress. Syncing is false when
// the node is caught up, in which case the block fields are empty.
type SyncStatus struct {
	Syncing       bool
	StartingBlock types.Hex
	CurrentBlock  types.Hex
	HighestBlock  types.Hex
}

// GasPrice fetches the node's suggested gas price as a hex wei quantity.
func (c *client) GasPrice(ctx context.Context) (types.Hex, error) {
	return c.fetchHex(ctx, "eth_gasPrice")
}

// ChainID fetches the EIP-155 chain id.
func (c *client) ChainID(ctx context.Context) (types.Hex, error) {
	return c.fetchHex(ctx, "eth_chainId")
}

// NetVersion fetches the network id as a decimal string.
func (c *client) NetVersion(ctx context.Context) (string, error) {
	data, err := c.conn.Fetch(ctx, "net_version")
	if err != nil {
		return "", err
	}

	var version string
	return version, json.Unmarshal(data, &version)
}

// ClientVersion fetches the node software identifier.
func (c *client) ClientVersion(ctx context.Context) (string, error) {
	data, err := c.conn.Fetch(ctx, "web3_clientVersion")
	if err != nil {
		return "", err
	}

	var version string
	return version, json.Unmarshal(data, &version)
}

// Syncing reports whether the node is still synchronizing. The RPC returns
// the literal false when caught up, otherwise a progress object.
func (c *client) Syncing(ctx context.Context) (SyncStatus, error) {
	data, err := c.conn.Fetch(ctx, "eth_syncing")
	if err != nil {
		return SyncStatus{}, err
	}

	var notSyncing bool
	if err := json.Unmarshal(data, &notSyncing); err == nil {
		return SyncStatus{Syncing: false}, nil
	}

	var progress struct {
		StartingBlock types.Hex `json:"startingBlock"`
		CurrentBlock  types.Hex `json:"currentBlock"`
		HighestBlock  types.Hex `json:"highestBlock"`
	}
	if err := json.Unmarshal(data, &progress); err != nil {
		return SyncStatus{}, err
	}

	return SyncStatus{
		Syncing:       true,
		StartingBlock: progress.StartingBlock,
		CurrentBlock:  progress.CurrentBlock,
		HighestBlock:  progress.HighestBlock,
	}, nil
}
