// Package network exposes the node-introspection actions: chain identity,
// client version, suggested gas price, and synchronization status.
package network

import (
	"context"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/pkg/evm"
	"github.com/gabapcia/chainflow/internal/pkg/types"
)

type (
	// Info identifies the chain and node software behind the endpoint.
	Info struct {
		ChainID       string // EIP-155 chain id, decimal
		NetVersion    string // Network id as reported by net_version
		ClientVersion string // Node software identifier
	}

	// GasPrice is the node's suggested gas price in common denominations.
	GasPrice struct {
		Wei  string // Suggested price in wei, decimal
		Gwei string // Suggested price in gwei, exact decimal rendering
	}

	// SyncStatus reports synchronization progress with decimal heights.
	SyncStatus struct {
		Syncing      bool   // Whether the node is still catching up
		CurrentBlock string // Height the node has processed, decimal
		HighestBlock string // Known chain head height, decimal
	}
)

// Node is the narrow node surface network actions need.
type Node interface {
	// ChainID returns the EIP-155 chain id.
	ChainID(ctx context.Context) (types.Hex, error)

	// NetVersion returns the network id as a decimal string.
	NetVersion(ctx context.Context) (string, error)

	// ClientVersion returns the node software identifier.
	ClientVersion(ctx context.Context) (string, error)

	// GasPrice returns the suggested gas price as a hex wei quantity.
	GasPrice(ctx context.Context) (types.Hex, error)

	// Syncing reports the node's synchronization progress.
	Syncing(ctx context.Context) (ethereum.SyncStatus, error)
}

// Service exposes the network actions.
type Service interface {
	// Info returns the chain identity and node software version.
	Info(ctx context.Context) (Info, error)

	// SuggestedGasPrice returns the node's gas price suggestion in wei and
	// gwei.
	SuggestedGasPrice(ctx context.Context) (GasPrice, error)

	// SyncStatus reports whether the node is caught up with the chain.
	SyncStatus(ctx context.Context) (SyncStatus, error)
}

// service is the concrete Service implementation.
type service struct {
	node Node
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// NewService creates a network service over the given node adapter.
func NewService(node Node) *service {
	return &service{
		node: node,
	}
}

// Info implements the Service interface.
func (s *service) Info(ctx context.Context) (Info, error) {
	chainID, err := s.node.ChainID(ctx)
	if err != nil {
		return Info{}, err
	}

	netVersion, err := s.node.NetVersion(ctx)
	if err != nil {
		return Info{}, err
	}

	clientVersion, err := s.node.ClientVersion(ctx)
	if err != nil {
		return Info{}, err
	}

	return Info{
		ChainID:       chainID.Big().String(),
		NetVersion:    netVersion,
		ClientVersion: clientVersion,
	}, nil
}

// SuggestedGasPrice implements the Service interface.
func (s *service) SuggestedGasPrice(ctx context.Context) (GasPrice, error) {
	price, err := s.node.GasPrice(ctx)
	if err != nil {
		return GasPrice{}, err
	}

	wei := price.Big().String()
	gwei, err := evm.WeiToHuman(wei, evm.GweiDecimals)
	if err != nil {
		return GasPrice{}, err
	}

	return GasPrice{Wei: wei, Gwei: gwei}, nil
}

// SyncStatus implements the Service interface.
func (s *service) SyncStatus(ctx context.Context) (SyncStatus, error) {
	status, err := s.node.Syncing(ctx)
	if err != nil {
		return SyncStatus{}, err
	}
	if !status.Syncing {
		return SyncStatus{Syncing: false}, nil
	}

	return SyncStatus{
		Syncing:      true,
		CurrentBlock: status.CurrentBlock.Big().String(),
		HighestBlock: status.HighestBlock.Big().String(),
	}, nil
}
