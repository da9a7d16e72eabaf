// Package nft exposes the ERC-721 actions: ownership and balance lookups,
// token-URI metadata resolution, and explorer-backed transfer history.
package nft

import (
	"context"
	"fmt"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/infra/explorer"
	"github.com/gabapcia/chainflow/internal/pkg/evm"
)

// ERC-721 function selectors.
const (
	ownerOfSelector   = "0x6352211e" // ownerOf(uint256)
	balanceOfSelector = "0x70a08231" // balanceOf(address)
	tokenURISelector  = "0xc87b56dd" // tokenURI(uint256)
)

// Transfer is one normalized row of an NFT transfer history.
type Transfer struct {
	Hash        string // Transaction hash
	BlockNumber string // Block height, decimal
	Timestamp   string // Unix timestamp, decimal
	From        string // Sender address
	To          string // Recipient address
	Collection  string // Collection contract address
	TokenID     string // Transferred token id, decimal
	TokenName   string // Collection name as reported by the explorer
}

// Node is the narrow node surface NFT actions need.
type Node interface {
	// Call executes a read-only contract call at the chain head and
	// returns the raw hex return data.
	Call(ctx context.Context, msg ethereum.CallMsg) (string, error)
}

// Explorer is the narrow explorer surface NFT actions need.
type Explorer interface {
	// NFTTransfers lists an address's ERC-721 transfer history, optionally
	// restricted to a single collection contract.
	NFTTransfers(ctx context.Context, address, contractAddress string, query explorer.HistoryQuery) ([]explorer.TokenTransferEntry, error)
}

// Service exposes the ERC-721 actions.
type Service interface {
	// OwnerOf returns the current owner of a token.
	OwnerOf(ctx context.Context, collection, tokenID string) (string, error)

	// BalanceOf returns how many tokens of the collection the owner holds,
	// as a decimal string.
	BalanceOf(ctx context.Context, collection, owner string) (string, error)

	// TokenURI resolves the metadata URI of a token.
	TokenURI(ctx context.Context, collection, tokenID string) (string, error)

	// Transfers lists the address's NFT transfer history, optionally
	// restricted to one collection.
	Transfers(ctx context.Context, address, collection string, query explorer.HistoryQuery) ([]Transfer, error)
}

// service is the concrete Service implementation.
type service struct {
	node     Node
	explorer Explorer
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// NewService creates an NFT service over the given node and explorer
// adapters.
func NewService(node Node, explorer Explorer) *service {
	return &service{
		node:     node,
		explorer: explorer,
	}
}

// OwnerOf implements the Service interface.
func (s *service) OwnerOf(ctx context.Context, collection, tokenID string) (string, error) {
	if !evm.IsValidAddress(collection) {
		return "", fmt.Errorf("%w: %q", evm.ErrInvalidAddress, collection)
	}

	result, err := s.call(ctx, collection, ownerOfSelector, evm.Param{Type: "uint256", Value: tokenID})
	if err != nil {
		return "", err
	}

	values, err := evm.DecodeWords(result, []string{"address"})
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "", fmt.Errorf("%w: empty ownerOf return", evm.ErrInvalidEncoding)
	}
	return values[0], nil
}

// BalanceOf implements the Service interface.
func (s *service) BalanceOf(ctx context.Context, collection, owner string) (string, error) {
	if !evm.IsValidAddress(collection) {
		return "", fmt.Errorf("%w: %q", evm.ErrInvalidAddress, collection)
	}
	if !evm.IsValidAddress(owner) {
		return "", fmt.Errorf("%w: %q", evm.ErrInvalidAddress, owner)
	}

	result, err := s.call(ctx, collection, balanceOfSelector, evm.Param{Type: "address", Value: owner})
	if err != nil {
		return "", err
	}

	values, err := evm.DecodeWords(result, []string{"uint256"})
	if err != nil {
		return "", err
	}
	if len(values) == 0 {
		return "0", nil
	}
	return values[0], nil
}

// TokenURI implements the Service interface.
func (s *service) TokenURI(ctx context.Context, collection, tokenID string) (string, error) {
	if !evm.IsValidAddress(collection) {
		return "", fmt.Errorf("%w: %q", evm.ErrInvalidAddress, collection)
	}

	result, err := s.call(ctx, collection, tokenURISelector, evm.Param{Type: "uint256", Value: tokenID})
	if err != nil {
		return "", err
	}

	return evm.DecodeSingleDynamicString(result)
}

// Transfers implements the Service interface.
func (s *service) Transfers(ctx context.Context, address, collection string, query explorer.HistoryQuery) ([]Transfer, error) {
	if !evm.IsValidAddress(address) {
		return nil, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, address)
	}
	if collection != "" && !evm.IsValidAddress(collection) {
		return nil, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, collection)
	}

	entries, err := s.explorer.NFTTransfers(ctx, address, collection, query)
	if err != nil {
		return nil, err
	}

	transfers := make([]Transfer, 0, len(entries))
	for _, entry := range entries {
		transfers = append(transfers, Transfer{
			Hash:        entry.Hash,
			BlockNumber: entry.BlockNumber,
			Timestamp:   entry.TimeStamp,
			From:        entry.From,
			To:          entry.To,
			Collection:  entry.ContractAddress,
			TokenID:     entry.TokenID,
			TokenName:   entry.TokenName,
		})
	}

	return transfers, nil
}

// call encodes and executes one read-only call against the collection.
func (s *service) call(ctx context.Context, collection, selector string, params ...evm.Param) (string, error) {
	data, err := evm.EncodeCall(selector, params)
	if err != nil {
		return "", err
	}

	return s.node.Call(ctx, ethereum.CallMsg{To: collection, Data: data})
}
