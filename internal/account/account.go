// Package account exposes the account-centric actions: native-coin balance,
// nonce, and explorer-backed transaction history, normalized from raw wire
// values into human-readable records.
package account

import (
	"context"
	"fmt"

	"github.com/gabapcia/chainflow/internal/infra/explorer"
	"github.com/gabapcia/chainflow/internal/pkg/evm"
	"github.com/gabapcia/chainflow/internal/pkg/types"
)

type (
	// Balance is an account's native-coin balance in both raw and
	// human-readable form.
	Balance struct {
		Wei   string // Balance in wei, as a decimal string
		Human string // Balance in native-coin units, exact decimal rendering
	}

	// HistoryItem is one normalized row of an account's transaction history.
	HistoryItem struct {
		Hash        string // Transaction hash
		BlockNumber string // Block height, decimal
		Timestamp   string // Unix timestamp, decimal
		From        string // Sender address
		To          string // Recipient address
		Value       string // Transferred amount in native-coin units
		Fee         string // Paid fee in native-coin units
		Success     bool   // Whether the transaction executed without error
	}
)

// Node is the narrow node surface account queries need.
type Node interface {
	// Balance returns the native-coin balance of an address at the chain
	// head, as a hex wei quantity.
	Balance(ctx context.Context, address string) (types.Hex, error)

	// TransactionCount returns the nonce of an address at the chain head.
	TransactionCount(ctx context.Context, address string) (types.Hex, error)
}

// Explorer is the narrow explorer surface account queries need.
type Explorer interface {
	// NormalTransactions lists an address's transactions, newest first. An
	// address with no history yields an empty slice.
	NormalTransactions(ctx context.Context, address string, query explorer.HistoryQuery) ([]explorer.TransactionEntry, error)
}

// Service exposes the account actions.
type Service interface {
	// NativeBalance returns the native-coin balance of the given address.
	NativeBalance(ctx context.Context, address string) (Balance, error)

	// Nonce returns the transaction count of the given address as a
	// decimal string.
	Nonce(ctx context.Context, address string) (string, error)

	// History lists the address's transactions via the block explorer,
	// normalized into human-readable records.
	History(ctx context.Context, address string, query explorer.HistoryQuery) ([]HistoryItem, error)
}

// service is the concrete Service implementation.
type service struct {
	node     Node
	explorer Explorer
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// NewService creates an account service over the given node and explorer
// adapters.
func NewService(node Node, explorer Explorer) *service {
	return &service{
		node:     node,
		explorer: explorer,
	}
}

// NativeBalance implements the Service interface.
func (s *service) NativeBalance(ctx context.Context, address string) (Balance, error) {
	if !evm.IsValidAddress(address) {
		return Balance{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, address)
	}

	raw, err := s.node.Balance(ctx, address)
	if err != nil {
		return Balance{}, err
	}

	wei, err := evm.HexToDecimal(string(raw))
	if err != nil {
		return Balance{}, err
	}

	human, err := evm.WeiToHuman(wei, evm.NativeDecimals)
	if err != nil {
		return Balance{}, err
	}

	return Balance{Wei: wei, Human: human}, nil
}

// Nonce implements the Service interface.
func (s *service) Nonce(ctx context.Context, address string) (string, error) {
	if !evm.IsValidAddress(address) {
		return "", fmt.Errorf("%w: %q", evm.ErrInvalidAddress, address)
	}

	raw, err := s.node.TransactionCount(ctx, address)
	if err != nil {
		return "", err
	}

	return evm.HexToDecimal(string(raw))
}

// History implements the Service interface.
func (s *service) History(ctx context.Context, address string, query explorer.HistoryQuery) ([]HistoryItem, error) {
	if !evm.IsValidAddress(address) {
		return nil, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, address)
	}

	entries, err := s.explorer.NormalTransactions(ctx, address, query)
	if err != nil {
		return nil, err
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, entry := range entries {
		item, err := normalizeEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", entry.Hash, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// normalizeEntry converts one explorer history row to its human-readable
// form. Explorer amounts arrive as decimal wei strings, so the fee is
// computed from gasUsed x gasPrice after converting both back to hex
// quantities.
func normalizeEntry(entry explorer.TransactionEntry) (HistoryItem, error) {
	value, err := evm.WeiToHuman(entry.Value, evm.NativeDecimals)
	if err != nil {
		return HistoryItem{}, err
	}

	gasUsed, err := evm.DecimalToHex(entry.GasUsed)
	if err != nil {
		return HistoryItem{}, err
	}
	gasPrice, err := evm.DecimalToHex(entry.GasPrice)
	if err != nil {
		return HistoryItem{}, err
	}
	fee, err := evm.TransactionFee(gasUsed, gasPrice)
	if err != nil {
		return HistoryItem{}, err
	}

	return HistoryItem{
		Hash:        entry.Hash,
		BlockNumber: entry.BlockNumber,
		Timestamp:   entry.TimeStamp,
		From:        entry.From,
		To:          entry.To,
		Value:       value,
		Fee:         fee,
		Success:     entry.IsError == "0",
	}, nil
}
