// Package token exposes the ERC-20 actions: metadata lookup, balances and
// supply normalized by the token's own decimals, allowance inspection, and
// unsigned transfer call-data building.
package token

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/infra/explorer"
	"github.com/gabapcia/chainflow/internal/pkg/evm"
)

// ERC-20 function selectors.
const (
	nameSelector        = "0x06fdde03" // name()
	symbolSelector      = "0x95d89b41" // symbol()
	decimalsSelector    = "0x313ce567" // decimals()
	totalSupplySelector = "0x18160ddd" // totalSupply()
	balanceOfSelector   = "0x70a08231" // balanceOf(address)
	allowanceSelector   = "0xdd62ed3e" // allowance(address,address)
	transferSelector    = "0xa9059cbb" // transfer(address,uint256)
)

type (
	// Metadata is a token's self-reported identity.
	Metadata struct {
		Name     string // Token name, decoded from the dynamic string return
		Symbol   string // Token symbol, decoded from the dynamic string return
		Decimals uint   // Fractional digits the token uses
	}

	// Amount is a token quantity in both raw and human-readable form.
	Amount struct {
		Raw   string // Smallest-unit amount, decimal string
		Human string // Amount at the token's decimals, exact decimal rendering
	}

	// Transfer is one normalized row of a token-transfer history.
	Transfer struct {
		Hash        string // Transaction hash
		BlockNumber string // Block height, decimal
		Timestamp   string // Unix timestamp, decimal
		From        string // Sender address
		To          string // Recipient address
		Token       string // Token contract address
		Symbol      string // Token symbol as reported by the explorer
		Value       string // Transferred amount at the token's decimals
	}
)

// Node is the narrow node surface token actions need.
type Node interface {
	// Call executes a read-only contract call at the chain head and
	// returns the raw hex return data.
	Call(ctx context.Context, msg ethereum.CallMsg) (string, error)
}

// Explorer is the narrow explorer surface token actions need.
type Explorer interface {
	// TokenTransfers lists an address's ERC-20 transfer history,
	// optionally restricted to a single token contract.
	TokenTransfers(ctx context.Context, address, contractAddress string, query explorer.HistoryQuery) ([]explorer.TokenTransferEntry, error)
}

// Service exposes the ERC-20 actions.
type Service interface {
	// Metadata fetches the token's name, symbol and decimals.
	Metadata(ctx context.Context, token string) (Metadata, error)

	// BalanceOf returns the holder's balance, normalized by the token's
	// decimals.
	BalanceOf(ctx context.Context, token, holder string) (Amount, error)

	// TotalSupply returns the token's total supply, normalized by its
	// decimals.
	TotalSupply(ctx context.Context, token string) (Amount, error)

	// Allowance returns how much spender may move on owner's behalf,
	// normalized by the token's decimals.
	Allowance(ctx context.Context, token, owner, spender string) (Amount, error)

	// TransferCallData builds the unsigned call data for
	// transfer(to, amount) at the given decimals. No signing happens here;
	// the caller feeds the data into its own signing flow.
	TransferCallData(to, amount string, decimals uint) (string, error)

	// Transfers lists the address's ERC-20 transfer history, optionally
	// restricted to one token contract.
	Transfers(ctx context.Context, address, token string, query explorer.HistoryQuery) ([]Transfer, error)
}

// service is the concrete Service implementation.
type service struct {
	node     Node
	explorer Explorer
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// NewService creates a token service over the given node and explorer
// adapters.
func NewService(node Node, explorer Explorer) *service {
	return &service{
		node:     node,
		explorer: explorer,
	}
}

// Metadata implements the Service interface.
func (s *service) Metadata(ctx context.Context, token string) (Metadata, error) {
	if !evm.IsValidAddress(token) {
		return Metadata{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, token)
	}

	name, err := s.callString(ctx, token, nameSelector)
	if err != nil {
		return Metadata{}, fmt.Errorf("name: %w", err)
	}

	symbol, err := s.callString(ctx, token, symbolSelector)
	if err != nil {
		return Metadata{}, fmt.Errorf("symbol: %w", err)
	}

	decimals, err := s.decimals(ctx, token)
	if err != nil {
		return Metadata{}, fmt.Errorf("decimals: %w", err)
	}

	return Metadata{Name: name, Symbol: symbol, Decimals: decimals}, nil
}

// BalanceOf implements the Service interface.
func (s *service) BalanceOf(ctx context.Context, token, holder string) (Amount, error) {
	if !evm.IsValidAddress(token) {
		return Amount{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, token)
	}
	if !evm.IsValidAddress(holder) {
		return Amount{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, holder)
	}

	raw, err := s.callUint(ctx, token, balanceOfSelector, evm.Param{Type: "address", Value: holder})
	if err != nil {
		return Amount{}, err
	}

	return s.normalizeAmount(ctx, token, raw)
}

// TotalSupply implements the Service interface.
func (s *service) TotalSupply(ctx context.Context, token string) (Amount, error) {
	if !evm.IsValidAddress(token) {
		return Amount{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, token)
	}

	raw, err := s.callUint(ctx, token, totalSupplySelector)
	if err != nil {
		return Amount{}, err
	}

	return s.normalizeAmount(ctx, token, raw)
}

// Allowance implements the Service interface.
func (s *service) Allowance(ctx context.Context, token, owner, spender string) (Amount, error) {
	if !evm.IsValidAddress(token) {
		return Amount{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, token)
	}
	if !evm.IsValidAddress(owner) {
		return Amount{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, owner)
	}
	if !evm.IsValidAddress(spender) {
		return Amount{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, spender)
	}

	raw, err := s.callUint(ctx, token, allowanceSelector,
		evm.Param{Type: "address", Value: owner},
		evm.Param{Type: "address", Value: spender},
	)
	if err != nil {
		return Amount{}, err
	}

	return s.normalizeAmount(ctx, token, raw)
}

// TransferCallData implements the Service interface.
func (s *service) TransferCallData(to, amount string, decimals uint) (string, error) {
	if !evm.IsValidAddress(to) {
		return "", fmt.Errorf("%w: %q", evm.ErrInvalidAddress, to)
	}

	raw, err := evm.HumanToWei(amount, decimals)
	if err != nil {
		return "", err
	}

	return evm.EncodeCall(transferSelector, []evm.Param{
		{Type: "address", Value: to},
		{Type: "uint256", Value: raw},
	})
}

// Transfers implements the Service interface.
func (s *service) Transfers(ctx context.Context, address, token string, query explorer.HistoryQuery) ([]Transfer, error) {
	if !evm.IsValidAddress(address) {
		return nil, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, address)
	}
	if token != "" && !evm.IsValidAddress(token) {
		return nil, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, token)
	}

	entries, err := s.explorer.TokenTransfers(ctx, address, token, query)
	if err != nil {
		return nil, err
	}

	transfers := make([]Transfer, 0, len(entries))
	for _, entry := range entries {
		transfer, err := normalizeTransfer(entry)
		if err != nil {
			return nil, fmt.Errorf("transfer %s: %w", entry.Hash, err)
		}
		transfers = append(transfers, transfer)
	}

	return transfers, nil
}

// callString performs a zero-argument call returning a single dynamic
// string (name/symbol).
func (s *service) callString(ctx context.Context, token, selector string) (string, error) {
	data, err := evm.EncodeCall(selector, nil)
	if err != nil {
		return "", err
	}

	result, err := s.node.Call(ctx, ethereum.CallMsg{To: token, Data: data})
	if err != nil {
		return "", err
	}

	return evm.DecodeSingleDynamicString(result)
}

// callUint performs a call returning a single unsigned integer word and
// renders it as a decimal string.
func (s *service) callUint(ctx context.Context, token, selector string, params ...evm.Param) (string, error) {
	data, err := evm.EncodeCall(selector, params)
	if err != nil {
		return "", err
	}

	result, err := s.node.Call(ctx, ethereum.CallMsg{To: token, Data: data})
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

// decimals fetches and parses the token's decimal count.
func (s *service) decimals(ctx context.Context, token string) (uint, error) {
	value, err := s.callUint(ctx, token, decimalsSelector)
	if err != nil {
		return 0, err
	}

	decimals, err := strconv.ParseUint(value, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: decimals %q", evm.ErrInvalidEncoding, value)
	}
	return uint(decimals), nil
}

// normalizeAmount renders a raw smallest-unit amount at the token's own
// decimals.
func (s *service) normalizeAmount(ctx context.Context, token, raw string) (Amount, error) {
	decimals, err := s.decimals(ctx, token)
	if err != nil {
		return Amount{}, fmt.Errorf("decimals: %w", err)
	}

	human, err := evm.WeiToHuman(raw, decimals)
	if err != nil {
		return Amount{}, err
	}

	return Amount{Raw: raw, Human: human}, nil
}

// normalizeTransfer converts one explorer transfer row to its
// human-readable form using the row's own decimal count.
func normalizeTransfer(entry explorer.TokenTransferEntry) (Transfer, error) {
	decimals, err := strconv.ParseUint(entry.TokenDecimal, 10, 8)
	if err != nil {
		return Transfer{}, fmt.Errorf("%w: token decimal %q", evm.ErrInvalidEncoding, entry.TokenDecimal)
	}

	value, err := evm.WeiToHuman(entry.Value, uint(decimals))
	if err != nil {
		return Transfer{}, err
	}

	return Transfer{
		Hash:        entry.Hash,
		BlockNumber: entry.BlockNumber,
		Timestamp:   entry.TimeStamp,
		From:        entry.From,
		To:          entry.To,
		Token:       entry.ContractAddress,
		Symbol:      entry.TokenSymbol,
		Value:       value,
	}, nil
}
