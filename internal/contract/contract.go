// Package contract exposes the generic smart-contract actions: arbitrary
// read-only calls built from typed parameters, bytecode existence checks,
// and verified-ABI lookup through the block explorer.
package contract

import (
	"context"
	"fmt"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/pkg/evm"
	"github.com/gabapcia/chainflow/internal/pkg/validation"
)

// ReadInput describes one read-only contract call. Selector is the 4-byte
// function selector; Params are the typed arguments, encoded in order;
// ReturnTypes declares how to decode the returned words (missing entries
// decode as uint256).
type ReadInput struct {
	Contract    string `validate:"required"`
	Selector    string `validate:"required"`
	Params      []evm.Param
	ReturnTypes []string
}

// Node is the narrow node surface contract actions need.
type Node interface {
	// Call executes a read-only contract call at the chain head and
	// returns the raw hex return data.
	Call(ctx context.Context, msg ethereum.CallMsg) (string, error)

	// Code returns the deployed bytecode at an address. An externally
	// owned account yields "0x".
	Code(ctx context.Context, address string) (string, error)
}

// Explorer is the narrow explorer surface contract actions need.
type Explorer interface {
	// ContractABI fetches the verified ABI of a contract as raw JSON text.
	ContractABI(ctx context.Context, address string) (string, error)
}

// Service exposes the contract actions.
type Service interface {
	// Read encodes the call described by input, executes it read-only, and
	// decodes the returned words against the declared return types.
	Read(ctx context.Context, input ReadInput) ([]string, error)

	// IsContract reports whether the address has deployed bytecode.
	IsContract(ctx context.Context, address string) (bool, error)

	// ABI fetches the verified ABI of a contract from the block explorer.
	ABI(ctx context.Context, address string) (string, error)
}

// service is the concrete Service implementation.
type service struct {
	node     Node
	explorer Explorer
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// NewService creates a contract service over the given node and explorer
// adapters.
func NewService(node Node, explorer Explorer) *service {
	return &service{
		node:     node,
		explorer: explorer,
	}
}

// Read implements the Service interface.
func (s *service) Read(ctx context.Context, input ReadInput) ([]string, error) {
	if err := validation.Validate(input); err != nil {
		return nil, err
	}
	if !evm.IsValidAddress(input.Contract) {
		return nil, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, input.Contract)
	}

	data, err := evm.EncodeCall(input.Selector, input.Params)
	if err != nil {
		return nil, err
	}

	result, err := s.node.Call(ctx, ethereum.CallMsg{To: input.Contract, Data: data})
	if err != nil {
		return nil, err
	}

	return evm.DecodeWords(result, input.ReturnTypes)
}

// IsContract implements the Service interface.
func (s *service) IsContract(ctx context.Context, address string) (bool, error) {
	if !evm.IsValidAddress(address) {
		return false, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, address)
	}

	code, err := s.node.Code(ctx, address)
	if err != nil {
		return false, err
	}

	return code != "" && code != "0x", nil
}

// ABI implements the Service interface.
func (s *service) ABI(ctx context.Context, address string) (string, error) {
	if !evm.IsValidAddress(address) {
		return "", fmt.Errorf("%w: %q", evm.ErrInvalidAddress, address)
	}

	return s.explorer.ContractABI(ctx, address)
}
