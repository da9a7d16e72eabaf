// Package defi exposes the DEX-pair actions: reserve inspection for
// Uniswap-V2-style pairs and exact-integer output quoting from those
// reserves. No price oracles are involved; quotes are pure arithmetic over
// on-chain reserves.
package defi

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/pkg/evm"
	"github.com/gabapcia/chainflow/internal/pkg/validation"
)

// getReservesSelector identifies getReserves() on V2-style pair contracts.
const getReservesSelector = "0x0902f1ac"

type (
	// Reserves is the state of a pair at its last update.
	Reserves struct {
		Reserve0  string // Reserve of token0 in smallest units, decimal
		Reserve1  string // Reserve of token1 in smallest units, decimal
		UpdatedAt string // Unix timestamp of the last reserve sync, decimal
	}

	// QuoteInput describes one quote computation. Reserve amounts are
	// smallest-unit decimal strings as returned by Reserves.
	QuoteInput struct {
		AmountIn    string `validate:"required"` // Input amount at DecimalsIn
		ReserveIn   string `validate:"required"` // Reserve of the input token
		ReserveOut  string `validate:"required"` // Reserve of the output token
		DecimalsIn  uint   // Fractional digits of the input token
		DecimalsOut uint   // Fractional digits of the output token
	}
)

// Node is the narrow node surface DeFi actions need.
type Node interface {
	// Call executes a read-only contract call at the chain head and
	// returns the raw hex return data.
	Call(ctx context.Context, msg ethereum.CallMsg) (string, error)
}

// Service exposes the DeFi actions.
type Service interface {
	// Reserves fetches the current reserves of a V2-style pair contract.
	Reserves(ctx context.Context, pair string) (Reserves, error)

	// Quote computes the proportional output amount for the given input
	// against a pair's reserves (amountIn * reserveOut / reserveIn) with
	// exact integer arithmetic, truncating any sub-unit remainder.
	Quote(input QuoteInput) (string, error)
}

// service is the concrete Service implementation.
type service struct {
	node Node
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// NewService creates a DeFi service over the given node adapter.
func NewService(node Node) *service {
	return &service{
		node: node,
	}
}

// Reserves implements the Service interface.
func (s *service) Reserves(ctx context.Context, pair string) (Reserves, error) {
	if !evm.IsValidAddress(pair) {
		return Reserves{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, pair)
	}

	data, err := evm.EncodeCall(getReservesSelector, nil)
	if err != nil {
		return Reserves{}, err
	}

	result, err := s.node.Call(ctx, ethereum.CallMsg{To: pair, Data: data})
	if err != nil {
		return Reserves{}, err
	}

	values, err := evm.DecodeWords(result, []string{"uint112", "uint112", "uint32"})
	if err != nil {
		return Reserves{}, err
	}
	if len(values) < 3 {
		return Reserves{}, fmt.Errorf("%w: getReserves returned %d words, want 3", evm.ErrInvalidEncoding, len(values))
	}

	return Reserves{
		Reserve0:  values[0],
		Reserve1:  values[1],
		UpdatedAt: values[2],
	}, nil
}

// Quote implements the Service interface.
func (s *service) Quote(input QuoteInput) (string, error) {
	if err := validation.Validate(input); err != nil {
		return "", err
	}

	amountIn, err := evm.HumanToWei(input.AmountIn, input.DecimalsIn)
	if err != nil {
		return "", err
	}

	in, ok := new(big.Int).SetString(amountIn, 10)
	if !ok {
		return "", fmt.Errorf("%w: %q", evm.ErrInvalidEncoding, input.AmountIn)
	}
	reserveIn, ok := new(big.Int).SetString(input.ReserveIn, 10)
	if !ok || reserveIn.Sign() == 0 {
		return "", fmt.Errorf("%w: reserve %q", evm.ErrInvalidEncoding, input.ReserveIn)
	}
	reserveOut, ok := new(big.Int).SetString(input.ReserveOut, 10)
	if !ok {
		return "", fmt.Errorf("%w: reserve %q", evm.ErrInvalidEncoding, input.ReserveOut)
	}

	out := new(big.Int).Mul(in, reserveOut)
	out.Quo(out, reserveIn)

	return evm.WeiToHuman(out.String(), input.DecimalsOut)
}
