// Package block exposes the block actions: latest height and block lookup
// with numeric fields normalized from hex quantities into decimal strings.
package block

import (
	"context"
	"fmt"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/pkg/evm"
	"github.com/gabapcia/chainflow/internal/pkg/types"
)

// latestTag selects the chain head in block lookups.
const latestTag = "latest"

type (
	// TransactionSummary is one transaction inside a block, with its
	// amount rendered in native-coin units.
	TransactionSummary struct {
		Hash  string // Transaction hash
		From  string // Sender address
		To    string // Recipient address
		Value string // Transferred amount in native-coin units
	}

	// Block is a normalized block record.
	Block struct {
		Hash             string               // Block hash
		ParentHash       string               // Parent block hash
		Number           string               // Height, decimal
		Miner            string               // Coinbase address
		Timestamp        string               // Unix timestamp, decimal
		GasLimit         string               // Gas limit, decimal
		GasUsed          string               // Gas consumed, decimal
		TransactionCount int                  // Number of included transactions
		Transactions     []TransactionSummary // Populated only when full transactions are requested
	}
)

// Node is the narrow node surface block queries need.
type Node interface {
	// BlockNumber returns the latest block number.
	BlockNumber(ctx context.Context) (types.Hex, error)

	// BlockByNumber retrieves a block by hex number or block tag. fullTx
	// controls whether transaction bodies are included.
	BlockByNumber(ctx context.Context, number string, fullTx bool) (ethereum.Block, error)
}

// Service exposes the block actions.
type Service interface {
	// LatestNumber returns the chain head height as a decimal string.
	LatestNumber(ctx context.Context) (string, error)

	// ByNumber retrieves a block by decimal height, normalized. fullTx
	// includes the per-transaction summaries.
	ByNumber(ctx context.Context, number string, fullTx bool) (Block, error)

	// Latest retrieves the block at the chain head, normalized.
	Latest(ctx context.Context, fullTx bool) (Block, error)
}

// service is the concrete Service implementation.
type service struct {
	node Node
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// NewService creates a block service over the given node adapter.
func NewService(node Node) *service {
	return &service{
		node: node,
	}
}

// LatestNumber implements the Service interface.
func (s *service) LatestNumber(ctx context.Context) (string, error) {
	number, err := s.node.BlockNumber(ctx)
	if err != nil {
		return "", err
	}

	return evm.HexToDecimal(string(number))
}

// ByNumber implements the Service interface.
func (s *service) ByNumber(ctx context.Context, number string, fullTx bool) (Block, error) {
	hexNumber, err := evm.DecimalToHex(number)
	if err != nil {
		return Block{}, fmt.Errorf("block number %q: %w", number, err)
	}

	return s.fetch(ctx, hexNumber, fullTx)
}

// Latest implements the Service interface.
func (s *service) Latest(ctx context.Context, fullTx bool) (Block, error) {
	return s.fetch(ctx, latestTag, fullTx)
}

func (s *service) fetch(ctx context.Context, numberOrTag string, fullTx bool) (Block, error) {
	raw, err := s.node.BlockByNumber(ctx, numberOrTag, fullTx)
	if err != nil {
		return Block{}, err
	}

	return normalizeBlock(raw)
}

// normalizeBlock renders every hex quantity of the raw block as a decimal
// string and converts transaction amounts to native-coin units.
func normalizeBlock(raw ethereum.Block) (Block, error) {
	block := Block{
		Hash:             raw.Hash,
		ParentHash:       raw.ParentHash,
		Number:           raw.Number.Big().String(),
		Miner:            raw.Miner,
		Timestamp:        raw.Timestamp.Big().String(),
		GasLimit:         raw.GasLimit.Big().String(),
		GasUsed:          raw.GasUsed.Big().String(),
		TransactionCount: raw.TransactionCount,
	}

	for _, tx := range raw.Transactions {
		value, err := evm.WeiToHuman(tx.Value.Big().String(), evm.NativeDecimals)
		if err != nil {
			return Block{}, fmt.Errorf("transaction %s: %w", tx.Hash, err)
		}

		block.Transactions = append(block.Transactions, TransactionSummary{
			Hash:  tx.Hash,
			From:  tx.From,
			To:    tx.To,
			Value: value,
		})
	}

	return block, nil
}
