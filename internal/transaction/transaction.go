// Package transaction exposes the transaction actions: lookup by hash,
// receipt with execution status and exact fee, and broadcast of pre-signed
// transaction blobs.
package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/pkg/evm"
)

type (
	// Transaction is a normalized view of a transaction fetched by hash.
	Transaction struct {
		Hash        string // Transaction hash
		BlockHash   string // Hash of the containing block, empty while pending
		BlockNumber string // Height of the containing block, decimal, empty while pending
		From        string // Sender address
		To          string // Recipient address, empty for contract creation
		Value       string // Transferred amount in native-coin units
		GasPrice    string // Gas price in gwei
		Nonce       string // Sender nonce, decimal
		Input       string // Raw call data, hex
	}

	// Receipt is a normalized view of a mined transaction's outcome. Fee
	// is the exact product of gasUsed and the effective gas price,
	// rendered in native-coin units.
	Receipt struct {
		TransactionHash string // Transaction hash
		BlockNumber     string // Height of the containing block, decimal
		From            string // Sender address
		To              string // Recipient address
		ContractAddress string // Deployed contract address, empty unless a creation
		GasUsed         string // Gas consumed, decimal
		Fee             string // Paid fee in native-coin units
		Success         bool   // Whether execution succeeded
		Logs            int    // Number of logs the transaction emitted
	}
)

// Node is the narrow node surface transaction actions need.
type Node interface {
	// TransactionByHash retrieves a transaction by its hash.
	TransactionByHash(ctx context.Context, hash string) (ethereum.Transaction, error)

	// TransactionReceipt retrieves the receipt of a mined transaction.
	TransactionReceipt(ctx context.Context, hash string) (ethereum.Receipt, error)

	// SendRawTransaction broadcasts a pre-signed transaction blob and
	// returns its hash.
	SendRawTransaction(ctx context.Context, signedTx string) (string, error)
}

// Service exposes the transaction actions.
type Service interface {
	// Get retrieves and normalizes a transaction by its hash.
	Get(ctx context.Context, hash string) (Transaction, error)

	// GetReceipt retrieves and normalizes the receipt of a mined
	// transaction, including its exact fee.
	GetReceipt(ctx context.Context, hash string) (Receipt, error)

	// Broadcast submits a pre-signed transaction blob to the network and
	// returns the resulting hash. Signing never happens here.
	Broadcast(ctx context.Context, signedTx string) (string, error)
}

// service is the concrete Service implementation.
type service struct {
	node Node
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// NewService creates a transaction service over the given node adapter.
func NewService(node Node) *service {
	return &service{
		node: node,
	}
}

// Get implements the Service interface.
func (s *service) Get(ctx context.Context, hash string) (Transaction, error) {
	if !evm.IsValidTxHash(hash) {
		return Transaction{}, fmt.Errorf("%w: %q", evm.ErrInvalidHash, hash)
	}

	tx, err := s.node.TransactionByHash(ctx, hash)
	if err != nil {
		return Transaction{}, err
	}

	value, err := evm.WeiToHuman(tx.Value.Big().String(), evm.NativeDecimals)
	if err != nil {
		return Transaction{}, err
	}

	gasPrice, err := evm.WeiToHuman(tx.GasPrice.Big().String(), evm.GweiDecimals)
	if err != nil {
		return Transaction{}, err
	}

	nonce, err := evm.HexToDecimal(tx.Nonce)
	if err != nil {
		return Transaction{}, err
	}

	// Pending transactions carry no block fields; keep them empty instead
	// of rendering a misleading zero height.
	var blockNumber string
	if tx.BlockNumber != "" {
		blockNumber = tx.BlockNumber.Big().String()
	}

	return Transaction{
		Hash:        tx.Hash,
		BlockHash:   tx.BlockHash,
		BlockNumber: blockNumber,
		From:        tx.From,
		To:          tx.To,
		Value:       value,
		GasPrice:    gasPrice,
		Nonce:       nonce,
		Input:       tx.Input,
	}, nil
}

// GetReceipt implements the Service interface.
func (s *service) GetReceipt(ctx context.Context, hash string) (Receipt, error) {
	if !evm.IsValidTxHash(hash) {
		return Receipt{}, fmt.Errorf("%w: %q", evm.ErrInvalidHash, hash)
	}

	receipt, err := s.node.TransactionReceipt(ctx, hash)
	if err != nil {
		return Receipt{}, err
	}

	fee, err := evm.TransactionFee(string(receipt.GasUsed), string(receipt.EffectiveGasPrice))
	if err != nil {
		return Receipt{}, err
	}

	return Receipt{
		TransactionHash: receipt.TransactionHash,
		BlockNumber:     receipt.BlockNumber.Big().String(),
		From:            receipt.From,
		To:              receipt.To,
		ContractAddress: receipt.ContractAddress,
		GasUsed:         receipt.GasUsed.Big().String(),
		Fee:             fee,
		Success:         receipt.Status.Int() == 1,
		Logs:            len(receipt.Logs),
	}, nil
}

// Broadcast implements the Service interface.
func (s *service) Broadcast(ctx context.Context, signedTx string) (string, error) {
	if !isSignedBlob(signedTx) {
		return "", fmt.Errorf("%w: signed transaction must be a 0x-prefixed hex blob", evm.ErrInvalidEncoding)
	}

	return s.node.SendRawTransaction(ctx, signedTx)
}

// isSignedBlob checks that the blob looks like 0x-prefixed hex. Whether it
// is a well-formed signed transaction is the node's call.
func isSignedBlob(s string) bool {
	if !strings.HasPrefix(s, "0x") || len(s) <= 2 {
		return false
	}
	_, err := evm.HexToDecimal(s)
	return err == nil
}
