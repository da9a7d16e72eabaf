// Package event exposes the log-query action: eth_getLogs with topic
// construction from event signatures and indexed addresses, and word-level
// decoding of log data against declared types.
package event

import (
	"context"
	"fmt"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/pkg/evm"
	"github.com/gabapcia/chainflow/internal/pkg/types"
	"github.com/gabapcia/chainflow/internal/pkg/validation"
)

type (
	// Query describes one log search. SignatureTopic is the keccak hash of
	// the event signature (topic 0), passed through as-is; IndexedAddress
	// optionally narrows topic 1 to events indexed by that address.
	// FromBlock/ToBlock are decimal heights; zero values mean the chain's
	// defaults. DataTypes declares how the unindexed data words decode
	// (missing entries decode as uint256).
	Query struct {
		Contract       string `validate:"required"`
		SignatureTopic string `validate:"required"`
		IndexedAddress string
		FromBlock      string
		ToBlock        string
		DataTypes      []string
	}

	// Log is one matched event with its data decoded word by word.
	Log struct {
		Address     string   // Emitting contract address
		Topics      []string // Raw indexed topics, topic 0 first
		Data        []string // Decoded unindexed values, in word order
		BlockNumber string   // Block height, decimal
		TxHash      string   // Transaction that emitted the log
		LogIndex    string   // Position of the log inside the block
	}
)

// Node is the narrow node surface event queries need.
type Node interface {
	// Logs retrieves event logs matching the given filter.
	Logs(ctx context.Context, filter ethereum.LogFilter) ([]ethereum.Log, error)
}

// Service exposes the event actions.
type Service interface {
	// Search fetches and decodes logs matching the query. Duplicate
	// deliveries of the same log are dropped.
	Search(ctx context.Context, query Query) ([]Log, error)
}

// service is the concrete Service implementation.
type service struct {
	node Node
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// NewService creates an event service over the given node adapter.
func NewService(node Node) *service {
	return &service{
		node: node,
	}
}

// Search implements the Service interface.
func (s *service) Search(ctx context.Context, query Query) ([]Log, error) {
	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	rawLogs, err := s.node.Logs(ctx, filter)
	if err != nil {
		return nil, err
	}

	var (
		logs = make([]Log, 0, len(rawLogs))
		seen = types.NewSet[string]()
	)
	for _, raw := range rawLogs {
		// Providers occasionally deliver the same log twice around reorg
		// boundaries; the (tx, index) pair identifies it uniquely.
		key := raw.TransactionHash + ":" + raw.LogIndex
		if raw.Removed || seen.Contains(key) {
			continue
		}
		seen.Add(key)

		log, err := normalizeLog(raw, query.DataTypes)
		if err != nil {
			return nil, fmt.Errorf("log %s: %w", key, err)
		}
		logs = append(logs, log)
	}

	return logs, nil
}

// buildFilter validates the query and shapes the eth_getLogs filter,
// including the positional topic list.
func buildFilter(query Query) (ethereum.LogFilter, error) {
	if err := validation.Validate(query); err != nil {
		return ethereum.LogFilter{}, err
	}
	if !evm.IsValidAddress(query.Contract) {
		return ethereum.LogFilter{}, fmt.Errorf("%w: %q", evm.ErrInvalidAddress, query.Contract)
	}
	if !evm.IsValidTxHash(query.SignatureTopic) {
		return ethereum.LogFilter{}, fmt.Errorf("%w: signature topic %q", evm.ErrInvalidHash, query.SignatureTopic)
	}

	filter := ethereum.LogFilter{
		Address: query.Contract,
		Topics:  []string{query.SignatureTopic},
	}

	if query.IndexedAddress != "" {
		topic, err := evm.AddressToTopic(query.IndexedAddress)
		if err != nil {
			return ethereum.LogFilter{}, err
		}
		filter.Topics = append(filter.Topics, topic)
	}

	if query.FromBlock != "" {
		from, err := evm.DecimalToHex(query.FromBlock)
		if err != nil {
			return ethereum.LogFilter{}, fmt.Errorf("from block %q: %w", query.FromBlock, err)
		}
		filter.FromBlock = from
	}
	if query.ToBlock != "" {
		to, err := evm.DecimalToHex(query.ToBlock)
		if err != nil {
			return ethereum.LogFilter{}, fmt.Errorf("to block %q: %w", query.ToBlock, err)
		}
		filter.ToBlock = to
	}

	return filter, nil
}

// normalizeLog decodes the log's data words against the declared types.
func normalizeLog(raw ethereum.Log, dataTypes []string) (Log, error) {
	data, err := evm.DecodeWords(raw.Data, dataTypes)
	if err != nil {
		return Log{}, err
	}

	return Log{
		Address:     raw.Address,
		Topics:      raw.Topics,
		Data:        data,
		BlockNumber: raw.BlockNumber.Big().String(),
		TxHash:      raw.TransactionHash,
		LogIndex:    raw.LogIndex,
	}, nil
}
