package ethereum

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/chainflow/internal/pkg/types"
)

type (
	// Log represents an event log entry from eth_getLogs or a receipt.
	Log struct {
		Address          string    `json:"address"`
		Topics           []string  `json:"topics"`
		Data             string    `json:"data"`
		BlockNumber      types.Hex `json:"blockNumber"`
		TransactionHash  string    `json:"transactionHash"`
		TransactionIndex string    `json:"transactionIndex"`
		LogIndex         string    `json:"logIndex"`
		Removed          bool      `json:"removed"`
	}

	// Receipt represents the outcome of a mined transaction.
	Receipt struct {
		TransactionHash   string    `json:"transactionHash"`
		BlockHash         string    `json:"blockHash"`
		BlockNumber       types.Hex `json:"blockNumber"`
		From              string    `json:"from"`
		To                string    `json:"to"`
		ContractAddress   string    `json:"contractAddress"`
		GasUsed           types.Hex `json:"gasUsed"`
		EffectiveGasPrice types.Hex `json:"effectiveGasPrice"`
		Status            types.Hex `json:"status"`
		Logs              []Log     `json:"logs"`
	}

	// LogFilter is the eth_getLogs filter object. Block bounds are hex
	// numbers or block tags; Topics follows the JSON-RPC positional topic
	// matching rules (null entry matches anything).
	LogFilter struct {
		FromBlock string   `json:"fromBlock,omitempty"`
		ToBlock   string   `json:"toBlock,omitempty"`
		Address   string   `json:"address,omitempty"`
		Topics    []string `json:"topics,omitempty"`
	}
)

// TransactionReceipt retrieves the receipt of a mined transaction.
func (c *client) TransactionReceipt(ctx context.Context, hash string) (Receipt, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return Receipt{}, err
	}

	var receipt Receipt
	return receipt, json.Unmarshal(data, &receipt)
}

// Logs retrieves event logs matching the given filter.
func (c *client) Logs(ctx context.Context, filter LogFilter) ([]Log, error) {
	data, err := c.conn.Fetch(ctx, "eth_getLogs", filter)
	if err != nil {
		return nil, err
	}

	var logs []Log
	return logs, json.Unmarshal(data, &logs)
}
