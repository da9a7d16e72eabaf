package ethereum

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/chainflow/internal/pkg/types"
)

type (
	// Transaction represents a raw transaction object returned by the
	// eth_getTransactionByHash and eth_getBlockByNumber calls.
	Transaction struct {
		Hash             string    `json:"hash"`
		BlockHash        string    `json:"blockHash"`
		BlockNumber      types.Hex `json:"blockNumber"`
		TransactionIndex string    `json:"transactionIndex"`
		From             string    `json:"from"`
		To               string    `json:"to"`
		Value            types.Hex `json:"value"`
		Gas              types.Hex `json:"gas"`
		GasPrice         types.Hex `json:"gasPrice"`
		Input            string    `json:"input"`
		Nonce            string    `json:"nonce"`
		Type             string    `json:"type"`
		ChainID          string    `json:"chainId"`
	}

	// Block represents the structure of a block returned by eth_getBlockByNumber.
	Block struct {
		Hash             string        `json:"hash"`
		ParentHash       string        `json:"parentHash"`
		Miner            string        `json:"miner"`
		Number           types.Hex     `json:"number"`
		GasLimit         types.Hex     `json:"gasLimit"`
		GasUsed          types.Hex     `json:"gasUsed"`
		BaseFeePerGas    types.Hex     `json:"baseFeePerGas"`
		Timestamp        types.Hex     `json:"timestamp"`
		Size             types.Hex     `json:"size"`
		ExtraData        string        `json:"extraData"`
		Transactions     []Transaction `json:"transactions"`
		TransactionCount int           `json:"-"`
	}
)

// BlockNumber fetches the latest block number from the node.
func (c *client) BlockNumber(ctx context.Context) (types.Hex, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return "", err
	}

	var blockNumber types.Hex
	return blockNumber, json.Unmarshal(data, &blockNumber)
}

// BlockByNumber retrieves a block by its hex number or a block tag
// ("latest", "earliest", "pending"). fullTx controls whether transactions
// are returned as full objects; when false the node returns only the
// hashes, which this adapter drops.
func (c *client) BlockByNumber(ctx context.Context, number string, fullTx bool) (Block, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBlockByNumber", number, fullTx)
	if err != nil {
		return Block{}, err
	}

	var block Block
	if fullTx {
		if err := json.Unmarshal(data, &block); err != nil {
			return Block{}, err
		}
		block.TransactionCount = len(block.Transactions)
		return block, nil
	}

	// With fullTx false the transactions field is a list of hashes, which
	// does not fit the Transaction struct; decode around it.
	var summary struct {
		Block
		Transactions []string `json:"transactions"`
	}
	if err := json.Unmarshal(data, &summary); err != nil {
		return Block{}, err
	}

	block = summary.Block
	block.Transactions = nil
	block.TransactionCount = len(summary.Transactions)
	return block, nil
}

// LatestBlock retrieves the block at the chain head.
func (c *client) LatestBlock(ctx context.Context, fullTx bool) (Block, error) {
	return c.BlockByNumber(ctx, latestBlockTag, fullTx)
}

// TransactionByHash retrieves a transaction by its hash.
func (c *client) TransactionByHash(ctx context.Context, hash string) (Transaction, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionByHash", hash)
	if err != nil {
		return Transaction{}, err
	}

	var tx Transaction
	return tx, json.Unmarshal(data, &tx)
}
