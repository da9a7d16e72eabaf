package ethereum

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/chainflow/internal/pkg/types"
)

// CallMsg describes an eth_call / eth_estimateGas invocation. Data carries
// ABI-encoded call data; Value is an optional hex amount of native coin.
type CallMsg struct {
	From  string `json:"from,omitempty"`
	To    string `json:"to"`
	Data  string `json:"data,omitempty"`
	Value string `json:"value,omitempty"`
}

// Balance fetches the native-coin balance of an address at the chain head,
// as a hex wei quantity.
func (c *client) Balance(ctx context.Context, address string) (types.Hex, error) {
	return c.fetchHex(ctx, "eth_getBalance", address, latestBlockTag)
}

// TransactionCount fetches the nonce of an address at the chain head.
func (c *client) TransactionCount(ctx context.Context, address string) (types.Hex, error) {
	return c.fetchHex(ctx, "eth_getTransactionCount", address, latestBlockTag)
}

// Code fetches the deployed bytecode at an address. An externally owned
// account yields "0x".
func (c *client) Code(ctx context.Context, address string) (string, error) {
	data, err := c.conn.Fetch(ctx, "eth_getCode", address, latestBlockTag)
	if err != nil {
		return "", err
	}

	var code string
	return code, json.Unmarshal(data, &code)
}

// Call executes a read-only contract call at the chain head and returns the
// raw hex return data.
func (c *client) Call(ctx context.Context, msg CallMsg) (string, error) {
	data, err := c.conn.Fetch(ctx, "eth_call", msg, latestBlockTag)
	if err != nil {
		return "", err
	}

	var out string
	return out, json.Unmarshal(data, &out)
}

// EstimateGas asks the node for a gas estimate for the given message.
func (c *client) EstimateGas(ctx context.Context, msg CallMsg) (types.Hex, error) {
	data, err := c.conn.Fetch(ctx, "eth_estimateGas", msg)
	if err != nil {
		return "", err
	}

	var gas types.Hex
	return gas, json.Unmarshal(data, &gas)
}

// SendRawTransaction broadcasts a pre-signed transaction blob and returns
// its hash. Signing happens outside chainflow; this adapter never touches
// key material.
func (c *client) SendRawTransaction(ctx context.Context, signedTx string) (string, error) {
	data, err := c.conn.Fetch(ctx, "eth_sendRawTransaction", signedTx)
	if err != nil {
		return "", err
	}

	var hash string
	return hash, json.Unmarshal(data, &hash)
}

// fetchHex performs an RPC call whose result is a single hex quantity.
func (c *client) fetchHex(ctx context.Context, method string, params ...any) (types.Hex, error) {
	data, err := c.conn.Fetch(ctx, method, params...)
	if err != nil {
		return "", err
	}

	var value types.Hex
	return value, json.Unmarshal(data, &value)
}
