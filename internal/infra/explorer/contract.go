package explorer

import (
	"context"
	"encoding/json"
)

// ContractABI fetches the verified ABI of a contract as its raw JSON text.
// Unverified contracts surface the transport's ErrExplorerError.
func (c *client) ContractABI(ctx context.Context, address string) (string, error) {
	data, err := c.conn.Query(ctx, "contract", "getabi", map[string]string{"address": address})
	if err != nil {
		return "", err
	}

	// The ABI arrives as a JSON string containing the ABI document.
	var abi string
	return abi, json.Unmarshal(data, &abi)
}
