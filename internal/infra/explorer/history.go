package explorer

import (
	"context"
	"encoding/json"
	"strconv"
)

type (
	// TransactionEntry is one row of an account's normal-transaction
	// history. All numeric fields arrive as decimal strings.
	TransactionEntry struct {
		Hash        string `json:"hash"`
		BlockNumber string `json:"blockNumber"`
		TimeStamp   string `json:"timeStamp"`
		From        string `json:"from"`
		To          string `json:"to"`
		Value       string `json:"value"`
		Gas         string `json:"gas"`
		GasUsed     string `json:"gasUsed"`
		GasPrice    string `json:"gasPrice"`
		IsError     string `json:"isError"`
	}

	// TokenTransferEntry is one row of an account's ERC-20 or ERC-721
	// transfer history. TokenID is only populated for NFT transfers,
	// TokenDecimal only for fungible ones.
	TokenTransferEntry struct {
		Hash            string `json:"hash"`
		BlockNumber     string `json:"blockNumber"`
		TimeStamp       string `json:"timeStamp"`
		From            string `json:"from"`
		To              string `json:"to"`
		ContractAddress string `json:"contractAddress"`
		Value           string `json:"value"`
		TokenID         string `json:"tokenID"`
		TokenName       string `json:"tokenName"`
		TokenSymbol     string `json:"tokenSymbol"`
		TokenDecimal    string `json:"tokenDecimal"`
	}

	// HistoryQuery bounds a history listing. Zero values mean the
	// explorer's defaults (full range, first page).
	HistoryQuery struct {
		StartBlock int64
		EndBlock   int64
		Page       int
		Offset     int
	}
)

// params renders the query bounds as explorer query-string parameters.
func (q HistoryQuery) params(address string) map[string]string {
	p := map[string]string{
		"address": address,
		"sort":    "desc",
	}
	if q.StartBlock > 0 {
		p["startblock"] = strconv.FormatInt(q.StartBlock, 10)
	}
	if q.EndBlock > 0 {
		p["endblock"] = strconv.FormatInt(q.EndBlock, 10)
	}
	if q.Page > 0 {
		p["page"] = strconv.Itoa(q.Page)
	}
	if q.Offset > 0 {
		p["offset"] = strconv.Itoa(q.Offset)
	}
	return p
}

// NormalTransactions lists an address's normal (non-internal) transactions,
// newest first. An address with no history yields an empty slice.
func (c *client) NormalTransactions(ctx context.Context, address string, query HistoryQuery) ([]TransactionEntry, error) {
	data, err := c.conn.Query(ctx, "account", "txlist", query.params(address))
	if err != nil {
		return nil, err
	}

	var entries []TransactionEntry
	return entries, json.Unmarshal(data, &entries)
}

// TokenTransfers lists an address's ERC-20 transfer history, optionally
// restricted to a single token contract.
func (c *client) TokenTransfers(ctx context.Context, address, contractAddress string, query HistoryQuery) ([]TokenTransferEntry, error) {
	params := query.params(address)
	if contractAddress != "" {
		params["contractaddress"] = contractAddress
	}

	data, err := c.conn.Query(ctx, "account", "tokentx", params)
	if err != nil {
		return nil, err
	}

	var entries []TokenTransferEntry
	return entries, json.Unmarshal(data, &entries)
}

// NFTTransfers lists an address's ERC-721 transfer history, optionally
// restricted to a single collection contract.
func (c *client) NFTTransfers(ctx context.Context, address, contractAddress string, query HistoryQuery) ([]TokenTransferEntry, error) {
	params := query.params(address)
	if contractAddress != "" {
		params["contractaddress"] = contractAddress
	}

	data, err := c.conn.Query(ctx, "account", "tokennfttx", params)
	if err != nil {
		return nil, err
	}

	var entries []TokenTransferEntry
	return entries, json.Unmarshal(data, &entries)
}
