package explorer

import (
	"encoding/json"
	"testing"

	explorertest "github.com/gabapcia/chainflow/internal/pkg/transport/explorer/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClient_NormalTransactions(t *testing.T) {
	t.Run("lists transactions with default bounds", func(t *testing.T) {
		raw := json.RawMessage(`[
			{"hash": "0x1", "from": "0xa", "to": "0xb", "value": "1000", "isError": "0"},
			{"hash": "0x2", "from": "0xb", "to": "0xa", "value": "2000", "isError": "1"}
		]`)

		mockConn := new(explorertest.Client)
		mockConn.
			On("Query", mock.Anything, "account", "txlist", map[string]string{
				"address": "0xwallet",
				"sort":    "desc",
			}).
			Return(raw, nil)

		c := NewClient(mockConn)
		entries, err := c.NormalTransactions(t.Context(), "0xwallet", HistoryQuery{})

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "0x1", entries[0].Hash)
		assert.Equal(t, "1", entries[1].IsError)
	})

	t.Run("renders explicit bounds and paging", func(t *testing.T) {
		mockConn := new(explorertest.Client)
		mockConn.
			On("Query", mock.Anything, "account", "txlist", map[string]string{
				"address":    "0xwallet",
				"sort":       "desc",
				"startblock": "100",
				"endblock":   "200",
				"page":       "2",
				"offset":     "10",
			}).
			Return(json.RawMessage(`[]`), nil)

		c := NewClient(mockConn)
		entries, err := c.NormalTransactions(t.Context(), "0xwallet", HistoryQuery{
			StartBlock: 100,
			EndBlock:   200,
			Page:       2,
			Offset:     10,
		})

		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("renders a lower bound without an upper bound", func(t *testing.T) {
		mockConn := new(explorertest.Client)
		mockConn.
			On("Query", mock.Anything, "account", "txlist", map[string]string{
				"address":    "0xwallet",
				"sort":       "desc",
				"startblock": "100",
			}).
			Return(json.RawMessage(`[]`), nil)

		c := NewClient(mockConn)
		entries, err := c.NormalTransactions(t.Context(), "0xwallet", HistoryQuery{
			StartBlock: 100,
		})

		require.NoError(t, err)
		assert.Empty(t, entries)
	})
}

func TestClient_TokenTransfers(t *testing.T) {
	t.Run("restricts to a token contract when given", func(t *testing.T) {
		raw := json.RawMessage(`[
			{"hash": "0x1", "contractAddress": "0xtoken", "value": "5000000", "tokenSymbol": "USDC", "tokenDecimal": "6"}
		]`)

		mockConn := new(explorertest.Client)
		mockConn.
			On("Query", mock.Anything, "account", "tokentx", map[string]string{
				"address":         "0xwallet",
				"sort":            "desc",
				"contractaddress": "0xtoken",
			}).
			Return(raw, nil)

		c := NewClient(mockConn)
		entries, err := c.TokenTransfers(t.Context(), "0xwallet", "0xtoken", HistoryQuery{})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "USDC", entries[0].TokenSymbol)
	})
}

func TestClient_NFTTransfers(t *testing.T) {
	t.Run("lists NFT transfers with token ids", func(t *testing.T) {
		raw := json.RawMessage(`[
			{"hash": "0x1", "contractAddress": "0xnft", "tokenID": "42", "tokenName": "Things"}
		]`)

		mockConn := new(explorertest.Client)
		mockConn.
			On("Query", mock.Anything, "account", "tokennfttx", map[string]string{
				"address": "0xwallet",
				"sort":    "desc",
			}).
			Return(raw, nil)

		c := NewClient(mockConn)
		entries, err := c.NFTTransfers(t.Context(), "0xwallet", "", HistoryQuery{})

		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "42", entries[0].TokenID)
	})
}

func TestClient_ContractABI(t *testing.T) {
	t.Run("returns the ABI document text", func(t *testing.T) {
		abi := `[{"type":"function","name":"balanceOf"}]`
		raw, err := json.Marshal(abi)
		require.NoError(t, err)

		mockConn := new(explorertest.Client)
		mockConn.
			On("Query", mock.Anything, "contract", "getabi", map[string]string{"address": "0xcontract"}).
			Return(json.RawMessage(raw), nil)

		c := NewClient(mockConn)
		got, err := c.ContractABI(t.Context(), "0xcontract")

		require.NoError(t, err)
		assert.Equal(t, abi, got)
	})
}
