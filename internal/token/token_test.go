package token

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/infra/explorer"
	"github.com/gabapcia/chainflow/internal/pkg/evm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testToken  = "0x2222222222222222222222222222222222222222"
	testHolder = "0x5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23"
)

type nodeMock struct {
	mock.Mock
}

func (m *nodeMock) Call(ctx context.Context, msg ethereum.CallMsg) (string, error) {
	args := m.Called(ctx, msg)
	return args.String(0), args.Error(1)
}

type explorerMock struct {
	mock.Mock
}

func (m *explorerMock) TokenTransfers(ctx context.Context, address, contractAddress string, query explorer.HistoryQuery) ([]explorer.TokenTransferEntry, error) {
	args := m.Called(ctx, address, contractAddress, query)
	if entries := args.Get(0); entries != nil {
		return entries.([]explorer.TokenTransferEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

// uintWord renders n as a single ABI return word.
func uintWord(n uint64) string {
	return fmt.Sprintf("0x%064x", n)
}

// stringReturn renders s as a single dynamic-string ABI return blob.
func stringReturn(s string) string {
	payload := hex.EncodeToString([]byte(s))
	for len(payload)%64 != 0 {
		payload += "0"
	}
	return fmt.Sprintf("0x%064x%064x%s", 32, len(s), payload)
}

// expectCall registers a read-only call returning the given blob.
func expectCall(node *nodeMock, selector, result string, params ...evm.Param) {
	data, err := evm.EncodeCall(selector, params)
	if err != nil {
		panic(err)
	}
	node.On("Call", mock.Anything, ethereum.CallMsg{To: testToken, Data: data}).
		Return(result, nil)
}

func TestService_Metadata(t *testing.T) {
	t.Run("decodes name, symbol and decimals", func(t *testing.T) {
		node := new(nodeMock)
		expectCall(node, nameSelector, stringReturn("Tether USD"))
		expectCall(node, symbolSelector, stringReturn("USDT"))
		expectCall(node, decimalsSelector, uintWord(6))

		svc := NewService(node, new(explorerMock))
		got, err := svc.Metadata(t.Context(), testToken)

		require.NoError(t, err)
		assert.Equal(t, "Tether USD", got.Name)
		assert.Equal(t, "USDT", got.Symbol)
		assert.Equal(t, uint(6), got.Decimals)
	})

	t.Run("rejects a malformed token address", func(t *testing.T) {
		svc := NewService(new(nodeMock), new(explorerMock))

		_, err := svc.Metadata(t.Context(), "0x123")
		require.ErrorIs(t, err, evm.ErrInvalidAddress)
	})
}

func TestService_BalanceOf(t *testing.T) {
	t.Run("normalizes the balance by the token's decimals", func(t *testing.T) {
		node := new(nodeMock)
		expectCall(node, balanceOfSelector, uintWord(1500000), evm.Param{Type: "address", Value: testHolder})
		expectCall(node, decimalsSelector, uintWord(6))

		svc := NewService(node, new(explorerMock))
		got, err := svc.BalanceOf(t.Context(), testToken, testHolder)

		require.NoError(t, err)
		assert.Equal(t, "1500000", got.Raw)
		assert.Equal(t, "1.5", got.Human)
	})

	t.Run("rejects a malformed holder address", func(t *testing.T) {
		svc := NewService(new(nodeMock), new(explorerMock))

		_, err := svc.BalanceOf(t.Context(), testToken, "nope")
		require.ErrorIs(t, err, evm.ErrInvalidAddress)
	})

	t.Run("propagates node errors", func(t *testing.T) {
		node := new(nodeMock)
		node.On("Call", mock.Anything, mock.Anything).Return("", errors.New("provider down"))

		svc := NewService(node, new(explorerMock))
		_, err := svc.BalanceOf(t.Context(), testToken, testHolder)
		require.Error(t, err)
	})
}

func TestService_TotalSupply(t *testing.T) {
	t.Run("normalizes the supply by the token's decimals", func(t *testing.T) {
		node := new(nodeMock)
		expectCall(node, totalSupplySelector, uintWord(1000000000))
		expectCall(node, decimalsSelector, uintWord(6))

		svc := NewService(node, new(explorerMock))
		got, err := svc.TotalSupply(t.Context(), testToken)

		require.NoError(t, err)
		assert.Equal(t, "1000", got.Human)
	})
}

func TestService_Allowance(t *testing.T) {
	t.Run("passes owner and spender in order", func(t *testing.T) {
		spender := "0x3333333333333333333333333333333333333333"

		node := new(nodeMock)
		expectCall(node, allowanceSelector, uintWord(2500000),
			evm.Param{Type: "address", Value: testHolder},
			evm.Param{Type: "address", Value: spender},
		)
		expectCall(node, decimalsSelector, uintWord(6))

		svc := NewService(node, new(explorerMock))
		got, err := svc.Allowance(t.Context(), testToken, testHolder, spender)

		require.NoError(t, err)
		assert.Equal(t, "2.5", got.Human)
	})
}

func TestService_TransferCallData(t *testing.T) {
	t.Run("builds transfer(to, amount) call data", func(t *testing.T) {
		svc := NewService(new(nodeMock), new(explorerMock))

		got, err := svc.TransferCallData(testHolder, "2.5", 6)

		require.NoError(t, err)
		expected := transferSelector +
			"0000000000000000000000005c7f8a570d578ed84e63fdfa7b1ee72deae1ae23" +
			fmt.Sprintf("%064x", 2500000)
		assert.Equal(t, expected, got)
	})

	t.Run("rejects a malformed recipient", func(t *testing.T) {
		svc := NewService(new(nodeMock), new(explorerMock))

		_, err := svc.TransferCallData("0x123", "1", 18)
		require.ErrorIs(t, err, evm.ErrInvalidAddress)
	})
}

func TestService_Transfers(t *testing.T) {
	t.Run("normalizes rows by their own decimal counts", func(t *testing.T) {
		entries := []explorer.TokenTransferEntry{
			{
				Hash:            "0xaaa",
				From:            testHolder,
				To:              "0x4444444444444444444444444444444444444444",
				ContractAddress: testToken,
				Value:           "1500000",
				TokenSymbol:     "USDT",
				TokenDecimal:    "6",
			},
			{
				Hash:         "0xbbb",
				Value:        "500000000000000000",
				TokenSymbol:  "WCRO",
				TokenDecimal: "18",
			},
		}

		ex := new(explorerMock)
		ex.On("TokenTransfers", mock.Anything, testHolder, testToken, explorer.HistoryQuery{}).
			Return(entries, nil)

		svc := NewService(new(nodeMock), ex)
		got, err := svc.Transfers(t.Context(), testHolder, testToken, explorer.HistoryQuery{})

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "1.5", got[0].Value)
		assert.Equal(t, "USDT", got[0].Symbol)
		assert.Equal(t, "0.5", got[1].Value)
	})

	t.Run("rejects a malformed token filter", func(t *testing.T) {
		svc := NewService(new(nodeMock), new(explorerMock))

		_, err := svc.Transfers(t.Context(), testHolder, "0x12", explorer.HistoryQuery{})
		require.ErrorIs(t, err, evm.ErrInvalidAddress)
	})
}
