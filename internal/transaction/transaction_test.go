package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/pkg/evm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testHash = "0x" + strings.Repeat("ab", 32)

type nodeMock struct {
	mock.Mock
}

func (m *nodeMock) TransactionByHash(ctx context.Context, hash string) (ethereum.Transaction, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).(ethereum.Transaction), args.Error(1)
}

func (m *nodeMock) TransactionReceipt(ctx context.Context, hash string) (ethereum.Receipt, error) {
	args := m.Called(ctx, hash)
	return args.Get(0).(ethereum.Receipt), args.Error(1)
}

func (m *nodeMock) SendRawTransaction(ctx context.Context, signedTx string) (string, error) {
	args := m.Called(ctx, signedTx)
	return args.String(0), args.Error(1)
}

func TestService_Get(t *testing.T) {
	t.Run("normalizes a mined transaction", func(t *testing.T) {
		node := new(nodeMock)
		node.On("TransactionByHash", mock.Anything, testHash).
			Return(ethereum.Transaction{
				Hash:        testHash,
				BlockHash:   "0xblock",
				BlockNumber: "0x10",
				From:        "0xaaaa",
				To:          "0xbbbb",
				Value:       "0xde0b6b3a7640000", // 1 native coin
				GasPrice:    "0x3b9aca00",        // 1 gwei
				Nonce:       "0x5",
				Input:       "0x",
			}, nil)

		svc := NewService(node)
		got, err := svc.Get(t.Context(), testHash)

		require.NoError(t, err)
		assert.Equal(t, "16", got.BlockNumber)
		assert.Equal(t, "1", got.Value)
		assert.Equal(t, "1", got.GasPrice)
		assert.Equal(t, "5", got.Nonce)
	})

	t.Run("keeps block fields empty for a pending transaction", func(t *testing.T) {
		node := new(nodeMock)
		node.On("TransactionByHash", mock.Anything, testHash).
			Return(ethereum.Transaction{
				Hash:     testHash,
				From:     "0xaaaa",
				To:       "0xbbbb",
				Value:    "0xde0b6b3a7640000",
				GasPrice: "0x3b9aca00",
				Nonce:    "0x5",
				Input:    "0x",
			}, nil)

		svc := NewService(node)
		got, err := svc.Get(t.Context(), testHash)

		require.NoError(t, err)
		assert.Empty(t, got.BlockHash)
		assert.Empty(t, got.BlockNumber)
		assert.Equal(t, "1", got.Value)
	})

	t.Run("rejects a malformed hash before hitting the node", func(t *testing.T) {
		svc := NewService(new(nodeMock))

		_, err := svc.Get(t.Context(), "0x123")
		require.ErrorIs(t, err, evm.ErrInvalidHash)
	})

	t.Run("propagates node errors", func(t *testing.T) {
		node := new(nodeMock)
		node.On("TransactionByHash", mock.Anything, testHash).
			Return(ethereum.Transaction{}, errors.New("provider down"))

		svc := NewService(node)
		_, err := svc.Get(t.Context(), testHash)
		require.Error(t, err)
	})
}

func TestService_GetReceipt(t *testing.T) {
	t.Run("computes the exact fee from gasUsed and effective gas price", func(t *testing.T) {
		node := new(nodeMock)
		node.On("TransactionReceipt", mock.Anything, testHash).
			Return(ethereum.Receipt{
				TransactionHash:   testHash,
				BlockNumber:       "0x10",
				GasUsed:           "0x5208",     // 21000
				EffectiveGasPrice: "0x3b9aca00", // 1 gwei
				Status:            "0x1",
				Logs:              []ethereum.Log{{Address: "0xaaaa"}},
			}, nil)

		svc := NewService(node)
		got, err := svc.GetReceipt(t.Context(), testHash)

		require.NoError(t, err)
		assert.Equal(t, "21000", got.GasUsed)
		assert.Equal(t, "0.000021", got.Fee)
		assert.True(t, got.Success)
		assert.Equal(t, 1, got.Logs)
	})

	t.Run("reports a reverted transaction", func(t *testing.T) {
		node := new(nodeMock)
		node.On("TransactionReceipt", mock.Anything, testHash).
			Return(ethereum.Receipt{
				GasUsed:           "0x5208",
				EffectiveGasPrice: "0x3b9aca00",
				Status:            "0x0",
			}, nil)

		svc := NewService(node)
		got, err := svc.GetReceipt(t.Context(), testHash)

		require.NoError(t, err)
		assert.False(t, got.Success)
	})

	t.Run("rejects a malformed hash", func(t *testing.T) {
		svc := NewService(new(nodeMock))

		_, err := svc.GetReceipt(t.Context(), "nope")
		require.ErrorIs(t, err, evm.ErrInvalidHash)
	})
}

func TestService_Broadcast(t *testing.T) {
	t.Run("forwards a signed blob and returns the hash", func(t *testing.T) {
		node := new(nodeMock)
		node.On("SendRawTransaction", mock.Anything, "0xf86c0a85").
			Return(testHash, nil)

		svc := NewService(node)
		got, err := svc.Broadcast(t.Context(), "0xf86c0a85")

		require.NoError(t, err)
		assert.Equal(t, testHash, got)
	})

	t.Run("rejects a blob without hex payload", func(t *testing.T) {
		svc := NewService(new(nodeMock))

		for _, blob := range []string{"", "0x", "f86c0a85", "0xzz"} {
			_, err := svc.Broadcast(t.Context(), blob)
			require.ErrorIs(t, err, evm.ErrInvalidEncoding, "blob %q", blob)
		}
	})
}
