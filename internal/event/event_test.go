package event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gabapcia/chainflow/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/chainflow/internal/pkg/evm"
	"github.com/gabapcia/chainflow/internal/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testContract = "0x2222222222222222222222222222222222222222"
	testAddress  = "0x5c7f8a570d578ed84e63fdfa7b1ee72deae1ae23"

	// keccak("Transfer(address,address,uint256)")
	transferTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"
)

func init() {
	validation.Init()
}

type nodeMock struct {
	mock.Mock
}

func (m *nodeMock) Logs(ctx context.Context, filter ethereum.LogFilter) ([]ethereum.Log, error) {
	args := m.Called(ctx, filter)
	if logs := args.Get(0); logs != nil {
		return logs.([]ethereum.Log), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_Search(t *testing.T) {
	t.Run("builds the filter and decodes log data", func(t *testing.T) {
		expectedFilter := ethereum.LogFilter{
			Address:   testContract,
			Topics:    []string{transferTopic, "0x000000000000000000000000" + testAddress[2:]},
			FromBlock: "0x64",
			ToBlock:   "0xc8",
		}

		node := new(nodeMock)
		node.On("Logs", mock.Anything, expectedFilter).
			Return([]ethereum.Log{
				{
					Address:         testContract,
					Topics:          []string{transferTopic},
					Data:            fmt.Sprintf("0x%064x", 1500000),
					BlockNumber:     "0x65",
					TransactionHash: "0xaaa",
					LogIndex:        "0x0",
				},
			}, nil)

		svc := NewService(node)
		got, err := svc.Search(t.Context(), Query{
			Contract:       testContract,
			SignatureTopic: transferTopic,
			IndexedAddress: testAddress,
			FromBlock:      "100",
			ToBlock:        "200",
			DataTypes:      []string{"uint256"},
		})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, []string{"1500000"}, got[0].Data)
		assert.Equal(t, "101", got[0].BlockNumber)
	})

	t.Run("drops removed and duplicate logs", func(t *testing.T) {
		duplicate := ethereum.Log{
			Data:            fmt.Sprintf("0x%064x", 1),
			BlockNumber:     "0x65",
			TransactionHash: "0xaaa",
			LogIndex:        "0x0",
		}
		removed := ethereum.Log{
			Data:            fmt.Sprintf("0x%064x", 2),
			BlockNumber:     "0x66",
			TransactionHash: "0xbbb",
			LogIndex:        "0x1",
			Removed:         true,
		}

		node := new(nodeMock)
		node.On("Logs", mock.Anything, mock.Anything).
			Return([]ethereum.Log{duplicate, duplicate, removed}, nil)

		svc := NewService(node)
		got, err := svc.Search(t.Context(), Query{
			Contract:       testContract,
			SignatureTopic: transferTopic,
		})

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "0xaaa", got[0].TxHash)
	})

	t.Run("missing signature topic fails validation", func(t *testing.T) {
		svc := NewService(new(nodeMock))

		_, err := svc.Search(t.Context(), Query{Contract: testContract})
		require.ErrorIs(t, err, validation.ErrValidation)
	})

	t.Run("rejects a malformed signature topic", func(t *testing.T) {
		svc := NewService(new(nodeMock))

		_, err := svc.Search(t.Context(), Query{
			Contract:       testContract,
			SignatureTopic: "0x" + strings.Repeat("g", 64),
		})
		require.ErrorIs(t, err, evm.ErrInvalidHash)
	})

	t.Run("rejects a malformed indexed address", func(t *testing.T) {
		svc := NewService(new(nodeMock))

		_, err := svc.Search(t.Context(), Query{
			Contract:       testContract,
			SignatureTopic: transferTopic,
			IndexedAddress: "0x123",
		})
		require.ErrorIs(t, err, evm.ErrInvalidAddress)
	})

	t.Run("propagates node errors", func(t *testing.T) {
		node := new(nodeMock)
		node.On("Logs", mock.Anything, mock.Anything).Return(nil, errors.New("provider down"))

		svc := NewService(node)
		_, err := svc.Search(t.Context(), Query{
			Contract:       testContract,
			SignatureTopic: transferTopic,
		})
		require.Error(t, err)
	})
}
