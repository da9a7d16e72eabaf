package trigger

import (
	"context"

	"github.com/gabapcia/chainflow/internal/pkg/types"

	"github.com/stretchr/testify/mock"
)

// blockchainMock is a testify mock for the Blockchain interface.
type blockchainMock struct {
	mock.Mock
}

func (m *blockchainMock) LatestHeight(ctx context.Context) (types.Hex, error) {
	args := m.Called(ctx)
	return args.Get(0).(types.Hex), args.Error(1)
}

func (m *blockchainMock) BlockSummary(ctx context.Context, height types.Hex) (Block, error) {
	args := m.Called(ctx, height)
	return args.Get(0).(Block), args.Error(1)
}

// checkpointStorageMock is a testify mock for the CheckpointStorage interface.
type checkpointStorageMock struct {
	mock.Mock
}

func (m *checkpointStorageMock) SaveCheckpoint(ctx context.Context, network string, height types.Hex) error {
	args := m.Called(ctx, network, height)
	return args.Error(0)
}

func (m *checkpointStorageMock) LoadLatestCheckpoint(ctx context.Context, network string) (types.Hex, error) {
	args := m.Called(ctx, network)
	return args.Get(0).(types.Hex), args.Error(1)
}
