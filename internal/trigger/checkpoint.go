package trigger

import (
	"context"
	"errors"

	"github.com/gabapcia/chainflow/internal/pkg/types"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when no
// checkpoint has been saved yet for the requested network.
var ErrNoCheckpointFound = errors.New("no checkpoint found for network")

// CheckpointStorage persists and retrieves the latest delivered block
// height for each network, so the trigger resumes where it left off after
// a restart instead of re-firing workflows for old blocks.
type CheckpointStorage interface {
	// SaveCheckpoint records the given block height as the latest
	// checkpoint for the specified network. Repeated calls for the same
	// network overwrite any previous checkpoint.
	SaveCheckpoint(ctx context.Context, network string, height types.Hex) error

	// LoadLatestCheckpoint returns the most recent block height saved for
	// the specified network, or ErrNoCheckpointFound when none exists.
	LoadLatestCheckpoint(ctx context.Context, network string) (types.Hex, error)
}

// nopCheckpoint is the CheckpointStorage used when no persistence is
// configured: nothing is stored and every load reports a fresh start.
type nopCheckpoint struct{}

func (nopCheckpoint) SaveCheckpoint(_ context.Context, _ string, _ types.Hex) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(_ context.Context, _ string) (types.Hex, error) {
	return "", ErrNoCheckpointFound
}
