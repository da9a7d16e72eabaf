package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/chainflow/internal/pkg/types"
	"github.com/gabapcia/chainflow/internal/trigger"

	"github.com/redis/go-redis/v9"
)

// triggerKeyPrefix is the namespace prefix for all keys owned by the block
// polling trigger.
const triggerKeyPrefix = "trigger"

// Ensure compile-time compliance with the trigger storage contract.
var _ trigger.CheckpointStorage = (*client)(nil)

// triggerCheckpointKey constructs the Redis key holding the latest delivered
// block height for a network. The format is:
//
//	"trigger:checkpoint:<network>"
func triggerCheckpointKey(network string) string {
	return fmt.Sprintf("%s:checkpoint:%s", triggerKeyPrefix, network)
}

// SaveCheckpoint persists the most recent block height delivered for a given
// network, so the trigger resumes from the right position after a restart.
// The checkpoint is stored with no expiration and repeated calls overwrite
// the previous value.
func (c *client) SaveCheckpoint(ctx context.Context, network string, height types.Hex) error {
	key := triggerCheckpointKey(network)
	return c.conn.Set(ctx, key, string(height), 0).Err()
}

// LoadLatestCheckpoint retrieves the most recently saved checkpoint for the
// given network. When no checkpoint exists yet it returns
// trigger.ErrNoCheckpointFound.
func (c *client) LoadLatestCheckpoint(ctx context.Context, network string) (types.Hex, error) {
	key := triggerCheckpointKey(network)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = trigger.ErrNoCheckpointFound
		}
		return "", err
	}

	return types.HexFromString(val)
}
