package trigger

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/chainflow/internal/pkg/logger"
	"github.com/gabapcia/chainflow/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainflow/internal/pkg/types"
	"github.com/gabapcia/chainflow/internal/pkg/x/chflow"
)

// defaultPollInterval matches the Cronos block cadence.
const defaultPollInterval = 6 * time.Second

// eventBufferSize bounds the number of undelivered events held while the
// workflow host drains the channel.
const eventBufferSize = 64

// Service starts and stops the block polling trigger.
type Service interface {
	// Start begins polling for new blocks and returns the event channel.
	// The channel is closed when the service is closed or ctx is canceled.
	// Calling Start twice is an error.
	Start(ctx context.Context) (<-chan Event, error)

	// Close stops the polling loop and releases the event channel.
	Close()
}

// service is the concrete Service implementation.
type service struct {
	network           string
	blockchain        Blockchain
	checkpointStorage CheckpointStorage
	retrier           retry.Retry
	pollInterval      time.Duration

	cancel context.CancelFunc
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// Option configures the trigger service.
type Option func(*service)

// WithPollInterval overrides the delay between poll iterations.
// Default: 6 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(s *service) {
		s.pollInterval = d
	}
}

// WithCheckpointStorage sets the checkpoint backend. Without one the
// trigger starts from the chain head on every boot and persists nothing.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(s *service) {
		s.checkpointStorage = cs
	}
}

// WithRetrier overrides the retry policy used for node fetches.
func WithRetrier(r retry.Retry) Option {
	return func(s *service) {
		s.retrier = r
	}
}

// New creates a trigger service polling the given network via the provided
// Blockchain adapter.
func New(network string, blockchain Blockchain, opts ...Option) *service {
	s := &service{
		network:           network,
		blockchain:        blockchain,
		checkpointStorage: nopCheckpoint{},
		retrier:           retry.New(),
		pollInterval:      defaultPollInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// startingHeight resolves the height the poll loop should begin at: one
// past the persisted checkpoint, or the chain head on a fresh start.
func (s *service) startingHeight(ctx context.Context) (types.Hex, error) {
	checkpoint, err := s.checkpointStorage.LoadLatestCheckpoint(ctx, s.network)
	if err == nil {
		return checkpoint.Add(1), nil
	}

	if !errors.Is(err, ErrNoCheckpointFound) {
		return "", err
	}

	return s.blockchain.LatestHeight(ctx)
}

// pollNewBlocks delivers every block in (from, head] and returns the next
// height to poll from. Fetch failures for individual blocks are delivered
// as error events and do not advance past the failing height, so the block
// is retried on the next iteration.
func (s *service) pollNewBlocks(ctx context.Context, from types.Hex, eventsCh chan<- Event) types.Hex {
	var head types.Hex
	err := s.retrier.Execute(ctx, func() error {
		var fetchErr error
		head, fetchErr = s.blockchain.LatestHeight(ctx)
		return fetchErr
	})
	if err != nil {
		chflow.Send(ctx, eventsCh, Event{Network: s.network, Error: err})
		return from
	}

	current := from
	for current.Int() <= head.Int() {
		var block Block
		err := s.retrier.Execute(ctx, func() error {
			var fetchErr error
			block, fetchErr = s.blockchain.BlockSummary(ctx, current)
			return fetchErr
		})
		if err != nil {
			chflow.Send(ctx, eventsCh, Event{Network: s.network, Error: err})
			return current
		}

		if ok := chflow.Send(ctx, eventsCh, Event{Network: s.network, Block: block}); !ok {
			return current
		}

		if err := s.checkpointStorage.SaveCheckpoint(ctx, s.network, current); err != nil {
			// A lost checkpoint means a duplicate delivery after restart,
			// not a lost block; log and keep going.
			logger.Error(ctx, "failed to save trigger checkpoint",
				"trigger.network", s.network,
				"trigger.height", current,
				"error", err,
			)
		}

		current = current.Add(1)
	}

	return current
}

// Start implements the Service interface.
func (s *service) Start(ctx context.Context) (<-chan Event, error) {
	if s.cancel != nil {
		return nil, errors.New("trigger already started")
	}

	from, err := s.startingHeight(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	eventsCh := make(chan Event, eventBufferSize)
	go func() {
		defer close(eventsCh)

		ticker := time.NewTicker(s.pollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				from = s.pollNewBlocks(ctx, from, eventsCh)
			}
		}
	}()

	return eventsCh, nil
}

// Close implements the Service interface.
func (s *service) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
