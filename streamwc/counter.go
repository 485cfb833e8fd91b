package streamwc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// stateKey is the Redis hash holding checkpointed word counts.
	stateKey = "state"
	// versionKey counts completed client sessions.
	versionKey = "version"

	// readBatch bounds how many entries one XREAD returns.
	readBatch = 64
	// readBlock bounds how long one XREAD blocks so the loop can observe
	// context cancellation.
	readBlock = time.Second
)

// Counter tallies word frequencies from count messages and checkpoints the
// tally into Redis. It is single-threaded; one Run loop owns all state.
type Counter struct {
	rdb    redis.UniversalClient
	state  map[string]int
	logger *slog.Logger
}

// CounterOption configures a Counter.
type CounterOption func(*Counter)

// WithCounterLogger sets the counter's logger. Defaults to slog.Default.
func WithCounterLogger(logger *slog.Logger) CounterOption {
	return func(c *Counter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewCounter creates a counter backed by the given Redis client.
func NewCounter(rdb redis.UniversalClient, opts ...CounterOption) *Counter {
	c := &Counter{
		rdb:    rdb,
		state:  make(map[string]int),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// State returns a copy of the current word counts.
func (c *Counter) State() map[string]int {
	out := make(map[string]int, len(c.state))
	maps.Copy(out, c.state)
	return out
}

// Update tallies every whitespace-separated word of data, lowercased.
func (c *Counter) Update(data string) {
	for _, w := range strings.Fields(data) {
		c.state[strings.ToLower(w)]++
	}
}

// Handle advances the counter with one message. done reports that a
// terminate message was processed and the consumer loop should stop.
func (c *Counter) Handle(ctx context.Context, msg Message) (done bool, err error) {
	switch msg.Kind {
	case KindCount:
		c.logger.Debug("counting words", "client", msg.ClientID, "data", msg.Data)
		c.Update(msg.Data)
		return false, nil

	case KindDisconnect:
		c.logger.Debug("client disconnected, checkpointing", "client", msg.ClientID)
		return false, c.Checkpoint(ctx, true)

	case KindTerminate:
		c.logger.Debug("shutdown requested, saving final checkpoint")
		return true, c.Checkpoint(ctx, false)

	default:
		return false, fmt.Errorf("streamwc: unknown message kind %q", msg.Kind)
	}
}

// Checkpoint stores the current word counts in the state hash and, when
// bumpVersion is set, increments the version counter. Both commands run in
// one transactional pipeline.
func (c *Counter) Checkpoint(ctx context.Context, bumpVersion bool) error {
	if len(c.state) == 0 && !bumpVersion {
		return nil
	}

	pipe := c.rdb.TxPipeline()

	if len(c.state) > 0 {
		fields := make(map[string]any, len(c.state))
		for w, n := range c.state {
			fields[w] = n
		}
		pipe.HSet(ctx, stateKey, fields)
	}

	if bumpVersion {
		pipe.Incr(ctx, versionKey)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("streamwc: checkpoint: %w", err)
	}

	return nil
}

// Run drains the stream from the beginning and processes every message until
// a terminate message arrives or ctx is canceled. Invalid entries are logged
// and skipped.
func (c *Counter) Run(ctx context.Context, stream string) error {
	lastID := "0-0"

	for {
		streams, err := c.rdb.XRead(ctx, &redis.XReadArgs{
			Streams: []string{stream, lastID},
			Count:   readBatch,
			Block:   readBlock,
		}).Result()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if errors.Is(err, redis.Nil) {
				continue // block timed out without new entries
			}
			return fmt.Errorf("streamwc: XREAD %s: %w", stream, err)
		}

		for _, s := range streams {
			for _, entry := range s.Messages {
				lastID = entry.ID

				msg, err := decodeEntry(entry.Values)
				if err != nil {
					c.logger.Warn("skipping invalid entry", "id", entry.ID, "error", err)
					continue
				}

				done, err := c.Handle(ctx, msg)
				if err != nil {
					return err
				}
				if done {
					c.logger.Info("counter terminated", "words", len(c.state))
					return nil
				}
			}
		}
	}
}
