// Package relay implements a replica registration relay on Redis Pub/Sub.
//
// Each replica listens on its own inbox channel and, on startup, announces
// its ID to every replica that started before it. Registrations arriving on
// the inbox are logged and handed to an optional callback.
package relay

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Inbox returns the Pub/Sub channel name for a replica.
func Inbox(replicaID int) string {
	return fmt.Sprintf("inbox-%d", replicaID)
}

// Relay is one replica's view of the registration protocol.
type Relay struct {
	rdb        redis.UniversalClient
	replicaID  int
	logger     *slog.Logger
	onRegister func(replicaID int)
}

// Option configures a Relay.
type Option func(*Relay)

// WithLogger sets the relay's logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Relay) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithOnRegister installs a callback invoked for every registration received
// on this replica's inbox. The callback runs on the Run loop's goroutine.
func WithOnRegister(fn func(replicaID int)) Option {
	return func(r *Relay) {
		r.onRegister = fn
	}
}

// New creates a relay for the given replica ID.
func New(rdb redis.UniversalClient, replicaID int, opts ...Option) *Relay {
	r := &Relay{
		rdb:       rdb,
		replicaID: replicaID,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ReplicaID returns the ID this relay registers as.
func (r *Relay) ReplicaID() int { return r.replicaID }

// Announce publishes this replica's ID to every lower-numbered inbox.
func (r *Relay) Announce(ctx context.Context) error {
	for peer := 0; peer < r.replicaID; peer++ {
		if err := r.rdb.Publish(ctx, Inbox(peer), r.replicaID).Err(); err != nil {
			return fmt.Errorf("relay: announce to %s: %w", Inbox(peer), err)
		}
	}

	return nil
}

// Run subscribes to this replica's inbox, announces to earlier replicas and
// then handles registrations until ctx is canceled.
func (r *Relay) Run(ctx context.Context) error {
	inbox := Inbox(r.replicaID)

	sub := r.rdb.Subscribe(ctx, inbox)
	defer sub.Close()

	// confirm the subscription before announcing, otherwise a peer's reply
	// could be published before anyone listens
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("relay: subscribe %s: %w", inbox, err)
	}

	r.logger.Info("listening", "inbox", inbox)

	if err := r.Announce(ctx); err != nil {
		return err
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			r.handle(msg.Payload)
		}
	}
}

func (r *Relay) handle(payload string) {
	id, err := strconv.Atoi(payload)
	if err != nil {
		r.logger.Warn("ignoring invalid registration", "payload", payload, "error", err)
		return
	}

	r.logger.Info("registered", "replica", id)

	if r.onRegister != nil {
		r.onRegister(id)
	}
}
