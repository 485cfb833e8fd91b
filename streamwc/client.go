package streamwc

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Client publishes count messages to a counter stream.
type Client struct {
	rdb    redis.UniversalClient
	id     string
	logger *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithClientID overrides the generated client ID.
func WithClientID(id string) ClientOption {
	return func(c *Client) {
		if id != "" {
			c.id = id
		}
	}
}

// WithClientLogger sets the client's logger. Defaults to slog.Default.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client with a random ID.
func NewClient(rdb redis.UniversalClient, opts ...ClientOption) *Client {
	c := &Client{
		rdb:    rdb,
		id:     "client-" + uuid.NewString(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ID returns the client's identifier.
func (c *Client) ID() string { return c.id }

// Publish sends data repeats times followed by a disconnect message, so the
// counter checkpoints this client's contribution.
func (c *Client) Publish(ctx context.Context, stream, data string, repeats int) error {
	c.logger.Info("publishing", "client", c.id, "stream", stream, "repeats", repeats)

	for i := 0; i < repeats; i++ {
		if err := Send(ctx, c.rdb, stream, Count(c.id, data)); err != nil {
			return err
		}
	}

	c.logger.Info("disconnecting", "client", c.id, "stream", stream)
	return Send(ctx, c.rdb, stream, Disconnect(c.id))
}
