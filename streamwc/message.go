package streamwc

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultStreamKey is the stream the counter listens on unless
	// configured otherwise.
	DefaultStreamKey = "counter"

	// msgField is the stream entry field carrying the JSON payload.
	msgField = "msg"
)

// Kind discriminates the messages exchanged over the counter stream.
type Kind string

const (
	// KindCount carries client input whose words should be tallied.
	KindCount Kind = "count"
	// KindDisconnect announces that a client is done; the counter
	// checkpoints its state and bumps the version counter.
	KindDisconnect Kind = "disconnect"
	// KindTerminate shuts the counter down after a final checkpoint.
	KindTerminate Kind = "terminate"
)

// Message is the unit exchanged over the counter stream.
type Message struct {
	Kind     Kind   `json:"kind"`
	ClientID string `json:"client_id,omitempty"`
	Data     string `json:"data,omitempty"`
}

// Count builds a message carrying client input.
func Count(clientID, data string) Message {
	return Message{Kind: KindCount, ClientID: clientID, Data: data}
}

// Disconnect builds a client disconnect message.
func Disconnect(clientID string) Message {
	return Message{Kind: KindDisconnect, ClientID: clientID}
}

// Terminate builds a shutdown message.
func Terminate() Message {
	return Message{Kind: KindTerminate}
}

// Send appends msg to the given stream.
func Send(ctx context.Context, rdb redis.UniversalClient, stream string, msg Message) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("streamwc: encode message: %w", err)
	}

	if err := rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{msgField: payload},
	}).Err(); err != nil {
		return fmt.Errorf("streamwc: XADD to %s: %w", stream, err)
	}

	return nil
}

// decodeEntry extracts the Message from a stream entry's field map.
func decodeEntry(values map[string]any) (Message, error) {
	raw, ok := values[msgField]
	if !ok {
		return Message{}, fmt.Errorf("streamwc: no %q field in stream entry", msgField)
	}

	payload, ok := raw.(string)
	if !ok {
		return Message{}, fmt.Errorf("streamwc: unexpected %q field type %T", msgField, raw)
	}

	var msg Message
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return Message{}, fmt.Errorf("streamwc: decode message: %w", err)
	}

	return msg, nil
}
