package streamwc

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter_Update(t *testing.T) {
	c := NewCounter(nil)

	c.Update("Hello world")
	c.Update("hello   there\tworld")
	c.Update("")

	assert.Equal(t, map[string]int{
		"hello": 2,
		"world": 2,
		"there": 1,
	}, c.State())
}

func TestCounter_HandleCount(t *testing.T) {
	c := NewCounter(nil)

	done, err := c.Handle(context.Background(), Count("c1", "a b a"))
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, c.State())
}

func TestCounter_HandleUnknownKind(t *testing.T) {
	c := NewCounter(nil)

	_, err := c.Handle(context.Background(), Message{Kind: "bogus"})
	assert.Error(t, err)
}

func TestCounter_HandleTerminate_EmptyState(t *testing.T) {
	// with nothing to persist and no version bump, terminate must not
	// touch Redis at all (the counter has a nil client here)
	c := NewCounter(nil)

	done, err := c.Handle(context.Background(), Terminate())
	require.NoError(t, err)
	assert.True(t, done)
}

func TestCounter_StateIsACopy(t *testing.T) {
	c := NewCounter(nil)
	c.Update("word")

	state := c.State()
	state["word"] = 99

	assert.Equal(t, map[string]int{"word": 1}, c.State())
}

func TestDecodeEntry(t *testing.T) {
	payload, err := json.Marshal(Count("c1", "hello"))
	require.NoError(t, err)

	msg, err := decodeEntry(map[string]any{msgField: string(payload)})
	require.NoError(t, err)
	assert.Equal(t, KindCount, msg.Kind)
	assert.Equal(t, "c1", msg.ClientID)
	assert.Equal(t, "hello", msg.Data)
}

func TestDecodeEntry_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{name: "missing field", values: map[string]any{"other": "x"}},
		{name: "wrong type", values: map[string]any{msgField: 42}},
		{name: "bad json", values: map[string]any{msgField: "{"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeEntry(tt.values)
			assert.Error(t, err)
		})
	}
}

func TestMessageRoundTrip(t *testing.T) {
	msg := Disconnect("c9")

	payload, err := json.Marshal(msg)
	require.NoError(t, err)

	var got Message
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, msg, got)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(nil)
	assert.NotEmpty(t, c.ID())

	c2 := NewClient(nil, WithClientID("fixed"))
	assert.Equal(t, "fixed", c2.ID())
}
