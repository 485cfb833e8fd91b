package relay

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInbox(t *testing.T) {
	assert.Equal(t, "inbox-0", Inbox(0))
	assert.Equal(t, "inbox-42", Inbox(42))
}

func TestHandle(t *testing.T) {
	var got []int

	r := New(nil, 3,
		WithLogger(slog.New(slog.DiscardHandler)),
		WithOnRegister(func(id int) { got = append(got, id) }),
	)

	r.handle("7")
	r.handle("not-a-number") // logged and dropped
	r.handle("9")

	assert.Equal(t, []int{7, 9}, got)
	assert.Equal(t, 3, r.ReplicaID())
}

func TestAnnounce_ReplicaZeroHasNoPeers(t *testing.T) {
	// replica 0 announces to nobody, so a nil client must not be touched
	r := New(nil, 0, WithLogger(slog.New(slog.DiscardHandler)))

	assert.NoError(t, r.Announce(t.Context()))
}
