package slotbuf

import "errors"

var (
	// ErrOutOfRange is returned by Set when the slot index is not within
	// [0, capacity). It indicates caller miscounting and should be treated
	// as fatal rather than retried.
	ErrOutOfRange = errors.New("slot index out of range")

	// ErrIncomplete is returned by TryComplete when one or more slots were
	// never set. The values that were set accompany the error; a partial
	// fill is an expected outcome, not a fault.
	ErrIncomplete = errors.New("buffer not fully initialized")

	// ErrConsumed is returned when a buffer is used after a completion call.
	ErrConsumed = errors.New("buffer already consumed")
)
