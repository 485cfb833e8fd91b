package slotbuf

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Buffer is a fixed block of slots for values of type T, each independently
// writable out of order. It has two macro-states: in progress (accepting Set
// calls) and consumed (after TryComplete, Complete or Discard).
//
// Invariants, maintained by the single write path (Set) and the single
// release path (drain):
//   - the occupancy bitset has the same length as the slot storage
//   - the cached live count equals the number of set bits
//   - a slot holds a value if and only if its bit is set
type Buffer[T any] struct {
	slots    []T
	occupied *bitset.BitSet
	live     int
	done     bool
	release  func(T)
}

// New creates a buffer with capacity empty slots. A capacity of zero is
// valid and yields a buffer that is immediately complete. New panics on
// negative capacity, like make.
func New[T any](capacity int, opts ...Option[T]) *Buffer[T] {
	if capacity < 0 {
		panic("slotbuf: negative capacity")
	}

	b := &Buffer[T]{
		slots:    make([]T, capacity),
		occupied: bitset.New(uint(capacity)),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Cap returns the number of slots, fixed at construction.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// Live returns the number of slots currently holding a value.
func (b *Buffer[T]) Live() int { return b.live }

// Occupied reports whether slot i currently holds a value. Out-of-range
// indices report false.
func (b *Buffer[T]) Occupied(i int) bool {
	return !b.done && i >= 0 && i < len(b.slots) && b.occupied.Test(uint(i))
}

// Set writes v into slot i. If the slot already holds a value, the prior
// value is released and replaced; the live count is unchanged, so re-Setting
// a slot never leaks and the last write wins. Setting a fresh slot marks it
// occupied and increments the live count.
//
// Set fails with ErrOutOfRange when i is not in [0, capacity) and with
// ErrConsumed after a completion call. A failed Set has no side effects.
func (b *Buffer[T]) Set(i int, v T) error {
	if b.done {
		return fmt.Errorf("%w: set slot %d", ErrConsumed, i)
	}

	if i < 0 || i >= len(b.slots) {
		return fmt.Errorf("%w: slot %d, capacity %d", ErrOutOfRange, i, len(b.slots))
	}

	if b.occupied.Test(uint(i)) {
		if b.release != nil {
			b.release(b.slots[i])
		}
		b.slots[i] = v
		return nil
	}

	b.slots[i] = v
	b.occupied.Set(uint(i))
	b.live++

	return nil
}

// TryComplete consumes the buffer. When every slot is live it returns all
// capacity values in slot order with a nil error; the decision is made from
// the cached live count, not by scanning. Otherwise it returns the values
// that were set, in ascending slot order, together with ErrIncomplete.
//
// Either way, ownership of the returned values transfers to the caller and
// the buffer must not be used again.
func (b *Buffer[T]) TryComplete() ([]T, error) {
	if b.done {
		return nil, ErrConsumed
	}
	b.done = true

	if b.live == len(b.slots) {
		out := b.slots
		b.reset()
		return out, nil
	}

	out := make([]T, 0, b.live)
	for i, ok := b.occupied.NextSet(0); ok; i, ok = b.occupied.NextSet(i + 1) {
		out = append(out, b.slots[i])
	}
	b.reset()

	return out, ErrIncomplete
}

// Complete consumes the buffer and returns all values in slot order when
// every slot is live. When some slots were never set it releases every live
// value and returns (nil, false); callers that care which subset was present
// should use TryComplete instead.
func (b *Buffer[T]) Complete() ([]T, bool) {
	if b.done {
		return nil, false
	}

	if b.live < len(b.slots) {
		b.done = true
		b.drain()
		return nil, false
	}

	out, err := b.TryComplete()
	return out, err == nil
}

// Discard consumes the buffer without producing a result, releasing exactly
// the slots that hold a value. It is idempotent and a no-op on an already
// consumed buffer, so it is safe to defer right after New: cleanup then also
// runs on early-return and error paths in the caller.
func (b *Buffer[T]) Discard() {
	if b.done {
		return
	}
	b.done = true
	b.drain()
}

// drain releases every occupied slot. The bitset is the sole authority on
// which slots hold a value; empty slots are never passed to the release hook.
func (b *Buffer[T]) drain() {
	if b.release != nil {
		for i, ok := b.occupied.NextSet(0); ok; i, ok = b.occupied.NextSet(i + 1) {
			b.release(b.slots[i])
		}
	}
	b.reset()
}

// reset drops the storage so the GC can reclaim referents.
func (b *Buffer[T]) reset() {
	b.slots = nil
	b.occupied = nil
	b.live = 0
}
