// Package slotbuf provides a fixed-capacity buffer whose slots can be
// initialized out of order.
//
// A Buffer is created with a fixed number of empty slots. Each slot is
// written independently via Set, in any order, and the buffer can later be
// consumed as a contiguous sequence:
//
//   - TryComplete returns all values in slot order when every slot was set,
//     or the subset that was set (plus ErrIncomplete) when some were not.
//   - Complete collapses both outcomes into an all-or-nothing result.
//
// The typical use is gathering results of concurrently executing tasks where
// each task owns one slot:
//
//	buf := slotbuf.New[string](len(tasks))
//	defer buf.Discard()
//
//	for res := range results { // single consumer serializes all writes
//	    if err := buf.Set(res.Index, res.Value); err != nil {
//	        return err
//	    }
//	}
//
//	values, err := buf.TryComplete()
//	if errors.Is(err, slotbuf.ErrIncomplete) {
//	    // values holds the slots that were set, in ascending slot order
//	}
//
// # Occupancy Tracking
//
// A bitset records which slots hold a live value and is the single source of
// truth for slot state. A cached live count makes the completion decision
// O(1); the move itself is O(capacity). Values held by types that own
// resources can register a release hook (WithReleaseFunc) that runs exactly
// once for every value displaced by a re-Set, dropped by a partial Complete,
// or discarded without completion.
//
// # Concurrency
//
// A Buffer is not internally synchronized and supports exactly one logical
// writer. The intended pattern is a pool of concurrent producers handing
// (slot, value) pairs to a single consumer that performs each Set; the
// collect package implements that pattern.
package slotbuf
