package slotbuf

// Option configures a Buffer at construction time.
type Option[T any] func(*Buffer[T])

// WithReleaseFunc installs a hook that is called exactly once for every live
// value the buffer lets go of without handing it to the caller: the prior
// value displaced by a re-Set, every live value dropped by a partial
// Complete, and every live value released by Discard.
//
// Use it when T owns resources that need explicit cleanup (open files,
// connections, pooled objects). Values returned from TryComplete or a
// successful Complete transfer to the caller and are never passed to the
// hook.
func WithReleaseFunc[T any](release func(T)) Option[T] {
	return func(b *Buffer[T]) {
		b.release = release
	}
}
