package collect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/slotbuf"
)

// Task computes the value for one slot. The slot index is the task's
// position in the slice passed to Gather.
type Task[T any] func(ctx context.Context) (T, error)

type options struct {
	limit  int
	logger *slog.Logger
}

// Option configures Gather.
type Option func(*options)

// WithLimit caps the number of tasks running concurrently. Zero or negative
// means no limit.
func WithLimit(n int) Option {
	return func(o *options) {
		o.limit = n
	}
}

// WithLogger sets the logger used to report failed tasks. Defaults to a
// logger that discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

type outcome[T any] struct {
	index int
	value T
	err   error
}

// Gather runs every task concurrently and collects each result into the
// slot matching the task's position. A failed task leaves its slot empty;
// the remaining tasks keep running.
//
// When every task succeeds, Gather returns all values in task order. When
// some fail, or ctx is canceled before all results arrive, it returns the
// values that did arrive (in ascending slot order) and an error matching
// slotbuf.ErrIncomplete that also carries the individual task errors.
func Gather[T any](ctx context.Context, tasks []Task[T], opts ...Option) ([]T, error) {
	o := options{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	buf := slotbuf.New[T](len(tasks))
	defer buf.Discard()

	results := make(chan outcome[T])

	g := new(errgroup.Group)
	if o.limit > 0 {
		g.SetLimit(o.limit)
	}

	go func() {
		defer close(results)

		for i, task := range tasks {
			g.Go(func() error {
				value, err := task(ctx)
				select {
				case results <- outcome[T]{index: i, value: value, err: err}:
				case <-ctx.Done():
				}
				return nil
			})
		}

		_ = g.Wait() // task errors travel on the results channel
	}()

	// Single consumer: all buffer writes happen here, one at a time.
	var errs []error
	for res := range results {
		if res.err != nil {
			o.logger.Warn("task failed", "slot", res.index, "error", res.err)
			errs = append(errs, fmt.Errorf("task %d: %w", res.index, res.err))
			continue
		}

		if err := buf.Set(res.index, res.value); err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		errs = append(errs, err)
	}

	values, err := buf.TryComplete()
	if err != nil {
		errs = append(errs, err)
		return values, errors.Join(errs...)
	}

	return values, nil
}
