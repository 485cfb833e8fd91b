package collect

import (
	"context"
	"sync"
)

// Merge fans every input channel into a single output channel. The output
// preserves no ordering across inputs and closes once every input is closed
// or ctx is canceled. Pending sends are abandoned on cancellation.
func Merge[T any](ctx context.Context, ins ...<-chan T) <-chan T {
	out := make(chan T)

	var wg sync.WaitGroup
	wg.Add(len(ins))

	for _, in := range ins {
		go func() {
			defer wg.Done()

			for {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-in:
					if !ok {
						return
					}
					select {
					case out <- v:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
