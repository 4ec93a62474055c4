// Package workerpool runs bounded fan-out work whose results keep input order.
package workerpool

import (
	"context"
	"sync"
)

// Map applies fn to every item on at most workers goroutines and returns the
// results in input order. The first error cancels the items not yet started
// and is returned; a canceled parent context yields ctx.Err().
func Map[T, R any](
	ctx context.Context,
	workers int,
	items []T,
	fn func(context.Context, T) (R, error),
) ([]R, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []R{}, nil
	}

	workers = max(1, min(workers, len(items)))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		results  = make([]R, len(items))
		next     = make(chan int)
		wg       sync.WaitGroup
		failOnce sync.Once
		firstErr error
	)

	fail := func(err error) {
		failOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range next {
				r, err := fn(ctx, items[idx])
				if err != nil {
					fail(err)
					continue
				}
				results[idx] = r
			}
		}()
	}

feed:
	for idx := range items {
		select {
		case <-ctx.Done():
			break feed
		case next <- idx:
		}
	}
	close(next)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
