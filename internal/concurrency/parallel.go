package concurrency

import (
	"context"
	"sync"
)

// ParallelOptions controls the worker pool.
type ParallelOptions struct {
	MaxWorkers int
}

func DefaultOptions() ParallelOptions {
	return ParallelOptions{MaxWorkers: 10}
}

type indexed[R any] struct {
	index  int
	result R
	err    error
}

// ProcessParallel runs itemFunc over items with a bounded worker pool.
// Results come back in input order; errors are collected separately.
func ProcessParallel[T any, R any](
	ctx context.Context,
	items []T,
	opts ParallelOptions,
	itemFunc func(ctx context.Context, index int, item T) (R, error),
) ([]R, []error) {
	if len(items) == 0 {
		return []R{}, nil
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = DefaultOptions().MaxWorkers
	}
	if maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	jobs := make(chan int, len(items))
	results := make(chan indexed[R], len(items))

	var wg sync.WaitGroup
	for w := 0; w < maxWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}
				r, err := itemFunc(ctx, i, items[i])
				results <- indexed[R]{index: i, result: r, err: err}
			}
		}()
	}

	for i := range items {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	out := make([]R, len(items))
	var errs []error
	for res := range results {
		out[res.index] = res.result
		if res.err != nil {
			errs = append(errs, res.err)
		}
	}
	return out, errs
}
