// Package workerpool provides bounded fan-out helpers.
package workerpool

import (
	"context"
	"sync"

	"github.com/puzpuzpuz/xsync/v4"
)

// Process runs process for every item on at most workerCount goroutines.
// The first error cancels the remaining work, calls onCancel and is returned.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount < 1 {
		workerCount = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tasks := make(chan T, workerCount)
	errs := make(chan error, workerCount)
	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-tasks:
					if !ok {
						return
					}
					if err := process(ctx, item); err != nil {
						select {
						case errs <- err:
						default:
						}
						if onCancel != nil {
							onCancel()
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	wg.Wait()
	close(errs)

	if err, ok := <-errs; ok && err != nil {
		return err
	}
	return ctx.Err()
}

// Collect runs fetch for every key on at most workerCount goroutines and
// gathers the results by key. Keys whose fetch fails are absent from the map;
// the failure is handed to onError and does not stop the other keys. Only
// cancellation of ctx aborts the run.
func Collect[K comparable, V any](
	ctx context.Context,
	workerCount int,
	keys []K,
	fetch func(context.Context, K) (V, error),
	onError func(K, error),
) (*xsync.Map[K, V], error) {
	results := xsync.NewMap[K, V]()
	err := Process(ctx, workerCount, keys, func(ctx context.Context, key K) error {
		value, err := fetch(ctx, key)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			if onError != nil {
				onError(key, err)
			}
			return nil
		}
		results.Store(key, value)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return results, nil
}
