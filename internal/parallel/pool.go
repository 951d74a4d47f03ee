package parallel

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Result is the outcome of one submitted job.
type Result[T any] struct {
	Index    int
	Value    T
	Err      error
	Duration time.Duration
}

// WorkerPool runs jobs with bounded concurrency.
type WorkerPool[T any] struct {
	maxWorkers int
	semaphore  chan struct{}
	wg         sync.WaitGroup
	mu         sync.Mutex
	results    []Result[T]
	failFast   bool
	ctx        context.Context
	cancel     context.CancelFunc
}

// NewWorkerPool returns a pool running at most maxWorkers jobs at once; 0
// leaves it unbounded. With failFast the first failing job cancels the rest.
func NewWorkerPool[T any](ctx context.Context, maxWorkers int, failFast bool) *WorkerPool[T] {
	ctx, cancel := context.WithCancel(ctx)
	return &WorkerPool[T]{
		maxWorkers: maxWorkers,
		semaphore:  make(chan struct{}, maxWorkers),
		failFast:   failFast,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Submit schedules fn under the given index. Jobs submitted after the pool
// was cancelled are dropped; fn receives the pool's context.
func (p *WorkerPool[T]) Submit(index int, fn func(ctx context.Context) (T, error)) {
	select {
	case <-p.ctx.Done():
		return
	default:
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if p.maxWorkers > 0 {
			select {
			case p.semaphore <- struct{}{}:
				defer func() { <-p.semaphore }()
			case <-p.ctx.Done():
				return
			}
		}

		// A slot may free up only after a failure cancelled the pool.
		select {
		case <-p.ctx.Done():
			return
		default:
		}

		start := time.Now()
		value, err := fn(p.ctx)
		result := Result[T]{
			Index:    index,
			Value:    value,
			Err:      err,
			Duration: time.Since(start),
		}

		p.mu.Lock()
		defer p.mu.Unlock()
		p.results = append(p.results, result)
		if err != nil && p.failFast {
			p.cancel()
		}
	}()
}

// Wait blocks until every started job has finished and returns the results
// ordered by index. Jobs skipped because of cancellation have no result.
func (p *WorkerPool[T]) Wait() []Result[T] {
	p.wg.Wait()
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cancel()

	results := make([]Result[T], len(p.results))
	copy(results, p.results)
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}

// FirstError returns the error of the lowest-indexed failed result.
func FirstError[T any](results []Result[T]) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// Cancel stops jobs that have not started yet.
func (p *WorkerPool[T]) Cancel() {
	p.cancel()
}
