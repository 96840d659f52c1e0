package processor

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
)

// Pool is a fixed-size worker pool shared by asynchronous processing calls.
// Tasks are executed in submission order per worker, but ordering between
// workers is unspecified.
//
// Design decision: We use a fixed set of worker goroutines fed by a task
// channel rather than spawning a goroutine per call, so that a burst of
// ProcessAsync calls cannot create unbounded concurrency. There is no
// cancellation of tasks that already started; Close waits for them.
type Pool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	logger *slog.Logger

	closeOnce sync.Once
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithPoolLogger sets a custom logger for the pool.
func WithPoolLogger(logger *slog.Logger) PoolOption {
	return func(p *Pool) {
		p.logger = logger
	}
}

// NewPool creates a Pool with the given number of workers and queue size.
// Workers <= 0 defaults to runtime.NumCPU(); queueSize <= 0 defaults to
// twice the worker count. The pool starts immediately.
func NewPool(workers, queueSize int, opts ...PoolOption) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if queueSize <= 0 {
		queueSize = workers * 2
	}

	p := &Pool{
		tasks: make(chan func(), queueSize),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	p.logger.Debug("worker pool started", "workers", workers, "queue", queueSize)

	return p
}

// Submit enqueues a task for execution. It blocks while the queue is full.
// Submitting to a closed pool panics, as sending on a closed channel does.
func (p *Pool) Submit(task func()) {
	p.tasks <- task
}

// Close stops accepting tasks and waits for queued and running tasks to
// finish. It is safe to call multiple times.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		close(p.tasks)
		p.wg.Wait()
		p.logger.Debug("worker pool stopped")
	})
}

// worker drains the task channel until it is closed.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	for task := range p.tasks {
		task()
	}

	p.logger.Debug("worker stopped", "worker_id", id)
}

// Future is the handle returned by asynchronous processing calls.
// It resolves exactly once, to the same outcome the synchronous call
// would have produced.
type Future[T any] struct {
	done   chan struct{}
	result Result[T]
	err    error
}

// newFuture creates an unresolved Future.
func newFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// resolve stores the outcome and wakes all waiters. Must be called once.
func (f *Future[T]) resolve(result Result[T], err error) {
	f.result = result
	f.err = err
	close(f.done)
}

// Wait blocks until the future resolves or the context is done.
// A context error abandons the wait only; the underlying work still runs
// to completion and the future can be waited on again.
func (f *Future[T]) Wait(ctx context.Context) (Result[T], error) {
	select {
	case <-ctx.Done():
		return Empty[T](), ctx.Err()
	case <-f.done:
		return f.result, f.err
	}
}

// Done returns a channel closed when the future resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
