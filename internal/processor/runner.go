package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/procpipe/internal/model"
	"golang.org/x/sync/errgroup"
)

// Runner fans a sequence of payloads out over concurrent Process calls on
// a single processor. The processor's mutex keeps its state consistent
// under the concurrency; result ordering matches the input ordering.
//
// Design decision: Runner is separate from Processor.ProcessBatch because
// the batch contract is strictly sequential, while CLI runs over many
// independent inputs benefit from bounded parallelism. Keeping the two
// apart means the sequential contract stays simple and the concurrency
// policy lives in one place.
type Runner[T any] struct {
	proc        *Processor[T]
	concurrency int
	logger      *slog.Logger
}

// DefaultRunnerConcurrency bounds parallel Process calls when the caller
// does not choose a limit.
const DefaultRunnerConcurrency = 4

// RunnerOption configures a Runner.
type RunnerOption[T any] func(*Runner[T])

// WithConcurrency sets the maximum number of concurrent Process calls.
func WithConcurrency[T any](n int) RunnerOption[T] {
	return func(r *Runner[T]) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// WithRunnerLogger sets a custom logger for run-level logging.
func WithRunnerLogger[T any](logger *slog.Logger) RunnerOption[T] {
	return func(r *Runner[T]) {
		r.logger = logger
	}
}

// NewRunner creates a Runner over the given processor.
func NewRunner[T any](proc *Processor[T], opts ...RunnerOption[T]) *Runner[T] {
	r := &Runner[T]{
		proc:        proc,
		concurrency: DefaultRunnerConcurrency,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Run processes all items concurrently, up to the configured limit, and
// returns results in input order. Per-item failures become empty results,
// mirroring the sequential batch contract. The returned error is non-nil
// only when the context was cancelled; items not yet started stay empty.
func (r *Runner[T]) Run(ctx context.Context, items []*T, feats *model.FeatureSet) ([]Result[T], error) {
	r.logger.Info("starting run",
		"items", len(items),
		"concurrency", r.concurrency,
	)

	startTime := time.Now()
	results := make([]Result[T], len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, item := range items {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result, err := r.proc.Process(ctx, item, feats)
			if err != nil {
				// Recovered per-item, like the sequential batch.
				r.logger.Warn("item failed", "index", i, "error", err)
				return nil
			}

			results[i] = result
			return nil
		})
	}

	err := g.Wait()

	r.logger.Info("run complete",
		"items", len(items),
		"elapsed", time.Since(startTime),
	)

	return results, err
}

// RunWithCallback processes all items concurrently and invokes the
// callback once per item as it completes. The callback runs on the
// goroutine that processed the item, so it must be safe for concurrent
// use if it touches shared state.
func (r *Runner[T]) RunWithCallback(
	ctx context.Context,
	items []*T,
	feats *model.FeatureSet,
	callback func(index int, result Result[T], err error),
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, item := range items {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			result, err := r.proc.Process(ctx, item, feats)
			callback(i, result, err)
			return nil
		})
	}

	return g.Wait()
}
