package processor

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/nao1215/procpipe/internal/model"
)

// Processor runs payloads through a Transformer while tracking status,
// timestamps, and a processed counter. All state mutation is serialized
// behind a mutex so that concurrent calls never observe a partial update.
//
// Status transitions happen only inside Process (and the administrative
// Cancel); the fields are unexported and observable only via accessors
// and Snapshot.
type Processor[T any] struct {
	id          string
	name        string
	transformer Transformer[T]
	logger      *slog.Logger
	pool        *Pool
	ownsPool    bool

	// defaults is the processor-owned feature set used when a call does
	// not supply its own. A supplied set replaces it in full.
	defaults *model.FeatureSet

	// mu guards status, lastProcessedAt, and processedCount.
	mu              sync.Mutex
	status          model.Status
	createdAt       time.Time
	lastProcessedAt time.Time
	processedCount  uint64
}

// Option configures a Processor at construction time.
type Option[T any] func(*Processor[T])

// WithLogger sets a custom logger for the processor.
func WithLogger[T any](logger *slog.Logger) Option[T] {
	return func(p *Processor[T]) {
		p.logger = logger
	}
}

// WithPool makes the processor schedule asynchronous calls on a shared
// pool instead of creating its own. The caller remains responsible for
// closing a shared pool.
func WithPool[T any](pool *Pool) Option[T] {
	return func(p *Processor[T]) {
		p.pool = pool
	}
}

// WithDefaults sets the processor's default feature set.
func WithDefaults[T any](feats *model.FeatureSet) Option[T] {
	return func(p *Processor[T]) {
		p.defaults = feats
	}
}

// WithID sets the processor identifier. The factory uses this to inject
// identifiers from its allocator.
func WithID[T any](id string) Option[T] {
	return func(p *Processor[T]) {
		p.id = id
	}
}

// NewProcessor creates a Processor around the given transformer.
// Unless overridden by options, it gets a fresh default feature set,
// a private worker pool, and the default slog logger.
func NewProcessor[T any](name string, transformer Transformer[T], opts ...Option[T]) *Processor[T] {
	p := &Processor[T]{
		name:        name,
		transformer: transformer,
		status:      model.StatusPending,
		createdAt:   time.Now(),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}
	if p.defaults == nil {
		p.defaults = model.NewFeatureSet()
	}
	if p.pool == nil {
		p.pool = NewPool(0, 0, WithPoolLogger(p.logger))
		p.ownsPool = true
	}

	return p
}

// Process runs a single payload through the pipeline.
//
// An absent (nil) payload short-circuits to an empty Result with no status
// change and no counter increment. Otherwise the processor transitions to
// IN_PROGRESS, invokes the transformation step with the supplied feature
// set (or its default when feats is nil), and either completes — moving to
// COMPLETED and incrementing the counter in one atomic step — or fails,
// moving to FAILED and surfacing the transformation error to the caller.
func (p *Processor[T]) Process(ctx context.Context, data *T, feats *model.FeatureSet) (Result[T], error) {
	if data == nil {
		p.logger.Debug("skipping absent payload", "processor", p.id)
		return Empty[T](), nil
	}

	p.transition(model.StatusInProgress)

	effective := feats
	if effective == nil {
		effective = p.defaults
	}

	out, err := p.transformer.Transform(ctx, *data, effective)
	if err != nil {
		p.transition(model.StatusFailed)
		p.logger.Error("processing failed",
			"processor", p.id,
			"variant", p.transformer.Name(),
			"error", err,
		)
		return Empty[T](), fmt.Errorf("processing failed: %w", err)
	}

	p.complete()
	p.logger.Debug("processing completed",
		"processor", p.id,
		"variant", p.transformer.Name(),
	)

	return Present(out), nil
}

// ProcessAsync schedules Process on the worker pool and returns a Future
// resolving to the same outcome. Ordering between concurrently scheduled
// calls on the same processor is unspecified beyond the atomicity of its
// state updates. Started work is never cancelled; callers may abandon
// the Future.
func (p *Processor[T]) ProcessAsync(ctx context.Context, data *T, feats *model.FeatureSet) *Future[T] {
	f := newFuture[T]()

	p.pool.Submit(func() {
		result, err := p.Process(ctx, data, feats)
		f.resolve(result, err)
	})

	return f
}

// ProcessBatch applies Process to each item in input order. A failure for
// one item is recovered as an empty Result for that item only; the batch
// never aborts early. The returned slice always has the same length and
// order as the input.
func (p *Processor[T]) ProcessBatch(ctx context.Context, items []*T, feats *model.FeatureSet) []Result[T] {
	results := make([]Result[T], len(items))

	for i, item := range items {
		result, err := p.Process(ctx, item, feats)
		if err != nil {
			p.logger.Warn("batch item failed",
				"processor", p.id,
				"index", i,
				"error", err,
			)
			continue
		}
		results[i] = result
	}

	return results
}

// Cancel transitions the processor to CANCELLED. This is an administrative
// action taken from outside the pipeline; the pipeline itself never enters
// this state. In-flight calls are unaffected and run to completion.
func (p *Processor[T]) Cancel() {
	p.transition(model.StatusCancelled)
	p.logger.Info("processor cancelled", "processor", p.id)
}

// Close releases the processor's private worker pool, waiting for queued
// asynchronous calls to finish. Shared pools (WithPool) are left alone.
func (p *Processor[T]) Close() {
	if p.ownsPool {
		p.pool.Close()
	}
}

// transition moves the processor to the given status, recording the
// transition time.
func (p *Processor[T]) transition(status model.Status) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = status
	p.lastProcessedAt = time.Now()
}

// complete applies the success bookkeeping — status, counter, timestamp —
// as a single critical section so concurrent readers never see the counter
// and the status disagree.
func (p *Processor[T]) complete() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.status = model.StatusCompleted
	p.processedCount++
	p.lastProcessedAt = time.Now()
}

// ID returns the processor identifier.
func (p *Processor[T]) ID() string {
	return p.id
}

// Name returns the processor name.
func (p *Processor[T]) Name() string {
	return p.name
}

// Status returns the current processor status.
func (p *Processor[T]) Status() model.Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// ProcessedCount returns the number of successfully processed payloads.
func (p *Processor[T]) ProcessedCount() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.processedCount
}

// CreatedAt returns the processor's creation time.
func (p *Processor[T]) CreatedAt() time.Time {
	return p.createdAt
}

// LastProcessedAt returns the time of the most recent status transition,
// or the zero time if nothing was processed yet.
func (p *Processor[T]) LastProcessedAt() time.Time {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastProcessedAt
}

// Defaults returns the processor-owned default feature set.
func (p *Processor[T]) Defaults() *model.FeatureSet {
	return p.defaults
}

// Snapshot returns a consistent view of the processor's state.
func (p *Processor[T]) Snapshot() model.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	return model.Snapshot{
		ID:              p.id,
		Name:            p.name,
		Status:          p.status,
		CreatedAt:       p.createdAt,
		LastProcessedAt: p.lastProcessedAt,
		ProcessedCount:  p.processedCount,
	}
}

// Statistics returns the formatted one-line summary of the processor.
func (p *Processor[T]) Statistics() string {
	return p.Snapshot().Statistics()
}
