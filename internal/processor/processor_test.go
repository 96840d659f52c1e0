package processor

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/nao1215/procpipe/internal/model"
)

// strPtr returns a pointer to the given string, for building payloads.
func strPtr(s string) *string {
	return &s
}

// failingTransformer always fails, for exercising the failure path.
type failingTransformer struct{}

func (failingTransformer) Transform(_ context.Context, _ string, _ *model.FeatureSet) (string, error) {
	return "", NewProcessingError("boom")
}

func (failingTransformer) Name() string { return "FailingProcessor" }

// newTextProcessor creates a text processor for tests, registered for
// cleanup so private pools don't leak goroutines.
func newTextProcessor(t *testing.T, opts ...Option[string]) *Processor[string] {
	t.Helper()

	p := NewProcessor[string]("TextProcessor", NewTextTransformer(), opts...)
	t.Cleanup(p.Close)
	return p
}

// TestProcessorAbsentInput tests that a nil payload yields an empty result
// and leaves status and processed count untouched.
func TestProcessorAbsentInput(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)

	result, err := p.Process(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.OK {
		t.Error("expected empty result for absent input")
	}
	if p.Status() != model.StatusPending {
		t.Errorf("status = %v, expected PENDING", p.Status())
	}
	if p.ProcessedCount() != 0 {
		t.Errorf("processedCount = %d, expected 0", p.ProcessedCount())
	}
	if !p.LastProcessedAt().IsZero() {
		t.Error("expected lastProcessedAt to stay zero")
	}
}

// TestProcessorSuccess tests the success path: present result, COMPLETED
// status, and the counter incremented by exactly one.
func TestProcessorSuccess(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)

	result, err := p.Process(context.Background(), strPtr("  Hello   World  "), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.OK {
		t.Fatal("expected present result")
	}
	if result.Value != "Hello World" {
		t.Errorf("result = %q, expected %q", result.Value, "Hello World")
	}
	if p.Status() != model.StatusCompleted {
		t.Errorf("status = %v, expected COMPLETED", p.Status())
	}
	if p.ProcessedCount() != 1 {
		t.Errorf("processedCount = %d, expected 1", p.ProcessedCount())
	}
	if p.LastProcessedAt().IsZero() {
		t.Error("expected lastProcessedAt to be set")
	}
}

// TestProcessorTransformFailure tests that a transformation failure moves
// the processor to FAILED and surfaces the error without counting.
func TestProcessorTransformFailure(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)

	_, err := p.Process(context.Background(), strPtr(""), nil)
	if err == nil {
		t.Fatal("expected error for empty text")
	}

	var procErr *ProcessingError
	if !errors.As(err, &procErr) {
		t.Errorf("expected wrapped *ProcessingError, got %T", err)
	}
	if !strings.Contains(err.Error(), "processing failed") {
		t.Errorf("error %q should be wrapped with pipeline context", err)
	}
	if p.Status() != model.StatusFailed {
		t.Errorf("status = %v, expected FAILED", p.Status())
	}
	if p.ProcessedCount() != 0 {
		t.Errorf("processedCount = %d, expected 0", p.ProcessedCount())
	}
}

// TestProcessorFeatureOverride tests that a caller-supplied feature set
// replaces the default in full for that call.
func TestProcessorFeatureOverride(t *testing.T) {
	t.Parallel()

	defaults := model.NewFeatureSet()
	defaults.Enable(FeatureWordCount)

	p := newTextProcessor(t, WithDefaults[string](defaults))

	t.Run("default feature set applies", func(t *testing.T) {
		result, err := p.Process(context.Background(), strPtr("one two"), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Value != "one two [Words: 2]" {
			t.Errorf("result = %q, expected word count appended", result.Value)
		}
	})

	t.Run("override replaces defaults entirely", func(t *testing.T) {
		override := model.NewFeatureSet()
		override.Enable(FeatureUppercase)

		result, err := p.Process(context.Background(), strPtr("one two"), override)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// word_count from the defaults must not leak into the override.
		if result.Value != "ONE TWO" {
			t.Errorf("result = %q, expected %q", result.Value, "ONE TWO")
		}
	})
}

// TestProcessorBatch tests the sequential batch contract.
func TestProcessorBatch(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)

	items := []*string{
		strPtr("Batch item 1"),
		strPtr("Batch item 2"),
		nil,
		strPtr(""), // transformation failure, recovered per item
		strPtr("Batch item 5"),
	}

	results := p.ProcessBatch(context.Background(), items, nil)

	if len(results) != len(items) {
		t.Fatalf("got %d results, expected %d", len(results), len(items))
	}

	expected := []struct {
		ok    bool
		value string
	}{
		{true, "Batch item 1"},
		{true, "Batch item 2"},
		{false, ""},
		{false, ""},
		{true, "Batch item 5"},
	}

	for i, exp := range expected {
		if results[i].OK != exp.ok {
			t.Errorf("results[%d].OK = %v, expected %v", i, results[i].OK, exp.ok)
		}
		if results[i].Value != exp.value {
			t.Errorf("results[%d].Value = %q, expected %q", i, results[i].Value, exp.value)
		}
	}

	// Only the three present results count as processed.
	if p.ProcessedCount() != 3 {
		t.Errorf("processedCount = %d, expected 3", p.ProcessedCount())
	}
}

// TestProcessorBatchEmptyInput tests batching over an empty sequence.
func TestProcessorBatchEmptyInput(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)

	results := p.ProcessBatch(context.Background(), nil, nil)
	if len(results) != 0 {
		t.Errorf("got %d results, expected 0", len(results))
	}
}

// TestProcessorAsync tests that asynchronous calls resolve to the same
// outcome as synchronous ones.
func TestProcessorAsync(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)
	ctx := context.Background()

	t.Run("success resolves present result", func(t *testing.T) {
		future := p.ProcessAsync(ctx, strPtr("Async text"), nil)

		result, err := future.Wait(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Value != "Async text" {
			t.Errorf("result = %q, expected %q", result.Value, "Async text")
		}
	})

	t.Run("failure rejects the future", func(t *testing.T) {
		future := p.ProcessAsync(ctx, strPtr(""), nil)

		if _, err := future.Wait(ctx); err == nil {
			t.Error("expected the future to resolve with an error")
		}
	})

	t.Run("absent input resolves empty", func(t *testing.T) {
		future := p.ProcessAsync(ctx, nil, nil)

		result, err := future.Wait(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.OK {
			t.Error("expected empty result")
		}
	})
}

// TestProcessorConcurrentState tests that concurrent calls never leave the
// counter and the status disagreeing: after N successful calls the counter
// is exactly N and the status is terminal-successful.
func TestProcessorConcurrentState(t *testing.T) {
	t.Parallel()

	pool := NewPool(8, 16)
	defer pool.Close()

	p := NewProcessor[string]("TextProcessor", NewTextTransformer(), WithPool[string](pool))

	const calls = 50
	var wg sync.WaitGroup
	ctx := context.Background()

	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Process(ctx, strPtr("payload"), nil); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if p.ProcessedCount() != calls {
		t.Errorf("processedCount = %d, expected %d", p.ProcessedCount(), calls)
	}
	if p.Status() != model.StatusCompleted {
		t.Errorf("status = %v, expected COMPLETED", p.Status())
	}
}

// TestProcessorCancel tests the administrative cancel transition.
func TestProcessorCancel(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)

	p.Cancel()

	if p.Status() != model.StatusCancelled {
		t.Errorf("status = %v, expected CANCELLED", p.Status())
	}
	if !p.Status().IsTerminal() {
		t.Error("expected CANCELLED to be terminal")
	}
	if p.Status().IsSuccessful() {
		t.Error("expected CANCELLED to not be successful")
	}
}

// TestProcessorSnapshot tests the snapshot accessor.
func TestProcessorSnapshot(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t, WithID[string]("PROC-9"))

	if _, err := p.Process(context.Background(), strPtr("hello"), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := p.Snapshot()
	if snap.ID != "PROC-9" {
		t.Errorf("snapshot ID = %q, expected %q", snap.ID, "PROC-9")
	}
	if snap.Name != "TextProcessor" {
		t.Errorf("snapshot Name = %q, expected %q", snap.Name, "TextProcessor")
	}
	if snap.Status != model.StatusCompleted {
		t.Errorf("snapshot Status = %v, expected COMPLETED", snap.Status)
	}
	if snap.ProcessedCount != 1 {
		t.Errorf("snapshot ProcessedCount = %d, expected 1", snap.ProcessedCount)
	}
	if !strings.Contains(p.Statistics(), "PROC-9") {
		t.Errorf("Statistics() = %q should contain the ID", p.Statistics())
	}
}

// TestProcessorFailingVariant tests the pipeline around a variant that
// always fails.
func TestProcessorFailingVariant(t *testing.T) {
	t.Parallel()

	p := NewProcessor[string]("FailingProcessor", failingTransformer{})
	t.Cleanup(p.Close)

	results := p.ProcessBatch(context.Background(), []*string{strPtr("a"), strPtr("b")}, nil)

	if len(results) != 2 {
		t.Fatalf("got %d results, expected 2", len(results))
	}
	for i, r := range results {
		if r.OK {
			t.Errorf("results[%d] should be empty", i)
		}
	}
	if p.Status() != model.StatusFailed {
		t.Errorf("status = %v, expected FAILED", p.Status())
	}
}

// TestResultOrElse tests the Result fallback accessor.
func TestResultOrElse(t *testing.T) {
	t.Parallel()

	if got := Present("value").OrElse("fallback"); got != "value" {
		t.Errorf("OrElse = %q, expected %q", got, "value")
	}
	if got := Empty[string]().OrElse("fallback"); got != "fallback" {
		t.Errorf("OrElse = %q, expected %q", got, "fallback")
	}
}

// TestProcessingError tests message formatting and unwrapping.
func TestProcessingError(t *testing.T) {
	t.Parallel()

	t.Run("plain message", func(t *testing.T) {
		t.Parallel()
		err := NewProcessingError("text cannot be empty")
		if err.Error() != "text cannot be empty" {
			t.Errorf("Error() = %q", err.Error())
		}
		if err.Unwrap() != nil {
			t.Error("expected nil cause")
		}
	})

	t.Run("wrapped cause", func(t *testing.T) {
		t.Parallel()
		cause := errors.New("io failure")
		err := WrapProcessingError("transform failed", cause)
		if err.Error() != "transform failed: io failure" {
			t.Errorf("Error() = %q", err.Error())
		}
		if !errors.Is(err, cause) {
			t.Error("expected errors.Is to find the cause")
		}
	})
}
