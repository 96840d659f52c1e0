package processor

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/nao1215/procpipe/internal/model"
)

// TestRunnerRun tests concurrent processing with order preservation.
func TestRunnerRun(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)
	r := NewRunner(p, WithConcurrency[string](3))

	items := make([]*string, 10)
	for i := range items {
		items[i] = strPtr(fmt.Sprintf("item %d", i))
	}

	results, err := r.Run(context.Background(), items, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != len(items) {
		t.Fatalf("got %d results, expected %d", len(results), len(items))
	}
	for i, result := range results {
		expected := fmt.Sprintf("item %d", i)
		if result.Value != expected {
			t.Errorf("results[%d] = %q, expected %q", i, result.Value, expected)
		}
	}

	if p.ProcessedCount() != uint64(len(items)) {
		t.Errorf("processedCount = %d, expected %d", p.ProcessedCount(), len(items))
	}
}

// TestRunnerRecoversItemFailures tests that per-item failures become empty
// results without aborting the run.
func TestRunnerRecoversItemFailures(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)
	r := NewRunner(p, WithConcurrency[string](2))

	items := []*string{strPtr("ok"), strPtr(""), nil, strPtr("also ok")}

	results, err := r.Run(context.Background(), items, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 4 {
		t.Fatalf("got %d results, expected 4", len(results))
	}
	if !results[0].OK || !results[3].OK {
		t.Error("expected boundary items to succeed")
	}
	if results[1].OK || results[2].OK {
		t.Error("expected failed and absent items to be empty")
	}
}

// TestRunnerCancelledContext tests that cancellation surfaces as the run
// error while already collected results remain ordered.
func TestRunnerCancelledContext(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)
	r := NewRunner(p, WithConcurrency[string](1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	items := []*string{strPtr("a"), strPtr("b")}

	results, err := r.Run(ctx, items, nil)
	if err == nil {
		t.Error("expected context error")
	}
	if len(results) != len(items) {
		t.Errorf("got %d results, expected %d", len(results), len(items))
	}
}

// TestRunnerRunWithCallback tests the streaming callback variant.
func TestRunnerRunWithCallback(t *testing.T) {
	t.Parallel()

	p := newTextProcessor(t)
	r := NewRunner(p, WithConcurrency[string](4))

	items := []*string{strPtr("one"), strPtr(""), strPtr("three")}

	var mu sync.Mutex
	seen := make(map[int]bool, len(items))
	failures := 0

	err := r.RunWithCallback(context.Background(), items, nil,
		func(index int, result Result[string], err error) {
			mu.Lock()
			defer mu.Unlock()
			seen[index] = true
			if err != nil {
				failures++
			}
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(seen) != len(items) {
		t.Errorf("callback fired for %d items, expected %d", len(seen), len(items))
	}
	if failures != 1 {
		t.Errorf("failures = %d, expected 1", failures)
	}
}

// TestRunnerFeatureSet tests that the run's feature set reaches every item.
func TestRunnerFeatureSet(t *testing.T) {
	t.Parallel()

	p := NewProcessor[string]("DataProcessor", NewDataTransformer())
	t.Cleanup(p.Close)

	feats := model.NewFeatureSet()
	feats.Enable(FeatureStatistics)

	r := NewRunner(p)
	results, err := r.Run(context.Background(), []*string{strPtr("abc")}, feats)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if results[0].Value != "PROCESSED[ABC]_STATS[len=3]" {
		t.Errorf("result = %q, expected statistics suffix", results[0].Value)
	}
}
