package processor

import (
	"context"

	"github.com/nao1215/procpipe/internal/model"
)

// Feature flag names understood by the built-in transformers.
const (
	// FeatureUppercase makes the text variant upper-case its output.
	FeatureUppercase = "uppercase"

	// FeatureWordCount makes the text variant append a computed word count.
	FeatureWordCount = "word_count"

	// FeatureStatistics makes the data variant append a length statistic.
	FeatureStatistics = "statistics"
)

// Transformer is the per-variant transformation step plugged into the
// shared pipeline. Implementations must be safe for concurrent use;
// the Processor may invoke Transform from multiple worker goroutines.
//
// Transform receives the payload and the feature set effective for the
// call. A returned error must be a *ProcessingError (directly or wrapped);
// it marks the call as failed and transitions the processor to FAILED.
type Transformer[T any] interface {
	// Transform applies the variant-specific transformation to data.
	Transform(ctx context.Context, data T, feats *model.FeatureSet) (T, error)

	// Name returns the variant's name for logging and snapshots.
	Name() string
}
