package processor

import (
	"context"
	"fmt"

	"github.com/nao1215/procpipe/internal/model"
)

// DataTransformer is the data variant of the transformation step.
// It wraps the payload in an upper-cased PROCESSED[...] tag and, when the
// statistics feature is enabled, appends a length statistic computed from
// the original payload.
type DataTransformer struct{}

// NewDataTransformer creates a DataTransformer.
func NewDataTransformer() *DataTransformer {
	return &DataTransformer{}
}

// Name returns the variant name.
func (d *DataTransformer) Name() string {
	return "DataProcessor"
}

// Transform produces the tagged wrapper string, e.g. "abc" becomes
// "PROCESSED[ABC]" and, with statistics enabled, "PROCESSED[ABC]_STATS[len=3]".
func (d *DataTransformer) Transform(_ context.Context, data string, feats *model.FeatureSet) (string, error) {
	processed := "PROCESSED[" + upperCaser.String(data) + "]"

	if feats.Enabled(FeatureStatistics) {
		processed += fmt.Sprintf("_STATS[len=%d]", len(data))
	}

	return processed, nil
}
