package processor

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/procpipe/internal/model"
)

// Processor kind names accepted by the factory, matched case-insensitively.
const (
	// KindText selects the text variant.
	KindText = "text"

	// KindData selects the data variant.
	KindData = "data"
)

// Kinds returns the kind names the factory accepts.
func Kinds() []string {
	return []string{KindText, KindData}
}

// Factory creates processors of a named kind. It owns the identity
// allocator so that identifiers stay unique across everything it creates,
// and it can share a worker pool, logger, and default feature set between
// them.
type Factory struct {
	alloc    IDAllocator
	pool     *Pool
	logger   *slog.Logger
	defaults *model.FeatureSet
	textOpts []TextOption
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithFactoryPool makes all created processors share the given pool.
func WithFactoryPool(pool *Pool) FactoryOption {
	return func(f *Factory) {
		f.pool = pool
	}
}

// WithFactoryLogger sets the logger handed to created processors.
func WithFactoryLogger(logger *slog.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithFactoryDefaults sets the default feature set for created processors.
// Each processor receives its own clone.
func WithFactoryDefaults(feats *model.FeatureSet) FactoryOption {
	return func(f *Factory) {
		f.defaults = feats
	}
}

// WithTextOptions sets the options applied to text variants.
func WithTextOptions(opts ...TextOption) FactoryOption {
	return func(f *Factory) {
		f.textOpts = opts
	}
}

// NewFactory creates a Factory using the given identity allocator.
// A nil allocator falls back to a fresh sequence allocator.
func NewFactory(alloc IDAllocator, opts ...FactoryOption) *Factory {
	f := &Factory{alloc: alloc}

	for _, opt := range opts {
		opt(f)
	}

	if f.alloc == nil {
		f.alloc = NewSequenceAllocator(DefaultIDPrefix)
	}
	if f.logger == nil {
		f.logger = slog.Default()
	}

	return f
}

// New creates a processor of the named kind. Kind matching is
// case-insensitive. An unrecognized kind returns ErrUnknownKind; this is
// fatal at construction time and callers should not retry.
func (f *Factory) New(kind string) (*Processor[string], error) {
	var transformer Transformer[string]

	switch strings.ToLower(kind) {
	case KindText:
		transformer = NewTextTransformer(f.textOpts...)
	case KindData:
		transformer = NewDataTransformer()
	default:
		return nil, fmt.Errorf("%w: %q (expected one of %v)", ErrUnknownKind, kind, Kinds())
	}

	opts := []Option[string]{
		WithID[string](f.alloc.Next()),
		WithLogger[string](f.logger),
	}
	if f.pool != nil {
		opts = append(opts, WithPool[string](f.pool))
	}
	if f.defaults != nil {
		opts = append(opts, WithDefaults[string](f.defaults.Clone()))
	}

	return NewProcessor(transformer.Name(), transformer, opts...), nil
}
