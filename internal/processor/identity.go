package processor

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDAllocator assigns identifiers to processors at construction time.
//
// Design decision: Identity is allocated by an explicit object passed into
// the factory instead of a package-level counter. Hidden process-wide
// mutable state makes tests order-dependent and leaks across otherwise
// independent factories.
type IDAllocator interface {
	// Next returns a fresh identifier. Implementations must be safe
	// for concurrent use.
	Next() string
}

// SequenceAllocator issues identifiers of the form "<prefix>-<n>" with a
// monotonically increasing counter starting at 1.
type SequenceAllocator struct {
	prefix  string
	counter atomic.Uint64
}

// DefaultIDPrefix is the prefix used by NewSequenceAllocator when none
// is given.
const DefaultIDPrefix = "PROC"

// NewSequenceAllocator creates a SequenceAllocator with the given prefix.
// An empty prefix falls back to DefaultIDPrefix.
func NewSequenceAllocator(prefix string) *SequenceAllocator {
	if prefix == "" {
		prefix = DefaultIDPrefix
	}
	return &SequenceAllocator{prefix: prefix}
}

// Next returns the next sequential identifier, e.g. "PROC-1".
func (a *SequenceAllocator) Next() string {
	return fmt.Sprintf("%s-%d", a.prefix, a.counter.Add(1))
}

// UUIDAllocator issues random UUIDv4 identifiers. Useful when processors
// from multiple runs or hosts end up in the same report stream and
// sequential identifiers would collide.
type UUIDAllocator struct{}

// Next returns a fresh UUID string.
func (UUIDAllocator) Next() string {
	return uuid.NewString()
}
