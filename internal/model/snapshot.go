package model

import (
	"fmt"
	"time"
)

// Snapshot is an immutable view of a processor's state at a point in time.
// The processor's own fields are unexported and guarded by its mutex;
// Snapshot is how callers and report writers observe them.
type Snapshot struct {
	// ID is the processor identifier assigned by the identity allocator.
	ID string `json:"id"`

	// Name is the processor's human-readable name.
	Name string `json:"name"`

	// Status is the processor status at the time the snapshot was taken.
	Status Status `json:"status"`

	// CreatedAt is the time the processor was constructed.
	CreatedAt time.Time `json:"created_at"`

	// LastProcessedAt is the time of the most recent status transition.
	// Zero if the processor has not processed anything yet.
	LastProcessedAt time.Time `json:"last_processed_at,omitzero"`

	// ProcessedCount is the number of successfully processed payloads.
	ProcessedCount uint64 `json:"processed_count"`
}

// Statistics returns a one-line summary of the snapshot, e.g.
// "Processor[id=PROC-1, name=TextProcessor, status=COMPLETED, processed=3, created=2026-08-27T10:00:00Z]".
func (s Snapshot) Statistics() string {
	return fmt.Sprintf(
		"Processor[id=%s, name=%s, status=%s, processed=%d, created=%s]",
		s.ID, s.Name, s.Status, s.ProcessedCount, s.CreatedAt.Format(time.RFC3339),
	)
}
