package model

import "time"

// ItemResult records the outcome of processing a single payload.
//
// An absent input and a failed transformation both yield OK=false; the
// pipeline deliberately does not distinguish the two in its results, and
// ItemResult preserves that ambiguity. Error carries the failure message
// when one was surfaced, and is empty for absent inputs.
type ItemResult struct {
	// Index is the payload's position in the input sequence.
	Index int `json:"index"`

	// Input is the original payload, or empty if the payload was absent.
	Input string `json:"input,omitempty"`

	// Output is the transformed payload. Empty when OK is false.
	Output string `json:"output,omitempty"`

	// OK reports whether processing produced a present result.
	OK bool `json:"ok"`

	// Error is the failure message for transformation failures.
	Error string `json:"error,omitempty"`
}

// RunReport is the record of one processing run over a sequence of inputs.
// It is produced by the CLI and consumed by the report writers.
type RunReport struct {
	// Kind is the processor variant used for the run ("text" or "data").
	Kind string `json:"kind"`

	// StartedAt is the time the run began.
	StartedAt time.Time `json:"started_at"`

	// Elapsed is the total wall-clock duration of the run.
	Elapsed time.Duration `json:"elapsed"`

	// Items holds the per-payload outcomes in input order.
	// Its length always equals the number of inputs.
	Items []ItemResult `json:"items"`

	// Processor is the final state of the processor after the run.
	Processor Snapshot `json:"processor"`
}

// NewRunReport creates an empty RunReport for the given processor kind.
func NewRunReport(kind string) *RunReport {
	return &RunReport{
		Kind:      kind,
		StartedAt: time.Now(),
		Items:     make([]ItemResult, 0),
	}
}

// Succeeded returns the number of items that produced a present result.
func (r *RunReport) Succeeded() int {
	n := 0
	for _, item := range r.Items {
		if item.OK {
			n++
		}
	}
	return n
}

// Failed returns the number of items that produced an empty result.
func (r *RunReport) Failed() int {
	return len(r.Items) - r.Succeeded()
}
