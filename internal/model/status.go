package model

import (
	"encoding/json"
	"fmt"
)

// Status represents the lifecycle state of a processor.
// A processor starts at StatusPending and moves through StatusInProgress
// to one of the terminal states. Transitions happen only inside the
// pipeline's update step; callers observe the state through accessors.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons. Each status additionally carries a fixed
// description and priority, exposed via methods, because downstream report
// output needs human-readable labels.
type Status int

const (
	// StatusPending indicates the processor has not processed anything yet.
	StatusPending Status = iota

	// StatusInProgress indicates a processing call is currently running.
	StatusInProgress

	// StatusCompleted indicates the last processing call succeeded.
	StatusCompleted

	// StatusFailed indicates the last processing call failed with a
	// transformation error.
	StatusFailed

	// StatusCancelled indicates the processor was cancelled by external
	// administrative action. The pipeline itself never enters this state.
	StatusCancelled
)

// statusInfo holds the fixed label and priority attached to each status.
type statusInfo struct {
	name        string
	description string
	priority    int
}

// statusInfoMapping is the single source of truth for status metadata.
// Priorities follow the ordering used by run reports: positive values for
// states on the success path, negative values for failure states.
var statusInfoMapping = map[Status]statusInfo{
	StatusPending:    {name: "PENDING", description: "Processing is pending", priority: 0},
	StatusInProgress: {name: "IN_PROGRESS", description: "Currently processing", priority: 1},
	StatusCompleted:  {name: "COMPLETED", description: "Processing completed successfully", priority: 2},
	StatusFailed:     {name: "FAILED", description: "Processing failed", priority: -1},
	StatusCancelled:  {name: "CANCELLED", description: "Processing was cancelled", priority: -2},
}

// String returns the canonical upper-case name of the status.
func (s Status) String() string {
	if info, ok := statusInfoMapping[s]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Description returns the human-readable description of the status.
func (s Status) Description() string {
	if info, ok := statusInfoMapping[s]; ok {
		return info.description
	}
	return "Unknown status"
}

// Priority returns the priority level attached to the status.
func (s Status) Priority() int {
	if info, ok := statusInfoMapping[s]; ok {
		return info.priority
	}
	return 0
}

// IsTerminal reports whether no further automatic transition occurs
// from this status. Completed, Failed, and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusCancelled
}

// IsSuccessful reports whether the status indicates successful completion.
// Only StatusCompleted is successful.
func (s Status) IsSuccessful() bool {
	return s == StatusCompleted
}

// StatusByPriority returns the status with the given priority level.
// The second return value is false if no status has that priority.
func StatusByPriority(priority int) (Status, bool) {
	for status, info := range statusInfoMapping {
		if info.priority == priority {
			return status, true
		}
	}
	return StatusPending, false
}

// MarshalJSON encodes the status as its canonical name so that JSON
// reports stay readable without a decoder ring for the numeric values.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON decodes a canonical status name produced by MarshalJSON.
// Unknown names are an error; reports never contain the numeric values.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	for status, info := range statusInfoMapping {
		if info.name == name {
			*s = status
			return nil
		}
	}

	return fmt.Errorf("unknown status name: %q", name)
}

// Format renders the status with its description and priority, e.g.
// "COMPLETED: Processing completed successfully (Priority: 2)".
func (s Status) Format() string {
	return fmt.Sprintf("%s: %s (Priority: %d)", s.String(), s.Description(), s.Priority())
}

// Statuses returns all defined statuses in declaration order.
// This is useful for rendering status tables in reports.
func Statuses() []Status {
	return []Status{
		StatusPending,
		StatusInProgress,
		StatusCompleted,
		StatusFailed,
		StatusCancelled,
	}
}
