package processor

import "errors"

// ErrUnknownKind is returned by the factory when the requested processor
// kind does not match any registered variant. This is a configuration
// error: it is raised at construction time and never recovered.
var ErrUnknownKind = errors.New("unknown processor kind")

// ProcessingError is the terminal failure signal produced by a
// transformation step. It carries a human-readable message and an
// optional wrapped cause.
//
// Design decision: We use a dedicated error type rather than plain
// fmt.Errorf values so that callers can distinguish transformation
// failures from infrastructure errors with errors.As.
type ProcessingError struct {
	// msg is the human-readable failure message.
	msg string

	// cause is the underlying error, if any.
	cause error
}

// NewProcessingError creates a ProcessingError with the given message.
func NewProcessingError(msg string) *ProcessingError {
	return &ProcessingError{msg: msg}
}

// WrapProcessingError creates a ProcessingError wrapping an underlying cause.
func WrapProcessingError(msg string, cause error) *ProcessingError {
	return &ProcessingError{msg: msg, cause: cause}
}

// Error returns the failure message, including the cause when present.
func (e *ProcessingError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

// Unwrap returns the wrapped cause, or nil.
func (e *ProcessingError) Unwrap() error {
	return e.cause
}
