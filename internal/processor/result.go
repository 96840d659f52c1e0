package processor

// Result is the outcome of a single processing call. An absent input and
// a recovered batch failure both yield an empty Result (OK false); a
// successful call yields a present one.
type Result[T any] struct {
	// Value is the transformed payload. Meaningful only when OK is true.
	Value T

	// OK reports whether the result is present.
	OK bool
}

// Present wraps a value in a present Result.
func Present[T any](value T) Result[T] {
	return Result[T]{Value: value, OK: true}
}

// Empty returns an absent Result.
func Empty[T any]() Result[T] {
	return Result[T]{}
}

// OrElse returns the result value when present, or fallback otherwise.
func (r Result[T]) OrElse(fallback T) T {
	if r.OK {
		return r.Value
	}
	return fallback
}
