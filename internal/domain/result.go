package domain

// Result is a two-variant container returned by every service operation for
// expected domain outcomes. A Result is either a Success carrying a value or
// a Failure carrying a *DomainError. Infrastructure faults never travel
// inside a Result; they are returned as a plain error alongside it.
//
// Callers must branch on IsFailure before unwrapping. Reading Value on a
// failure (or Err on a success) returns the zero value.
type Result[T any] struct {
	value T
	err   *DomainError
}

// Success builds the success variant.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure builds the failure variant.
func Failure[T any](err *DomainError) Result[T] {
	return Result[T]{err: err}
}

// IsFailure reports whether the result carries a domain error.
func (r Result[T]) IsFailure() bool { return r.err != nil }

// Value returns the success value.
func (r Result[T]) Value() T { return r.value }

// Err returns the domain error, or nil for a success.
func (r Result[T]) Err() *DomainError { return r.err }
