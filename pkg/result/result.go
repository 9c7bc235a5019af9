package result

import (
	"time"

	"github.com/google/uuid"
)

// Result is a two-variant sum type: either a success holding a value of
// type T or a failure holding an error of type E. Exactly one variant is
// ever populated; there is no "both" or "neither" state. Instances are
// immutable value holders: combinators return a new Result or the original
// unchanged, never a mutated one.
//
// The zero Result is a failure holding E's zero value; construct through
// Success, Failure or one of the adapters instead.
type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
}

// Success wraps v in a success Result. E is explicit so the error type can
// be named at the call site while T is inferred: result.Success[error](42).
func Success[E, T any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps err in a failure Result. T is explicit so the success type
// can be named at the call site while E is inferred: result.Failure[int](err).
func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom rebuilds a failure under a new success type, carrying the
// error payload and the identity metadata over so the failure keeps its id
// across a type-changing passthrough. from must hold a failure.
func FailureFrom[Out, In, E any](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// SuccessFrom rebuilds a success under a new error type, carrying the value
// and the identity metadata over. from must hold a success.
func SuccessFrom[F, T, E any](from Result[T, E]) Result[T, F] {
	return Result[T, F]{
		value:     from.value,
		isSuccess: true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// IsSuccess reports whether the Result holds a value.
func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

// IsFailure reports whether the Result holds an error.
func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

// Get returns the held value and true on success, T's zero value and false
// on failure.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.isSuccess
}

// GetOrZero returns the held value, or T's zero value on failure.
func (r Result[T, E]) GetOrZero() T {
	return r.value
}

// GetOrElse returns the held value, or def on failure.
func (r Result[T, E]) GetOrElse(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

// Err returns the held error and true on failure, E's zero value and false
// on success.
func (r Result[T, E]) Err() (E, bool) {
	return r.err, !r.isSuccess
}

// ErrOrElse returns the held error, or def on success.
func (r Result[T, E]) ErrOrElse(def E) E {
	if r.isSuccess {
		return def
	}
	return r.err
}

// CreatedAt returns the creation time (UTC).
func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

// ID returns the identity assigned at construction. Passthrough combinators
// preserve it; value-producing ones assign a fresh one.
func (r Result[T, E]) ID() uuid.UUID {
	return r.id
}
