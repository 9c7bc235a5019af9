package result

const (
	msgIsFailure = "Result is a failure"
	msgIsSuccess = "Result is a success"
)

// UnwrapError signals that a Result was asked for the payload it does not
// hold: a value from a failure, or an error from a success. It is a logic
// error caused at the call site, never a domain condition.
type UnwrapError struct {
	msg string
}

func (e *UnwrapError) Error() string {
	return e.msg
}

// IsUnwrapError reports whether v (typically a recovered panic value) is an
// UnwrapError.
func IsUnwrapError(v any) bool {
	_, ok := v.(*UnwrapError)
	return ok
}

// MustGet returns the held value. On a failure it panics: with the held
// error itself when the payload is fault-shaped (implements error), so the
// original fault identity is preserved, and with an UnwrapError otherwise.
func (r Result[T, E]) MustGet() T {
	if r.isSuccess {
		return r.value
	}
	if err, ok := any(r.err).(error); ok && err != nil {
		panic(err)
	}
	panic(&UnwrapError{msg: msgIsFailure})
}

// MustErr returns the held error. On a success it panics with an
// UnwrapError.
func (r Result[T, E]) MustErr() E {
	if r.isSuccess {
		panic(&UnwrapError{msg: msgIsSuccess})
	}
	return r.err
}
