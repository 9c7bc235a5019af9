package result

import "fmt"

// PanicError carries a recovered panic value that was not itself an error.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("recovered panic: %v", e.Value)
}

// Catch invokes fn and captures any panic it raises as a failure: a
// fault-shaped panic value (an error) becomes the failure payload directly,
// anything else is wrapped in a PanicError preserving the original object.
// Catch never panics itself and always returns a Result.
func Catch[T any](fn func() T) (res Result[T, error]) {
	defer func() {
		if rec := recover(); rec != nil {
			if err, ok := rec.(error); ok {
				res = Failure[T](err)
				return
			}
			res = Failure[T, error](&PanicError{Value: rec})
		}
	}()
	return Success[error](fn())
}

// Try adapts Go's native (T, error) fault shape to a Result.
func Try[T any](fn func() (T, error)) Result[T, error] {
	v, err := fn()
	if err != nil {
		return Failure[T](err)
	}
	return Success[error](v)
}

// From converts an already-evaluated (value, error) pair to a Result.
func From[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[error](v)
}
