package result

import "errors"

// Errors is the accumulator's failure payload: the errors of every failed
// computation, in argument order. It is only ever constructed non-empty; a
// fully successful accumulation produces no Errors value at all.
type Errors[E any] []E

// First returns the first collected error.
func (es Errors[E]) First() E {
	return es[0]
}

// JoinErrors folds collected error-typed payloads into a single error via
// errors.Join, for callers bridging back to (T, error) code.
func JoinErrors(es Errors[error]) error {
	return errors.Join(es...)
}
