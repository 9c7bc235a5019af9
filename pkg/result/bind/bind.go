package bind

import (
	"github.com/jsoizo/go-result/pkg/result"
)

// Binding wraps a result.Result to compose dependent fallible steps as
// straight-line code. Each step sees the unwrapped value of the previous
// one; the first failure stops the sequence and is carried to the end
// unchanged.
type Binding[T, E any] struct {
	res result.Result[T, E]
}

// Start begins a binding from an existing Result.
func Start[T, E any](r result.Result[T, E]) Binding[T, E] {
	return Binding[T, E]{res: r}
}

// FromValue begins a binding from a plain value. E is explicit so the error
// type can be named at the call site: bind.FromValue[error](7).
func FromValue[E, T any](v T) Binding[T, E] {
	return Start(result.Success[E](v))
}

// Result returns the underlying Result.
func (b Binding[T, E]) Result() result.Result[T, E] {
	return b.res
}

// Then feeds the current value into a step that returns a Result. The step
// never runs once the binding holds a failure.
func (b Binding[T, E]) Then(onSuccess func(T) result.Result[T, E]) Binding[T, E] {
	if b.res.IsFailure() {
		return b
	}
	return Binding[T, E]{res: onSuccess(b.res.GetOrZero())}
}

// Map transforms the current value with a pure function.
func (b Binding[T, E]) Map(onSuccess func(T) T) Binding[T, E] {
	return Binding[T, E]{res: result.Map(b.res, onSuccess)}
}

// Ensure triggers side effects for the current variant without changing it.
// Either handler may be nil.
func (b Binding[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Binding[T, E] {
	if v, ok := b.res.Get(); ok {
		if onSuccess != nil {
			onSuccess(v)
		}
		return b
	}
	if onFailure != nil {
		onFailure(b.res.MustErr())
	}
	return b
}

// Then feeds the current value into a step that switches the success type.
func Then[In, Out, E any](b Binding[In, E], onSuccess func(In) result.Result[Out, E]) Binding[Out, E] {
	return Binding[Out, E]{res: result.FlatMap(b.res, onSuccess)}
}

// Map transforms the current value into a new type.
func Map[In, Out, E any](b Binding[In, E], onSuccess func(In) Out) Binding[Out, E] {
	return Binding[Out, E]{res: result.Map(b.res, onSuccess)}
}

// Finally collapses the binding to a final value, delegating to result.Fold.
func Finally[T, E, Out any](b Binding[T, E], onSuccess func(T) Out, onFailure func(E) Out) Out {
	return result.Fold(b.res, onFailure, onSuccess)
}

// Steps runs an ordered list of same-type steps against a seed Result,
// threading the unwrapped value forward. The first failure is returned
// exactly as produced and no later step runs; if every step succeeds the
// last step's success is the final Result.
func Steps[T, E any](seed result.Result[T, E], steps ...func(T) result.Result[T, E]) result.Result[T, E] {
	current := seed
	for _, step := range steps {
		if current.IsFailure() {
			return current
		}
		current = step(current.GetOrZero())
	}
	return current
}
