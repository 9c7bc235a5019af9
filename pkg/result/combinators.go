package result

// Map transforms the successful value, wrapping the output in a new success.
// On failure the input is passed through and onSuccess never runs.
func Map[In, Out, E any](r Result[In, E], onSuccess func(In) Out) Result[Out, E] {
	if r.isSuccess {
		return Success[E](onSuccess(r.value))
	}
	return FailureFrom[Out](r)
}

// MapError transforms the error payload, wrapping the output in a new
// failure. On success the input is passed through and onError never runs.
func MapError[T, In, Out any](r Result[T, In], onError func(In) Out) Result[T, Out] {
	if r.isSuccess {
		return SuccessFrom[Out](r)
	}
	return Failure[T](onError(r.err))
}

// FlatMap switches to the Result produced by onSuccess, without re-wrapping
// it. On failure the input is passed through and onSuccess never runs, which
// is what makes chains short-circuit at the first failure.
func FlatMap[In, Out, E any](r Result[In, E], onSuccess func(In) Result[Out, E]) Result[Out, E] {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return FailureFrom[Out](r)
}

// Fold collapses the Result to a plain value: exactly one of the two
// handlers runs, matching the held variant, and its return is Fold's return.
func Fold[T, E, Out any](r Result[T, E], onFailure func(E) Out, onSuccess func(T) Out) Out {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}

// Flatten collapses a nested success one level: the inner Result is returned
// directly. An outer failure is passed through under the inner success type.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.isSuccess {
		return r.value
	}
	return FailureFrom[T](r)
}

// Tap runs onSuccess with the held value for its side effect and returns the
// Result unchanged. No-op on failure.
func (r Result[T, E]) Tap(onSuccess func(T)) Result[T, E] {
	if r.isSuccess {
		onSuccess(r.value)
	}
	return r
}

// TapError runs onError with the held error for its side effect and returns
// the Result unchanged. No-op on success.
func (r Result[T, E]) TapError(onError func(E)) Result[T, E] {
	if !r.isSuccess {
		onError(r.err)
	}
	return r
}

// Recover turns a failure into a success wrapping onError's output. No-op on
// success.
func (r Result[T, E]) Recover(onError func(E) T) Result[T, E] {
	if r.isSuccess {
		return r
	}
	return Success[E](onError(r.err))
}

// RecoverWith switches a failure to the Result produced by onError, without
// re-wrapping it, so a recovery can itself fail. No-op on success.
func (r Result[T, E]) RecoverWith(onError func(E) Result[T, E]) Result[T, E] {
	if r.isSuccess {
		return r
	}
	return onError(r.err)
}
