package result

type Result[T, E any] struct {
	value     T
	err       E
	isSuccess bool
}

func Success[E, T any](v T) Result[T, E] {
	return Result[T, E]{value: v, isSuccess: true}
}

func Failure[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

func (r Result[T, E]) IsSuccess() bool { return r.isSuccess }

func (r Result[T, E]) IsFailure() bool { return !r.isSuccess }

func (r Result[T, E]) GetOrElse(def T) T {
	if r.isSuccess {
		return r.value
	}
	return def
}

func (r Result[T, E]) GetOrZero() T { return r.value }
