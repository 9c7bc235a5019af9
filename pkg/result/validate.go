package result

// Validate lifts input into a Result by running a validation over it: valid
// input becomes a success, invalid input a failure holding the reported
// error.
func Validate[T, E any](input T, validate func(in T) (valid bool, err E)) Result[T, E] {
	return AndValidate(Success[E](input), validate)
}

// AndValidate applies a validation to the successful value of an existing
// Result, failing it when the validation rejects. Failures pass through.
func AndValidate[T, E any](r Result[T, E], validate func(in T) (valid bool, err E)) Result[T, E] {
	if r.isSuccess {
		if valid, err := validate(r.value); !valid {
			return Failure[T](err)
		}
	}
	return r
}

// FailIf fails a success when maybeErr reports an error for its value.
// Failures pass through and maybeErr never runs.
func FailIf[T, E any](r Result[T, E], maybeErr func(in T) (E, bool)) Result[T, E] {
	if r.isSuccess {
		if err, failed := maybeErr(r.value); failed {
			return Failure[T](err)
		}
	}
	return r
}
