package a

import "result"

func missingFailure(r result.Result[int, string]) string {
	switch { // want `Match expression on Result type is not exhaustive\. Missing: Failure\.`
	case r.IsSuccess():
		return "ok"
	}
	return ""
}

func missingSuccess(r result.Result[int, string]) string {
	switch { // want `Match expression on Result type is not exhaustive\. Missing: Success\.`
	case r.IsFailure():
		return "bad"
	}
	return ""
}

func missingBoth(r result.Result[int, string]) string {
	switch { // want `Match expression on Result type is not exhaustive\. Missing: Success, Failure\.`
	case r.GetOrElse(0) > 1:
		return "big"
	}
	return ""
}

func bothCovered(r result.Result[int, string]) string {
	switch {
	case r.IsSuccess():
		return "ok"
	case r.IsFailure():
		return "bad"
	}
	return ""
}

func defaultCovered(r result.Result[int, string]) string {
	switch {
	case r.IsSuccess():
		return "ok"
	default:
		return "bad"
	}
}

func literalTrueCovered(r result.Result[int, string]) string {
	switch {
	case r.IsSuccess():
		return "ok"
	case true:
		return "bad"
	}
	return ""
}

func switchTrueForm(r result.Result[int, string]) string {
	switch true { // want `Match expression on Result type is not exhaustive\. Missing: Failure\.`
	case r.IsSuccess():
		return "ok"
	}
	return ""
}

func pointerDiscriminant(r *result.Result[int, string]) string {
	switch { // want `Match expression on Result type is not exhaustive\. Missing: Success\.`
	case r.IsFailure():
		return "bad"
	}
	return ""
}

// Two discriminants: covering one does not satisfy the other.
func twoDiscriminants(a, b result.Result[int, string]) string {
	switch { // want `Match expression on Result type is not exhaustive\. Missing: Failure\.`
	case a.IsSuccess() && b.IsSuccess():
		return "both"
	case b.IsFailure():
		return "b bad"
	}
	return ""
}

type outcome struct{ ok bool }

func (o outcome) IsSuccess() bool { return o.ok }

// Ordinary value dispatch: not a Result, no diagnostics regardless of shape.
func notAResult(o outcome, n int) string {
	switch {
	case o.IsSuccess():
		return "ok"
	case n > 0:
		return "positive"
	}
	return ""
}

// Tagged switch over a value is ordinary dispatch.
func taggedSwitch(r result.Result[int, string]) string {
	switch r.GetOrZero() {
	case 1:
		return "one"
	}
	return ""
}
