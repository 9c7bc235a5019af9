package result

import (
	"errors"
	"testing"
)

func TestCatch_Completes(t *testing.T) {
	t.Parallel()
	r := Catch(func() int { return 5 })

	if v, ok := r.Get(); !ok || v != 5 {
		t.Fatalf("expected success with 5, got (%v, %v)", v, ok)
	}
}

func TestCatch_PanicWithError(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	r := Catch(func() int { panic(boom) })

	if !r.IsFailure() {
		t.Fatalf("expected failure")
	}
	if err, _ := r.Err(); err != boom {
		t.Fatalf("expected the original fault object, got %v", err)
	}
}

func TestCatch_PanicWithNonError(t *testing.T) {
	t.Parallel()
	r := Catch(func() string { panic(42) })

	err, _ := r.Err()
	var pe *PanicError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PanicError, got %v", err)
	}
	if pe.Value != 42 {
		t.Fatalf("expected original panic value preserved, got %v", pe.Value)
	}
}

func TestTry(t *testing.T) {
	t.Parallel()
	bad := errors.New("bad")

	r := Try(func() (int, error) { return 3, nil })
	if v := r.GetOrElse(0); v != 3 {
		t.Fatalf("expected 3, got %v", v)
	}

	f := Try(func() (int, error) { return 0, bad })
	if err, _ := f.Err(); err != bad {
		t.Fatalf("expected bad, got %v", err)
	}
}

func TestFrom(t *testing.T) {
	t.Parallel()
	if r := From(7, nil); !r.IsSuccess() || r.GetOrZero() != 7 {
		t.Fatalf("expected success with 7")
	}
	if r := From(0, errors.New("e")); !r.IsFailure() {
		t.Fatalf("expected failure")
	}
}
