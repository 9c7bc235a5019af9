package acc

import (
	"github.com/jsoizo/go-result/pkg/result"
)

// push appends r's error to es when r holds a failure.
func push[T, E any](es result.Errors[E], r result.Result[T, E]) result.Errors[E] {
	if err, failed := r.Err(); failed {
		return append(es, err)
	}
	return es
}

// Accumulate2 evaluates both computations unconditionally, in argument
// order. If any fail, their errors are collected in that order into a single
// failure and transform never runs; otherwise the successes are passed to
// transform and its output wrapped in a success. The same contract applies
// to every arity up to Accumulate9.
func Accumulate2[A, B, Out, E any](
	fa func() result.Result[A, E],
	fb func() result.Result[B, E],
	transform func(A, B) Out,
) result.Result[Out, result.Errors[E]] {
	ra, rb := fa(), fb()

	var es result.Errors[E]
	es = push(es, ra)
	es = push(es, rb)
	if len(es) > 0 {
		return result.Failure[Out](es)
	}
	return result.Success[result.Errors[E]](transform(ra.GetOrZero(), rb.GetOrZero()))
}

func Accumulate3[A, B, C, Out, E any](
	fa func() result.Result[A, E],
	fb func() result.Result[B, E],
	fc func() result.Result[C, E],
	transform func(A, B, C) Out,
) result.Result[Out, result.Errors[E]] {
	ra, rb, rc := fa(), fb(), fc()

	var es result.Errors[E]
	es = push(es, ra)
	es = push(es, rb)
	es = push(es, rc)
	if len(es) > 0 {
		return result.Failure[Out](es)
	}
	return result.Success[result.Errors[E]](transform(ra.GetOrZero(), rb.GetOrZero(), rc.GetOrZero()))
}

func Accumulate4[A, B, C, D, Out, E any](
	fa func() result.Result[A, E],
	fb func() result.Result[B, E],
	fc func() result.Result[C, E],
	fd func() result.Result[D, E],
	transform func(A, B, C, D) Out,
) result.Result[Out, result.Errors[E]] {
	ra, rb, rc, rd := fa(), fb(), fc(), fd()

	var es result.Errors[E]
	es = push(es, ra)
	es = push(es, rb)
	es = push(es, rc)
	es = push(es, rd)
	if len(es) > 0 {
		return result.Failure[Out](es)
	}
	return result.Success[result.Errors[E]](transform(
		ra.GetOrZero(), rb.GetOrZero(), rc.GetOrZero(), rd.GetOrZero()))
}

func Accumulate5[A, B, C, D, F, Out, E any](
	fa func() result.Result[A, E],
	fb func() result.Result[B, E],
	fc func() result.Result[C, E],
	fd func() result.Result[D, E],
	ff func() result.Result[F, E],
	transform func(A, B, C, D, F) Out,
) result.Result[Out, result.Errors[E]] {
	ra, rb, rc, rd, rf := fa(), fb(), fc(), fd(), ff()

	var es result.Errors[E]
	es = push(es, ra)
	es = push(es, rb)
	es = push(es, rc)
	es = push(es, rd)
	es = push(es, rf)
	if len(es) > 0 {
		return result.Failure[Out](es)
	}
	return result.Success[result.Errors[E]](transform(
		ra.GetOrZero(), rb.GetOrZero(), rc.GetOrZero(), rd.GetOrZero(), rf.GetOrZero()))
}

func Accumulate6[A, B, C, D, F, G, Out, E any](
	fa func() result.Result[A, E],
	fb func() result.Result[B, E],
	fc func() result.Result[C, E],
	fd func() result.Result[D, E],
	ff func() result.Result[F, E],
	fg func() result.Result[G, E],
	transform func(A, B, C, D, F, G) Out,
) result.Result[Out, result.Errors[E]] {
	ra, rb, rc, rd, rf, rg := fa(), fb(), fc(), fd(), ff(), fg()

	var es result.Errors[E]
	es = push(es, ra)
	es = push(es, rb)
	es = push(es, rc)
	es = push(es, rd)
	es = push(es, rf)
	es = push(es, rg)
	if len(es) > 0 {
		return result.Failure[Out](es)
	}
	return result.Success[result.Errors[E]](transform(
		ra.GetOrZero(), rb.GetOrZero(), rc.GetOrZero(), rd.GetOrZero(),
		rf.GetOrZero(), rg.GetOrZero()))
}

func Accumulate7[A, B, C, D, F, G, H, Out, E any](
	fa func() result.Result[A, E],
	fb func() result.Result[B, E],
	fc func() result.Result[C, E],
	fd func() result.Result[D, E],
	ff func() result.Result[F, E],
	fg func() result.Result[G, E],
	fh func() result.Result[H, E],
	transform func(A, B, C, D, F, G, H) Out,
) result.Result[Out, result.Errors[E]] {
	ra, rb, rc, rd, rf, rg, rh := fa(), fb(), fc(), fd(), ff(), fg(), fh()

	var es result.Errors[E]
	es = push(es, ra)
	es = push(es, rb)
	es = push(es, rc)
	es = push(es, rd)
	es = push(es, rf)
	es = push(es, rg)
	es = push(es, rh)
	if len(es) > 0 {
		return result.Failure[Out](es)
	}
	return result.Success[result.Errors[E]](transform(
		ra.GetOrZero(), rb.GetOrZero(), rc.GetOrZero(), rd.GetOrZero(),
		rf.GetOrZero(), rg.GetOrZero(), rh.GetOrZero()))
}

func Accumulate8[A, B, C, D, F, G, H, I, Out, E any](
	fa func() result.Result[A, E],
	fb func() result.Result[B, E],
	fc func() result.Result[C, E],
	fd func() result.Result[D, E],
	ff func() result.Result[F, E],
	fg func() result.Result[G, E],
	fh func() result.Result[H, E],
	fi func() result.Result[I, E],
	transform func(A, B, C, D, F, G, H, I) Out,
) result.Result[Out, result.Errors[E]] {
	ra, rb, rc, rd, rf, rg, rh, ri := fa(), fb(), fc(), fd(), ff(), fg(), fh(), fi()

	var es result.Errors[E]
	es = push(es, ra)
	es = push(es, rb)
	es = push(es, rc)
	es = push(es, rd)
	es = push(es, rf)
	es = push(es, rg)
	es = push(es, rh)
	es = push(es, ri)
	if len(es) > 0 {
		return result.Failure[Out](es)
	}
	return result.Success[result.Errors[E]](transform(
		ra.GetOrZero(), rb.GetOrZero(), rc.GetOrZero(), rd.GetOrZero(),
		rf.GetOrZero(), rg.GetOrZero(), rh.GetOrZero(), ri.GetOrZero()))
}

func Accumulate9[A, B, C, D, F, G, H, I, J, Out, E any](
	fa func() result.Result[A, E],
	fb func() result.Result[B, E],
	fc func() result.Result[C, E],
	fd func() result.Result[D, E],
	ff func() result.Result[F, E],
	fg func() result.Result[G, E],
	fh func() result.Result[H, E],
	fi func() result.Result[I, E],
	fj func() result.Result[J, E],
	transform func(A, B, C, D, F, G, H, I, J) Out,
) result.Result[Out, result.Errors[E]] {
	ra, rb, rc, rd, rf := fa(), fb(), fc(), fd(), ff()
	rg, rh, ri, rj := fg(), fh(), fi(), fj()

	var es result.Errors[E]
	es = push(es, ra)
	es = push(es, rb)
	es = push(es, rc)
	es = push(es, rd)
	es = push(es, rf)
	es = push(es, rg)
	es = push(es, rh)
	es = push(es, ri)
	es = push(es, rj)
	if len(es) > 0 {
		return result.Failure[Out](es)
	}
	return result.Success[result.Errors[E]](transform(
		ra.GetOrZero(), rb.GetOrZero(), rc.GetOrZero(), rd.GetOrZero(),
		rf.GetOrZero(), rg.GetOrZero(), rh.GetOrZero(), ri.GetOrZero(), rj.GetOrZero()))
}
