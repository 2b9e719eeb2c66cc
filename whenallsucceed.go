package async

// Pair through Hextuple hold the plain, already-unwrapped values
// [WhenAllSucceed2] through [WhenAllSucceed6] resolve to: unlike
// [Tuple2]..[Tuple6], their fields are bare T, not Future[T], because every
// WhenAllSucceed* either fails as a whole or guarantees every input
// succeeded.
type Pair[A, B any] struct {
	First  A
	Second B
}

type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

type Quint[A, B, C, D, E any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
}

type Hextuple[A, B, C, D, E, F any] struct {
	First  A
	Second B
	Third  C
	Fourth D
	Fifth  E
	Sixth  F
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

// WhenAllSucceed2 waits for both fa and fb, the way [WhenAll2] does, but
// unwraps the result: if both succeeded it resolves to a [Pair] of their
// plain values; if either failed it fails with the first error, in
// argument order, having still waited for both to finish. This mirrors
// Seastar's when_all_succeed, which drains every input future before
// reporting whichever failure it saw first.
func WhenAllSucceed2[A, B any](fa FutureOrFunc[A], fb FutureOrFunc[B]) Future[Pair[A, B]] {
	pr := NewPromise[Pair[A, B]]()

	WhenAll2(fa, fb).ThenWrapped(func(t Tuple2[A, B], _ error) {
		va, erra := t.A.Get()
		vb, errb := t.B.Get()

		if err := firstErr(erra, errb); err != nil {
			pr.SetError(err)
			return
		}

		pr.SetValue(Pair[A, B]{First: va, Second: vb})
	})

	return pr.Future()
}

// WhenAllSucceed3 is [WhenAllSucceed2] for three Futures.
func WhenAllSucceed3[A, B, C any](fa FutureOrFunc[A], fb FutureOrFunc[B], fc FutureOrFunc[C]) Future[Triple[A, B, C]] {
	pr := NewPromise[Triple[A, B, C]]()

	WhenAll3(fa, fb, fc).ThenWrapped(func(t Tuple3[A, B, C], _ error) {
		va, erra := t.A.Get()
		vb, errb := t.B.Get()
		vc, errc := t.C.Get()

		if err := firstErr(erra, errb, errc); err != nil {
			pr.SetError(err)
			return
		}

		pr.SetValue(Triple[A, B, C]{First: va, Second: vb, Third: vc})
	})

	return pr.Future()
}

// WhenAllSucceed4 is [WhenAllSucceed2] for four Futures.
func WhenAllSucceed4[A, B, C, D any](fa FutureOrFunc[A], fb FutureOrFunc[B], fc FutureOrFunc[C], fd FutureOrFunc[D]) Future[Quad[A, B, C, D]] {
	pr := NewPromise[Quad[A, B, C, D]]()

	WhenAll4(fa, fb, fc, fd).ThenWrapped(func(t Tuple4[A, B, C, D], _ error) {
		va, erra := t.A.Get()
		vb, errb := t.B.Get()
		vc, errc := t.C.Get()
		vd, errd := t.D.Get()

		if err := firstErr(erra, errb, errc, errd); err != nil {
			pr.SetError(err)
			return
		}

		pr.SetValue(Quad[A, B, C, D]{First: va, Second: vb, Third: vc, Fourth: vd})
	})

	return pr.Future()
}

// WhenAllSucceed5 is [WhenAllSucceed2] for five Futures.
func WhenAllSucceed5[A, B, C, D, E any](fa FutureOrFunc[A], fb FutureOrFunc[B], fc FutureOrFunc[C], fd FutureOrFunc[D], fe FutureOrFunc[E]) Future[Quint[A, B, C, D, E]] {
	pr := NewPromise[Quint[A, B, C, D, E]]()

	WhenAll5(fa, fb, fc, fd, fe).ThenWrapped(func(t Tuple5[A, B, C, D, E], _ error) {
		va, erra := t.A.Get()
		vb, errb := t.B.Get()
		vc, errc := t.C.Get()
		vd, errd := t.D.Get()
		ve, erre := t.E.Get()

		if err := firstErr(erra, errb, errc, errd, erre); err != nil {
			pr.SetError(err)
			return
		}

		pr.SetValue(Quint[A, B, C, D, E]{First: va, Second: vb, Third: vc, Fourth: vd, Fifth: ve})
	})

	return pr.Future()
}

// WhenAllSucceed6 is [WhenAllSucceed2] for six Futures.
func WhenAllSucceed6[A, B, C, D, E, F any](fa FutureOrFunc[A], fb FutureOrFunc[B], fc FutureOrFunc[C], fd FutureOrFunc[D], fe FutureOrFunc[E], ff FutureOrFunc[F]) Future[Hextuple[A, B, C, D, E, F]] {
	pr := NewPromise[Hextuple[A, B, C, D, E, F]]()

	WhenAll6(fa, fb, fc, fd, fe, ff).ThenWrapped(func(t Tuple6[A, B, C, D, E, F], _ error) {
		va, erra := t.A.Get()
		vb, errb := t.B.Get()
		vc, errc := t.C.Get()
		vd, errd := t.D.Get()
		ve, erre := t.E.Get()
		vf, errf := t.F.Get()

		if err := firstErr(erra, errb, errc, errd, erre, errf); err != nil {
			pr.SetError(err)
			return
		}

		pr.SetValue(Hextuple[A, B, C, D, E, F]{First: va, Second: vb, Third: vc, Fourth: vd, Fifth: ve, Sixth: vf})
	})

	return pr.Future()
}

// WhenAllSucceedSlice is the homogeneous counterpart to
// [WhenAllSucceed2]..[WhenAllSucceed6]: it waits for every Future in fs and
// resolves to their plain values, in order, or fails with the first error
// among them, in index order, having still waited for every one to finish.
func WhenAllSucceedSlice[T any](fs []Future[T]) Future[[]T] {
	pr := NewPromise[[]T]()

	WhenAllSlice(fs).ThenWrapped(func(resolved []Future[T], _ error) {
		values := make([]T, len(resolved))

		for i, f := range resolved {
			v, err := f.Get()
			if err != nil {
				pr.SetError(err)
				return
			}

			values[i] = v
		}

		pr.SetValue(values)
	})

	return pr.Future()
}
