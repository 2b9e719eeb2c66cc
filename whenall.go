package async

// Tuple2 through Tuple6 hold the Futures passed to the matching [WhenAll2]
// through [WhenAll6]: Seastar's original could rely on C++ variadic
// templates for this, but Go generics have no variadic type parameter, so
// this package instead exposes one fixed-arity family per tuple size, the
// idiomatic Go rendition of the same combinator.
type Tuple2[A, B any] struct {
	A Future[A]
	B Future[B]
}

type Tuple3[A, B, C any] struct {
	A Future[A]
	B Future[B]
	C Future[C]
}

type Tuple4[A, B, C, D any] struct {
	A Future[A]
	B Future[B]
	C Future[C]
	D Future[D]
}

type Tuple5[A, B, C, D, E any] struct {
	A Future[A]
	B Future[B]
	C Future[C]
	D Future[D]
	E Future[E]
}

type Tuple6[A, B, C, D, E, F any] struct {
	A Future[A]
	B Future[B]
	C Future[C]
	D Future[D]
	E Future[E]
	F Future[F]
}

// joinCounter runs done once arrive has been called remaining times. It
// backs every WhenAll* combinator's slow path: the fast path, every input
// already resolved, never allocates one.
type joinCounter struct {
	remaining int
	done      func()
}

func (c *joinCounter) arrive() {
	c.remaining--

	if c.remaining == 0 {
		c.done()
	}
}

// FutureOrFunc is what every WhenAll* tuple combinator accepts in place of
// a bare Future: either a Future[T] directly, or a nullary callable
// produced by [FutureFunc] that is invoked exactly once to produce one.
// WhenAll2 through WhenAll6 resolve their FutureOrFunc arguments strictly
// left to right, before looking at any of their readiness, matching
// Seastar's when_all, which accepts the same mix of already-started and
// not-yet-started futures.
type FutureOrFunc[T any] interface {
	resolveFutureOrFunc() Future[T]
}

// resolveFutureOrFunc implements [FutureOrFunc] for a bare Future: it is
// already a future, so there is nothing to invoke.
func (f Future[T]) resolveFutureOrFunc() Future[T] { return f }

type futureFunc[T any] func() Future[T]

// resolveFutureOrFunc implements [FutureOrFunc] for a nullary callable,
// invoking it through [Futurize] so a panicking callable fails the
// resulting Future instead of unwinding the caller's stack.
func (f futureFunc[T]) resolveFutureOrFunc() Future[T] { return Futurize(f) }

// FutureFunc wraps f as a [FutureOrFunc], to be invoked exactly once by
// whichever WhenAll* combinator it is passed to.
func FutureFunc[T any](f func() Future[T]) FutureOrFunc[T] { return futureFunc[T](f) }

// WhenAll2 waits for both fa and fb, regardless of whether either fails,
// and resolves to a [Tuple2] holding them both, already resolved. Inspect
// each field with [Future.Failed] and [Future.Get]; WhenAll2 itself never
// fails.
func WhenAll2[A, B any](fa FutureOrFunc[A], fb FutureOrFunc[B]) Future[Tuple2[A, B]] {
	rfa := fa.resolveFutureOrFunc()
	rfb := fb.resolveFutureOrFunc()

	return whenAll2(rfa, rfb)
}

func whenAll2[A, B any](fa Future[A], fb Future[B]) Future[Tuple2[A, B]] {
	remaining := 0

	if !fa.Available() {
		remaining++
	}

	if !fb.Available() {
		remaining++
	}

	if remaining == 0 {
		return FuturizeValue(Tuple2[A, B]{A: fa, B: fb})
	}

	pr := NewPromise[Tuple2[A, B]]()
	c := &joinCounter{remaining: remaining, done: func() { pr.SetValue(Tuple2[A, B]{A: fa, B: fb}) }}

	if !fb.Available() {
		fb.ThenWrapped(func(B, error) { c.arrive() })
	}

	if !fa.Available() {
		fa.ThenWrapped(func(A, error) { c.arrive() })
	}

	return pr.Future()
}

// WhenAll3 is [WhenAll2] for three Futures.
func WhenAll3[A, B, C any](fa FutureOrFunc[A], fb FutureOrFunc[B], fc FutureOrFunc[C]) Future[Tuple3[A, B, C]] {
	rfa := fa.resolveFutureOrFunc()
	rfb := fb.resolveFutureOrFunc()
	rfc := fc.resolveFutureOrFunc()

	return whenAll3(rfa, rfb, rfc)
}

func whenAll3[A, B, C any](fa Future[A], fb Future[B], fc Future[C]) Future[Tuple3[A, B, C]] {
	remaining := 0

	for _, avail := range []bool{fa.Available(), fb.Available(), fc.Available()} {
		if !avail {
			remaining++
		}
	}

	mk := func() Tuple3[A, B, C] { return Tuple3[A, B, C]{A: fa, B: fb, C: fc} }

	if remaining == 0 {
		return FuturizeValue(mk())
	}

	pr := NewPromise[Tuple3[A, B, C]]()
	c := &joinCounter{remaining: remaining, done: func() { pr.SetValue(mk()) }}

	if !fc.Available() {
		fc.ThenWrapped(func(C, error) { c.arrive() })
	}

	if !fb.Available() {
		fb.ThenWrapped(func(B, error) { c.arrive() })
	}

	if !fa.Available() {
		fa.ThenWrapped(func(A, error) { c.arrive() })
	}

	return pr.Future()
}

// WhenAll4 is [WhenAll2] for four Futures.
func WhenAll4[A, B, C, D any](fa FutureOrFunc[A], fb FutureOrFunc[B], fc FutureOrFunc[C], fd FutureOrFunc[D]) Future[Tuple4[A, B, C, D]] {
	rfa := fa.resolveFutureOrFunc()
	rfb := fb.resolveFutureOrFunc()
	rfc := fc.resolveFutureOrFunc()
	rfd := fd.resolveFutureOrFunc()

	return whenAll4(rfa, rfb, rfc, rfd)
}

func whenAll4[A, B, C, D any](fa Future[A], fb Future[B], fc Future[C], fd Future[D]) Future[Tuple4[A, B, C, D]] {
	remaining := 0

	for _, avail := range []bool{fa.Available(), fb.Available(), fc.Available(), fd.Available()} {
		if !avail {
			remaining++
		}
	}

	mk := func() Tuple4[A, B, C, D] { return Tuple4[A, B, C, D]{A: fa, B: fb, C: fc, D: fd} }

	if remaining == 0 {
		return FuturizeValue(mk())
	}

	pr := NewPromise[Tuple4[A, B, C, D]]()
	c := &joinCounter{remaining: remaining, done: func() { pr.SetValue(mk()) }}

	if !fd.Available() {
		fd.ThenWrapped(func(D, error) { c.arrive() })
	}

	if !fc.Available() {
		fc.ThenWrapped(func(C, error) { c.arrive() })
	}

	if !fb.Available() {
		fb.ThenWrapped(func(B, error) { c.arrive() })
	}

	if !fa.Available() {
		fa.ThenWrapped(func(A, error) { c.arrive() })
	}

	return pr.Future()
}

// WhenAll5 is [WhenAll2] for five Futures.
func WhenAll5[A, B, C, D, E any](fa FutureOrFunc[A], fb FutureOrFunc[B], fc FutureOrFunc[C], fd FutureOrFunc[D], fe FutureOrFunc[E]) Future[Tuple5[A, B, C, D, E]] {
	rfa := fa.resolveFutureOrFunc()
	rfb := fb.resolveFutureOrFunc()
	rfc := fc.resolveFutureOrFunc()
	rfd := fd.resolveFutureOrFunc()
	rfe := fe.resolveFutureOrFunc()

	return whenAll5(rfa, rfb, rfc, rfd, rfe)
}

func whenAll5[A, B, C, D, E any](fa Future[A], fb Future[B], fc Future[C], fd Future[D], fe Future[E]) Future[Tuple5[A, B, C, D, E]] {
	remaining := 0

	for _, avail := range []bool{fa.Available(), fb.Available(), fc.Available(), fd.Available(), fe.Available()} {
		if !avail {
			remaining++
		}
	}

	mk := func() Tuple5[A, B, C, D, E] { return Tuple5[A, B, C, D, E]{A: fa, B: fb, C: fc, D: fd, E: fe} }

	if remaining == 0 {
		return FuturizeValue(mk())
	}

	pr := NewPromise[Tuple5[A, B, C, D, E]]()
	c := &joinCounter{remaining: remaining, done: func() { pr.SetValue(mk()) }}

	if !fe.Available() {
		fe.ThenWrapped(func(E, error) { c.arrive() })
	}

	if !fd.Available() {
		fd.ThenWrapped(func(D, error) { c.arrive() })
	}

	if !fc.Available() {
		fc.ThenWrapped(func(C, error) { c.arrive() })
	}

	if !fb.Available() {
		fb.ThenWrapped(func(B, error) { c.arrive() })
	}

	if !fa.Available() {
		fa.ThenWrapped(func(A, error) { c.arrive() })
	}

	return pr.Future()
}

// WhenAll6 is [WhenAll2] for six Futures.
func WhenAll6[A, B, C, D, E, F any](fa FutureOrFunc[A], fb FutureOrFunc[B], fc FutureOrFunc[C], fd FutureOrFunc[D], fe FutureOrFunc[E], ff FutureOrFunc[F]) Future[Tuple6[A, B, C, D, E, F]] {
	rfa := fa.resolveFutureOrFunc()
	rfb := fb.resolveFutureOrFunc()
	rfc := fc.resolveFutureOrFunc()
	rfd := fd.resolveFutureOrFunc()
	rfe := fe.resolveFutureOrFunc()
	rff := ff.resolveFutureOrFunc()

	return whenAll6(rfa, rfb, rfc, rfd, rfe, rff)
}

func whenAll6[A, B, C, D, E, F any](fa Future[A], fb Future[B], fc Future[C], fd Future[D], fe Future[E], ff Future[F]) Future[Tuple6[A, B, C, D, E, F]] {
	remaining := 0

	for _, avail := range []bool{fa.Available(), fb.Available(), fc.Available(), fd.Available(), fe.Available(), ff.Available()} {
		if !avail {
			remaining++
		}
	}

	mk := func() Tuple6[A, B, C, D, E, F] {
		return Tuple6[A, B, C, D, E, F]{A: fa, B: fb, C: fc, D: fd, E: fe, F: ff}
	}

	if remaining == 0 {
		return FuturizeValue(mk())
	}

	pr := NewPromise[Tuple6[A, B, C, D, E, F]]()
	c := &joinCounter{remaining: remaining, done: func() { pr.SetValue(mk()) }}

	if !ff.Available() {
		ff.ThenWrapped(func(F, error) { c.arrive() })
	}

	if !fe.Available() {
		fe.ThenWrapped(func(E, error) { c.arrive() })
	}

	if !fd.Available() {
		fd.ThenWrapped(func(D, error) { c.arrive() })
	}

	if !fc.Available() {
		fc.ThenWrapped(func(C, error) { c.arrive() })
	}

	if !fb.Available() {
		fb.ThenWrapped(func(B, error) { c.arrive() })
	}

	if !fa.Available() {
		fa.ThenWrapped(func(A, error) { c.arrive() })
	}

	return pr.Future()
}

// WhenAllSlice is the homogeneous, variable-arity counterpart to
// [WhenAll2]..[WhenAll6]: it waits for every Future in fs and resolves to
// fs itself, each element now resolved.
func WhenAllSlice[T any](fs []Future[T]) Future[[]Future[T]] {
	if len(fs) == 0 {
		return FuturizeValue([]Future[T]{})
	}

	out := append([]Future[T]{}, fs...)

	remaining := 0

	for _, f := range out {
		if !f.Available() {
			remaining++
		}
	}

	if remaining == 0 {
		return FuturizeValue(out)
	}

	pr := NewPromise[[]Future[T]]()
	c := &joinCounter{remaining: remaining, done: func() { pr.SetValue(out) }}

	for i := len(out) - 1; i >= 0; i-- {
		if !out[i].Available() {
			out[i].ThenWrapped(func(T, error) { c.arrive() })
		}
	}

	return pr.Future()
}
