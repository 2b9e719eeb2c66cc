package async

// Void is the result type of a [Future] that carries no value, only a
// completion signal and possibly an error.
type Void struct{}

// Optional is the result of one step of [RepeatUntilValue]'s action: either
// "keep going" (the zero value) or "stop, and here is the final value" (see
// [Done]).
type Optional[T any] struct {
	Value T
	Valid bool
}

// Done returns an Optional signalling that a loop driven by
// [RepeatUntilValue] should stop, yielding v as the loop's result.
func Done[T any](v T) Optional[T] { return Optional[T]{Value: v, Valid: true} }

// cell is the shared, heap-allocated storage behind a matching
// [Future]/[Promise] pair. It is intentionally unsynchronized: every access
// to a cell happens on the single goroutine that owns the [Executor] the
// cell was created under.
type cell[T any] struct {
	ready bool
	value T
	err   error
	cont  func(T, error)
}

// Promise is the write end of a one-shot [Future]. Exactly one of
// [Promise.SetValue] or [Promise.SetError] may be called, exactly once,
// across the lifetime of a Promise.
type Promise[T any] struct {
	cell *cell[T]
}

// NewPromise returns a new, unsatisfied Promise; call [Promise.Future] to
// obtain the Future that observes it.
func NewPromise[T any]() Promise[T] {
	return Promise[T]{cell: &cell[T]{}}
}

// Future returns the Future this Promise will complete.
func (pr Promise[T]) Future() Future[T] {
	return Future[T]{cell: pr.cell}
}

// SetValue satisfies the Promise with v.
func (pr Promise[T]) SetValue(v T) {
	pr.complete(v, nil)
}

// SetError satisfies the Promise with err. Passing a nil err is a bug in
// the caller and panics, since it would make a "failed" Future
// indistinguishable from a successful one.
func (pr Promise[T]) SetError(err error) {
	if err == nil {
		panic("async: Promise.SetError called with a nil error")
	}

	var zero T

	pr.complete(zero, err)
}

func (pr Promise[T]) complete(v T, err error) {
	c := pr.cell

	if c.ready {
		panic("async: promise already satisfied")
	}

	c.value, c.err, c.ready = v, err, true

	if cont := c.cont; cont != nil {
		c.cont = nil
		cont(v, err)
	}
}

// ForwardTo completes pr with whatever f resolves to, once it resolves.
// It is shorthand for a [Future.ThenWrapped] that calls pr.SetValue or
// pr.SetError.
func ForwardTo[T any](f Future[T], pr Promise[T]) {
	f.ThenWrapped(func(v T, err error) {
		if err != nil {
			pr.SetError(err)
			return
		}

		pr.SetValue(v)
	})
}

// Future is the read end of a one-shot asynchronous value cell. The zero
// value is not useful; obtain a Future from [NewPromise], [Futurize], or
// one of this package's combinators.
type Future[T any] struct {
	cell *cell[T]
}

// Available reports whether f has resolved, successfully or not.
func (f Future[T]) Available() bool {
	return f.cell.ready
}

// Failed reports whether f has resolved with an error. It panics if f has
// not resolved yet.
func (f Future[T]) Failed() bool {
	if !f.cell.ready {
		panic("async: Future.Failed called on an unresolved future")
	}

	return f.cell.err != nil
}

// Get returns f's value and error. It panics if f has not resolved yet;
// callers that don't already know f is available should use
// [Future.ThenWrapped] instead.
func (f Future[T]) Get() (T, error) {
	if !f.cell.ready {
		panic("async: Future.Get called on an unresolved future")
	}

	return f.cell.value, f.cell.err
}

// ThenWrapped attaches cont as f's continuation. If f is already resolved,
// cont runs immediately, on the caller's stack. Otherwise it runs later,
// whenever the owning Promise is satisfied — by convention, on the owning
// Executor's goroutine.
//
// An unresolved Future holds one continuation; a second call on it panics.
// Once f has resolved, nothing is stored: each call runs its cont
// immediately, and a second call does not panic. Combinators that need to
// observe a Future more than once should attach a single continuation of
// their own and fan out from there.
func (f Future[T]) ThenWrapped(cont func(T, error)) {
	c := f.cell

	if c.ready {
		cont(c.value, c.err)
		return
	}

	if c.cont != nil {
		panic("async: future already has a continuation attached")
	}

	c.cont = cont
}

// ForwardTo completes pr with f's result, once available. See the
// package-level [ForwardTo].
func (f Future[T]) ForwardTo(pr Promise[T]) {
	ForwardTo(f, pr)
}

// Ignore discards f's result, attaching a no-op continuation. Prefer the
// package-level [Ignore], which takes an [Executor], where one is in scope,
// so that a discarded error is not silently lost.
func (f Future[T]) Ignore() {
	f.ThenWrapped(func(T, error) {})
}

// Ignore discards f's result the way [Future.Ignore] does, but first routes
// any error through ex's [DiagnosticLogger] as an "exceptional future
// ignored" diagnostic, the one situation in this package that produces
// output outside of a Future's own error channel.
func Ignore[T any](ex *Executor, f Future[T]) {
	f.ThenWrapped(func(_ T, err error) {
		if err != nil {
			ex.logger.ExceptionalFutureIgnored(err)
		}
	})
}

// FuturizeValue returns an already-successful Future holding v.
func FuturizeValue[T any](v T) Future[T] {
	pr := NewPromise[T]()
	pr.SetValue(v)
	return pr.Future()
}

// FuturizeError returns an already-failed Future holding err.
func FuturizeError[T any](err error) Future[T] {
	pr := NewPromise[T]()
	pr.SetError(err)
	return pr.Future()
}

// FuturizeFunc adapts a plain (T, error)-returning callable into a Future,
// recovering any panic f raises into the resulting Future's error instead
// of letting it propagate.
func FuturizeFunc[T any](f func() (T, error)) Future[T] {
	var pc panicstack

	var v T
	var err error

	if pc.try(func() { v, err = f() }) {
		if err != nil {
			return FuturizeError[T](err)
		}

		return FuturizeValue(v)
	}

	return FuturizeError[T](pc.err())
}

// Futurize adapts a callable that already returns a Future, recovering any
// panic it raises (before it returns its Future, or while constructing it)
// into the resulting Future's error. Every combinator in this package that
// accepts a user-supplied Future-returning callable invokes it through
// Futurize, so a panicking Action, Mapper, or Reducer fails the
// combinator's Future rather than unwinding the Executor's stack.
func Futurize[T any](f func() Future[T]) Future[T] {
	var pc panicstack

	var result Future[T]

	if pc.try(func() { result = f() }) {
		return result
	}

	return FuturizeError[T](pc.err())
}
