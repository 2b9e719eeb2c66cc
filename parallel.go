package async

import "iter"

// ParallelForEachSeq is [ParallelForEach] over an [iter.Seq]: every element
// yielded by seq is started before any of them is necessarily waited on.
func ParallelForEachSeq[E any](seq iter.Seq[E], action func(E) Future[Void]) Future[Void] {
	next, stop := iter.Pull(seq)
	defer stop()

	return ParallelForEach(next, action)
}

// ParallelForEachSlice invokes action once per element of items,
// concurrently (in the cooperative sense: every invocation is started
// before any of them necessarily finishes), and returns a Future that
// resolves once every invocation has. If one or more invocations fail, the
// returned Future fails with one of their errors: among the invocations
// already failed once every one has been started, the earliest in element
// order; if none had failed by then, the first to fail afterwards, in
// completion order.
//
// Every invocation runs regardless of whether an earlier one failed:
// ParallelForEachSlice never cancels outstanding work.
func ParallelForEachSlice[E any](items []E, action func(E) Future[Void]) Future[Void] {
	if len(items) == 0 {
		return FuturizeValue(Void{})
	}

	pending := make([]Future[Void], len(items))

	for i, item := range items {
		pending[i] = Futurize(func() Future[Void] { return action(item) })
	}

	return joinParallel(pending)
}

// ParallelForEach is the N-ary-iterator form of [ParallelForEachSlice]: it
// calls next until it returns ok == false, starting action for every
// yielded element before waiting on any of them.
func ParallelForEach[E any](next func() (E, bool), action func(E) Future[Void]) Future[Void] {
	var pending []Future[Void]

	for {
		item, ok := next()
		if !ok {
			break
		}

		pending = append(pending, Futurize(func() Future[Void] { return action(item) }))
	}

	if len(pending) == 0 {
		return FuturizeValue(Void{})
	}

	return joinParallel(pending)
}

// parallelState is the heap-allocated state backing [ParallelForEachSlice]
// and [ParallelForEach] once at least one sub-future is still pending.
// Allocated lazily, the way every combinator in this package only pays for
// its slow path when the fast path (everything already resolved) doesn't
// apply.
type parallelState struct {
	remaining int
	err       error
	pr        Promise[Void]
}

func joinParallel(pending []Future[Void]) Future[Void] {
	var immediateErr error

	incomplete := pending[:0:0]

	for _, f := range pending {
		if f.Available() {
			if _, err := f.Get(); err != nil && immediateErr == nil {
				immediateErr = err
			}

			continue
		}

		incomplete = append(incomplete, f)
	}

	if len(incomplete) == 0 {
		if immediateErr != nil {
			return FuturizeError[Void](immediateErr)
		}

		return FuturizeValue(Void{})
	}

	st := &parallelState{remaining: len(incomplete), err: immediateErr, pr: NewPromise[Void]()}

	// Process back to front, matching the teacher's (and Seastar's)
	// wait_for_one: the last-started branch is the one most likely to
	// still be in flight, so draining from the back keeps the common case
	// cheap.
	for i := len(incomplete) - 1; i >= 0; i-- {
		incomplete[i].ThenWrapped(func(_ Void, err error) {
			if err != nil && st.err == nil {
				st.err = err
			}

			st.remaining--

			if st.remaining == 0 {
				if st.err != nil {
					st.pr.SetError(st.err)
					return
				}

				st.pr.SetValue(Void{})
			}
		})
	}

	return st.pr.Future()
}
