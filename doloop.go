package async

import "iter"

// DoForEachSeq is [DoForEach] over an [iter.Seq]: each element yielded by
// seq is processed in turn, the next one pulled only once the previous
// element's action has resolved.
func DoForEachSeq[E any](ex *Executor, seq iter.Seq[E], action func(E) Future[Void]) Future[Void] {
	next, stop := iter.Pull(seq)

	result := DoForEach(ex, next, action)

	pr := NewPromise[Void]()

	result.ThenWrapped(func(v Void, err error) {
		stop()

		if err != nil {
			pr.SetError(err)
			return
		}

		pr.SetValue(v)
	})

	return pr.Future()
}

// DoUntil calls action repeatedly, checking stop before every call
// (including the first); the loop ends, successfully, the first time stop
// reports true. If action fails, DoUntil stops immediately and fails with
// that error.
func DoUntil(ex *Executor, stop func() bool, action func() Future[Void]) Future[Void] {
	return Repeat(ex, func() Future[bool] {
		if stop() {
			return FuturizeValue(false)
		}

		return mapVoidToContinue(Futurize(action))
	})
}

func mapVoidToContinue(f Future[Void]) Future[bool] {
	pr := NewPromise[bool]()

	f.ThenWrapped(func(_ Void, err error) {
		if err != nil {
			pr.SetError(err)
			return
		}

		pr.SetValue(true)
	})

	return pr.Future()
}

// DoForEach calls action once per element yielded by next, in order, each
// invocation waiting for the previous one's Future before starting — the
// sequential counterpart to [ParallelForEach]. It stops at the first
// failure.
func DoForEach[E any](ex *Executor, next func() (E, bool), action func(E) Future[Void]) Future[Void] {
	return Repeat(ex, func() Future[bool] {
		item, ok := next()
		if !ok {
			return FuturizeValue(false)
		}

		return mapVoidToContinue(Futurize(func() Future[Void] { return action(item) }))
	})
}

// DoForEachSlice is the slice-specific form of [DoForEach].
func DoForEachSlice[E any](ex *Executor, items []E, action func(E) Future[Void]) Future[Void] {
	i := 0

	return DoForEach(ex, func() (E, bool) {
		if i >= len(items) {
			var zero E
			return zero, false
		}

		item := items[i]
		i++

		return item, true
	}, action)
}

// KeepDoing calls action over and over, with no stopping condition other
// than failure: the returned Future only ever resolves when action fails,
// carrying that error. It is meant for background loops (a poller, a
// connection's read loop) that run for as long as their owning Executor
// does.
func KeepDoing(ex *Executor, action func() Future[Void]) Future[Void] {
	return Repeat(ex, func() Future[bool] {
		return mapVoidToContinue(Futurize(action))
	})
}
