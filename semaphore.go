package async

import "slices"

// Semaphore bounds concurrent access to a resource, the way it did in the
// teacher's Coroutine-based version, but waiters now get a plain
// Future[Void] from Acquire instead of a Task to drive through a
// Coroutine.
//
// A Semaphore must not be shared by more than one [Executor].
type Semaphore struct {
	size    int64
	cur     int64
	waiters []*semaphoreWaiter
}

type semaphoreWaiter struct {
	n  int64
	pr Promise[Void]
}

// NewSemaphore creates a new weighted semaphore with the given maximum
// combined weight.
func NewSemaphore(n int64) *Semaphore {
	return &Semaphore{size: n}
}

// Acquire returns a Future that resolves once a weight of n has been
// acquired from s. It never resolves if n exceeds s's total size.
func (s *Semaphore) Acquire(n int64) Future[Void] {
	if n < 0 {
		panic("async(Semaphore): negative weight")
	}

	if s.size-s.cur >= n {
		s.cur += n
		return FuturizeValue(Void{})
	}

	w := &semaphoreWaiter{n: n, pr: NewPromise[Void]()}
	s.waiters = append(s.waiters, w)

	return w.pr.Future()
}

// Release releases the semaphore with a weight of n, resolving as many
// queued Acquire Futures, in FIFO order, as now fit.
func (s *Semaphore) Release(n int64) {
	if n < 0 {
		panic("async(Semaphore): negative weight")
	}

	s.cur -= n

	if s.cur < 0 {
		panic("async(Semaphore): released more than held")
	}

	s.notifyWaiters()
}

func (s *Semaphore) notifyWaiters() {
	satisfied := 0

	for _, w := range s.waiters {
		if s.size-s.cur < w.n {
			break
		}

		s.cur += w.n
		w.pr.SetValue(Void{})
		satisfied++
	}

	s.waiters = slices.Delete(s.waiters, 0, satisfied)
}
