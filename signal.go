package async

// Signal is a broadcast, level-free notification: a caller that wants to
// know about the next occurrence of something calls Wait, once, and gets
// back a Future that resolves the next time Notify is called.
//
// Signal is the Future/Promise counterpart to the teacher's Coroutine-
// watched Signal: instead of registering a *Coroutine as a listener, Wait
// registers a [Promise] and Notify resolves every Promise registered since
// the last call.
//
// A Signal must not be shared by more than one [Executor].
type Signal struct {
	waiters []Promise[Void]
}

// Wait returns a Future that resolves the next time Notify is called. Each
// call to Wait registers a fresh, independent waiter; a Signal notified
// while nobody is waiting simply has no effect.
func (s *Signal) Wait() Future[Void] {
	pr := NewPromise[Void]()
	s.waiters = append(s.waiters, pr)
	return pr.Future()
}

// Notify resolves every Future currently outstanding from Wait. Callers
// that want to be notified again must call Wait again — a single Wait call
// observes exactly one Notify.
func (s *Signal) Notify() {
	waiters := s.waiters
	s.waiters = nil

	for _, pr := range waiters {
		pr.SetValue(Void{})
	}
}
