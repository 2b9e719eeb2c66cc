package async

import "time"

// Timer fires a callback back onto its owning [Executor]'s goroutine after
// a delay, using [time.AfterFunc] under the hood. Go's standard timers fire
// on their own goroutine, so Timer routes its callback through
// [Executor.SpawnExternal] rather than calling it directly — the one place
// in this package that has to cross the single-threaded boundary by
// construction, the way the teacher's signal tests route a background
// goroutine's result back through the same kind of external entry point.
type Timer struct {
	ex    *Executor
	timer *time.Timer
	armed bool
}

// NewTimer returns an unarmed Timer bound to ex.
func NewTimer(ex *Executor) *Timer {
	return &Timer{ex: ex}
}

// Arm schedules fn to run on t's Executor after d. Arming an already-armed
// Timer first cancels the pending firing.
func (t *Timer) Arm(d time.Duration, fn func()) {
	t.Cancel()

	t.timer = time.AfterFunc(d, func() {
		t.ex.SpawnExternal(fn)
	})
	t.armed = true
}

// Cancel stops t's pending firing, if any. It returns true when t is not
// armed (never armed, or already cancelled) or when it stops the timer
// before it fires, in which case fn (passed to [Timer.Arm]) does not run.
// It returns false when the armed timer has already fired.
func (t *Timer) Cancel() bool {
	if !t.armed {
		return true
	}

	t.armed = false

	return t.timer.Stop()
}

// Armed reports whether t has been armed and not cancelled since. Firing
// does not clear it: a Timer that has fired and was never cancelled still
// reports true.
func (t *Timer) Armed() bool {
	return t.armed
}
