package async

// Repeat calls action repeatedly, stopping once it returns a Future that
// resolves to false, or fails. Each call to action happens only after the
// previous one's Future has resolved.
//
// Repeat checks [Executor.NeedPreempt] once per iteration; when the quota
// trips it reschedules the rest of the loop as a task on ex and returns
// control to the reactor immediately, the way the teacher's coroutine
// machinery and Seastar's repeater both yield mid-loop rather than holding
// the goroutine.
func Repeat(ex *Executor, action func() Future[bool]) Future[Void] {
	pr := NewPromise[Void]()
	runRepeat(ex, action, pr)
	return pr.Future()
}

func runRepeat(ex *Executor, action func() Future[bool], pr Promise[Void]) {
	for {
		f := Futurize(action)

		if !f.Available() {
			f.ThenWrapped(func(cont bool, err error) {
				if err != nil {
					pr.SetError(err)
					return
				}

				if !cont {
					pr.SetValue(Void{})
					return
				}

				runRepeat(ex, action, pr)
			})

			return
		}

		cont, err := f.Get()
		if err != nil {
			pr.SetError(err)
			return
		}

		if !cont {
			pr.SetValue(Void{})
			return
		}

		if ex.NeedPreempt() {
			ex.Spawn(func() { runRepeat(ex, action, pr) })
			return
		}
	}
}

// RepeatUntilValue calls action repeatedly until it resolves to an
// [Optional] with Valid set (see [Done]), and resolves to that Optional's
// Value. It is [Repeat] with a result threaded out of the final iteration
// instead of a bare continue/stop flag.
func RepeatUntilValue[T any](ex *Executor, action func() Future[Optional[T]]) Future[T] {
	pr := NewPromise[T]()
	runRepeatUntilValue(ex, action, pr)
	return pr.Future()
}

func runRepeatUntilValue[T any](ex *Executor, action func() Future[Optional[T]], pr Promise[T]) {
	for {
		f := Futurize(action)

		if !f.Available() {
			f.ThenWrapped(func(opt Optional[T], err error) {
				if err != nil {
					pr.SetError(err)
					return
				}

				if opt.Valid {
					pr.SetValue(opt.Value)
					return
				}

				runRepeatUntilValue(ex, action, pr)
			})

			return
		}

		opt, err := f.Get()
		if err != nil {
			pr.SetError(err)
			return
		}

		if opt.Valid {
			pr.SetValue(opt.Value)
			return
		}

		if ex.NeedPreempt() {
			ex.Spawn(func() { runRepeatUntilValue(ex, action, pr) })
			return
		}
	}
}
