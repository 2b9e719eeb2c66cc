// Package async is a library of asynchronous combinators running on top of
// a single-threaded, cooperative reactor.
//
// An [Executor] occupies exactly one goroutine while its Run method is on
// the stack; everything that happens inside that goroutine — resolving a
// [Promise], running a continuation, draining the task queue — happens
// without locking. A process can run many Executors, each pinned to its
// own goroutine, the way a thread-per-core runtime pins one reactor per
// core.
//
// # Futures and Promises
//
// A [Future] holds either nothing yet, a value, or an error. A [Promise] is
// its write end. Both are thin handles onto a shared cell; copying either
// is cheap and intentional.
//
// A continuation is attached to a Future with [Future.ThenWrapped]; an
// unresolved Future holds only one, and attaching a second one to it
// panics. If the Future is already resolved, the
// continuation runs immediately, on the caller's stack. Otherwise it runs
// later, on whichever goroutine eventually calls [Promise.SetValue] or
// [Promise.SetError] — which, by convention, is always the owning
// Executor's goroutine. Anything that completes a Promise from outside
// that goroutine (a timer firing, a background computation finishing) must
// hand the completion back in through [Executor.SpawnExternal].
//
// # Combinators
//
// The combinators in this package — [ParallelForEach], [Repeat],
// [DoUntil], [WhenAll2], [MapReduce], [WithTimeout], and their relatives —
// compose Future-returning operations into a single Future with well
// defined completion, failure, and ordering semantics. Each one follows
// the same shape: a synchronous fast path that costs nothing when every
// sub-operation is already done, and a heap-allocated state that takes
// over only when something suspends.
//
// # Preemption
//
// Every unbounded loop in this package ([Repeat], [DoUntil], [KeepDoing])
// checks [Executor.NeedPreempt] once per iteration. When the Executor's
// quota trips, the loop reschedules itself as a task and returns control
// to the reactor, bounding how long any one combinator can monopolize a
// tick.
//
// # Cancellation
//
// The only thing in this package that gives up early is [WithTimeout], and
// it detaches rather than cancels: the original operation keeps running in
// the background, and the timeout only stops the caller from waiting on
// it. There is no cancellation token that reaches into a sub-operation.
//
// # Scheduling groups
//
// A [SchedulingGroup] is a named bucket an Executor uses to order its task
// queue. [WithSchedulingGroup] runs a callable in a given group, either
// immediately (if that group is already the one running) or by enqueuing
// it to run later under that group's priority.
package async
