package async

import "sync"

// task is one unit of work queued on an [Executor]: a plain callable
// tagged with the [SchedulingGroup] it runs under and the order it was
// queued in, so the executor's priorityqueue can order by group priority
// and then by arrival.
type task struct {
	group SchedulingGroup
	seq   int64
	fn    func()
}

func (t *task) less(v *task) bool {
	if t.group.priority != v.group.priority {
		return t.group.priority < v.group.priority
	}

	return t.seq < v.seq
}

// Option configures a new [Executor]. See [WithQuota] and [WithLogger].
type Option func(*Executor)

// WithQuota sets how many loop iterations the unbounded loop combinators
// ([Repeat], [DoUntil], [KeepDoing]) may run through — counted as calls to
// [Executor.NeedPreempt] — before it trips and the loop must reschedule
// itself. The default is 100.
func WithQuota(n int) Option {
	return func(ex *Executor) {
		if n <= 0 {
			panic("async: WithQuota requires a positive quota")
		}

		ex.quota = n
	}
}

// WithLogger installs l as the Executor's [DiagnosticLogger]. The default
// discards both diagnostics.
func WithLogger(l DiagnosticLogger) Option {
	return func(ex *Executor) {
		ex.logger = l
	}
}

// Executor is a single-threaded, cooperative task queue. Exactly one
// goroutine may be inside [Executor.Run] (or a method it calls back into)
// at a time; every [Future], [Promise], and combinator created against a
// given Executor must only be touched from that goroutine, except where
// documented otherwise (see [Timer], which crosses goroutines by
// construction).
type Executor struct {
	tasks        priorityqueue[*task]
	seq          int64
	currentGroup SchedulingGroup
	ticks, quota int
	logger       DiagnosticLogger

	mu       sync.Mutex
	external []func()
}

// NewExecutor returns a new, empty Executor.
func NewExecutor(opts ...Option) *Executor {
	ex := &Executor{
		quota:  100,
		logger: discardDiagnostics{},
	}

	for _, opt := range opts {
		opt(ex)
	}

	return ex
}

// NeedPreempt reports whether the calling loop combinator has run long
// enough on this tick that it should reschedule itself via [Executor.Spawn]
// and return, rather than keep iterating. It advances the Executor's
// internal tick counter by one and resets it whenever it trips, so the
// next call starts a fresh quota.
func (ex *Executor) NeedPreempt() bool {
	ex.ticks++

	if ex.ticks < ex.quota {
		return false
	}

	ex.ticks = 0

	return true
}

// Spawn enqueues fn to run later, under the [SchedulingGroup] currently
// active on ex (see [SchedulingGroup.Active]). Spawn must only be called
// from ex's own goroutine; a callable running on another goroutine (a
// timer callback, a background computation) must use [Executor.SpawnExternal]
// instead.
func (ex *Executor) Spawn(fn func()) {
	ex.spawnIn(ex.currentGroup, fn)
}

func (ex *Executor) spawnIn(sg SchedulingGroup, fn func()) {
	ex.seq++
	ex.tasks.Push(&task{group: sg, seq: ex.seq, fn: fn})
}

// SpawnExternal enqueues fn to run on ex's goroutine, the next time it
// polls for external work (at the top of each [Executor.Run] iteration).
// Unlike [Executor.Spawn], SpawnExternal is safe to call concurrently, and
// from any goroutine — it is the one crossing point a [Timer] uses to
// deliver its firing back into the single-threaded world it fires from
// outside of.
func (ex *Executor) SpawnExternal(fn func()) {
	ex.mu.Lock()
	ex.external = append(ex.external, fn)
	ex.mu.Unlock()
}

func (ex *Executor) drainExternal() {
	ex.mu.Lock()
	batch := ex.external
	ex.external = nil
	ex.mu.Unlock()

	for _, fn := range batch {
		ex.spawnIn(ex.currentGroup, fn)
	}
}

// Run drains ex's task queue, running every task (including ones spawned
// by other tasks along the way) until the queue and any pending external
// work are both empty.
func (ex *Executor) Run() {
	for {
		ex.drainExternal()

		if ex.tasks.Empty() {
			return
		}

		ex.runOne()
	}
}

func (ex *Executor) runOne() {
	t := ex.tasks.Pop()

	prev := ex.currentGroup
	ex.currentGroup = t.group

	defer func() { ex.currentGroup = prev }()

	var pc panicstack

	if !pc.try(t.fn) {
		for _, it := range pc {
			ex.logger.PanicRecovered(it.value, it.stack)
		}
	}
}

// Autorun runs f to completion on ex: it starts f, drains ex's task queue
// until f's Future resolves or the queue (and any pending external work)
// runs dry, and returns f's result.
//
// It panics if the queue and the pending external work are both empty
// before f's Future resolves. It does not wait for work that another
// goroutine has not yet handed in through [Executor.SpawnExternal] (a
// [Timer] that has not fired yet is such work), and it cannot finish a
// Promise nobody will ever satisfy.
func Autorun[T any](ex *Executor, f func() Future[T]) (T, error) {
	future := Futurize(f)

	for !future.Available() {
		ex.drainExternal()

		if ex.tasks.Empty() {
			panic("async: Autorun: executor drained without the future completing")
		}

		ex.runOne()
	}

	return future.Get()
}
