package async

import "sync/atomic"

var schedulingGroupSeq atomic.Int64

// SchedulingGroup is a named bucket an [Executor] uses to order its pending
// tasks. Two SchedulingGroup values compare equal only if one was copied
// from the other (or both are the zero value, the Executor's default
// group); [NewSchedulingGroup] always allocates a fresh identity.
//
// A SchedulingGroup is a plain value: it carries no reference to any
// particular Executor. The same SchedulingGroup value may be registered
// with (used on) more than one Executor, each ordering its own queue by it
// independently.
type SchedulingGroup struct {
	id       int64
	name     string
	priority int
}

// NewSchedulingGroup returns a new [SchedulingGroup] with the given name
// and priority. Lower priority values run first; ties are broken by
// arrival order.
func NewSchedulingGroup(name string, priority int) SchedulingGroup {
	return SchedulingGroup{
		id:       schedulingGroupSeq.Add(1),
		name:     name,
		priority: priority,
	}
}

// Name returns the name sg was created with.
func (sg SchedulingGroup) Name() string { return sg.name }

// Priority returns the priority sg was created with.
func (sg SchedulingGroup) Priority() int { return sg.priority }

// Active reports whether sg is the [SchedulingGroup] currently running on
// ex, i.e. whether a callable running right now on ex was dispatched under
// sg.
func (sg SchedulingGroup) Active(ex *Executor) bool {
	return sg.id == ex.currentGroup.id
}

// WithSchedulingGroup runs f under sg on ex.
//
// If sg is already the group running on ex (see [SchedulingGroup.Active]),
// f is invoked immediately and its Future is returned directly — no
// allocation beyond whatever f itself performs. Otherwise a task tagged
// with sg is enqueued; the task runs f and forwards its result into a
// Promise whose Future is returned immediately, before f has run.
func WithSchedulingGroup[T any](ex *Executor, sg SchedulingGroup, f func() Future[T]) Future[T] {
	if sg.Active(ex) {
		return Futurize(f)
	}

	pr := NewPromise[T]()
	ex.spawnIn(sg, func() {
		Futurize(f).ForwardTo(pr)
	})

	return pr.Future()
}
