package async

// Reducer accumulates mapped values fed to it one at a time, in order, by
// [MapReduce].
type Reducer[T any] interface {
	Feed(T) Future[Void]
}

// GettableReducer is a [Reducer] that can report its accumulated result.
// [MapReduce] requires one so it has something to resolve to once every
// mapped value has been fed.
type GettableReducer[T, R any] interface {
	Reducer[T]
	Get() R
}

// MapReduce calls mapper once per element yielded by next, feeding each
// result into reducer, in element order, and resolves to reducer.Get()
// once every element has been mapped and fed — or fails with the first
// error raised by either mapper or reducer, leaving the remaining elements
// unprocessed. This is the stateful-reducer form of Seastar's map_reduce;
// see [MapReduceFold] for the explicit-fold form.
func MapReduce[E, T, R any](ex *Executor, next func() (E, bool), mapper func(E) Future[T], reducer GettableReducer[T, R]) Future[R] {
	pr := NewPromise[R]()

	mapReduceDrain(ex, next, mapper, reducer).ThenWrapped(func(_ Void, err error) {
		if err != nil {
			pr.SetError(err)
			return
		}

		pr.SetValue(reducer.Get())
	})

	return pr.Future()
}

func mapReduceDrain[E, T any](ex *Executor, next func() (E, bool), mapper func(E) Future[T], reducer Reducer[T]) Future[Void] {
	return DoForEach(ex, next, func(item E) Future[Void] {
		pr := NewPromise[Void]()

		Futurize(func() Future[T] { return mapper(item) }).ThenWrapped(func(v T, err error) {
			if err != nil {
				pr.SetError(err)
				return
			}

			reducer.Feed(v).ForwardTo(pr)
		})

		return pr.Future()
	})
}

// MapReduceFold calls mapper once per element yielded by next and folds
// each result into an accumulator starting at initial, via fold, in
// element order. It resolves to the final accumulator value, or fails with
// the first error raised by mapper.
//
// This is the explicit-fold form of Seastar's map_reduce — the one to
// reach for when there is no natural stateful [Reducer] object, just a
// combining function. For plain sums through [MapReduce], this package
// provides the [Adder] reducer.
func MapReduceFold[E, R any](ex *Executor, next func() (E, bool), mapper func(E) Future[R], initial R, fold func(R, R) R) Future[R] {
	acc := initial

	out := NewPromise[R]()

	DoForEach(ex, next, func(item E) Future[Void] {
		pr := NewPromise[Void]()

		Futurize(func() Future[R] { return mapper(item) }).ThenWrapped(func(v R, err error) {
			if err != nil {
				pr.SetError(err)
				return
			}

			acc = fold(acc, v)
			pr.SetValue(Void{})
		})

		return pr.Future()
	}).ThenWrapped(func(_ Void, err error) {
		if err != nil {
			out.SetError(err)
			return
		}

		out.SetValue(acc)
	})

	return out.Future()
}

// number is the constraint [Adder] accumulates over.
type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Adder is a [GettableReducer] that sums the values fed to it — the
// supplied reducer for the common case, mirroring Seastar's adder<Result,
// Addend> from the original map_reduce test suite, which this package's
// distillation otherwise dropped.
type Adder[T number] struct {
	sum T
}

// NewAdder returns an Adder starting from zero.
func NewAdder[T number]() *Adder[T] {
	return &Adder[T]{}
}

func (a *Adder[T]) Feed(v T) Future[Void] {
	a.sum += v
	return FuturizeValue(Void{})
}

func (a *Adder[T]) Get() T {
	return a.sum
}
