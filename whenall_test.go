package async

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWhenAll2WaitsForBothRegardlessOfFailure(t *testing.T) {
	fa := FuturizeValue(1)
	fb := FuturizeError[string](errors.New("boom"))

	tup := WhenAll2(fa, fb)

	require.True(t, tup.Available())

	got, err := tup.Get()
	require.NoError(t, err)

	va, erra := got.A.Get()
	require.NoError(t, erra)
	require.Equal(t, 1, va)

	_, errb := got.B.Get()
	require.Error(t, errb)
}

func TestWhenAll2DeferredBranches(t *testing.T) {
	pa := NewPromise[int]()
	pb := NewPromise[int]()

	tup := WhenAll2(pa.Future(), pb.Future())
	require.False(t, tup.Available())

	pa.SetValue(10)
	require.False(t, tup.Available())

	pb.SetValue(20)
	require.True(t, tup.Available())

	got, _ := tup.Get()

	va, _ := got.A.Get()
	vb, _ := got.B.Get()
	require.Equal(t, 10, va)
	require.Equal(t, 20, vb)
}

func TestWhenAllSucceed3FailsWithFirstError(t *testing.T) {
	errA := errors.New("a failed")

	fa := FuturizeError[int](errA)
	fb := FuturizeValue("x")
	fc := FuturizeValue(3.0)

	result := WhenAllSucceed3(fa, fb, fc)

	_, err := result.Get()
	require.ErrorIs(t, err, errA)
}

func TestWhenAllSucceed2UnwrapsOnSuccess(t *testing.T) {
	result := WhenAllSucceed2(FuturizeValue(1), FuturizeValue("hi"))

	got, err := result.Get()
	require.NoError(t, err)
	require.Equal(t, 1, got.First)
	require.Equal(t, "hi", got.Second)
}

func TestWhenAllSliceWaitsForAll(t *testing.T) {
	promises := make([]Promise[int], 3)
	futures := make([]Future[int], 3)

	for i := range promises {
		promises[i] = NewPromise[int]()
		futures[i] = promises[i].Future()
	}

	joined := WhenAllSlice(futures)
	require.False(t, joined.Available())

	for i, pr := range promises {
		pr.SetValue(i)
	}

	require.True(t, joined.Available())
}

func TestWhenAll3InvokesFutureFuncArgsLeftToRightExactlyOnce(t *testing.T) {
	var order []string
	var calls int

	tup := WhenAll3(
		FutureFunc(func() Future[int] {
			order = append(order, "a")
			return FuturizeValue(1)
		}),
		FuturizeValue("b"),
		FutureFunc(func() Future[float64] {
			calls++
			order = append(order, "c")
			return FuturizeValue(3.0)
		}),
	)

	require.True(t, tup.Available())
	require.Equal(t, []string{"a", "c"}, order)
	require.Equal(t, 1, calls)

	got, err := tup.Get()
	require.NoError(t, err)

	va, _ := got.A.Get()
	vc, _ := got.C.Get()
	require.Equal(t, 1, va)
	require.Equal(t, 3.0, vc)
}

func TestWhenAllSucceedSliceFailsWithFirstIndexOrderedError(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	futures := []Future[int]{
		FuturizeValue(1),
		FuturizeError[int](err1),
		FuturizeError[int](err2),
	}

	_, err := WhenAllSucceedSlice(futures).Get()
	require.ErrorIs(t, err, err1)
}
