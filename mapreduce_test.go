package async

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestMapReduceWithAdder(t *testing.T) {
	ex := NewExecutor()

	items := []int{1, 2, 3, 4, 5}
	i := 0

	next := func() (int, bool) {
		if i >= len(items) {
			return 0, false
		}

		v := items[i]
		i++

		return v, true
	}

	sum, err := Autorun(ex, func() Future[int] {
		return MapReduce(ex, next, func(v int) Future[int] {
			return FuturizeValue(v * v)
		}, NewAdder[int]())
	})
	require.NoError(t, err)
	require.Equal(t, 1+4+9+16+25, sum)
}

func TestMapReduceFoldBuildsString(t *testing.T) {
	ex := NewExecutor()

	items := []string{"a", "b", "c"}
	i := 0

	next := func() (string, bool) {
		if i >= len(items) {
			return "", false
		}

		v := items[i]
		i++

		return v, true
	}

	got, err := Autorun(ex, func() Future[string] {
		return MapReduceFold(ex, next, func(v string) Future[string] {
			return FuturizeValue(v)
		}, "", func(acc, v string) string { return acc + v })
	})
	require.NoError(t, err)
	require.Equal(t, "abc", got)
}

func TestMapReduceStopsOnMapperError(t *testing.T) {
	ex := NewExecutor()

	items := []int{1, 2, 3}
	i := 0

	next := func() (int, bool) {
		if i >= len(items) {
			return 0, false
		}

		v := items[i]
		i++

		return v, true
	}

	_, err := Autorun(ex, func() Future[int] {
		return MapReduce(ex, next, func(v int) Future[int] {
			if v == 2 {
				return FuturizeError[int](errBoom)
			}

			return FuturizeValue(v)
		}, NewAdder[int]())
	})

	require.ErrorIs(t, err, errBoom)
}
