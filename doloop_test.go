package async

import (
	"errors"
	"testing"
)

func TestDoUntilStopsWhenPredicateTrue(t *testing.T) {
	ex := NewExecutor()

	n := 0

	_, err := Autorun(ex, func() Future[Void] {
		return DoUntil(ex, func() bool { return n >= 4 }, func() Future[Void] {
			n++
			return FuturizeValue(Void{})
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n != 4 {
		t.Fatalf("got %d, want 4", n)
	}
}

func TestDoForEachSliceProcessesInOrder(t *testing.T) {
	ex := NewExecutor()

	var order []int

	_, err := Autorun(ex, func() Future[Void] {
		return DoForEachSlice(ex, []int{1, 2, 3}, func(v int) Future[Void] {
			order = append(order, v)
			return FuturizeValue(Void{})
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int{1, 2, 3}

	for i, v := range want {
		if order[i] != v {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestDoForEachStopsAtFirstFailure(t *testing.T) {
	ex := NewExecutor()

	wantErr := errors.New("item 2 failed")

	var seen []int

	_, err := Autorun(ex, func() Future[Void] {
		return DoForEachSlice(ex, []int{1, 2, 3}, func(v int) Future[Void] {
			seen = append(seen, v)

			if v == 2 {
				return FuturizeError[Void](wantErr)
			}

			return FuturizeValue(Void{})
		})
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}

	if len(seen) != 2 {
		t.Fatalf("got %v, want processing to stop after item 2", seen)
	}
}

func TestKeepDoingRunsUntilFailure(t *testing.T) {
	ex := NewExecutor()

	n := 0
	wantErr := errors.New("stop")

	_, err := Autorun(ex, func() Future[Void] {
		return KeepDoing(ex, func() Future[Void] {
			n++

			if n == 7 {
				return FuturizeError[Void](wantErr)
			}

			return FuturizeValue(Void{})
		})
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}

	if n != 7 {
		t.Fatalf("got %d iterations, want 7", n)
	}
}

func TestDoForEachSeqOverIterSeq(t *testing.T) {
	ex := NewExecutor()

	seq := func(yield func(int) bool) {
		for i := 1; i <= 3; i++ {
			if !yield(i) {
				return
			}
		}
	}

	sum := 0

	_, err := Autorun(ex, func() Future[Void] {
		return DoForEachSeq(ex, seq, func(v int) Future[Void] {
			sum += v
			return FuturizeValue(Void{})
		})
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum != 6 {
		t.Fatalf("got %d, want 6", sum)
	}
}
