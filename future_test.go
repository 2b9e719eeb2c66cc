package async

import (
	"errors"
	"testing"
)

func TestPromiseFutureBasic(t *testing.T) {
	pr := NewPromise[int]()
	f := pr.Future()

	if f.Available() {
		t.Fatal("future available before promise satisfied")
	}

	pr.SetValue(42)

	if !f.Available() {
		t.Fatal("future not available after promise satisfied")
	}

	v, err := f.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestPromiseDoubleSetPanics(t *testing.T) {
	pr := NewPromise[int]()
	pr.SetValue(1)

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on double SetValue")
		}
	}()

	pr.SetValue(2)
}

func TestThenWrappedDeferred(t *testing.T) {
	pr := NewPromise[int]()
	f := pr.Future()

	var got int
	var ran bool

	f.ThenWrapped(func(v int, err error) {
		ran = true
		got = v
	})

	if ran {
		t.Fatal("continuation ran before promise satisfied")
	}

	pr.SetValue(7)

	if !ran || got != 7 {
		t.Fatalf("continuation did not observe value: ran=%v got=%d", ran, got)
	}
}

func TestThenWrappedImmediate(t *testing.T) {
	f := FuturizeValue(9)

	var got int

	f.ThenWrapped(func(v int, _ error) { got = v })

	if got != 9 {
		t.Fatalf("got %d, want 9", got)
	}
}

func TestFuturizePanicBecomesError(t *testing.T) {
	f := Futurize(func() Future[int] {
		panic("boom")
	})

	if !f.Available() || !f.Failed() {
		t.Fatal("expected an immediately-failed future")
	}

	_, err := f.Get()
	if err == nil {
		t.Fatal("expected a non-nil error")
	}
}

func TestFuturizeFuncPropagatesError(t *testing.T) {
	wantErr := errors.New("boom")

	f := FuturizeFunc(func() (int, error) {
		return 0, wantErr
	})

	_, err := f.Get()
	if !errors.Is(err, wantErr) {
		t.Fatalf("got %v, want %v", err, wantErr)
	}
}

func TestForwardTo(t *testing.T) {
	src := NewPromise[string]()
	dst := NewPromise[string]()

	src.Future().ForwardTo(dst)
	src.SetValue("hello")

	v, err := dst.Future().Get()
	if err != nil || v != "hello" {
		t.Fatalf("got (%q, %v), want (hello, nil)", v, err)
	}
}
