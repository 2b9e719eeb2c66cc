package async

import "testing"

func TestWithSchedulingGroupRunsImmediatelyInOwnGroup(t *testing.T) {
	ex := NewExecutor()

	ran := false

	f := WithSchedulingGroup(ex, ex.currentGroup, func() Future[int] {
		ran = true
		return FuturizeValue(1)
	})

	if !ran || !f.Available() {
		t.Fatal("expected synchronous execution under the already-active group")
	}
}

func TestWithSchedulingGroupDefersToAnotherGroup(t *testing.T) {
	ex := NewExecutor()
	sg := NewSchedulingGroup("background", 5)

	ran := false

	f := WithSchedulingGroup(ex, sg, func() Future[int] {
		ran = true
		return FuturizeValue(2)
	})

	if ran || f.Available() {
		t.Fatal("expected deferred execution under a different group")
	}

	ex.Run()

	if !ran || !f.Available() {
		t.Fatal("expected group's task to have run after Executor.Run")
	}
}
