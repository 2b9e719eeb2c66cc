package async

import "testing"

type intElem struct{ v int }

func (e intElem) less(o intElem) bool { return e.v < o.v }

func TestPriorityQueueOrdersByValue(t *testing.T) {
	var q priorityqueue[intElem]

	for _, v := range []int{5, 1, 4, 2, 3} {
		q.Push(intElem{v})
	}

	var got []int

	for !q.Empty() {
		got = append(got, q.Pop().v)
	}

	want := []int{1, 2, 3, 4, 5}

	for i, v := range want {
		if got[i] != v {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPriorityQueueStableForEqualKeys(t *testing.T) {
	var q priorityqueue[pqItem]

	push := func(key, seq int) { q.Push(pqItem{key: key, seq: seq}) }

	push(1, 0)
	push(1, 1)
	push(1, 2)

	for i := 0; i < 3; i++ {
		got := q.Pop()

		if got.seq != i {
			t.Fatalf("pop %d: got seq %d, want %d", i, got.seq, i)
		}
	}
}

type pqItem struct{ key, seq int }

func (e pqItem) less(o pqItem) bool {
	return e.key < o.key
}
