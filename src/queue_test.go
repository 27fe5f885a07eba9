package src

import (
	"errors"
	"testing"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Enqueue(1, "quack")
	q.Enqueue(2, "honk")
	q.Enqueue(3, "squawk")

	expected := []Node{{ID: 1, Payload: "quack"}, {ID: 2, Payload: "honk"}, {ID: 3, Payload: "squawk"}}
	for _, exp := range expected {
		n, err := q.Dequeue()
		if err != nil {
			t.Fatal("Dequeue err: ", err)
		}
		if n.ID != exp.ID || n.Payload != exp.Payload {
			t.Error("Dequeue err: n = ", n.ID, n.Payload)
		}
		checkList(t, &q.seq)
	}
	if _, err := q.Dequeue(); !errors.Is(err, ErrEmptyCollection) {
		t.Error("Dequeue on empty err: err = ", err)
	}
}

func TestQueueDequeue(t *testing.T) {
	testcases := []struct {
		inp []int
		exp []int
		val int
		err bool
	}{
		{[]int{}, []int{}, 0, true},
		{[]int{1}, []int{}, 1, false},
		{[]int{2, 2}, []int{2}, 2, false},
		{[]int{1, 2, 3}, []int{2, 3}, 1, false},
	}

	for i, tc := range testcases {
		q := NewQueue()
		for _, v := range tc.inp {
			q.Enqueue(v, "")
		}

		n, err := q.Dequeue()
		if tc.err {
			if !errors.Is(err, ErrEmptyCollection) {
				t.Errorf("Test %d: Expected empty collection. Got %v.", i, err)
			}
		} else if err != nil || n.ID != tc.val {
			t.Errorf("Test %d: Expected %d. Got %v %v.", i, tc.val, n, err)
		}

		if q.Len() != len(tc.exp) {
			t.Errorf("Test %d: Expected length of %d. Got %d.", i, len(tc.exp), q.Len())
		}
		if !equalInts(ids(q.Values()), tc.exp) {
			t.Errorf("Test %d: Expected %v. Got %v.", i, tc.exp, ids(q.Values()))
		}
		checkList(t, &q.seq)
	}
}

func TestQueueEmpty(t *testing.T) {
	q := NewQueue()
	if !q.IsEmpty() {
		t.Errorf("Expecting empty queue. Got non-empty.")
	}
	if _, err := q.Front(); !errors.Is(err, ErrEmptyCollection) {
		t.Error("Front err: err = ", err)
	}
	_, err := q.Dequeue()
	var opErr *OpError
	if !errors.As(err, &opErr) || opErr.Kind != KIND_QUEUE || opErr.Op != "dequeue" {
		t.Error("Dequeue err: not an OpError, err = ", err)
	}

	q.Enqueue(1, "quack")
	if q.IsEmpty() {
		t.Errorf("Expecting non-empty queue. Got empty.")
	}
	if _, err := q.Dequeue(); err != nil {
		t.Fatal(err)
	}
	if !q.IsEmpty() {
		t.Errorf("Expecting empty queue. Got non-empty.")
	}
	checkList(t, &q.seq)
}

func TestQueueReuseAfterEmpty(t *testing.T) {
	q := NewQueue()
	q.Enqueue(1, "quack")
	if _, err := q.Dequeue(); err != nil {
		t.Fatal(err)
	}
	q.Enqueue(2, "honk")
	checkList(t, &q.seq)
	n, err := q.Front()
	if err != nil || n != (Node{ID: 2, Payload: "honk"}) {
		t.Error("Front err: n = ", n, " err = ", err)
	}
	if q.Len() != 1 {
		t.Error("Len err: len = ", q.Len())
	}
}

func TestQueueOrder(t *testing.T) {
	for n := 0; n < 20; n++ {
		q := NewQueue()
		for i := 0; i < n; i++ {
			q.Enqueue(i, "")
		}
		for i := 0; i < n; i++ {
			node, err := q.Dequeue()
			if err != nil || node.ID != i {
				t.Fatal("Dequeue err: ", err, " n = ", n, " expected ", i)
			}
		}
	}
}

func TestQueueCloneAssign(t *testing.T) {
	q := NewQueue()
	q.Enqueue(1, "quack")
	q.Enqueue(2, "honk")
	c := q.Clone()
	if _, err := q.Dequeue(); err != nil {
		t.Fatal(err)
	}
	if !equalInts(ids(c.Values()), []int{1, 2}) {
		t.Error("Clone err: clone = ", ids(c.Values()))
	}

	a := NewQueue()
	a.Assign(c)
	c.Clear()
	if !equalInts(ids(a.Values()), []int{1, 2}) {
		t.Error("Assign err: a = ", ids(a.Values()))
	}
	checkList(t, &a.seq)
	checkList(t, &c.seq)
}
