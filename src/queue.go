package src

// Queue is a FIFO collection on top of a List: nodes are inserted at the
// tail and removed from the head.
//
// The zero value is an empty queue. Like Stack, a Queue must not be copied
// after first use and is not safe for concurrent use.
type Queue struct {
	seq List
}

func NewQueue() *Queue {
	return new(Queue)
}

// Enqueue adds a new node at the back of the queue.
func (q *Queue) Enqueue(id int, payload string) {
	q.seq.InsertTail(id, payload)
}

// Dequeue removes the front node and returns it. The caller owns the node.
func (q *Queue) Dequeue() (*Node, error) {
	n, err := q.seq.RemoveHead()
	if err != nil {
		return nil, opError(KIND_QUEUE, "dequeue", err)
	}
	return n, nil
}

// Front returns a copy of the front node without removing it.
func (q *Queue) Front() (Node, error) {
	n := q.seq.First()
	if n == nil {
		return Node{}, opError(KIND_QUEUE, "front", ErrEmptyCollection)
	}
	return Node{ID: n.ID, Payload: n.Payload}, nil
}

func (q *Queue) Len() int {
	return q.seq.Len()
}

func (q *Queue) IsEmpty() bool {
	return q.seq.IsEmpty()
}

// Values returns the nodes from the front of the queue to the back.
func (q *Queue) Values() []Node {
	return q.seq.Values()
}

func (q *Queue) Clone() *Queue {
	c := NewQueue()
	c.seq.extend(&q.seq)
	return c
}

func (q *Queue) Assign(src *Queue) {
	if q == src {
		return
	}
	q.seq.Clear()
	q.seq.extend(&src.seq)
}

func (q *Queue) Clear() {
	q.seq.Clear()
}
