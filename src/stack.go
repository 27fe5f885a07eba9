package src

// Stack is a LIFO collection on top of a List: nodes are inserted at the
// tail and removed from the tail.
//
// The zero value is an empty stack. A Stack must not be copied after first
// use, use Clone or Assign. A Stack is not safe for concurrent use; guard
// a shared instance with a single sync.Mutex.
type Stack struct {
	seq List
}

func NewStack() *Stack {
	return new(Stack)
}

// Push puts a new node on top of the stack.
func (s *Stack) Push(id int, payload string) {
	s.seq.InsertTail(id, payload)
}

// Pop removes the top node and returns it. The caller owns the node.
func (s *Stack) Pop() (*Node, error) {
	n, err := s.seq.RemoveTail()
	if err != nil {
		return nil, opError(KIND_STACK, "pop", err)
	}
	return n, nil
}

// Top returns the id of the top node without removing it.
func (s *Stack) Top() (int, error) {
	n := s.seq.Last()
	if n == nil {
		return 0, opError(KIND_STACK, "top", ErrEmptyCollection)
	}
	return n.ID, nil
}

// Peek returns a copy of the top node without removing it.
func (s *Stack) Peek() (Node, error) {
	n := s.seq.Last()
	if n == nil {
		return Node{}, opError(KIND_STACK, "peek", ErrEmptyCollection)
	}
	return Node{ID: n.ID, Payload: n.Payload}, nil
}

func (s *Stack) Len() int {
	return s.seq.Len()
}

func (s *Stack) IsEmpty() bool {
	return s.seq.IsEmpty()
}

// Values returns the nodes from the bottom of the stack to the top.
func (s *Stack) Values() []Node {
	return s.seq.Values()
}

// Clone returns a deep copy of s.
func (s *Stack) Clone() *Stack {
	c := NewStack()
	c.seq.extend(&s.seq)
	return c
}

// Assign replaces the content of s with a deep copy of src.
func (s *Stack) Assign(src *Stack) {
	if s == src {
		return
	}
	s.seq.Clear()
	s.seq.extend(&src.seq)
}

func (s *Stack) Clear() {
	s.seq.Clear()
}
