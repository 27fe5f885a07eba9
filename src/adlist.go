package src

// Node is one cell of a List. The links are owned by the List the node
// belongs to; a node handed out by RemoveHead or RemoveTail has both links
// cleared.
type Node struct {
	ID      int    `json:"id"`
	Payload string `json:"payload"`
	prev    *Node
	next    *Node
}

func (n *Node) Next() *Node {
	return n.next
}

func (n *Node) Prev() *Node {
	return n.prev
}

func (n *Node) detach() *Node {
	n.prev = nil
	n.next = nil
	return n
}

// ListIter walks a List from one end to the other.
type ListIter struct {
	next      *Node
	direction int
}

// Next returns the current node and advances, nil once the walk is over.
func (li *ListIter) Next() *Node {
	curr := li.next
	if curr != nil {
		if li.direction == AL_START_HEAD {
			li.next = curr.next
		} else {
			li.next = curr.prev
		}
	}
	return curr
}

// List is the chain shared by Stack and Queue: a doubly linked list of
// Nodes with head, tail and length kept consistent by every mutation.
//
// length == 0 iff head == nil iff tail == nil, head.prev and tail.next are
// always nil.
//
// The zero value is an empty list. A List must not be copied after first
// use, use Copy.
type List struct {
	noCopy noCopy

	head   *Node
	tail   *Node
	length int
}

func NewList() *List {
	return new(List)
}

func (l *List) Len() int {
	return l.length
}

func (l *List) IsEmpty() bool {
	return l.length == 0
}

// First returns the head node, nil when empty.
func (l *List) First() *Node {
	return l.head
}

// Last returns the tail node, nil when empty.
func (l *List) Last() *Node {
	return l.tail
}

// counts n in, and makes it both head and tail when the list was empty.
// Returns true when n is already fully linked.
func (l *List) pushNode(n *Node) bool {
	l.length++
	if l.head == nil {
		l.head = n
		l.tail = n
		return true
	}
	return false
}

// InsertTail appends a new node after the tail.
func (l *List) InsertTail(id int, payload string) {
	n := &Node{ID: id, Payload: payload}
	if l.pushNode(n) {
		return
	}
	n.prev = l.tail
	l.tail.next = n
	l.tail = n
}

// InsertHead prepends a new node before the head.
func (l *List) InsertHead(id int, payload string) {
	n := &Node{ID: id, Payload: payload}
	if l.pushNode(n) {
		return
	}
	n.next = l.head
	l.head.prev = n
	l.head = n
}

// RemoveHead detaches the head node and hands it to the caller.
// It returns ErrEmptyCollection when the list is empty.
func (l *List) RemoveHead() (*Node, error) {
	if l.length == 0 {
		return nil, ErrEmptyCollection
	}
	n := l.head
	l.head = n.next
	if l.head != nil {
		l.head.prev = nil
	} else {
		l.tail = nil
	}
	l.length--
	return n.detach(), nil
}

// RemoveTail detaches the tail node and hands it to the caller.
// It returns ErrEmptyCollection when the list is empty.
func (l *List) RemoveTail() (*Node, error) {
	if l.length == 0 {
		return nil, ErrEmptyCollection
	}
	n := l.tail
	l.tail = n.prev
	if l.tail != nil {
		l.tail.next = nil
	} else {
		l.head = nil
	}
	l.length--
	return n.detach(), nil
}

// Rewind returns an iterator from head to tail.
func (l *List) Rewind() *ListIter {
	return &ListIter{next: l.head, direction: AL_START_HEAD}
}

// RewindTail returns an iterator from tail to head.
func (l *List) RewindTail() *ListIter {
	return &ListIter{next: l.tail, direction: AL_START_TAIL}
}

// Values returns the id and payload of every node, head first. The
// returned nodes are unlinked copies.
func (l *List) Values() []Node {
	values := make([]Node, 0, l.length)
	li := l.Rewind()
	for n := li.Next(); n != nil; n = li.Next() {
		values = append(values, Node{ID: n.ID, Payload: n.Payload})
	}
	return values
}

// appends a copy of every node of src, src is left untouched
func (l *List) extend(src *List) {
	li := src.Rewind()
	for n := li.Next(); n != nil; n = li.Next() {
		l.InsertTail(n.ID, n.Payload)
	}
}

// Copy returns a deep copy of l: same ids and payloads in the same order,
// no node shared with l.
func (l *List) Copy() *List {
	dst := NewList()
	dst.extend(l)
	return dst
}

// Clear drops every node.
func (l *List) Clear() {
	for l.head != nil {
		n := l.head
		l.head = n.next
		n.detach()
	}
	l.tail = nil
	l.length = 0
}

// noCopy may be embedded into structs which must not be copied
// after the first use. go vet's copylocks check reports copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
