package src

import (
	"fmt"
	"io"
)

var demoPayloads = []string{"quack", "honk", "squawk"}

// print the ends of l after a removal, nothing once it is empty
func printEnds(w io.Writer, l *List) {
	if isEmpty(l) {
		return
	}
	head, tail := l.First(), l.Last()
	fmt.Fprintf(w, " new head: %d  %s\tnew tail: %d  %s\n", head.ID, head.Payload, tail.ID, tail.Payload)
}

// RunDemo exercises Stack and Queue the way a first user would: fill,
// copy, then drain while reporting both ends of the chain.
func RunDemo(w io.Writer) {
	stack1 := NewStack()
	for i, p := range demoPayloads {
		stack1.Push(i+1, p)
	}
	stack2 := stack1.Clone()
	stack3 := NewStack()
	stack3.Assign(stack2)

	fmt.Fprintln(w, "\nTESTING STACK IMPLEMENTATION:")
	for !isEmpty(stack3) {
		n, err := stack3.Pop()
		if err != nil {
			fmt.Fprintln(w, err)
			return
		}
		fmt.Fprintf(w, "%d  %s\n", n.ID, n.Payload)
		printEnds(w, &stack3.seq)
	}
	if _, err := stack3.Pop(); err != nil {
		fmt.Fprintln(w, err)
	}
	fmt.Fprintf(w, "copies are independent: stack1 len=%d stack2 len=%d stack3 len=%d\n",
		stack1.Len(), stack2.Len(), stack3.Len())

	queue1 := NewQueue()
	for i, p := range demoPayloads {
		queue1.Enqueue(i+1, p)
	}

	fmt.Fprintln(w, "\nTESTING QUEUE IMPLEMENTATION:")
	for !isEmpty(queue1) {
		n, err := queue1.Dequeue()
		if err != nil {
			fmt.Fprintln(w, err)
			return
		}
		fmt.Fprintf(w, "%d  %s\n", n.ID, n.Payload)
		printEnds(w, &queue1.seq)
	}
	if _, err := queue1.Dequeue(); err != nil {
		fmt.Fprintln(w, err)
	}
}
