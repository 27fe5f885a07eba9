package src

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	RunDemo(&buf)
	out := buf.String()

	stackIdx := strings.Index(out, "TESTING STACK IMPLEMENTATION:")
	queueIdx := strings.Index(out, "TESTING QUEUE IMPLEMENTATION:")
	if stackIdx < 0 || queueIdx < stackIdx {
		t.Fatal("RunDemo err: missing sections in ", out)
	}
	stackOut, queueOut := out[stackIdx:queueIdx], out[queueIdx:]

	for _, want := range []string{
		"3  squawk\n new head: 1  quack\tnew tail: 2  honk\n",
		"2  honk\n new head: 1  quack\tnew tail: 1  quack\n",
		"1  quack\nstack pop: collection is empty\n",
		"stack1 len=3 stack2 len=3 stack3 len=0",
	} {
		if !strings.Contains(stackOut, want) {
			t.Errorf("RunDemo err: stack output misses %q", want)
		}
	}
	for _, want := range []string{
		"1  quack\n new head: 2  honk\tnew tail: 3  squawk\n",
		"2  honk\n new head: 3  squawk\tnew tail: 3  squawk\n",
		"3  squawk\nqueue dequeue: collection is empty\n",
	} {
		if !strings.Contains(queueOut, want) {
			t.Errorf("RunDemo err: queue output misses %q", want)
		}
	}
}
