package src

import (
	"bytes"
	"strings"
	"testing"
)

// run each line through a client and return everything it printed
func runLines(c *SQClient, lines ...string) []string {
	var out []string
	for _, line := range lines {
		var buf bytes.Buffer
		executeLine(c, line, &buf)
		out = append(out, strings.TrimSuffix(buf.String(), "\n"))
	}
	return out
}

func checkReplies(t *testing.T, c *SQClient, cases [][2]string) {
	t.Helper()
	for _, tc := range cases {
		got := runLines(c, tc[0])[0]
		if got != tc[1] {
			t.Errorf("%s: expected %q. Got %q.", tc[0], tc[1], got)
		}
	}
}

func TestLookupCommand(t *testing.T) {
	if cmd := lookupCommand("PUSH"); cmd == nil || cmd.name != "push" {
		t.Error("lookupCommand err: cmd = ", cmd)
	}
	if cmd := lookupCommand("nope"); cmd != nil {
		t.Error("lookupCommand err: cmd = ", cmd.name)
	}
	del := lookupCommand("del")
	if !del.checkArity(2) || !del.checkArity(5) || del.checkArity(1) {
		t.Error("checkArity err for variadic del")
	}
}

func TestStackCommands(t *testing.T) {
	c := createSQClient(dbCreate())
	checkReplies(t, c, [][2]string{
		{"push s 1 quack", "(integer) 1"},
		{"push s 2 honk", "(integer) 2"},
		{"push s 3 squawk", "(integer) 3"},
		{"top s", "(integer) 3"},
		{"peek s", `(3) "squawk"`},
		{"pop s", `(3) "squawk"`},
		{"pop s", `(2) "honk"`},
		{"pop s", `(1) "quack"`},
		{"pop s", "(error) ERR stack pop: collection is empty"},
		{"top s", "(error) ERR stack top: collection is empty"},
		{"pop missing", "(nil)"},
		{"top missing", "(nil)"},
		{"push s 4 'after empty'", "(integer) 1"},
		{"top s", "(integer) 4"},
	})
}

func TestQueueCommands(t *testing.T) {
	c := createSQClient(dbCreate())
	checkReplies(t, c, [][2]string{
		{"enqueue q 1 quack", "(integer) 1"},
		{"enqueue q 2 honk", "(integer) 2"},
		{"enqueue q 3 squawk", "(integer) 3"},
		{"front q", `(1) "quack"`},
		{"dequeue q", `(1) "quack"`},
		{"dequeue q", `(2) "honk"`},
		{"dequeue q", `(3) "squawk"`},
		{"dequeue q", "(error) ERR queue dequeue: collection is empty"},
		{"front q", "(error) ERR queue front: collection is empty"},
		{"dequeue missing", "(nil)"},
	})
}

func TestCommandErrors(t *testing.T) {
	c := createSQClient(dbCreate())
	checkReplies(t, c, [][2]string{
		{"push s 1 quack", "(integer) 1"},
		{"enqueue s 1 quack", "(error) ERR wrong type"},
		{"dequeue s", "(error) ERR wrong type"},
		{"foo bar", "(error) ERR unknown command 'foo'"},
		{"push s 1", "(error) ERR wrong number of args for 'push' command"},
		{"push s one quack", "(error) ERR value is not an integer"},
		{`push s 1 "quack`, "(error) ERR syntax error: unbalanced quotes"},
		{"clear missing", "(error) ERR no such key"},
		{"len s", "(integer) 1"},
	})
}

func TestCollectionCommands(t *testing.T) {
	c := createSQClient(dbCreate())
	checkReplies(t, c, [][2]string{
		{"PUSH s 1 quack", "(integer) 1"},
		{"push s 2 honk", "(integer) 2"},
		{"enqueue q 1 quack", "(integer) 1"},
		{"values s", "1) (1) \"quack\"\n2) (2) \"honk\""},
		{"values missing", EMPTY_ARRAY_STR},
		{"len missing", "(integer) 0"},
		{"type s", KIND_STACK},
		{"type q", KIND_QUEUE},
		{"type missing", KIND_NONE},
		{"exists s", "(integer) 1"},
		{"exists missing", "(integer) 0"},
		{"keys *", "1) \"q\"\n2) \"s\""},
		{"keys s*", "1) \"s\""},
		{"dump s", `{"key":"s","type":"stack","len":2,"nodes":[{"id":1,"payload":"quack"},{"id":2,"payload":"honk"}]}`},
		{"dump missing", "(error) ERR no such key"},
		{"clone s s2", "OK"},
		{"pop s2", `(2) "honk"`},
		{"len s", "(integer) 2"},
		{"clone s q", "(error) ERR wrong type"},
		{"clone missing x", "(error) ERR no such key"},
		{"clone s s2", "OK"},
		{"len s2", "(integer) 2"},
		{"clear s", "OK"},
		{"len s", "(integer) 0"},
		{"del s q nope", "(integer) 2"},
		{"flushall", "OK"},
		{"keys *", EMPTY_ARRAY_STR},
	})
}

func TestJSONReplies(t *testing.T) {
	c := createSQClient(dbCreate())
	c.json = true
	checkReplies(t, c, [][2]string{
		{"push s 1 quack", "1"},
		{"peek s", `{"id":1,"payload":"quack"}`},
		{"values s", `[{"id":1,"payload":"quack"}]`},
		{"pop s", `{"id":1,"payload":"quack"}`},
		{"pop s", `{"error":"stack pop: collection is empty"}`},
		{"pop missing", "null"},
		{"values missing", "[]"},
		{"type s", `"stack"`},
		{"keys *", `["s"]`},
		{"flushall", `"OK"`},
	})
}

func TestHelpCommand(t *testing.T) {
	c := createSQClient(dbCreate())
	out := runLines(c, "help")[0]
	for _, cmd := range commandTable {
		if !strings.Contains(out, cmd.usage) {
			t.Error("help err: missing ", cmd.usage)
		}
	}
}
