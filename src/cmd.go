package src

import (
	"fmt"
	"strings"

	"simple-stackqueue/utils"
)

type CommandProc func(c *SQClient)

// SQCommand arity counts the command name, a negative arity means
// "at least -arity args".
type SQCommand struct {
	name  string
	proc  CommandProc
	arity int
	usage string
}

func (cmd *SQCommand) checkArity(argc int) bool {
	if cmd.arity < 0 {
		return argc >= -cmd.arity
	}
	return argc == cmd.arity
}

// commandTable 命令列表, filled in init since helpCommand reads it
var commandTable []SQCommand

func init() {
	commandTable = []SQCommand{
		// stack
		{"push", pushCommand, 4, "push key id payload"},
		{"pop", popCommand, 2, "pop key"},
		{"top", topCommand, 2, "top key"},
		{"peek", peekCommand, 2, "peek key"},
		// queue
		{"enqueue", enqueueCommand, 4, "enqueue key id payload"},
		{"dequeue", dequeueCommand, 2, "dequeue key"},
		{"front", frontCommand, 2, "front key"},
		// both
		{"len", lenCommand, 2, "len key"},
		{"values", valuesCommand, 2, "values key"},
		{"dump", dumpCommand, 2, "dump key"},
		{"clone", cloneCommand, 3, "clone src dst"},
		{"clear", clearCommand, 2, "clear key"},
		// keyspace
		{"del", delCommand, -2, "del key [key ...]"},
		{"exists", existsCommand, 2, "exists key"},
		{"type", typeCommand, 2, "type key"},
		{"keys", keysCommand, 2, "keys pattern"},
		{"flushall", flushAllCommand, 1, "flushall"},
		{"help", helpCommand, 1, "help"},
	}
}

// 查询需要执行的命令
func lookupCommand(name string) *SQCommand {
	name = strings.ToLower(name)
	for i := range commandTable {
		if commandTable[i].name == name {
			return &commandTable[i]
		}
	}
	return nil
}

// names of every command starting with prefix
func commandNames(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var names []string
	for _, cmd := range commandTable {
		if strings.HasPrefix(cmd.name, prefix) {
			names = append(names, cmd.name)
		}
	}
	return names
}

// 执行命令
func processCommand(c *SQClient) {
	defer resetClient(c)
	if len(c.args) == 0 {
		return
	}
	name := c.args[0]
	c.cmd = lookupCommand(name)
	if c.cmd == nil {
		c.addReplyError(fmt.Errorf("%w '%s'", ERR_UNKNOWN_CMD, name))
		return
	}
	if !c.cmd.checkArity(len(c.args)) {
		c.addReplyError(fmt.Errorf("%w for '%s' command", ERR_ARGS_NUM, c.cmd.name))
		return
	}
	start := utils.GetMsTime()
	c.cmd.proc(c)
	utils.InfoF("process command: %s (%d ms)", c.cmd.name, utils.GetMsTime()-start)
}
