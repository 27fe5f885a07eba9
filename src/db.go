package src

import (
	"sort"
	"strings"
)

// SQDB holds the named collections of a cli session.
type SQDB struct {
	data map[string]*SQobj
}

func dbCreate() *SQDB {
	return &SQDB{data: make(map[string]*SQobj)}
}

// return the value stored at key, nil if not exists
func (db *SQDB) lookupKey(key string) *SQobj {
	return db.data[key]
}

// return the value stored at key, reply ERR_NO_SUCH_KEY to c if not exists
func (db *SQDB) lookupKeyReadOrReply(c *SQClient, key string) *SQobj {
	o := db.lookupKey(key)
	if o == nil {
		c.addReplyError(ERR_NO_SUCH_KEY)
	}
	return o
}

func (db *SQDB) dbAdd(key string, o *SQobj) {
	db.data[key] = o
}

// return true if key existed
func (db *SQDB) dbDel(key string) bool {
	o, ok := db.data[key]
	if !ok {
		return false
	}
	o.Val.Clear()
	delete(db.data, key)
	return true
}

// return the keys matching the glob pattern, sorted
func (db *SQDB) keys(pattern string) []string {
	keys := make([]string, 0)
	for k := range db.data {
		if pattern == "*" || StringMatch(pattern, k, false) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func (db *SQDB) size() int {
	return len(db.data)
}

func (db *SQDB) flush() {
	for k := range db.data {
		db.dbDel(k)
	}
}

//-----------------------------------------------------------------------------
// keyspace commands
//-----------------------------------------------------------------------------

// del key [key ...]
func delCommand(c *SQClient) {
	var deleted int64
	for _, key := range c.args[1:] {
		if c.db.dbDel(key) {
			deleted++
		}
	}
	c.addReplyInt(deleted)
}

// exists key
func existsCommand(c *SQClient) {
	if c.db.lookupKey(c.args[1]) != nil {
		c.addReplyInt(1)
		return
	}
	c.addReplyInt(0)
}

// type key
func typeCommand(c *SQClient) {
	o := c.db.lookupKey(c.args[1])
	if o == nil {
		c.addReplyStatus(KIND_NONE)
		return
	}
	c.addReplyStatus(o.strType())
}

// keys pattern
func keysCommand(c *SQClient) {
	c.addReplyStrings(c.db.keys(c.args[1]))
}

// flushall
func flushAllCommand(c *SQClient) {
	c.db.flush()
	c.addReplyStatus("OK")
}

// help
func helpCommand(c *SQClient) {
	lines := make([]string, 0, len(commandTable)+1)
	lines = append(lines, "ssq-cli "+VERSION+", commands:")
	for _, cmd := range commandTable {
		lines = append(lines, "  "+cmd.usage)
	}
	lines = append(lines, "  quit | exit")
	c.addReplyStatus(strings.Join(lines, "\n"))
}
