package src

import (
	"bufio"
	"io"
)

// SQClient 命令执行上下文
type SQClient struct {
	db    *SQDB      // keyspace
	args  []string   // command args, args[0] is the command name
	cmd   *SQCommand // command being executed
	reply []*sqReply // replies waiting for flushReply
	json  bool       // render replies as json
}

func createSQClient(db *SQDB) *SQClient {
	return &SQClient{db: db}
}

func (c *SQClient) addReply(r *sqReply) {
	c.reply = append(c.reply, r)
}

func (c *SQClient) addReplyStatus(s string) {
	c.addReply(&sqReply{typ: REPLY_STATUS, str: s})
}

func (c *SQClient) addReplyError(err error) {
	c.addReply(&sqReply{typ: REPLY_ERROR, str: err.Error()})
}

func (c *SQClient) addReplyInt(n int64) {
	c.addReply(&sqReply{typ: REPLY_INTEGER, num: n})
}

func (c *SQClient) addReplyNil() {
	c.addReply(&sqReply{typ: REPLY_NIL})
}

func (c *SQClient) addReplyNode(n Node) {
	c.addReply(&sqReply{typ: REPLY_NODE, node: n})
}

func (c *SQClient) addReplyNodes(nodes []Node) {
	c.addReply(&sqReply{typ: REPLY_NODES, nodes: nodes})
}

func (c *SQClient) addReplyStrings(strs []string) {
	c.addReply(&sqReply{typ: REPLY_ARRAY, strs: strs})
}

func (c *SQClient) addReplyDoc(doc string) {
	c.addReply(&sqReply{typ: REPLY_DOC, str: doc})
}

// return true if the last pending reply is an error
func (c *SQClient) lastReplyIsError() bool {
	if len(c.reply) == 0 {
		return false
	}
	return c.reply[len(c.reply)-1].typ == REPLY_ERROR
}

// write every pending reply to w, one per line, and drop them
func (c *SQClient) flushReply(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, r := range c.reply {
		var s string
		if c.json {
			var err error
			if s, err = r.formatJSON(); err != nil {
				return err
			}
		} else {
			s = r.format()
		}
		if _, err := bw.WriteString(s + "\n"); err != nil {
			return err
		}
	}
	c.reply = c.reply[:0]
	return bw.Flush()
}

func resetClient(c *SQClient) {
	c.args = nil
	c.cmd = nil
}
