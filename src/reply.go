package src

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bytedance/sonic"
)

type replyType uint8

const (
	REPLY_STATUS  replyType = iota + 1 // OK
	REPLY_ERROR                        // (error) ERR msg
	REPLY_INTEGER                      // (integer) 1
	REPLY_NIL                          // (nil)
	REPLY_NODE                         // (1) "quack"
	REPLY_ARRAY                        // 1) "a"
	REPLY_NODES                        // 1) (1) "quack"
	REPLY_DOC                          // raw json document
)

type sqReply struct {
	typ   replyType
	str   string
	num   int64
	node  Node
	strs  []string
	nodes []Node
}

type errorDoc struct {
	Error string `json:"error"`
}

// dump document
type collectionDoc struct {
	Key   string `json:"key"`
	Type  string `json:"type"`
	Len   int    `json:"len"`
	Nodes []Node `json:"nodes"`
}

func formatNode(n Node) string {
	return fmt.Sprintf("(%d) %s", n.ID, strconv.Quote(n.Payload))
}

// format renders r the way a redis-cli user expects it
func (r *sqReply) format() string {
	switch r.typ {
	case REPLY_STATUS, REPLY_DOC:
		return r.str
	case REPLY_ERROR:
		return "(error) ERR " + r.str
	case REPLY_INTEGER:
		return "(integer) " + strconv.FormatInt(r.num, 10)
	case REPLY_NIL:
		return NIL_STR
	case REPLY_NODE:
		return formatNode(r.node)
	case REPLY_ARRAY:
		if len(r.strs) == 0 {
			return EMPTY_ARRAY_STR
		}
		lines := make([]string, len(r.strs))
		for i, s := range r.strs {
			lines[i] = fmt.Sprintf("%d) %s", i+1, strconv.Quote(s))
		}
		return strings.Join(lines, "\n")
	case REPLY_NODES:
		if len(r.nodes) == 0 {
			return EMPTY_ARRAY_STR
		}
		lines := make([]string, len(r.nodes))
		for i, n := range r.nodes {
			lines[i] = fmt.Sprintf("%d) %s", i+1, formatNode(n))
		}
		return strings.Join(lines, "\n")
	}
	return UNKNOWN
}

// formatJSON renders r as a single json value
func (r *sqReply) formatJSON() (string, error) {
	var v any
	switch r.typ {
	case REPLY_DOC:
		return r.str, nil
	case REPLY_STATUS:
		v = r.str
	case REPLY_ERROR:
		v = errorDoc{Error: r.str}
	case REPLY_INTEGER:
		v = r.num
	case REPLY_NIL:
		v = nil
	case REPLY_NODE:
		v = r.node
	case REPLY_ARRAY:
		v = nonNil(r.strs)
	case REPLY_NODES:
		v = nonNil(r.nodes)
	default:
		return "", fmt.Errorf("formatJSON err: unknown reply type %d", r.typ)
	}
	return sonic.MarshalString(v)
}

// so that sonic encodes [] instead of null
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
