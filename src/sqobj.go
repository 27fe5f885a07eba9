package src

import "simple-stackqueue/utils"

type SQType uint8

// SQ_STACK 栈
// SQ_QUEUE 队列
const (
	SQ_STACK SQType = iota
	SQ_QUEUE
)

var TypeMaps = map[SQType]string{
	SQ_STACK: KIND_STACK,
	SQ_QUEUE: KIND_QUEUE,
}

// SQobj is a keyspace value: a named stack or queue.
type SQobj struct {
	Typ SQType
	Val Collection
}

func (o *SQobj) strType() string {
	if s, ok := TypeMaps[o.Typ]; ok {
		return s
	}
	return UNKNOWN
}

// replies a wrong type error to c when o is not of type typ
func (o *SQobj) checkType(c *SQClient, typ SQType) bool {
	if o.Typ != typ {
		c.addReplyError(ERR_WRONG_TYPE)
		return false
	}
	return true
}

// deep copy, see Stack.Clone and Queue.Clone
func (o *SQobj) dup() *SQobj {
	switch o.Typ {
	case SQ_STACK:
		return &SQobj{Typ: SQ_STACK, Val: assertStack(o).Clone()}
	case SQ_QUEUE:
		return &SQobj{Typ: SQ_QUEUE, Val: assertQueue(o).Clone()}
	}
	utils.ErrorF("dup err: unknown type %d", o.Typ)
	return nil
}

func createStackObject() *SQobj {
	return &SQobj{Typ: SQ_STACK, Val: NewStack()}
}

func createQueueObject() *SQobj {
	return &SQobj{Typ: SQ_QUEUE, Val: NewQueue()}
}

func createSQobj(typ SQType) *SQobj {
	if typ == SQ_QUEUE {
		return createQueueObject()
	}
	return createStackObject()
}
