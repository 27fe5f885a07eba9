package src

import (
	"github.com/bytedance/sonic"

	"simple-stackqueue/utils"
)

//-----------------------------------------------------------------------------
// Commands shared by stacks and queues
//-----------------------------------------------------------------------------

// push key id payload
// enqueue key id payload
//
// the collection is created when key does not exist
func insertGenericCommand(c *SQClient, typ SQType) {
	key := c.args[1]
	o := c.db.lookupKey(key)
	if o != nil && !o.checkType(c, typ) {
		return
	}
	var id int
	if utils.StrToInt(c.args[2], &id) != nil {
		c.addReplyError(ERR_NOT_INTEGER)
		return
	}
	if o == nil {
		o = createSQobj(typ)
		c.db.dbAdd(key, o)
	}
	switch typ {
	case SQ_STACK:
		assertStack(o).Push(id, c.args[3])
	case SQ_QUEUE:
		assertQueue(o).Enqueue(id, c.args[3])
	}
	c.addReplyInt(int64(o.Val.Len()))
}

// pop key
// dequeue key
func removeGenericCommand(c *SQClient, typ SQType) {
	o := c.db.lookupKey(c.args[1])
	if o == nil {
		c.addReplyNil()
		return
	}
	if !o.checkType(c, typ) {
		return
	}
	var (
		n   *Node
		err error
	)
	switch typ {
	case SQ_STACK:
		n, err = assertStack(o).Pop()
	case SQ_QUEUE:
		n, err = assertQueue(o).Dequeue()
	}
	if err != nil {
		c.addReplyError(err)
		return
	}
	c.addReplyNode(*n)
}

// peek key
// front key
func peekGenericCommand(c *SQClient, typ SQType) {
	o := c.db.lookupKey(c.args[1])
	if o == nil {
		c.addReplyNil()
		return
	}
	if !o.checkType(c, typ) {
		return
	}
	var (
		n   Node
		err error
	)
	switch typ {
	case SQ_STACK:
		n, err = assertStack(o).Peek()
	case SQ_QUEUE:
		n, err = assertQueue(o).Front()
	}
	if err != nil {
		c.addReplyError(err)
		return
	}
	c.addReplyNode(n)
}

// len key
func lenCommand(c *SQClient) {
	o := c.db.lookupKey(c.args[1])
	if o == nil {
		c.addReplyInt(0)
		return
	}
	c.addReplyInt(int64(o.Val.Len()))
}

// values key
//
// stacks are listed bottom to top, queues front to back
func valuesCommand(c *SQClient) {
	o := c.db.lookupKey(c.args[1])
	if o == nil {
		c.addReplyNodes(nil)
		return
	}
	c.addReplyNodes(o.Val.Values())
}

// dump key
func dumpCommand(c *SQClient) {
	key := c.args[1]
	o := c.db.lookupKeyReadOrReply(c, key)
	if o == nil {
		return
	}
	doc, err := sonic.MarshalString(&collectionDoc{
		Key:   key,
		Type:  o.strType(),
		Len:   o.Val.Len(),
		Nodes: o.Val.Values(),
	})
	if err != nil {
		utils.ErrorP("dump err: ", err)
		c.addReplyError(err)
		return
	}
	c.addReplyDoc(doc)
}

// clone src dst
//
// dst is created as a deep copy of src, or overwritten with one when it
// already holds a collection of the same type
func cloneCommand(c *SQClient) {
	src := c.db.lookupKeyReadOrReply(c, c.args[1])
	if src == nil {
		return
	}
	dst := c.db.lookupKey(c.args[2])
	if dst == nil {
		c.db.dbAdd(c.args[2], src.dup())
		c.addReplyStatus("OK")
		return
	}
	if !dst.checkType(c, src.Typ) {
		return
	}
	switch src.Typ {
	case SQ_STACK:
		assertStack(dst).Assign(assertStack(src))
	case SQ_QUEUE:
		assertQueue(dst).Assign(assertQueue(src))
	}
	c.addReplyStatus("OK")
}

// clear key
func clearCommand(c *SQClient) {
	o := c.db.lookupKeyReadOrReply(c, c.args[1])
	if o == nil {
		return
	}
	o.Val.Clear()
	c.addReplyStatus("OK")
}
