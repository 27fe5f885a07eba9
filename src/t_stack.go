package src

//-----------------------------------------------------------------------------
// Stack commands
//-----------------------------------------------------------------------------

// push key id payload
func pushCommand(c *SQClient) {
	insertGenericCommand(c, SQ_STACK)
}

// pop key
func popCommand(c *SQClient) {
	removeGenericCommand(c, SQ_STACK)
}

// peek key
func peekCommand(c *SQClient) {
	peekGenericCommand(c, SQ_STACK)
}

// top key
func topCommand(c *SQClient) {
	o := c.db.lookupKey(c.args[1])
	if o == nil {
		c.addReplyNil()
		return
	}
	if !o.checkType(c, SQ_STACK) {
		return
	}
	id, err := assertStack(o).Top()
	if err != nil {
		c.addReplyError(err)
		return
	}
	c.addReplyInt(int64(id))
}
