package src

//-----------------------------------------------------------------------------
// Queue commands
//-----------------------------------------------------------------------------

// enqueue key id payload
func enqueueCommand(c *SQClient) {
	insertGenericCommand(c, SQ_QUEUE)
}

// dequeue key
func dequeueCommand(c *SQClient) {
	removeGenericCommand(c, SQ_QUEUE)
}

// front key
func frontCommand(c *SQClient) {
	peekGenericCommand(c, SQ_QUEUE)
}
