package src

import "simple-stackqueue/utils"

func assertStack(o *SQobj) *Stack {
	s, ok := o.Val.(*Stack)
	if !ok {
		utils.Error("assertStack err: ", o.Typ)
	}
	return s
}

func assertQueue(o *SQobj) *Queue {
	q, ok := o.Val.(*Queue)
	if !ok {
		utils.Error("assertQueue err: ", o.Typ)
	}
	return q
}
