// Package src error codes
package src

import (
	"strconv"
)

type sqError int

func (e sqError) Error() string {
	if 0 <= int(e) && int(e) < len(sqErrors) {
		s := sqErrors[e]
		if s != "" {
			return s
		}
	}
	return "errno " + strconv.Itoa(int(e))
}

var sqErrors = [...]string{
	0x01: "collection is empty",
	0x02: "wrong type",
	0x03: "unknown command",
	0x04: "wrong number of args",
	0x05: "value is not an integer",
	0x06: "no such key",
	0x07: "syntax error",
}

// OpError records which operation of which collection failed.
// errors.Is(err, ErrEmptyCollection) sees through it.
type OpError struct {
	Kind string // "stack" or "queue"
	Op   string
	Err  error
}

func (e *OpError) Error() string {
	return e.Kind + " " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}

func opError(kind, op string, err error) error {
	return &OpError{Kind: kind, Op: op, Err: err}
}
