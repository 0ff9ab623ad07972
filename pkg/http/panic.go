package http

import (
	"fmt"
	"runtime/debug"
)

// Panic is a recovered handler panic, the server responds 500 and reports it to logging and metrics.
type Panic struct {
	Message    string
	Stacktrace []byte
}

func newPanic(msg any) Panic {
	return Panic{
		Message:    fmt.Sprintf("%v", msg),
		Stacktrace: debug.Stack(),
	}
}
