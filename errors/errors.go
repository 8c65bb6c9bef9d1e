package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrMalformedEvent   = fmt.Errorf("event is missing a required field")
	ErrUnknownEventKind = fmt.Errorf("unknown event kind")
)
