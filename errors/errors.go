package errors

import "fmt"

var (
	ErrWorkerPanic      = fmt.Errorf("worker panic")
	ErrCorruptQueueFile = fmt.Errorf("queue file is corrupt")
)
