package sched

import "errors"

var (
	// ErrInvalidWorkload rejects a process with a non-positive burst or a pid
	// already held by a live process.
	ErrInvalidWorkload = errors.New("invalid workload")
	// ErrUnknownAlgorithm is returned at configuration time only.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// Rejection records a process refused at admission.
type Rejection struct {
	PID  PID
	Tick int64
	Err  error
}
