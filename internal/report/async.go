package report

import (
	"sync"

	"ticksched/internal/sched"
)

// AsyncSink hands events to a consumer goroutine through a buffered channel
// so slow output never stalls the tick loop. Events reach next in emission
// order. Close must be called to drain the buffer; events emitted after Close
// are dropped.
type AsyncSink struct {
	ch   chan sched.Event
	done chan struct{}

	mu     sync.Mutex
	closed bool
}

// NewAsyncSink starts the consumer goroutine.
func NewAsyncSink(next sched.Sink, buffer int) *AsyncSink {
	a := &AsyncSink{
		ch:   make(chan sched.Event, buffer),
		done: make(chan struct{}),
	}
	go func() {
		defer close(a.done)
		for ev := range a.ch {
			next.Emit(ev)
		}
	}()
	return a
}

// Emit queues ev. It blocks only when the buffer is full.
func (a *AsyncSink) Emit(ev sched.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.ch <- ev
}

// Close stops accepting events and waits until every queued event has been
// delivered.
func (a *AsyncSink) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.ch)
	}
	a.mu.Unlock()
	<-a.done
}
