// internal/sched/readyqueue.go

package sched

import (
	"github.com/emirpasic/gods/lists/arraylist"
)

// ReadyQueue is an insertion-ordered collection of ready processes.
// Removal always goes through PopHead or Take so waiting time is accrued in
// exactly one place.
type ReadyQueue struct {
	list *arraylist.List
}

// NewReadyQueue returns an empty queue.
func NewReadyQueue() *ReadyQueue {
	return &ReadyQueue{list: arraylist.New()}
}

// Len returns the number of queued processes.
func (q *ReadyQueue) Len() int { return q.list.Size() }

// Empty reports whether nothing is queued.
func (q *ReadyQueue) Empty() bool { return q.list.Empty() }

// Enqueue appends p to the tail, marks it ready and stamps the enqueue tick.
// Enqueueing a process that is already queued is a caller error.
func (q *ReadyQueue) Enqueue(p *Process, now int64) {
	p.state = StateReady
	p.enqueuedAt = markAt(now)
	q.list.Add(p)
}

// PopHead removes and returns the oldest entry, or nil when empty.
func (q *ReadyQueue) PopHead(now int64) *Process {
	return q.Take(0, now)
}

// Take removes the entry at index i and settles its waiting time.
// It returns nil when i is out of range.
func (q *ReadyQueue) Take(i int, now int64) *Process {
	v, ok := q.list.Get(i)
	if !ok {
		return nil
	}
	q.list.Remove(i)

	p := v.(*Process)
	if at, set := p.enqueuedAt.Tick(); set {
		if now >= at {
			p.waited += now - at
		}
		p.enqueuedAt = Mark{}
	}
	return p
}

// Best scans for the entry that orders first under less without removing it.
// Earlier entries win ties, so a strict less keeps queue order among equals.
// It returns -1 and nil when the queue is empty.
func (q *ReadyQueue) Best(less func(a, b *Process) bool) (int, *Process) {
	idx := -1
	var best *Process
	q.list.Each(func(i int, v interface{}) {
		p := v.(*Process)
		if best == nil || less(p, best) {
			idx, best = i, p
		}
	})
	return idx, best
}

// TakeBest removes the entry Best would return.
func (q *ReadyQueue) TakeBest(less func(a, b *Process) bool, now int64) *Process {
	i, _ := q.Best(less)
	if i < 0 {
		return nil
	}
	return q.Take(i, now)
}

// Each visits queued processes in queue order. The callback must not
// enqueue or remove.
func (q *ReadyQueue) Each(fn func(p *Process)) {
	q.list.Each(func(_ int, v interface{}) {
		fn(v.(*Process))
	})
}

// Contains reports whether a process with the given pid is queued.
func (q *ReadyQueue) Contains(pid PID) bool {
	_, found := q.list.Find(func(_ int, v interface{}) bool {
		return v.(*Process).pid == pid
	})
	return found != nil
}

// PIDs lists queued pids in queue order.
func (q *ReadyQueue) PIDs() []PID {
	out := make([]PID, 0, q.list.Size())
	q.Each(func(p *Process) { out = append(out, p.pid) })
	return out
}
