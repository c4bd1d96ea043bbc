package sched

// Completed is the immutable snapshot copied when a process terminates.
type Completed struct {
	PID      PID
	Arrival  int64
	Burst    int64
	Priority int
	Start    int64
	Finish   int64
}

// Turnaround is finish minus arrival.
func (c Completed) Turnaround() int64 { return c.Finish - c.Arrival }

// Waiting is turnaround minus burst.
func (c Completed) Waiting() int64 { return c.Turnaround() - c.Burst }

// Response is start minus arrival.
func (c Completed) Response() int64 { return c.Start - c.Arrival }

// Ledger accumulates completed snapshots in completion order.
type Ledger struct {
	entries []Completed
}

// Record copies p into the ledger. A process that never stamped a start time
// is recorded as starting at its finish tick.
func (l *Ledger) Record(p *Process) {
	finish, _ := p.finish.Tick()
	start, ok := p.start.Tick()
	if !ok {
		start = finish
	}
	l.entries = append(l.entries, Completed{
		PID:      p.pid,
		Arrival:  p.arrival,
		Burst:    p.burst,
		Priority: p.priority,
		Start:    start,
		Finish:   finish,
	})
}

// All returns a copy of the snapshots in completion order.
func (l *Ledger) All() []Completed {
	out := make([]Completed, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *Ledger) Len() int { return len(l.entries) }
