package sched

import "fmt"

// PID identifies a process. It is supplied by the caller and doubles as the
// last tie-break key in every ordered selection.
type PID int64

// ProcState is the lifecycle state of a process.
type ProcState int

const (
	StateNew ProcState = iota
	StateReady
	StateRunning
	StateTerminated
)

func (ps ProcState) String() string {
	switch ps {
	case StateNew:
		return "new"
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Mark is a tick stamp that may be unset.
type Mark struct {
	tick int64
	ok   bool
}

func markAt(tick int64) Mark { return Mark{tick: tick, ok: true} }

// Tick returns the stamped tick and whether it was ever set.
func (m Mark) Tick() (int64, bool) { return m.tick, m.ok }

// IsSet reports whether the stamp holds a tick.
func (m Mark) IsSet() bool { return m.ok }

// Spec is one workload row as supplied by the caller.
type Spec struct {
	PID      PID
	Arrival  int64
	Burst    int64
	Priority int
}

// Process represents one schedulable unit.
// Arrival, burst and priority are fixed at creation; everything else is
// runtime state owned by whichever of the ready queue or running slot holds it.
type Process struct {
	pid      PID
	arrival  int64
	burst    int64
	priority int

	remaining   int64
	state       ProcState
	quantumLeft int64 // time-slice counter for rr / mlfq
	level       int   // mlfq queue level, 0 is highest
	aging       int   // mlfq ticks spent ready since last promotion
	start       Mark
	finish      Mark

	enqueuedAt Mark  // unset while not queued
	waited     int64 // ticks spent ready, accrued on dequeue only
}

// NewProcess creates a process in the New state.
func NewProcess(pid PID, arrival, burst int64, priority int) (*Process, error) {
	if burst <= 0 {
		return nil, fmt.Errorf("%w: pid %d has burst %d", ErrInvalidWorkload, pid, burst)
	}
	if arrival < 0 {
		return nil, fmt.Errorf("%w: pid %d has arrival %d", ErrInvalidWorkload, pid, arrival)
	}

	return &Process{
		pid:       pid,
		arrival:   arrival,
		burst:     burst,
		priority:  priority,
		remaining: burst,
		state:     StateNew,
	}, nil
}

// Clone returns an independent copy carrying the same runtime state.
func (p *Process) Clone() *Process {
	c := *p
	return &c
}

func (p *Process) PID() PID             { return p.pid }
func (p *Process) Arrival() int64       { return p.arrival }
func (p *Process) Burst() int64         { return p.burst }
func (p *Process) Priority() int        { return p.priority }
func (p *Process) Remaining() int64     { return p.remaining }
func (p *Process) State() ProcState     { return p.state }
func (p *Process) QuantumLeft() int64   { return p.quantumLeft }
func (p *Process) Level() int           { return p.level }
func (p *Process) StartTime() Mark      { return p.start }
func (p *Process) FinishTime() Mark     { return p.finish }
func (p *Process) Waited() int64        { return p.waited }
func (p *Process) LastEnqueuedAt() Mark { return p.enqueuedAt }
func (p *Process) fresh() bool          { return p.remaining == p.burst }
func (p *Process) String() string       { return fmt.Sprintf("P%d", p.pid) }
