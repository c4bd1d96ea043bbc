// internal/sched/schedulerEvent.go

package sched

// EventKind represents the type of scheduler event
type EventKind int

const (
	EventTick EventKind = iota
	EventJobStarted
	EventJobPreempted
	EventJobResumed
	EventJobFinished
	EventContextSwitch
	EventGanttSlice
)

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventJobStarted:
		return "job_started"
	case EventJobPreempted:
		return "job_preempted"
	case EventJobResumed:
		return "job_resumed"
	case EventJobFinished:
		return "job_finished"
	case EventContextSwitch:
		return "context_switch"
	case EventGanttSlice:
		return "gantt_slice"
	default:
		return "unknown"
	}
}

// Job is a value copy of a process taken when an event is emitted, so sinks
// never hold a reference into scheduler state.
type Job struct {
	PID         PID
	State       ProcState
	Arrival     int64
	Burst       int64
	Remaining   int64
	Priority    int
	Level       int
	QuantumLeft int64
}

func jobOf(p *Process) *Job {
	if p == nil {
		return nil
	}
	return &Job{
		PID:         p.pid,
		State:       p.state,
		Arrival:     p.arrival,
		Burst:       p.burst,
		Remaining:   p.remaining,
		Priority:    p.priority,
		Level:       p.level,
		QuantumLeft: p.quantumLeft,
	}
}

// Annotations carries policy-specific extras such as preempted_by,
// demoted_to or reason.
type Annotations map[string]any

// Event is emitted once per state transition and once per tick.
type Event struct {
	Kind  EventKind
	Tick  int64
	Job   *Job // nil for tick events
	Attrs Annotations
}

// Sink receives the event stream. Implementations must not block on the
// engine for long; ordering within a tick is significant.
type Sink interface {
	Emit(ev Event)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(ev Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Recorder keeps every event in memory.
type Recorder struct {
	Events []Event
}

func (r *Recorder) Emit(ev Event) { r.Events = append(r.Events, ev) }

// Kinds returns the recorded event kinds for one pid, in order.
func (r *Recorder) Kinds(pid PID) []EventKind {
	var out []EventKind
	for _, ev := range r.Events {
		if ev.Job != nil && ev.Job.PID == pid {
			out = append(out, ev.Kind)
		}
	}
	return out
}

// Multi fans an event out to several sinks in order.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(ev Event) {
		for _, s := range sinks {
			s.Emit(ev)
		}
	})
}
