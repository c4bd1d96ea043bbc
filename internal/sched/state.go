package sched

import (
	"log/slog"
)

// State is the aggregate a policy mutates during one Tick call. The engine
// owns it; policies must not keep references to it or its processes.
type State struct {
	Algorithm Algorithm
	Tick      int64 // logical clock, incremented by the engine before each policy call
	Quantum   int64 // rr time slice, 0 means run to completion

	Ready   *ReadyQueue
	Running *Process

	ContextSwitches int64
	BusyTicks       int64
	Ledger          Ledger

	sink Sink
	log  *slog.Logger
}

func newState(alg Algorithm, quantum int64, sink Sink, log *slog.Logger) *State {
	return &State{
		Algorithm: alg,
		Quantum:   quantum,
		Ready:     NewReadyQueue(),
		sink:      sink,
		log:       log,
	}
}

// Idle reports whether nothing is ready or running.
func (s *State) Idle() bool {
	return s.Running == nil && s.Ready.Empty()
}

// holds reports whether pid is live in the ready queue or the running slot.
func (s *State) holds(pid PID) bool {
	if s.Running != nil && s.Running.pid == pid {
		return true
	}
	return s.Ready.Contains(pid)
}

// emit forwards one event and keeps the context switch counter in step with
// the stream.
func (s *State) emit(kind EventKind, p *Process, attrs Annotations) {
	if kind == EventContextSwitch {
		s.ContextSwitches++
	}
	s.sink.Emit(Event{Kind: kind, Tick: s.Tick, Job: jobOf(p), Attrs: attrs})
}

// dispatch moves p into the running slot and emits context_switch followed by
// job_started on first run or job_resumed otherwise.
func (s *State) dispatch(p *Process) {
	p.state = StateRunning
	s.Running = p
	if !p.start.IsSet() {
		p.start = markAt(s.Tick)
	}

	s.log.Debug("dispatch", "tick", s.Tick, "pid", p.pid, "remaining", p.remaining)
	s.emit(EventContextSwitch, p, nil)
	if p.fresh() {
		s.emit(EventJobStarted, p, nil)
	} else {
		s.emit(EventJobResumed, p, nil)
	}
}

// preempt emits job_preempted for the running process and returns it to the
// tail of the ready queue.
func (s *State) preempt(attrs Annotations) {
	p := s.Running
	if p == nil {
		return
	}
	s.log.Debug("preempt", "tick", s.Tick, "pid", p.pid, "attrs", attrs)
	s.emit(EventJobPreempted, p, attrs)
	s.Running = nil
	s.Ready.Enqueue(p, s.Tick)
}

// execute consumes one tick of service for the running process, emits the
// gantt slice and retires the process if it is done. It reports whether the
// process finished.
func (s *State) execute(attrs func(p *Process) Annotations) bool {
	p := s.Running
	if p == nil {
		return false
	}
	if p.remaining > 0 {
		p.remaining--
	}
	s.BusyTicks++

	a := Annotations{"remaining": p.remaining}
	if attrs != nil {
		for k, v := range attrs(p) {
			a[k] = v
		}
	}
	s.emit(EventGanttSlice, p, a)

	if p.remaining > 0 {
		return false
	}
	s.retire()
	return true
}

// retire terminates the running process, records it and clears the slot.
func (s *State) retire() {
	p := s.Running
	p.state = StateTerminated
	p.finish = markAt(s.Tick)
	s.emit(EventJobFinished, p, nil)
	s.Ledger.Record(p)
	s.Running = nil
}
