package sched

// roundRobin rotates the ready queue in arrival order, preempting the running
// process when its quantum expires. A zero quantum never time-slices.
type roundRobin struct{}

func (roundRobin) Tick(s *State) {
	if s == nil {
		return
	}
	if s.Running == nil {
		if p := s.Ready.PopHead(s.Tick); p != nil {
			p.quantumLeft = s.Quantum
			s.dispatch(p)
		}
	}

	p := s.Running
	if p == nil {
		return
	}
	if s.Quantum > 0 && p.quantumLeft > 0 {
		p.quantumLeft--
	}
	quantum := func(p *Process) Annotations {
		return Annotations{"quantum_left": p.quantumLeft}
	}
	if s.execute(quantum) {
		return
	}

	if s.Quantum > 0 && p.quantumLeft <= 0 {
		s.preempt(Annotations{"reason": "quantum"})
		if next := s.Ready.PopHead(s.Tick); next != nil {
			next.quantumLeft = s.Quantum
			s.dispatch(next)
		}
	}
}
