package sched

// preemptive re-evaluates the ready queue every tick and replaces the running
// process only when the best candidate is strictly better. SRTF and
// preemptive priority use it.
type preemptive struct {
	less   func(a, b *Process) bool
	better func(candidate, running *Process) bool
}

func (pp preemptive) Tick(s *State) {
	if s == nil {
		return
	}

	i, cand := s.Ready.Best(pp.less)
	switch {
	case cand == nil:
	case s.Running == nil:
		s.dispatch(s.Ready.Take(i, s.Tick))
	case pp.better(cand, s.Running):
		next := s.Ready.Take(i, s.Tick)
		s.preempt(Annotations{"preempted_by": next.pid})
		s.dispatch(next)
	}

	s.execute(nil)
}
