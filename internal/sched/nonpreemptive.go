package sched

// fcfs dispatches the queue head whenever the CPU is free.
type fcfs struct{}

func (fcfs) Tick(s *State) {
	if s == nil {
		return
	}
	if s.Running == nil {
		if p := s.Ready.PopHead(s.Tick); p != nil {
			s.dispatch(p)
		}
	}
	s.execute(nil)
}

// nonPreemptive selects the best ready process by less only when the CPU is
// free, then runs it to completion. SJF and non-preemptive priority use it.
type nonPreemptive struct {
	less func(a, b *Process) bool
}

func (np nonPreemptive) Tick(s *State) {
	if s == nil {
		return
	}
	if s.Running == nil {
		if p := s.Ready.TakeBest(np.less, s.Tick); p != nil {
			s.dispatch(p)
		}
	}
	s.execute(nil)
}
