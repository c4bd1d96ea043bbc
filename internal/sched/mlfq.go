package sched

const (
	mlfqLevels     = 3
	agingThreshold = 10
)

// mlfqSlices is the time slice per level.
var mlfqSlices = [mlfqLevels]int64{1, 2, 4}

// mlfq is a three level feedback queue. Exhausting a slice demotes a process
// one level; ready processes age every tick and are promoted one level once
// their counter reaches agingThreshold.
type mlfq struct{}

func sliceFor(level int) int64 {
	if level < 0 {
		level = 0
	}
	if level >= mlfqLevels {
		level = mlfqLevels - 1
	}
	return mlfqSlices[level]
}

func (mlfq) dispatch(s *State, p *Process) {
	p.quantumLeft = sliceFor(p.level)
	s.dispatch(p)
}

func (m mlfq) Tick(s *State) {
	if s == nil {
		return
	}

	s.Ready.Each(func(p *Process) {
		if p.aging >= agingThreshold {
			if p.level > 0 {
				p.level--
			}
			p.aging = 0
		}
	})

	i, cand := s.Ready.Best(byLevel)
	switch {
	case cand == nil:
	case s.Running == nil:
		m.dispatch(s, s.Ready.Take(i, s.Tick))
	case cand.level < s.Running.level:
		next := s.Ready.Take(i, s.Tick)
		s.preempt(Annotations{"preempted_by": next.pid})
		m.dispatch(s, next)
	}

	if p := s.Running; p != nil {
		if p.quantumLeft > 0 {
			p.quantumLeft--
		}
		finished := s.execute(func(p *Process) Annotations {
			return Annotations{"mlfq_level": p.level, "quantum_left": p.quantumLeft}
		})
		if !finished && p.quantumLeft <= 0 {
			if p.level < mlfqLevels-1 {
				p.level++
			}
			s.preempt(Annotations{"reason": "quantum", "demoted_to": p.level})
			if next := s.Ready.TakeBest(byLevel, s.Tick); next != nil {
				m.dispatch(s, next)
			}
		}
	}

	// A process demoted above is already queued and ages this tick too.
	s.Ready.Each(func(p *Process) { p.aging++ })
}
