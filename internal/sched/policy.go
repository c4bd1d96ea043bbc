package sched

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the closed set of dispatch policies.
type Algorithm int

const (
	FCFS Algorithm = iota + 1
	SJF
	SRTF
	Priority
	PriorityPreemptive
	RoundRobin
	MLFQ
)

var algorithmNames = map[Algorithm]string{
	FCFS:               "fcfs",
	SJF:                "sjf",
	SRTF:               "srtf",
	Priority:           "priority",
	PriorityPreemptive: "priority_p",
	RoundRobin:         "rr",
	MLFQ:               "mlfq",
}

// Algorithms lists every algorithm in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{FCFS, SJF, SRTF, Priority, PriorityPreemptive, RoundRobin, MLFQ}
}

func (a Algorithm) String() string {
	if n, ok := algorithmNames[a]; ok {
		return n
	}
	return "unknown"
}

// ParseAlgorithm maps a selector such as "rr" or "priority_p" to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a, s := range algorithmNames {
		if s == n {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Policy advances the scheduler by one tick. The engine calls Tick after
// admission and after incrementing the clock. A nil state is a no-op.
type Policy interface {
	Tick(s *State)
}

// NewPolicy returns the policy implementing a.
func NewPolicy(a Algorithm) (Policy, error) {
	switch a {
	case FCFS:
		return fcfs{}, nil
	case SJF:
		return nonPreemptive{less: byBurst}, nil
	case Priority:
		return nonPreemptive{less: byPriority}, nil
	case SRTF:
		return preemptive{less: byRemaining, better: func(c, r *Process) bool { return c.remaining < r.remaining }}, nil
	case PriorityPreemptive:
		return preemptive{less: byPriority, better: func(c, r *Process) bool { return c.priority < r.priority }}, nil
	case RoundRobin:
		return roundRobin{}, nil
	case MLFQ:
		return mlfq{}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
}

// tieBreak orders by arrival then pid.
func tieBreak(a, b *Process) bool {
	if a.arrival != b.arrival {
		return a.arrival < b.arrival
	}
	return a.pid < b.pid
}

func byBurst(a, b *Process) bool {
	if a.burst != b.burst {
		return a.burst < b.burst
	}
	return tieBreak(a, b)
}

func byRemaining(a, b *Process) bool {
	if a.remaining != b.remaining {
		return a.remaining < b.remaining
	}
	return tieBreak(a, b)
}

func byPriority(a, b *Process) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return tieBreak(a, b)
}

func byLevel(a, b *Process) bool {
	if a.level != b.level {
		return a.level < b.level
	}
	return tieBreak(a, b)
}
