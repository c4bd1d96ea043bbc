// internal/sched/scheduler.go

package sched

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emirpasic/gods/trees/redblacktree"

	"ticksched/internal/logging"
)

// Scheduler is the tick driver. It owns the clock, the pending arrivals, the
// ready queue and the running slot, and delegates every dispatch decision to
// the configured policy.
type Scheduler struct {
	state    *State
	policy   Policy
	pending  *redblacktree.Tree // not-yet-admitted processes ordered by arrival and submission order
	seq      int
	injected int
	rejected []Rejection
	tickMS   int

	log *slog.Logger
}

// Option customises a Scheduler.
type Option func(*Scheduler)

// WithSink sets the event sink. The default discards events; nil is ignored.
func WithSink(sink Sink) Option {
	return func(s *Scheduler) {
		if sink == nil {
			return
		}
		s.state.sink = sink
	}
}

// WithLogger sets the logger. The default discards output.
func WithLogger(log *slog.Logger) Option {
	return func(s *Scheduler) {
		if log == nil {
			return
		}
		s.log = log
		s.state.log = log
	}
}

// New creates a new Scheduler instance with the given configuration.
// An unknown algorithm is reported here and never mid-run.
func New(cfg Config, opts ...Option) (*Scheduler, error) {
	alg, err := ParseAlgorithm(cfg.Algorithm)
	if err != nil {
		return nil, err
	}
	policy, err := NewPolicy(alg)
	if err != nil {
		return nil, err
	}
	quantum := cfg.Quantum
	if quantum < 0 {
		quantum = 0
	}

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := &Scheduler{
		state:   newState(alg, quantum, Discard, discard),
		policy:  policy,
		pending: redblacktree.NewWith(cmp),
		tickMS:  cfg.TickMS,
		log:     discard,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Submit queues workload rows for admission at their arrival tick. Rows are
// validated up front; if any is invalid nothing is submitted.
func (s *Scheduler) Submit(specs ...Spec) error {
	procs := make([]*Process, 0, len(specs))
	for _, sp := range specs {
		p, err := NewProcess(sp.PID, sp.Arrival, sp.Burst, sp.Priority)
		if err != nil {
			return err
		}
		procs = append(procs, p)
	}
	for _, p := range procs {
		s.pending.Put(nodeKey{arrival: p.arrival, seq: s.seq}, p)
		s.seq++
	}
	return nil
}

// Done reports whether nothing is pending, ready or running.
func (s *Scheduler) Done() bool {
	return s.pending.Empty() && s.state.Idle()
}

// Step admits arrivals, advances the clock by one tick and runs the policy.
// It returns false without doing anything once the run is done.
func (s *Scheduler) Step() bool {
	if s.Done() {
		return false
	}
	s.admit()

	s.state.Tick++
	s.state.emit(EventTick, nil, nil)
	s.policy.Tick(s.state)
	return true
}

// admit moves every pending process whose arrival has been reached into the
// ready queue, in submission order for equal arrivals.
func (s *Scheduler) admit() {
	for {
		node := s.pending.Left()
		if node == nil {
			return
		}
		key := node.Key.(nodeKey)
		p := node.Value.(*Process)
		if key.arrival > s.state.Tick {
			return
		}
		s.pending.Remove(key)

		if s.state.holds(p.pid) {
			err := fmt.Errorf("%w: pid %d is already live", ErrInvalidWorkload, p.pid)
			s.rejected = append(s.rejected, Rejection{PID: p.pid, Tick: s.state.Tick, Err: err})
			s.log.Warn("admission rejected", "tick", s.state.Tick, "pid", p.pid, logging.ErrAttr(err))
			continue
		}

		s.state.emit(EventJobResumed, p, Annotations{"reason": "admitted", "arrival": p.arrival})
		s.state.Ready.Enqueue(p, s.state.Tick)
		s.injected++
	}
}

// Run steps until the workload is exhausted or ctx is cancelled. With a
// positive tick_ms each logical tick waits for one wall clock tick.
func (s *Scheduler) Run(ctx context.Context) error {
	var clock *TickClock
	if s.tickMS > 0 {
		clock = NewTickClock()
		clock.Start(time.Duration(s.tickMS) * time.Millisecond)
		defer clock.Stop()
	}

	s.log.Info("run started", "algorithm", s.state.Algorithm, "quantum", s.state.Quantum, "pending", s.pending.Size())
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if clock != nil {
			if err := clock.Wait(ctx); err != nil {
				return err
			}
		}
		s.Step()
	}
	s.log.Info("run finished",
		"ticks", s.state.Tick,
		"context_switches", s.state.ContextSwitches,
		"completed", s.state.Ledger.Len(),
		"rejected", len(s.rejected))
	return nil
}

// State exposes the scheduler state for inspection between steps.
func (s *Scheduler) State() *State { return s.state }

// Injected is the number of processes admitted so far.
func (s *Scheduler) Injected() int { return s.injected }

// Rejected lists processes refused at admission.
func (s *Scheduler) Rejected() []Rejection { return s.rejected }

// Summary computes run metrics from the completed ledger.
func (s *Scheduler) Summary() Summary {
	return Summarize(s.state.Algorithm.String(), s.injected, s.state)
}

// nodeKey is used as a key in the pending red-black tree.
type nodeKey struct {
	arrival int64
	seq     int
}

// cmp orders pending arrivals by tick, then by submission order.
func cmp(a, b any) int {
	ka, kb := a.(nodeKey), b.(nodeKey)
	switch {
	case ka.arrival < kb.arrival:
		return -1
	case ka.arrival > kb.arrival:
		return 1
	case ka.seq < kb.seq:
		return -1
	case ka.seq > kb.seq:
		return 1
	default:
		return 0
	}
}
