package sched

// ProcessMetrics is one row of the run summary.
type ProcessMetrics struct {
	PID        PID   `json:"pid" yaml:"pid"`
	Arrival    int64 `json:"arrival" yaml:"arrival"`
	Burst      int64 `json:"burst" yaml:"burst"`
	Priority   int   `json:"priority" yaml:"priority"`
	Start      int64 `json:"start" yaml:"start"`
	Finish     int64 `json:"finish" yaml:"finish"`
	Waiting    int64 `json:"waiting" yaml:"waiting"`
	Turnaround int64 `json:"turnaround" yaml:"turnaround"`
	Response   int64 `json:"response" yaml:"response"`
}

// Averages across all completed processes.
type Averages struct {
	Waiting    float64 `json:"waiting_time" yaml:"waiting_time"`
	Turnaround float64 `json:"turnaround_time" yaml:"turnaround_time"`
	Response   float64 `json:"response_time" yaml:"response_time"`
}

// Summary is the outbound record produced after a run.
type Summary struct {
	Algorithm       string           `json:"algorithm" yaml:"algorithm"`
	Injected        int              `json:"injected" yaml:"injected"`
	Ticks           int64            `json:"ticks" yaml:"ticks"`
	ContextSwitches int64            `json:"context_switches" yaml:"context_switches"`
	BusyTicks       int64            `json:"busy_ticks" yaml:"busy_ticks"`
	Utilization     float64          `json:"utilization" yaml:"utilization"`
	Throughput      float64          `json:"throughput" yaml:"throughput"`
	Processes       []ProcessMetrics `json:"processes" yaml:"processes"`
	Averages        Averages         `json:"averages" yaml:"averages"`
}

// Summarize derives per-process and average metrics from the ledger.
// Waiting is turnaround minus burst, turnaround is finish minus arrival and
// response is start minus arrival.
func Summarize(algorithm string, injected int, s *State) Summary {
	sum := Summary{
		Algorithm:       algorithm,
		Injected:        injected,
		Ticks:           s.Tick,
		ContextSwitches: s.ContextSwitches,
		BusyTicks:       s.BusyTicks,
		Processes:       make([]ProcessMetrics, 0, s.Ledger.Len()),
	}

	var wait, turn, resp int64
	for _, c := range s.Ledger.All() {
		m := ProcessMetrics{
			PID:        c.PID,
			Arrival:    c.Arrival,
			Burst:      c.Burst,
			Priority:   c.Priority,
			Start:      c.Start,
			Finish:     c.Finish,
			Waiting:    c.Waiting(),
			Turnaround: c.Turnaround(),
			Response:   c.Response(),
		}
		wait += m.Waiting
		turn += m.Turnaround
		resp += m.Response
		sum.Processes = append(sum.Processes, m)
	}

	if n := float64(len(sum.Processes)); n > 0 {
		sum.Averages = Averages{
			Waiting:    float64(wait) / n,
			Turnaround: float64(turn) / n,
			Response:   float64(resp) / n,
		}
	}
	if s.Tick > 0 {
		sum.Utilization = float64(s.BusyTicks) / float64(s.Tick)
		sum.Throughput = float64(len(sum.Processes)) / float64(s.Tick)
	}
	return sum
}
