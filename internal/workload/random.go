package workload

import (
	"math/rand"
	"sort"
)

// RandomOptions bounds a generated workload.
type RandomOptions struct {
	Count       int
	MaxArrival  int64
	MaxBurst    int64
	MaxPriority int
	Seed        int64
}

// DefaultRandomOptions matches the original generator's defaults.
func DefaultRandomOptions() RandomOptions {
	return RandomOptions{Count: 5, MaxArrival: 10, MaxBurst: 20, MaxPriority: 10, Seed: 1}
}

// Random generates Count jobs with pids 0..Count-1, arrival in
// [0,MaxArrival], burst in [1,MaxBurst] and priority in [0,MaxPriority].
// Jobs are returned sorted by arrival, then pid.
func Random(o RandomOptions) []Job {
	if o.MaxBurst < 1 {
		o.MaxBurst = 1
	}
	if o.MaxArrival < 0 {
		o.MaxArrival = 0
	}
	if o.MaxPriority < 0 {
		o.MaxPriority = 0
	}
	if o.Count < 0 {
		o.Count = 0
	}

	r := rand.New(rand.NewSource(o.Seed))
	jobs := make([]Job, 0, o.Count)
	for i := 0; i < o.Count; i++ {
		jobs = append(jobs, Job{
			PID:      int64(i),
			Arrival:  r.Int63n(o.MaxArrival + 1),
			Burst:    r.Int63n(o.MaxBurst) + 1,
			Priority: r.Intn(o.MaxPriority + 1),
		})
	}
	sort.SliceStable(jobs, func(a, b int) bool {
		return jobs[a].Arrival < jobs[b].Arrival
	})
	return jobs
}
