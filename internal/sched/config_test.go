package sched

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesAndClamps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := "algorithm: rr\nquantum: -4\ntick_ms: -1\nsummary: table\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "rr", cfg.Algorithm)
	assert.Equal(t, int64(0), cfg.Quantum)
	assert.Equal(t, 0, cfg.TickMS)
	assert.Equal(t, "table", cfg.Summary)
	assert.Equal(t, "json", cfg.Events)
}

func TestLoad_TracksExplicitKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: fcfs\nquantum: 0\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IsSet("algorithm"))
	assert.True(t, cfg.IsSet("quantum"))
	assert.False(t, cfg.IsSet("tick_ms"))
	assert.False(t, DefaultConfig().IsSet("algorithm"))
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("quantum: [1, 2\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s := testState(t, FCFS, &Recorder{})
	s.Tick = 10
	s.BusyTicks = 10
	s.ContextSwitches = 3
	for _, c := range []Completed{
		{PID: 1, Arrival: 0, Burst: 5, Start: 1, Finish: 5},
		{PID: 2, Arrival: 2, Burst: 3, Start: 6, Finish: 8},
		{PID: 3, Arrival: 4, Burst: 2, Start: 9, Finish: 10},
	} {
		p := mustProcess(t, c.PID, c.Arrival, c.Burst)
		p.start = markAt(c.Start)
		p.finish = markAt(c.Finish)
		s.Ledger.Record(p)
	}

	sum := Summarize("fcfs", 3, s)
	assert.Equal(t, "fcfs", sum.Algorithm)
	assert.Equal(t, int64(3), sum.ContextSwitches)
	require.Len(t, sum.Processes, 3)
	assert.Equal(t, int64(3), sum.Processes[1].Waiting)
	assert.Equal(t, int64(6), sum.Processes[1].Turnaround)
	assert.Equal(t, int64(4), sum.Processes[1].Response)
	assert.InDelta(t, 7.0/3, sum.Averages.Waiting, 1e-9)
	assert.InDelta(t, 17.0/3, sum.Averages.Turnaround, 1e-9)
	assert.InDelta(t, 10.0/3, sum.Averages.Response, 1e-9)
	assert.Equal(t, 1.0, sum.Utilization)
	assert.InDelta(t, 0.3, sum.Throughput, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	sum := Summarize("rr", 0, testState(t, RoundRobin, &Recorder{}))
	assert.Empty(t, sum.Processes)
	assert.Zero(t, sum.Averages.Waiting)
	assert.Zero(t, sum.Utilization)
}
