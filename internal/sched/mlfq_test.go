package sched

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testState(t *testing.T, alg Algorithm, rec *Recorder) *State {
	t.Helper()
	return newState(alg, 0, rec, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func mustProcess(t *testing.T, pid PID, arrival, burst int64) *Process {
	t.Helper()
	p, err := NewProcess(pid, arrival, burst, 0)
	require.NoError(t, err)
	return p
}

func TestMLFQ_AgingPromotes(t *testing.T) {
	rec := &Recorder{}
	s := testState(t, MLFQ, rec)
	s.Tick = 20

	running := mustProcess(t, 1, 0, 1)
	running.state = StateRunning
	running.quantumLeft = 1
	s.Running = running

	starved := mustProcess(t, 2, 0, 9)
	starved.level = 2
	starved.aging = agingThreshold
	s.Ready.Enqueue(starved, 10)

	mlfq{}.Tick(s)

	assert.Equal(t, 1, starved.Level())
	assert.Equal(t, 1, starved.aging, "counter resets on promotion then ages this tick")
	assert.Nil(t, s.Running, "finishing never dispatches in the same tick")
	assert.Equal(t, 1, s.Ledger.Len())
}

func TestMLFQ_DemotedProcessAgesSameTick(t *testing.T) {
	rec := &Recorder{}
	s := testState(t, MLFQ, rec)
	s.Tick = 3

	running := mustProcess(t, 1, 1, 5)
	running.state = StateRunning
	running.quantumLeft = 1
	s.Running = running

	waiting := mustProcess(t, 2, 0, 5)
	s.Ready.Enqueue(waiting, 2)

	mlfq{}.Tick(s)

	require.NotNil(t, s.Running)
	assert.Equal(t, PID(2), s.Running.PID())
	assert.Equal(t, 1, running.Level())
	assert.Equal(t, 1, running.aging)
	assert.Equal(t, []PID{1}, s.Ready.PIDs())

	var demoted *Event
	for i := range rec.Events {
		if rec.Events[i].Kind == EventJobPreempted {
			demoted = &rec.Events[i]
		}
	}
	require.NotNil(t, demoted)
	assert.Equal(t, "quantum", demoted.Attrs["reason"])
	assert.Equal(t, 1, demoted.Attrs["demoted_to"])
}

func TestMLFQ_LevelFloor(t *testing.T) {
	rec := &Recorder{}
	s := testState(t, MLFQ, rec)
	s.Tick = 1

	p := mustProcess(t, 1, 0, 50)
	s.Ready.Enqueue(p, 0)

	for i := 0; i < 30; i++ {
		s.Tick++
		mlfq{}.Tick(s)
		require.LessOrEqual(t, p.Level(), mlfqLevels-1)
	}
	assert.Equal(t, mlfqLevels-1, p.Level())
	assert.Equal(t, int64(20), p.Remaining())
}

func TestPolicies_NilStateIsNoop(t *testing.T) {
	for _, alg := range Algorithms() {
		p, err := NewPolicy(alg)
		require.NoError(t, err)
		assert.NotPanics(t, func() { p.Tick(nil) }, alg.String())
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range Algorithms() {
		got, err := ParseAlgorithm(alg.String())
		require.NoError(t, err)
		assert.Equal(t, alg, got)
	}

	got, err := ParseAlgorithm(" RR ")
	require.NoError(t, err)
	assert.Equal(t, RoundRobin, got)

	_, err = ParseAlgorithm("cfs")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	_, err = NewPolicy(Algorithm(99))
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}
