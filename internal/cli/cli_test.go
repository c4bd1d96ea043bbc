package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yml")}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRun_DemoSummaryTable(t *testing.T) {
	out, _, err := execute(t, "run", "--algo", "rr", "--quantum", "2", "--events", "none", "--summary", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "rr: 3 processes, 10 ticks, 6 context switches")
}

func TestRun_JSONEventsThenSummary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte("pid,arrival,burst,priority\n1,0,5,1\n2,2,3,3\n3,4,2,2\n"), 0o644))

	out, _, err := execute(t, "run", "-w", path, "-a", "srtf")
	require.NoError(t, err)

	idx := strings.Index(out, "{\n")
	require.Greater(t, idx, 0, "summary follows the event lines")

	for _, line := range strings.Split(strings.TrimSpace(out[:idx]), "\n") {
		var ev map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &ev))
	}

	var sum struct {
		Algorithm string `json:"algorithm"`
		Processes []struct {
			PID    int `json:"pid"`
			Finish int `json:"finish"`
		} `json:"processes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out[idx:]), &sum))
	assert.Equal(t, "srtf", sum.Algorithm)
	require.Len(t, sum.Processes, 3)
	assert.Equal(t, 3, sum.Processes[1].PID)
	assert.Equal(t, 7, sum.Processes[1].Finish)
}

func TestRun_WorkloadModeUsedWithoutFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")
	doc := `{"mode":"rr","quantum":2,"jobs":[{"pid":1,"arrival_time":0,"burst_time":5,"priority":1},{"pid":2,"arrival_time":2,"burst_time":3,"priority":3},{"pid":3,"arrival_time":4,"burst_time":2,"priority":2}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, _, err := execute(t, "run", "-w", path, "--events", "none", "--summary", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "rr: 3 processes, 10 ticks, 6 context switches")
}

func TestRun_ConfigOverridesWorkloadMode(t *testing.T) {
	dir := t.TempDir()
	workloadPath := filepath.Join(dir, "run.json")
	doc := `{"mode":"rr","quantum":2,"jobs":[{"pid":1,"arrival_time":0,"burst_time":5,"priority":1},{"pid":2,"arrival_time":2,"burst_time":3,"priority":3},{"pid":3,"arrival_time":4,"burst_time":2,"priority":2}]}`
	require.NoError(t, os.WriteFile(workloadPath, []byte(doc), 0o644))
	configPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("algorithm: fcfs\n"), 0o644))

	out, _, err := execute(t, "--config", configPath, "run", "-w", workloadPath, "--events", "none", "--summary", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "fcfs: 3 processes, 10 ticks, 3 context switches")
}

func TestGen_NegativeCount(t *testing.T) {
	out, _, err := execute(t, "gen", "-n", "-1")
	require.NoError(t, err)
	assert.Contains(t, out, "jobs")
}

func TestRun_Errors(t *testing.T) {
	_, _, err := execute(t, "run", "--algo", "lottery")
	assert.ErrorContains(t, err, "unknown algorithm")

	_, _, err = execute(t, "run", "--events", "xml")
	assert.ErrorContains(t, err, "unknown event format")

	_, _, err = execute(t, "run", "-w", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "load workload")
}

func TestCompare(t *testing.T) {
	out, _, err := execute(t, "compare")
	require.NoError(t, err)
	for _, alg := range []string{"fcfs", "sjf", "srtf", "priority", "priority_p", "rr", "mlfq"} {
		assert.Contains(t, out, alg)
	}
}

func TestGenThenRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yml")
	_, _, err := execute(t, "gen", "-n", "8", "--seed", "3", "-o", path)
	require.NoError(t, err)

	out, _, err := execute(t, "run", "-w", path, "-a", "mlfq", "--events", "none")
	require.NoError(t, err)
	assert.Contains(t, out, `"injected": 8`)
}

func TestAlgorithms(t *testing.T) {
	out, _, err := execute(t, "algorithms")
	require.NoError(t, err)
	assert.Equal(t, "fcfs\nsjf\nsrtf\npriority\npriority_p\nrr\nmlfq\n", out)
}

func TestRun_CSVLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.csv")
	_, _, err := execute(t, "run", "-a", "fcfs", "--events", "none", "--summary", "none", "--csv-log", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, "tick,event,pid,state,remaining,attrs", lines[0])
	assert.Contains(t, lines[len(lines)-1], "10,job_finished,3,terminated,0")
}
