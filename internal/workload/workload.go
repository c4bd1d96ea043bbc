// Package workload reads and generates the process lists fed to the
// scheduler.
package workload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "github.com/goccy/go-yaml"

	"ticksched/internal/sched"
)

// Job is one workload row in a run config file.
type Job struct {
	PID      int64 `yaml:"pid" json:"pid"`
	Arrival  int64 `yaml:"arrival_time" json:"arrival_time"`
	Burst    int64 `yaml:"burst_time" json:"burst_time"`
	Priority int   `yaml:"priority" json:"priority"`
}

// RunConfig is a complete run description: algorithm, quantum and jobs.
// JSON documents are accepted as well since they are valid YAML.
type RunConfig struct {
	Mode    string `yaml:"mode,omitempty" json:"mode,omitempty"`
	Quantum int64  `yaml:"quantum,omitempty" json:"quantum,omitempty"`
	Jobs    []Job  `yaml:"jobs" json:"jobs"`
}

// Specs converts the jobs into scheduler input, preserving order.
func (rc RunConfig) Specs() []sched.Spec {
	specs := make([]sched.Spec, len(rc.Jobs))
	for i, j := range rc.Jobs {
		specs[i] = sched.Spec{
			PID:      sched.PID(j.PID),
			Arrival:  j.Arrival,
			Burst:    j.Burst,
			Priority: j.Priority,
		}
	}
	return specs
}

// Demo is the three process workload used when no file is given.
func Demo() RunConfig {
	return RunConfig{Jobs: []Job{
		{PID: 1, Arrival: 0, Burst: 5, Priority: 1},
		{PID: 2, Arrival: 2, Burst: 3, Priority: 3},
		{PID: 3, Arrival: 4, Burst: 2, Priority: 2},
	}}
}

// ParseRunConfig decodes a YAML or JSON run config.
func ParseRunConfig(data []byte) (RunConfig, error) {
	var rc RunConfig
	if err := yaml.Unmarshal(data, &rc); err != nil {
		return RunConfig{}, fmt.Errorf("decoding run config: %w", err)
	}
	return rc, nil
}

// Marshal encodes rc as YAML.
func Marshal(rc RunConfig) ([]byte, error) {
	return yaml.Marshal(rc)
}

// LoadFile reads a workload from disk. Files ending in .csv are parsed as
// rows; anything else as a run config.
func LoadFile(path string) (RunConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		f, err := os.Open(path)
		if err != nil {
			return RunConfig{}, err
		}
		defer f.Close()

		jobs, err := ParseCSV(f)
		if err != nil {
			return RunConfig{}, fmt.Errorf("%s: %w", path, err)
		}
		return RunConfig{Jobs: jobs}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, err
	}
	rc, err := ParseRunConfig(data)
	if err != nil {
		return RunConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return rc, nil
}
