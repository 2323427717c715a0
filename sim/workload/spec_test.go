package workload

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlfq-sim/mlfq-sim/sim"
)

func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "workload.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadWorkloadSpec_ParsesFields(t *testing.T) {
	path := writeSpec(t, `
name: demo
scheduler:
  num_queues: 2
  time_slice: 4
  boost_interval: 50
  aging_threshold: 3
processes:
  - pid: P1
    arrival_time: 0
    burst_time: 5
  - pid: P2
    arrival_time: 1
    burst_time: 3
    priority: 1
    io_time: 2
`)

	spec, err := LoadWorkloadSpec(path)
	require.NoError(t, err)

	assert.Equal(t, "demo", spec.Name)
	require.Len(t, spec.Processes, 2)
	assert.Equal(t, sim.ProcessSpec{PID: "P2", ArrivalTime: 1, BurstTime: 3, Priority: 1, IOTime: 2}, spec.Processes[1])

	cfg := spec.Config()
	assert.Equal(t, 2, cfg.NumQueues)
	assert.Equal(t, int64(4), cfg.TimeSlice)
	assert.Equal(t, int64(50), cfg.BoostInterval)
	assert.Equal(t, 3, cfg.AgingThreshold)
	// unset max_iterations falls back to the engine default
	assert.Equal(t, sim.DefaultMaxIterations, cfg.MaxIterations)
}

func TestLoadWorkloadSpec_MissingFile(t *testing.T) {
	_, err := LoadWorkloadSpec(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadWorkloadSpec_MalformedYAML(t *testing.T) {
	path := writeSpec(t, "processes: [oops")
	_, err := LoadWorkloadSpec(path)
	assert.Error(t, err)
}

func TestValidate_EmptyProcessList(t *testing.T) {
	spec := &WorkloadSpec{}
	err := spec.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must not be empty")
}

func TestValidate_DuplicatePID(t *testing.T) {
	spec := &WorkloadSpec{Processes: []sim.ProcessSpec{
		{PID: "P1", BurstTime: 1},
		{PID: "P2", BurstTime: 1},
		{PID: "P1", BurstTime: 2},
	}}
	err := spec.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate pid "P1"`)
}

func TestValidate_EmptyPID(t *testing.T) {
	spec := &WorkloadSpec{Processes: []sim.ProcessSpec{{BurstTime: 1}}}
	err := spec.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pid must not be empty")
}

func TestConfig_ZeroScheduler_UsesEngineDefaults(t *testing.T) {
	spec := &WorkloadSpec{Processes: []sim.ProcessSpec{{PID: "P1", BurstTime: 1}}}
	assert.Equal(t, sim.DefaultConfig(), spec.Config())
}
