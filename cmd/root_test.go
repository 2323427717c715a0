package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlfq-sim/mlfq-sim/sim"
	"github.com/mlfq-sim/mlfq-sim/sim/workload"
)

func TestResolveWorkload_Scenario(t *testing.T) {
	spec, err := resolveWorkload("", "round-robin-pair")
	require.NoError(t, err)
	assert.Equal(t, "round-robin-pair", spec.Name)
}

func TestResolveWorkload_UnknownScenario(t *testing.T) {
	_, err := resolveWorkload("", "no-such-preset")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown scenario")
}

func TestResolveWorkload_MutuallyExclusive(t *testing.T) {
	_, err := resolveWorkload("some.yaml", "round-robin-pair")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestResolveWorkload_NeitherGiven(t *testing.T) {
	_, err := resolveWorkload("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestMergeConfig_FlagOverridesWorkloadFile(t *testing.T) {
	spec := workload.ScenarioRoundRobinPair() // scheduler: 2 queues, slice 2

	require.NoError(t, runCmd.Flags().Set("num-queues", "5"))
	defer func() {
		require.NoError(t, runCmd.Flags().Set("num-queues", "3"))
		runCmd.Flags().Lookup("num-queues").Changed = false
	}()

	cfg := mergeConfig(spec, runCmd)
	assert.Equal(t, 5, cfg.NumQueues)
	// untouched flags keep the workload file's values
	assert.Equal(t, int64(2), cfg.TimeSlice)
	assert.Equal(t, int64(100), cfg.BoostInterval)
}

func TestWriteResults_File(t *testing.T) {
	engine, err := sim.Run([]sim.ProcessSpec{{PID: "a", BurstTime: 2}}, sim.DefaultConfig())
	require.NoError(t, err)
	results, err := engine.Snapshot()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, writeResults(results, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded sim.Results
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Processes, 1)
	assert.Equal(t, "a", decoded.Processes[0].PID)
	assert.Equal(t, results.Metrics.TotalTime, decoded.Metrics.TotalTime)
}
