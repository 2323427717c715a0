package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiObserver_FansOutInOrder(t *testing.T) {
	first, second := &recordingObserver{}, &recordingObserver{}
	mo := MultiObserver{first, second}

	ev := Event{Tick: 3, Phase: PhaseAdmission, PID: "a", FromLevel: -1, ToLevel: 0}
	mo.Observe(ev)

	require.Len(t, first.events, 1)
	require.Len(t, second.events, 1)
	assert.Equal(t, ev, first.events[0])
	assert.Equal(t, ev, second.events[0])
}

func TestEngine_EmitsPhaseEventsInPipelineOrder(t *testing.T) {
	rec := &recordingObserver{}
	specs := []ProcessSpec{{PID: "a", ArrivalTime: 0, BurstTime: 2}}

	_, err := Run(specs, DefaultConfig(), WithObserver(rec))
	require.NoError(t, err)

	var phases []Phase
	for _, ev := range rec.events {
		phases = append(phases, ev.Phase)
	}
	want := []Phase{PhaseAdmission, PhaseSelection, PhaseExecution, PhaseFinish, PhaseTermination}
	assert.Equal(t, want, phases)

	// the execution event carries its slice bounds
	exec := rec.events[2]
	assert.Equal(t, int64(0), exec.SliceStart)
	assert.Equal(t, int64(2), exec.SliceEnd)
}

func TestNopObserver_IsSafeDefault(t *testing.T) {
	// Engines constructed without WithObserver must run without panicking.
	engine, err := Run([]ProcessSpec{{PID: "a", BurstTime: 1}}, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, engine.Terminated())
}
