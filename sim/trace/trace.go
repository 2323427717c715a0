// Package trace records an engine run as a flat sequence of slice executions
// and queue moves. An ExecutionTrace plugs into the engine as an Observer.
package trace

import (
	"github.com/mlfq-sim/mlfq-sim/sim"
)

// MoveReason classifies why a process changed queues or left the queue set.
type MoveReason string

const (
	ReasonAdmission  MoveReason = "admission"
	ReasonDemotion   MoveReason = "demotion"
	ReasonAging      MoveReason = "aging"
	ReasonBoost      MoveReason = "boost"
	ReasonIOReturn   MoveReason = "io_return"
	ReasonIOBlock    MoveReason = "io_block"
	ReasonPreemption MoveReason = "preemption"
	ReasonFinish     MoveReason = "finish"
)

// SliceRecord is one executed CPU slice.
type SliceRecord struct {
	PID   string
	Level int
	Start int64
	End   int64
}

// MoveRecord is one queue transition.
type MoveRecord struct {
	Tick   int64
	PID    string
	From   int // -1 when entering from outside the queue set
	To     int // -1 when leaving the queue set
	Reason MoveReason
}

// ExecutionTrace collects slice and move records during a run.
// It implements sim.Observer and must be attached via sim.WithObserver.
type ExecutionTrace struct {
	Slices []SliceRecord
	Moves  []MoveRecord
}

// NewExecutionTrace creates a trace ready for recording.
func NewExecutionTrace() *ExecutionTrace {
	return &ExecutionTrace{
		Slices: make([]SliceRecord, 0),
		Moves:  make([]MoveRecord, 0),
	}
}

var phaseReasons = map[sim.Phase]MoveReason{
	sim.PhaseAdmission:  ReasonAdmission,
	sim.PhaseDemotion:   ReasonDemotion,
	sim.PhaseAging:      ReasonAging,
	sim.PhaseBoost:      ReasonBoost,
	sim.PhaseIOComplete: ReasonIOReturn,
	sim.PhaseIOBlock:    ReasonIOBlock,
	sim.PhasePreemption: ReasonPreemption,
	sim.PhaseFinish:     ReasonFinish,
}

// Observe records the event. Selection, idle, and termination events carry
// no queue movement and are skipped.
func (tr *ExecutionTrace) Observe(ev sim.Event) {
	if ev.Phase == sim.PhaseExecution {
		tr.Slices = append(tr.Slices, SliceRecord{
			PID:   ev.PID,
			Level: ev.FromLevel,
			Start: ev.SliceStart,
			End:   ev.SliceEnd,
		})
		return
	}
	reason, ok := phaseReasons[ev.Phase]
	if !ok {
		return
	}
	tr.Moves = append(tr.Moves, MoveRecord{
		Tick:   ev.Tick,
		PID:    ev.PID,
		From:   ev.FromLevel,
		To:     ev.ToLevel,
		Reason: reason,
	})
}
