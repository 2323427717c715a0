// Defines the Process record that models a single schedulable unit in the
// simulation. Tracks arrival time, CPU and I/O demand, lifecycle state, and
// the per-run execution and queue histories used by the metrics aggregator.

package sim

import "fmt"

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNew      ProcessState = "new"
	StateReady    ProcessState = "ready"
	StateRunning  ProcessState = "running"
	StateBlocked  ProcessState = "blocked"
	StateFinished ProcessState = "finished"
)

// ProcessSpec is the caller-supplied description of one process. The boundary
// layer (sim/workload) is responsible for PID uniqueness and non-empty lists;
// the engine validates the numeric fields before the first tick.
type ProcessSpec struct {
	PID         string `json:"pid" yaml:"pid"`
	ArrivalTime int64  `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int64  `json:"burst_time" yaml:"burst_time"`
	Priority    int    `json:"priority" yaml:"priority"`
	IOTime      int64  `json:"io_time" yaml:"io_time"`
}

// Slice is one contiguous execution interval [Start, End) in ticks.
type Slice struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// QueueChange records the tick at which a process entered a new level.
type QueueChange struct {
	Tick  int64 `json:"tick"`
	Level int   `json:"level"`
}

// Process models a single process's lifecycle in the simulation. It is owned
// exclusively by the Engine for the duration of a run; nothing else mutates it.
type Process struct {
	PID         string
	ArrivalTime int64
	BurstTime   int64
	Priority    int

	// RemainingIOTime counts down the current I/O burst while Blocked.
	// OriginalIOTime is the per-burst I/O demand it is restored from.
	RemainingIOTime int64
	OriginalIOTime  int64

	State ProcessState
	Queue int // current level index, -1 while New or Finished

	RemainingTime int64 // CPU ticks left, never negative
	StartTime     int64 // tick of first selection, -1 until set, set at most once
	FinishTime    int64 // tick of completion, -1 until set, set at most once

	WaitingTime        int64
	TurnaroundTime     int64
	ContextSwitches    int
	CPUBurstsCompleted int
	IOBurstsCompleted  int

	ExecutionHistory []Slice       // append-only, one entry per executed slice
	QueueHistory     []QueueChange // appended only when the level changes
}

// newProcess builds a New-state record from its spec.
func newProcess(spec ProcessSpec) *Process {
	return &Process{
		PID:             spec.PID,
		ArrivalTime:     spec.ArrivalTime,
		BurstTime:       spec.BurstTime,
		Priority:        spec.Priority,
		RemainingIOTime: spec.IOTime,
		OriginalIOTime:  spec.IOTime,
		State:           StateNew,
		Queue:           -1,
		RemainingTime:   spec.BurstTime,
		StartTime:       -1,
		FinishTime:      -1,
	}
}

// recordQueue appends a queue-history entry, deduplicating consecutive levels.
func (p *Process) recordQueue(tick int64, level int) {
	if n := len(p.QueueHistory); n > 0 && p.QueueHistory[n-1].Level == level {
		return
	}
	p.QueueHistory = append(p.QueueHistory, QueueChange{Tick: tick, Level: level})
}

// Started reports whether the process has ever been selected to run.
func (p *Process) Started() bool {
	return p.StartTime >= 0
}

// String returns a human-readable representation of a Process.
func (p *Process) String() string {
	return fmt.Sprintf("Process(PID: %s, State: %s, Queue: %d, Remaining: %d)",
		p.PID, p.State, p.Queue, p.RemainingTime)
}
