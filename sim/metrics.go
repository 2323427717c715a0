// The metrics aggregator: derives per-process and system-wide statistics
// from the final process states and execution history of a run.

package sim

import (
	"errors"
	"fmt"
)

// ErrNotTerminated is returned by Snapshot when the run has not ended yet.
var ErrNotTerminated = errors.New("snapshot: simulation has not terminated")

// ProcessResult is the read-only per-process view in a results snapshot.
// Field names match the wire format consumed by the boundary layer.
type ProcessResult struct {
	PID         string       `json:"pid"`
	ArrivalTime int64        `json:"arrival_time"`
	BurstTime   int64        `json:"burst_time"`
	Priority    int          `json:"priority"`
	IOTime      int64        `json:"io_time"`
	State       ProcessState `json:"state"`
	Queue       int          `json:"queue"`

	StartTime  int64 `json:"start_time"`  // -1 if never selected
	FinishTime int64 `json:"finish_time"` // -1 if not finished

	WaitingTime    int64 `json:"waiting_time"`
	TurnaroundTime int64 `json:"turnaround_time"`
	ResponseTime   int64 `json:"response_time"`
	RemainingTime  int64 `json:"remaining_time"`

	ContextSwitches    int `json:"context_switches"`
	CPUBurstsCompleted int `json:"cpu_bursts_completed"`
	IOBurstsCompleted  int `json:"io_bursts_completed"`

	CPUEfficiency float64 `json:"cpu_efficiency"`
	IOEfficiency  float64 `json:"io_efficiency"`
	WaitingRatio  float64 `json:"waiting_ratio"`

	ExecutionHistory []Slice       `json:"execution_history"`
	QueueHistory     []QueueChange `json:"queue_history"`
}

// Metrics aggregates system-wide statistics for final reporting.
type Metrics struct {
	AvgTurnaroundTime float64 `json:"avg_turnaround_time"`
	AvgWaitingTime    float64 `json:"avg_waiting_time"`
	AvgResponseTime   float64 `json:"avg_response_time"`
	CPUUtilization    float64 `json:"cpu_utilization"`
	Throughput        float64 `json:"throughput"`
	// QueueDistribution holds executed ticks attributed to each level.
	QueueDistribution []int64 `json:"queue_distribution"`
	TotalTime         int64   `json:"total_time"`
	FinishedCount     int     `json:"finished_count"`
	IdleTime          int64   `json:"idle_time"`
	// Incomplete is set when the iteration cap stopped the run: the caller
	// can distinguish "scheduled forever" from "scheduled correctly".
	Incomplete bool `json:"incomplete"`
}

// Results is the full outcome of one run, read-only once produced.
type Results struct {
	Processes []ProcessResult `json:"processes"`
	Metrics   Metrics         `json:"metrics"`
}

// Snapshot derives the results of a terminated run. Calling it before the
// run has terminated is an error. The snapshot is deterministic: processes
// appear in (arrival_time, pid) order.
func (e *Engine) Snapshot() (*Results, error) {
	if !e.terminated {
		return nil, ErrNotTerminated
	}
	st := e.state

	results := &Results{Processes: make([]ProcessResult, 0, len(st.procs))}
	var sumTurnaround, sumWaiting, sumResponse int64
	finished := 0

	for _, p := range st.procs {
		pr := finalizeProcess(p)
		if p.State == StateFinished {
			finished++
			sumTurnaround += pr.TurnaroundTime
			sumWaiting += pr.WaitingTime
			sumResponse += pr.ResponseTime
		}
		results.Processes = append(results.Processes, pr)
	}

	m := &results.Metrics
	m.QueueDistribution = append([]int64(nil), st.levelTicks...)
	m.TotalTime = st.clock
	m.FinishedCount = finished
	m.IdleTime = st.idleTicks
	m.Incomplete = st.incomplete
	if finished > 0 {
		m.AvgTurnaroundTime = float64(sumTurnaround) / float64(finished)
		m.AvgWaitingTime = float64(sumWaiting) / float64(finished)
		m.AvgResponseTime = float64(sumResponse) / float64(finished)
	}
	if st.clock > 0 {
		m.CPUUtilization = float64(st.executedTicks) / float64(st.clock)
		m.Throughput = float64(finished) / float64(st.clock)
	}
	return results, nil
}

// finalizeProcess computes the canonical per-process derivations:
// waiting = start - arrival, turnaround = finish - arrival, response = waiting.
// The efficiency ratios are zero whenever turnaround is zero.
func finalizeProcess(p *Process) ProcessResult {
	if p.Started() {
		p.WaitingTime = p.StartTime - p.ArrivalTime
	}

	pr := ProcessResult{
		PID:                p.PID,
		ArrivalTime:        p.ArrivalTime,
		BurstTime:          p.BurstTime,
		Priority:           p.Priority,
		IOTime:             p.OriginalIOTime,
		State:              p.State,
		Queue:              p.Queue,
		StartTime:          p.StartTime,
		FinishTime:         p.FinishTime,
		WaitingTime:        p.WaitingTime,
		TurnaroundTime:     p.TurnaroundTime,
		ResponseTime:       p.WaitingTime,
		RemainingTime:      p.RemainingTime,
		ContextSwitches:    p.ContextSwitches,
		CPUBurstsCompleted: p.CPUBurstsCompleted,
		IOBurstsCompleted:  p.IOBurstsCompleted,
		ExecutionHistory:   append([]Slice(nil), p.ExecutionHistory...),
		QueueHistory:       append([]QueueChange(nil), p.QueueHistory...),
	}
	if pr.ExecutionHistory == nil {
		pr.ExecutionHistory = []Slice{}
	}
	if pr.QueueHistory == nil {
		pr.QueueHistory = []QueueChange{}
	}
	if p.TurnaroundTime > 0 {
		pr.CPUEfficiency = float64(p.BurstTime) / float64(p.TurnaroundTime)
		pr.IOEfficiency = float64(p.OriginalIOTime) / float64(p.TurnaroundTime)
		pr.WaitingRatio = float64(p.WaitingTime) / float64(p.TurnaroundTime)
	}
	return pr
}

// Print displays the aggregated metrics at the end of a run.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Finished Processes   : %d\n", m.FinishedCount)
	fmt.Printf("Total Time           : %d ticks\n", m.TotalTime)
	fmt.Printf("Idle Time            : %d ticks\n", m.IdleTime)
	fmt.Printf("Average Turnaround   : %.2f ticks\n", m.AvgTurnaroundTime)
	fmt.Printf("Average Waiting      : %.2f ticks\n", m.AvgWaitingTime)
	fmt.Printf("Average Response     : %.2f ticks\n", m.AvgResponseTime)
	fmt.Printf("CPU Utilization      : %.2f%%\n", m.CPUUtilization*100)
	fmt.Printf("Throughput           : %.4f processes/tick\n", m.Throughput)
	for level, ticks := range m.QueueDistribution {
		fmt.Printf("Queue %d Executed     : %d ticks\n", level, ticks)
	}
	if m.Incomplete {
		fmt.Println("WARNING: iteration cap reached, results are partial")
	}
}
