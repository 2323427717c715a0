package workload

import "github.com/mlfq-sim/mlfq-sim/sim"

// Built-in scenario presets for common scheduling patterns.
// Each returns a valid WorkloadSpec ready for sim.Run.

// ScenarioRoundRobinPair is the classic two-process demotion example:
// both processes exhaust their level-0 quantum, meet again in level 1,
// and finish under the longer quantum there.
func ScenarioRoundRobinPair() *WorkloadSpec {
	return &WorkloadSpec{
		Name: "round-robin-pair",
		Scheduler: SchedulerSpec{
			NumQueues: 2, TimeSlice: 2, BoostInterval: 100, AgingThreshold: 5,
		},
		Processes: []sim.ProcessSpec{
			{PID: "P1", ArrivalTime: 0, BurstTime: 5},
			{PID: "P2", ArrivalTime: 1, BurstTime: 3},
		},
	}
}

// ScenarioIOBound mixes a CPU-bound hog with two I/O-bound processes that
// block after their CPU work and finish from the blocked set.
func ScenarioIOBound() *WorkloadSpec {
	return &WorkloadSpec{
		Name: "io-bound",
		Scheduler: SchedulerSpec{
			NumQueues: 3, TimeSlice: 2, BoostInterval: 50, AgingThreshold: 5,
		},
		Processes: []sim.ProcessSpec{
			{PID: "cpu-hog", ArrivalTime: 0, BurstTime: 24},
			{PID: "io-a", ArrivalTime: 0, BurstTime: 4, IOTime: 6},
			{PID: "io-b", ArrivalTime: 2, BurstTime: 3, IOTime: 4},
		},
	}
}

// ScenarioStarvationProne keeps level 0 busy with short frequent arrivals
// while a long process sinks to the bottom level; aging is what lets it
// finish in bounded time.
func ScenarioStarvationProne() *WorkloadSpec {
	return &WorkloadSpec{
		Name: "starvation-prone",
		Scheduler: SchedulerSpec{
			NumQueues: 3, TimeSlice: 2, BoostInterval: 200, AgingThreshold: 4,
		},
		Processes: []sim.ProcessSpec{
			{PID: "long", ArrivalTime: 0, BurstTime: 30},
			{PID: "short-1", ArrivalTime: 2, BurstTime: 2},
			{PID: "short-2", ArrivalTime: 5, BurstTime: 2},
			{PID: "short-3", ArrivalTime: 8, BurstTime: 2},
			{PID: "short-4", ArrivalTime: 11, BurstTime: 2},
		},
	}
}

// ScenarioLateArrivals exercises idle handling: the CPU sits empty between
// widely spaced arrivals, and one process starts below level 0 via its
// priority field.
func ScenarioLateArrivals() *WorkloadSpec {
	return &WorkloadSpec{
		Name: "late-arrivals",
		Scheduler: SchedulerSpec{
			NumQueues: 3, TimeSlice: 2, BoostInterval: 100, AgingThreshold: 5,
		},
		Processes: []sim.ProcessSpec{
			{PID: "early", ArrivalTime: 0, BurstTime: 3},
			{PID: "mid", ArrivalTime: 20, BurstTime: 4, Priority: 1},
			{PID: "late", ArrivalTime: 40, BurstTime: 2},
		},
	}
}

// Scenarios maps preset names to their constructors, for CLI listing.
func Scenarios() map[string]func() *WorkloadSpec {
	return map[string]func() *WorkloadSpec{
		"round-robin-pair": ScenarioRoundRobinPair,
		"io-bound":         ScenarioIOBound,
		"starvation-prone": ScenarioStarvationProne,
		"late-arrivals":    ScenarioLateArrivals,
	}
}
