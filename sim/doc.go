// Package sim provides the core MLFQ scheduling simulation engine.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - process.go: Process lifecycle (new → ready → running → blocked → finished)
//   - queue.go: the LevelQueue/QueueSet priority levels
//   - engine.go: the phase pipeline and the tick loop
//
// # Architecture
//
// The engine is single-threaded and fully deterministic. Each pipeline pass
// applies a fixed phase sequence: admission, aging, boost, I/O completion,
// preemption check, selection, execution, termination check. The ordering is
// a correctness contract, not a cosmetic choice.
//
// Supporting packages:
//   - sim/workload: YAML workload specs, boundary validation, scenario presets
//   - sim/trace: execution-trace recording built on the Observer interface
//
// # Extension points
//
//   - Observer: structured phase events (logging, tracing); no-op by default
//   - VarianceStrategy: opt-in seeded burst perturbation, applied at init only
package sim
