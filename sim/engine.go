// The MLFQ scheduling engine: the per-tick phase pipeline that advances
// simulated time over the priority queues, the blocked set, and the single
// simulated CPU. The pipeline order per pass is a correctness contract:
// admission, aging, boost, I/O completion, preemption check, selection,
// execution, termination check. Reordering changes tie-break outcomes.

package sim

import "sort"

// simState is the single mutable state record threaded through the phase
// pipeline. The Engine's configuration is immutable; everything that changes
// during a run lives here.
type simState struct {
	clock   int64
	queues  *QueueSet
	procs   []*Process // admission order: ascending (arrival_time, pid)
	blocked []*Process // FIFO by block time
	current *Process   // process holding the CPU, nil when free

	agingCounters map[string]int

	idleTicks     int64
	executedTicks int64
	levelTicks    []int64 // executed ticks attributed to each level

	iterations int
	incomplete bool
}

// Engine owns the queue set, the blocked set, and all process records for
// one run. It is the sole mutator of that state and processes serially, so
// no locking is required.
type Engine struct {
	cfg      Config
	observer Observer
	variance VarianceStrategy

	state      *simState
	terminated bool
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithObserver attaches a structured phase-event observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithVariance enables a seeded burst-variance strategy. Perturbation is
// applied once at initialization so the tick loop stays deterministic for a
// fixed seed.
func WithVariance(v VarianceStrategy) Option {
	return func(e *Engine) { e.variance = v }
}

// NewEngine validates the configuration and process specs and builds an
// engine ready to Run. Validation failures are reported as *ConfigError
// before any simulation tick.
func NewEngine(specs []ProcessSpec, cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := validateSpecs(specs); err != nil {
		return nil, err
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}

	e := &Engine{cfg: cfg, observer: NopObserver{}}
	for _, opt := range opts {
		opt(e)
	}

	// Admission order is ascending (arrival_time, pid): the tie-break that
	// makes same-tick arrivals deterministic.
	ordered := make([]ProcessSpec, len(specs))
	copy(ordered, specs)
	sort.Slice(ordered, func(i, j int) bool {
		if ordered[i].ArrivalTime != ordered[j].ArrivalTime {
			return ordered[i].ArrivalTime < ordered[j].ArrivalTime
		}
		return ordered[i].PID < ordered[j].PID
	})

	procs := make([]*Process, len(ordered))
	for i, spec := range ordered {
		if e.variance != nil {
			spec = e.variance.Perturb(spec)
		}
		procs[i] = newProcess(spec)
	}

	e.state = &simState{
		queues:        NewQueueSet(cfg.NumQueues),
		procs:         procs,
		agingCounters: make(map[string]int),
		levelTicks:    make([]int64, cfg.NumQueues),
	}
	return e, nil
}

// Run constructs an engine and executes the simulation to completion (or to
// the iteration cap). The returned engine is the run handle for Snapshot.
func Run(specs []ProcessSpec, cfg Config, opts ...Option) (*Engine, error) {
	e, err := NewEngine(specs, cfg, opts...)
	if err != nil {
		return nil, err
	}
	e.RunToCompletion()
	return e, nil
}

// Clock returns the current simulated time in ticks.
func (e *Engine) Clock() int64 {
	return e.state.clock
}

// Terminated reports whether the run has ended (normally or via the cap).
func (e *Engine) Terminated() bool {
	return e.terminated
}

// RunToCompletion drives the phase pipeline until every process is Finished
// or the iteration cap is hit. Exceeding the cap is not a crash: the run
// terminates with the result flagged incomplete.
func (e *Engine) RunToCompletion() {
	if e.terminated {
		return
	}
	st := e.state
	for st.iterations < e.cfg.MaxIterations {
		st.iterations++

		e.admitArrivals(st)
		e.ageQueues(st)
		e.applyBoost(st)
		e.completeIO(st)
		e.checkPreemption(st)

		if st.current == nil && !e.selectNext(st) {
			if e.allFinished(st) {
				break
			}
			e.advanceIdle(st)
			continue
		}

		e.executeSlice(st)

		if e.allFinished(st) {
			break
		}
	}
	if !e.allFinished(st) {
		st.incomplete = true
	}
	e.terminated = true
	e.observer.Observe(Event{Tick: st.clock, Phase: PhaseTermination, FromLevel: -1, ToLevel: -1})
}

// admitArrivals moves every New process whose arrival time has passed into
// the queue set at level min(priority, num_queues-1). st.procs is already in
// (arrival, pid) order, so same-tick arrivals enqueue in ascending PID order.
func (e *Engine) admitArrivals(st *simState) {
	for _, p := range st.procs {
		if p.State != StateNew || p.ArrivalTime > st.clock {
			continue
		}
		level := min(p.Priority, e.cfg.NumQueues-1)
		st.queues.Enqueue(p, level, st.clock)
		e.observer.Observe(Event{Tick: st.clock, Phase: PhaseAdmission, PID: p.PID, FromLevel: -1, ToLevel: level})
	}
}

// ageQueues advances the starvation-avoidance counters. Every resident of
// levels 1..n-1 that stayed unselected for another pass gets its counter
// bumped; at the threshold it is promoted one level and the counter resets.
// Iteration runs over a snapshot: promotion mutates the queues mid-scan.
func (e *Engine) ageQueues(st *simState) {
	for level := 1; level < e.cfg.NumQueues; level++ {
		for _, p := range st.queues.Level(level).Items() {
			st.agingCounters[p.PID]++
			if st.agingCounters[p.PID] < e.cfg.AgingThreshold {
				continue
			}
			st.agingCounters[p.PID] = 0
			st.queues.Level(level).Remove(p)
			st.queues.Enqueue(p, level-1, st.clock)
			e.observer.Observe(Event{Tick: st.clock, Phase: PhaseAging, PID: p.PID, FromLevel: level, ToLevel: level - 1})
		}
	}
}

// applyBoost moves every process in levels 1..n-1 to level 0 when the clock
// sits on a boost boundary. A running process outside level 0 is preempted
// and boosted as well; its partial progress survives in RemainingTime. All
// aging counters clear after a boost.
func (e *Engine) applyBoost(st *simState) {
	if st.clock == 0 || st.clock%e.cfg.BoostInterval != 0 {
		return
	}
	for level := 1; level < e.cfg.NumQueues; level++ {
		for {
			p := st.queues.Level(level).Dequeue()
			if p == nil {
				break
			}
			st.queues.Enqueue(p, 0, st.clock)
			e.observer.Observe(Event{Tick: st.clock, Phase: PhaseBoost, PID: p.PID, FromLevel: level, ToLevel: 0})
		}
	}
	if st.current != nil && st.current.Queue > 0 {
		p := st.current
		from := p.Queue
		st.current = nil
		st.queues.Enqueue(p, 0, st.clock)
		e.observer.Observe(Event{Tick: st.clock, Phase: PhaseBoost, PID: p.PID, FromLevel: from, ToLevel: 0})
	}
	clear(st.agingCounters)
}

// completeIO advances every Blocked process by one I/O tick. A process whose
// burst reaches zero either finishes (no CPU owed) or re-enters level 0 with
// its I/O demand restored: I/O completion always restores top priority.
func (e *Engine) completeIO(st *simState) {
	remaining := st.blocked[:0]
	for _, p := range st.blocked {
		p.RemainingIOTime--
		if p.RemainingIOTime > 0 {
			remaining = append(remaining, p)
			continue
		}
		p.RemainingIOTime = 0
		p.IOBurstsCompleted++
		if p.RemainingTime <= 0 {
			e.observer.Observe(Event{Tick: st.clock, Phase: PhaseIOComplete, PID: p.PID, FromLevel: -1, ToLevel: -1})
			e.finish(st, p)
			continue
		}
		p.RemainingIOTime = p.OriginalIOTime
		st.queues.Enqueue(p, 0, st.clock)
		e.observer.Observe(Event{Tick: st.clock, Phase: PhaseIOComplete, PID: p.PID, FromLevel: -1, ToLevel: 0})
	}
	st.blocked = remaining
}

// checkPreemption frees the CPU when a strictly higher-priority level is
// non-empty. The preempted process goes back to the head of its own level,
// preserving its position, and reselection happens this pass.
func (e *Engine) checkPreemption(st *simState) {
	if st.current == nil || !st.queues.AnyAbove(st.current.Queue) {
		return
	}
	p := st.current
	st.current = nil
	p.State = StateReady
	st.queues.Level(p.Queue).PushFront(p)
	e.observer.Observe(Event{Tick: st.clock, Phase: PhasePreemption, PID: p.PID, FromLevel: p.Queue, ToLevel: p.Queue})
}

// selectNext scans levels from 0 upward and pops the first FIFO head onto
// the CPU. Returns false when every level is empty.
func (e *Engine) selectNext(st *simState) bool {
	level, ok := st.queues.FirstNonEmpty()
	if !ok {
		return false
	}
	p := st.queues.Level(level).Dequeue()
	p.State = StateRunning
	if !p.Started() {
		p.StartTime = st.clock
	}
	p.ContextSwitches++
	delete(st.agingCounters, p.PID)
	st.current = p
	e.observer.Observe(Event{Tick: st.clock, Phase: PhaseSelection, PID: p.PID, FromLevel: level, ToLevel: level})
	return true
}

// executeSlice runs the selected process for min(quantum, remaining) ticks as
// one atomic step. Arrivals, aging, and boosts are re-evaluated only at slice
// boundaries; this must hold uniformly for reproducibility.
func (e *Engine) executeSlice(st *simState) {
	p := st.current
	level := p.Queue
	slice := min(e.cfg.Quantum(level), p.RemainingTime)
	start := st.clock

	if slice > 0 {
		st.clock += slice
		p.RemainingTime -= slice
		p.ExecutionHistory = append(p.ExecutionHistory, Slice{Start: start, End: st.clock})
		p.CPUBurstsCompleted++
		st.executedTicks += slice
		st.levelTicks[level] += slice
		e.observer.Observe(Event{
			Tick: st.clock, Phase: PhaseExecution, PID: p.PID,
			FromLevel: level, ToLevel: level, SliceStart: start, SliceEnd: st.clock,
		})
	}

	st.current = nil
	switch {
	case p.RemainingTime <= 0 && p.RemainingIOTime > 0:
		// CPU work complete, I/O owed: block until the I/O burst drains.
		p.State = StateBlocked
		p.Queue = -1
		st.blocked = append(st.blocked, p)
		e.observer.Observe(Event{Tick: st.clock, Phase: PhaseIOBlock, PID: p.PID, FromLevel: level, ToLevel: -1})
	case p.RemainingTime <= 0:
		e.finish(st, p)
	default:
		next := min(level+1, e.cfg.NumQueues-1)
		st.queues.Enqueue(p, next, st.clock)
		e.observer.Observe(Event{Tick: st.clock, Phase: PhaseDemotion, PID: p.PID, FromLevel: level, ToLevel: next})
	}
}

// advanceIdle handles a free CPU with nothing Ready. With I/O in flight the
// clock steps a single tick; otherwise it jumps straight to the next arrival,
// which produces results identical to single-stepping because every skipped
// pass would have been a no-op.
func (e *Engine) advanceIdle(st *simState) {
	if len(st.blocked) > 0 {
		st.clock++
		st.idleTicks++
		e.observer.Observe(Event{Tick: st.clock, Phase: PhaseIdle, FromLevel: -1, ToLevel: -1})
		return
	}
	next, ok := e.nextArrival(st)
	if !ok || next <= st.clock {
		// Defensive: nothing New either, the termination check owns this.
		st.clock++
		st.idleTicks++
		e.observer.Observe(Event{Tick: st.clock, Phase: PhaseIdle, FromLevel: -1, ToLevel: -1})
		return
	}
	st.idleTicks += next - st.clock
	st.clock = next
	e.observer.Observe(Event{Tick: st.clock, Phase: PhaseIdle, FromLevel: -1, ToLevel: -1})
}

// nextArrival returns the earliest arrival tick among New processes.
func (e *Engine) nextArrival(st *simState) (int64, bool) {
	for _, p := range st.procs {
		if p.State == StateNew {
			// procs are sorted by arrival, the first New is the earliest
			return p.ArrivalTime, true
		}
	}
	return 0, false
}

// finish marks a process complete. FinishTime is set at most once.
func (e *Engine) finish(st *simState, p *Process) {
	p.State = StateFinished
	p.Queue = -1
	p.FinishTime = st.clock
	p.TurnaroundTime = p.FinishTime - p.ArrivalTime
	e.observer.Observe(Event{Tick: st.clock, Phase: PhaseFinish, PID: p.PID, FromLevel: -1, ToLevel: -1})
}

func (e *Engine) allFinished(st *simState) bool {
	for _, p := range st.procs {
		if p.State != StateFinished {
			return false
		}
	}
	return true
}
