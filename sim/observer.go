// Structured phase-event observation. The engine notifies an Observer at
// each phase transition instead of printing; production runs use NopObserver,
// debugging uses LogObserver, and sim/trace records full execution traces.

package sim

import "github.com/sirupsen/logrus"

// Phase identifies one step of the per-tick pipeline or a derived event.
type Phase string

const (
	PhaseAdmission   Phase = "admission"
	PhaseAging       Phase = "aging"
	PhaseBoost       Phase = "boost"
	PhaseIOComplete  Phase = "io_complete"
	PhaseIOBlock     Phase = "io_block"
	PhasePreemption  Phase = "preemption"
	PhaseSelection   Phase = "selection"
	PhaseExecution   Phase = "execution"
	PhaseDemotion    Phase = "demotion"
	PhaseFinish      Phase = "finish"
	PhaseIdle        Phase = "idle"
	PhaseTermination Phase = "termination"
)

// Event is one structured notification emitted by the engine.
// FromLevel/ToLevel are -1 when a side of the move does not exist
// (admission has no source level, finishing has no destination).
type Event struct {
	Tick      int64
	Phase     Phase
	PID       string // empty for process-less events (idle, termination)
	FromLevel int
	ToLevel   int
	// Execution events carry the slice bounds [SliceStart, SliceEnd).
	SliceStart int64
	SliceEnd   int64
}

// Observer receives engine events synchronously, in pipeline order.
// Implementations must not mutate simulation state.
type Observer interface {
	Observe(Event)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) Observe(Event) {}

// LogObserver forwards events to logrus at debug level.
type LogObserver struct{}

func (LogObserver) Observe(ev Event) {
	switch ev.Phase {
	case PhaseExecution:
		logrus.Debugf("[tick %04d] %s pid=%s level=%d slice=[%d,%d)",
			ev.Tick, ev.Phase, ev.PID, ev.FromLevel, ev.SliceStart, ev.SliceEnd)
	case PhaseIdle, PhaseTermination:
		logrus.Debugf("[tick %04d] %s", ev.Tick, ev.Phase)
	default:
		logrus.Debugf("[tick %04d] %s pid=%s from=%d to=%d",
			ev.Tick, ev.Phase, ev.PID, ev.FromLevel, ev.ToLevel)
	}
}

// MultiObserver fans events out to several observers in order.
type MultiObserver []Observer

func (m MultiObserver) Observe(ev Event) {
	for _, o := range m {
		o.Observe(ev)
	}
}
