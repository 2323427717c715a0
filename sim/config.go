package sim

import "fmt"

// Defaults applied by DefaultConfig and by NewEngine when MaxIterations is
// left zero.
const (
	DefaultNumQueues      = 3
	DefaultTimeSlice      = 2
	DefaultBoostInterval  = 100
	DefaultAgingThreshold = 5
	DefaultMaxIterations  = 10000
)

// Config groups the scheduler parameters for one run. It is immutable once
// handed to NewEngine; all mutable run state lives in the engine's simState.
type Config struct {
	NumQueues      int   // number of priority levels (> 0)
	TimeSlice      int64 // base quantum of level 0 (> 0)
	BoostInterval  int64 // ticks between priority boosts (> 0)
	AgingThreshold int   // unselected passes before promotion (> 0)
	MaxIterations  int   // pipeline-pass safety cap (0 = default)
}

// DefaultConfig returns the canonical scheduler parameters.
func DefaultConfig() Config {
	return Config{
		NumQueues:      DefaultNumQueues,
		TimeSlice:      DefaultTimeSlice,
		BoostInterval:  DefaultBoostInterval,
		AgingThreshold: DefaultAgingThreshold,
		MaxIterations:  DefaultMaxIterations,
	}
}

// ConfigError reports a configuration or process-spec field that fails
// validation. Field names use the snake_case wire names.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Reason)
}

// Validate checks the scheduler parameters, failing fast before the first
// simulation tick.
func (c Config) Validate() error {
	if c.NumQueues <= 0 {
		return &ConfigError{Field: "num_queues", Reason: "must be positive"}
	}
	if c.TimeSlice <= 0 {
		return &ConfigError{Field: "time_slice", Reason: "must be positive"}
	}
	if c.BoostInterval <= 0 {
		return &ConfigError{Field: "boost_interval", Reason: "must be positive"}
	}
	if c.AgingThreshold <= 0 {
		return &ConfigError{Field: "aging_threshold", Reason: "must be positive"}
	}
	if c.MaxIterations < 0 {
		return &ConfigError{Field: "max_iterations", Reason: "must not be negative"}
	}
	return nil
}

// Quantum returns the time quantum of the given level. Quanta grow linearly:
// lower-priority levels get longer slices.
func (c Config) Quantum(level int) int64 {
	return c.TimeSlice * int64(level+1)
}

// validateSpecs checks the numeric fields of each process spec.
// PID uniqueness and list emptiness are the boundary layer's concern.
func validateSpecs(specs []ProcessSpec) error {
	for i, s := range specs {
		if s.ArrivalTime < 0 {
			return &ConfigError{
				Field:  fmt.Sprintf("processes[%d].arrival_time", i),
				Reason: "must not be negative",
			}
		}
		if s.BurstTime < 0 {
			return &ConfigError{
				Field:  fmt.Sprintf("processes[%d].burst_time", i),
				Reason: "must not be negative",
			}
		}
		if s.Priority < 0 {
			return &ConfigError{
				Field:  fmt.Sprintf("processes[%d].priority", i),
				Reason: "must not be negative",
			}
		}
		if s.IOTime < 0 {
			return &ConfigError{
				Field:  fmt.Sprintf("processes[%d].io_time", i),
				Reason: "must not be negative",
			}
		}
	}
	return nil
}
