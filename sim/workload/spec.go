// Package workload is the boundary layer in front of the engine: it loads
// YAML workload specs, applies scheduler defaults, and performs the
// list-level validation (unique PIDs, non-empty list) that the core engine
// deliberately does not own.
package workload

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mlfq-sim/mlfq-sim/sim"
)

// SchedulerSpec carries the scheduler parameters of a workload file.
// Zero fields fall back to the engine defaults.
type SchedulerSpec struct {
	NumQueues      int   `yaml:"num_queues"`
	TimeSlice      int64 `yaml:"time_slice"`
	BoostInterval  int64 `yaml:"boost_interval"`
	AgingThreshold int   `yaml:"aging_threshold"`
	MaxIterations  int   `yaml:"max_iterations,omitempty"`
}

// WorkloadSpec is the top-level workload configuration.
// Loaded from YAML via LoadWorkloadSpec(path).
type WorkloadSpec struct {
	Name      string            `yaml:"name"`
	Scheduler SchedulerSpec     `yaml:"scheduler"`
	Processes []sim.ProcessSpec `yaml:"processes"`
}

// LoadWorkloadSpec reads and validates a workload spec from a YAML file.
func LoadWorkloadSpec(path string) (*WorkloadSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workload spec %s: %w", path, err)
	}
	var spec WorkloadSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse workload spec %s: %w", path, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("workload spec %s: %w", path, err)
	}
	return &spec, nil
}

// Validate applies the boundary-layer checks: the process list must be
// non-empty and PIDs unique within the run. Numeric field validation is the
// engine's job and happens in sim.NewEngine.
func (s *WorkloadSpec) Validate() error {
	if len(s.Processes) == 0 {
		return fmt.Errorf("process list must not be empty")
	}
	seen := make(map[string]bool, len(s.Processes))
	for i, p := range s.Processes {
		if p.PID == "" {
			return fmt.Errorf("processes[%d]: pid must not be empty", i)
		}
		if seen[p.PID] {
			return fmt.Errorf("processes[%d]: duplicate pid %q", i, p.PID)
		}
		seen[p.PID] = true
	}
	return nil
}

// Config converts the scheduler section to an engine Config, filling
// unset fields with the engine defaults.
func (s *WorkloadSpec) Config() sim.Config {
	cfg := sim.DefaultConfig()
	if s.Scheduler.NumQueues > 0 {
		cfg.NumQueues = s.Scheduler.NumQueues
	}
	if s.Scheduler.TimeSlice > 0 {
		cfg.TimeSlice = s.Scheduler.TimeSlice
	}
	if s.Scheduler.BoostInterval > 0 {
		cfg.BoostInterval = s.Scheduler.BoostInterval
	}
	if s.Scheduler.AgingThreshold > 0 {
		cfg.AgingThreshold = s.Scheduler.AgingThreshold
	}
	if s.Scheduler.MaxIterations > 0 {
		cfg.MaxIterations = s.Scheduler.MaxIterations
	}
	return cfg
}
