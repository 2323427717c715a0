package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mlfq-sim/mlfq-sim/sim"
	"github.com/mlfq-sim/mlfq-sim/sim/trace"
	"github.com/mlfq-sim/mlfq-sim/sim/workload"
)

var (
	// Workload selection
	workloadPath string // path to a YAML workload spec
	scenarioName string // name of a built-in scenario preset

	// Scheduler parameters, used when the workload file leaves them unset
	numQueues      int
	timeSlice      int64
	boostInterval  int64
	agingThreshold int
	maxIterations  int

	// Output and observability
	logLevel   string
	outputPath string // results JSON destination ("" = stdout)
	summary    bool   // print the human-readable metrics report to stderr
	withTrace  bool   // record and report an execution trace

	// Opt-in burst variance
	varianceSeed   int64
	varianceSpread float64
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "mlfq-sim",
	Short: "Deterministic multi-level feedback queue scheduling simulator",
}

// resolveWorkload picks the workload from --workload or --scenario.
// Exactly one of the two must be given.
func resolveWorkload(path, scenario string) (*workload.WorkloadSpec, error) {
	switch {
	case path != "" && scenario != "":
		return nil, fmt.Errorf("--workload and --scenario are mutually exclusive")
	case path != "":
		return workload.LoadWorkloadSpec(path)
	case scenario != "":
		ctor, ok := workload.Scenarios()[scenario]
		if !ok {
			return nil, fmt.Errorf("unknown scenario %q (see `mlfq-sim scenarios`)", scenario)
		}
		return ctor(), nil
	default:
		return nil, fmt.Errorf("either --workload or --scenario is required")
	}
}

// mergeConfig starts from the workload file's scheduler section and lets
// explicitly changed CLI flags override it.
func mergeConfig(spec *workload.WorkloadSpec, cmd *cobra.Command) sim.Config {
	cfg := spec.Config()
	if cmd.Flags().Changed("num-queues") {
		cfg.NumQueues = numQueues
	}
	if cmd.Flags().Changed("time-slice") {
		cfg.TimeSlice = timeSlice
	}
	if cmd.Flags().Changed("boost-interval") {
		cfg.BoostInterval = boostInterval
	}
	if cmd.Flags().Changed("aging-threshold") {
		cfg.AgingThreshold = agingThreshold
	}
	if cmd.Flags().Changed("max-iterations") {
		cfg.MaxIterations = maxIterations
	}
	return cfg
}

// runCmd executes one simulation run from CLI parameters.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an MLFQ simulation and emit a results snapshot",
	Run: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec, err := resolveWorkload(workloadPath, scenarioName)
		if err != nil {
			logrus.Fatalf("Workload selection failed: %v", err)
		}
		cfg := mergeConfig(spec, cmd)

		observers := sim.MultiObserver{sim.LogObserver{}}
		var tr *trace.ExecutionTrace
		if withTrace {
			tr = trace.NewExecutionTrace()
			observers = append(observers, tr)
		}

		opts := []sim.Option{sim.WithObserver(observers)}
		if varianceSpread > 0 {
			logrus.Warnf("Burst variance enabled (seed=%d, spread=%.2f): runs are only reproducible per seed",
				varianceSeed, varianceSpread)
			opts = append(opts, sim.WithVariance(sim.NewBurstVariance(varianceSeed, varianceSpread)))
		}

		logrus.Infof("Starting simulation %q: %d processes, %d queues, time slice %d",
			spec.Name, len(spec.Processes), cfg.NumQueues, cfg.TimeSlice)

		engine, err := sim.Run(spec.Processes, cfg, opts...)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		results, err := engine.Snapshot()
		if err != nil {
			logrus.Fatalf("Snapshot failed: %v", err)
		}

		if err := writeResults(results, outputPath); err != nil {
			logrus.Fatalf("Writing results failed: %v", err)
		}
		if summary {
			results.Metrics.Print()
		}
		if tr != nil {
			printTraceSummary(trace.Summarize(tr))
		}
		logrus.Info("Simulation complete.")
	},
}

// writeResults marshals the snapshot to indented JSON, to stdout or a file.
func writeResults(results *sim.Results, path string) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func printTraceSummary(s *trace.TraceSummary) {
	fmt.Println("=== Execution Trace ===")
	fmt.Printf("Slices executed      : %d (%d ticks)\n", s.TotalSlices, s.ExecutedTicks)
	fmt.Printf("Queue moves          : %d\n", s.TotalMoves)
	for reason, count := range s.MovesByReason {
		fmt.Printf("  %-12s : %d\n", reason, count)
	}
	if s.LongestSlice > 0 {
		fmt.Printf("Longest slice        : %d ticks (%s)\n", s.LongestSlice, s.LongestSlicePID)
	}
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&workloadPath, "workload", "", "Path to a YAML workload spec")
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Name of a built-in scenario preset")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&outputPath, "output", "", "Results JSON file path (default stdout)")
	runCmd.Flags().BoolVar(&summary, "summary", false, "Print the aggregated metrics report")
	runCmd.Flags().BoolVar(&withTrace, "trace", false, "Record and report an execution trace")

	runCmd.Flags().IntVar(&numQueues, "num-queues", sim.DefaultNumQueues, "Number of priority queues")
	runCmd.Flags().Int64Var(&timeSlice, "time-slice", sim.DefaultTimeSlice, "Base time quantum of the highest-priority queue")
	runCmd.Flags().Int64Var(&boostInterval, "boost-interval", sim.DefaultBoostInterval, "Ticks between priority boosts")
	runCmd.Flags().IntVar(&agingThreshold, "aging-threshold", sim.DefaultAgingThreshold, "Unselected passes before a process is promoted")
	runCmd.Flags().IntVar(&maxIterations, "max-iterations", sim.DefaultMaxIterations, "Safety cap on pipeline passes")

	runCmd.Flags().Int64Var(&varianceSeed, "variance-seed", 42, "Seed for opt-in burst variance")
	runCmd.Flags().Float64Var(&varianceSpread, "variance-spread", 0, "Burst variance spread in [0,1); 0 disables variance")

	rootCmd.AddCommand(runCmd)
}
