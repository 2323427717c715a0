package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mlfq-sim/mlfq-sim/sim/workload"
)

// scenariosCmd lists the built-in workload presets.
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List built-in scenario presets",
	Run: func(cmd *cobra.Command, args []string) {
		presets := workload.Scenarios()
		names := make([]string, 0, len(presets))
		for name := range presets {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			spec := presets[name]()
			fmt.Printf("%-20s %d processes, %d queues\n",
				name, len(spec.Processes), spec.Scheduler.NumQueues)
		}
	},
}

func init() {
	rootCmd.AddCommand(scenariosCmd)
}
