package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/internal/report"
	"cpu-scheduler-sim/internal/schedulers"
	"cpu-scheduler-sim/internal/workload"
)

func newRunCmd() *cobra.Command {
	var algorithm string
	var quantum int
	var showSteps bool

	cmd := &cobra.Command{
		Use:   "run <workload.csv|yaml|json>",
		Short: "Simulate a workload and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			processes, err := workload.LoadFile(args[0])
			if err != nil {
				return err
			}
			opts := cfg.Options()
			if cmd.Flags().Changed("quantum") {
				opts.TimeQuantum = quantum
			}
			out := cmd.OutOrStdout()

			if algorithm == "all" {
				sims, err := schedulers.SimulateAll(cmd.Context(), opts, processes, logger)
				if err != nil {
					return err
				}
				for _, alg := range schedulers.Algorithms {
					printSimulation(cmd, sims[alg], showSteps)
				}
				report.Title(out, "Comparison")
				report.Comparison(out, sims)
				return nil
			}

			alg, err := schedulers.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			sim, err := schedulers.Simulate(cmd.Context(), alg, opts, processes, logger)
			if err != nil {
				return err
			}
			printSimulation(cmd, sim, showSteps)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "all", "fifo, sjf, stcf, rr, mlfq or all")
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (overrides config)")
	cmd.Flags().BoolVar(&showSteps, "steps", false, "Print the step trace")
	return cmd
}

func printSimulation(cmd *cobra.Command, sim schedulers.Simulation, showSteps bool) {
	out := cmd.OutOrStdout()
	title := sim.Algorithm.Title()
	if sim.Algorithm == schedulers.RoundRobin {
		title = fmt.Sprintf("%s (quantum %d)", title, sim.Options.TimeQuantum)
	}
	report.Title(out, title)
	report.Gantt(out, sim.Timeline)
	report.Results(out, sim)
	if showSteps {
		report.Steps(out, sim.Steps)
	}
	fmt.Fprintln(out)
}
