package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/internal/workload"
)

func newGenerateCmd() *cobra.Command {
	var count int
	var seed uint64
	var format string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random workload",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			f, err := workload.ParseFormat(format)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			logger.Debug("generate", "count", count, "seed", seed)
			return workload.Write(cmd.OutOrStdout(), workload.Generate(count, seed), f)
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 5, "Number of processes")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (default: time based)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format (csv, yaml, json)")
	return cmd
}
