package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"cpu-scheduler-sim/config"
	"cpu-scheduler-sim/internal/logging"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	cfg    *config.SchedulerConfig
	logger *slog.Logger
)

// NewRootCmd creates the root command of the schedsim CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schedsim",
		Short: "CPU scheduling simulator",
		Long:  "schedsim simulates FIFO, SJF, STCF, Round-Robin and MLFQ scheduling over a process set.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				c.LogLevel = flagLogLevel
			}
			if cmd.Flags().Changed("log-format") {
				c.LogFormat = flagLogFormat
			}
			if flagDebug {
				c.LogLevel = "debug"
			}
			cfg = c
			logger = logging.FromConfig(c)
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default ./config.yaml)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newServeCmd(),
		newRunCmd(),
		newGenerateCmd(),
	)
	return root
}
