package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"ticksched/internal/logging"
	"ticksched/internal/sched"
)

var (
	flagConfig    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string

	logger *slog.Logger
	cfg    sched.Config
)

// NewRootCmd creates the root cobra command for the ticksched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ticksched",
		Short: "Tick-driven CPU scheduling simulator",
		Long: `ticksched replays a workload of (pid, arrival, burst, priority) rows
through one of seven dispatch policies on a logical clock, streaming
lifecycle events to stdout and reporting per-process timing metrics.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := sched.Load(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded

			flags := cmd.Flags()
			if !flags.Changed("log-level") {
				flagLogLevel = cfg.LogLevel
			}
			if !flags.Changed("log-format") {
				flagLogFormat = cfg.LogFormat
			}
			if flagDebug {
				flagLogLevel = "debug"
			}
			logger = logging.NewLoggerWithWriter(logging.ParseLevel(flagLogLevel), flagLogFormat, cmd.ErrOrStderr())
			return nil
		},
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", "config.yml", "Scheduler config file (missing file means defaults)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")

	root.AddCommand(
		newRunCmd(),
		newCompareCmd(),
		newGenCmd(),
		newAlgorithmsCmd(),
	)

	return root
}

func newAlgorithmsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available scheduling algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, a := range sched.Algorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), a.String())
			}
			return nil
		},
	}
}
