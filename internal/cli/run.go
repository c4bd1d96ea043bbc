package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"ticksched/internal/report"
	"ticksched/internal/sched"
	"ticksched/internal/workload"
)

// runOptions are the per-run knobs; flags override the config file, which
// overrides the workload's own mode and quantum.
type runOptions struct {
	workload string
	algo     string
	quantum  int64
	tickMS   int
	events   string
	summary  string
	csvLog   string
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate one algorithm over a workload",
		Long: `Runs the workload through the selected algorithm, writing one event per
line to stdout followed by the run summary. Without --workload the built-in
three process demo workload is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadWorkload(opts.workload)
			if err != nil {
				return err
			}
			runCfg := resolveConfig(cmd, rc, opts)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runOne(ctx, cmd.OutOrStdout(), runCfg, rc.Specs(), opts.csvLog)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.workload, "workload", "w", "", "Workload file (.csv rows or YAML/JSON run config)")
	f.StringVarP(&opts.algo, "algo", "a", "", "Algorithm: fcfs, sjf, srtf, priority, priority_p, rr, mlfq")
	f.Int64VarP(&opts.quantum, "quantum", "q", 0, "Round-robin quantum in ticks (0 = run to completion)")
	f.IntVar(&opts.tickMS, "tick-ms", 0, "Wall clock milliseconds per tick (0 = as fast as possible)")
	f.StringVar(&opts.events, "events", "", "Event output: json, csv, text, none")
	f.StringVar(&opts.summary, "summary", "", "Summary output: json, table, none")
	f.StringVar(&opts.csvLog, "csv-log", "", "Also write every event to this CSV file")

	return cmd
}

func loadWorkload(path string) (workload.RunConfig, error) {
	if path == "" {
		return workload.Demo(), nil
	}
	rc, err := workload.LoadFile(path)
	if err != nil {
		return workload.RunConfig{}, fmt.Errorf("load workload: %w", err)
	}
	return rc, nil
}

// resolveConfig layers the workload's mode/quantum, then the config file,
// then explicit flags.
func resolveConfig(cmd *cobra.Command, rc workload.RunConfig, opts runOptions) sched.Config {
	out := cfg
	flags := cmd.Flags()

	if rc.Mode != "" && !out.IsSet("algorithm") {
		out.Algorithm = rc.Mode
	}
	if rc.Quantum > 0 && !out.IsSet("quantum") {
		out.Quantum = rc.Quantum
	}
	if flags.Changed("algo") {
		out.Algorithm = opts.algo
	}
	if flags.Changed("quantum") {
		out.Quantum = opts.quantum
	}
	if flags.Changed("tick-ms") {
		out.TickMS = opts.tickMS
	}
	if flags.Changed("events") {
		out.Events = opts.events
	}
	if flags.Changed("summary") {
		out.Summary = opts.summary
	}
	return out
}

// eventSink builds the sink for the configured event format.
func eventSink(format string, w io.Writer) (sched.Sink, func() error, error) {
	switch format {
	case "json", "":
		s := report.NewJSONSink(w)
		return s, s.Err, nil
	case "csv":
		s := report.NewCSVSink(w)
		return s, s.Err, nil
	case "text":
		s := report.NewTextSink(w)
		return s, s.Err, nil
	case "none":
		return sched.Discard, func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown event format %q", format)
	}
}

func writeSummary(format string, w io.Writer, sum sched.Summary) error {
	switch format {
	case "json", "":
		return report.WriteSummaryJSON(w, sum)
	case "table":
		return report.WriteSummaryTable(w, sum)
	case "none":
		return nil
	default:
		return fmt.Errorf("unknown summary format %q", format)
	}
}

func runOne(ctx context.Context, w io.Writer, runCfg sched.Config, specs []sched.Spec, csvLog string) error {
	sink, sinkErr, err := eventSink(runCfg.Events, w)
	if err != nil {
		return err
	}
	if csvLog != "" {
		f, err := os.Create(csvLog)
		if err != nil {
			return fmt.Errorf("open csv log: %w", err)
		}
		defer f.Close()

		csvSink := report.NewCSVSink(f)
		streamErr := sinkErr
		sink = sched.Multi(sink, csvSink)
		sinkErr = func() error {
			if err := streamErr(); err != nil {
				return err
			}
			return csvSink.Err()
		}
	}
	async := report.NewAsyncSink(sink, 256)

	s, err := sched.New(runCfg, sched.WithSink(async), sched.WithLogger(logger))
	if err != nil {
		async.Close()
		return err
	}
	if err := s.Submit(specs...); err != nil {
		async.Close()
		return err
	}

	runErr := s.Run(ctx)
	async.Close()
	if runErr != nil {
		return fmt.Errorf("run aborted at tick %d: %w", s.State().Tick, runErr)
	}
	if err := sinkErr(); err != nil {
		return fmt.Errorf("writing events: %w", err)
	}
	return writeSummary(runCfg.Summary, w, s.Summary())
}
