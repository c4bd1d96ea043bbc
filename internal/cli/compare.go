package cli

import (
	"context"

	"github.com/spf13/cobra"

	"ticksched/internal/report"
	"ticksched/internal/sched"
)

func newCompareCmd() *cobra.Command {
	var (
		path    string
		quantum int64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm over the same workload and tabulate the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := loadWorkload(path)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("quantum") {
				quantum = cfg.Quantum
				if quantum == 0 {
					quantum = rc.Quantum
				}
			}

			sums, err := compareAll(cmd.Context(), rc.Specs(), quantum)
			if err != nil {
				return err
			}
			return report.WriteComparison(cmd.OutOrStdout(), sums)
		},
	}

	cmd.Flags().StringVarP(&path, "workload", "w", "", "Workload file (.csv rows or YAML/JSON run config)")
	cmd.Flags().Int64VarP(&quantum, "quantum", "q", 2, "Round-robin quantum in ticks")
	return cmd
}

func compareAll(ctx context.Context, specs []sched.Spec, quantum int64) ([]sched.Summary, error) {
	sums := make([]sched.Summary, 0, len(sched.Algorithms()))
	for _, alg := range sched.Algorithms() {
		s, err := sched.New(sched.Config{Algorithm: alg.String(), Quantum: quantum}, sched.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if err := s.Submit(specs...); err != nil {
			return nil, err
		}
		if err := s.Run(ctx); err != nil {
			return nil, err
		}
		sums = append(sums, s.Summary())
	}
	return sums, nil
}
