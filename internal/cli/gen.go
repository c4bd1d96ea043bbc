package cli

import (
	"os"

	"github.com/spf13/cobra"

	"ticksched/internal/workload"
)

func newGenCmd() *cobra.Command {
	var (
		opts = workload.DefaultRandomOptions()
		out  string
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random workload as a YAML run config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := workload.Marshal(workload.RunConfig{Jobs: workload.Random(opts)})
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			logger.Info("workload written", "path", out, "jobs", opts.Count)
			return nil
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.Count, "count", "n", opts.Count, "Number of processes")
	f.Int64Var(&opts.MaxArrival, "max-arrival", opts.MaxArrival, "Largest arrival tick")
	f.Int64Var(&opts.MaxBurst, "max-burst", opts.MaxBurst, "Largest burst")
	f.IntVar(&opts.MaxPriority, "max-priority", opts.MaxPriority, "Largest priority value")
	f.Int64Var(&opts.Seed, "seed", opts.Seed, "Random seed")
	f.StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	return cmd
}
