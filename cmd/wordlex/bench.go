package main

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/pellucid-labs/wordlex"
	"github.com/pellucid-labs/wordlex/internal/logger"
)

var (
	benchLimit    int
	benchParallel int

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Simulate a full sweep over the solution vocabulary",
		Long: `Plays one simulated episode per solution word and reports how many
were solved within the guess budget and the average number of attempts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadedConfig
			if cmd.Flags().Changed("limit") {
				cfg.Bench.Limit = benchLimit
			}
			if cmd.Flags().Changed("parallel") {
				cfg.Bench.Parallel = benchParallel
			}

			log := logger.FromContext(cmd.Context())
			defer log.Sync() //nolint:errcheck

			solver, err := newSolver(cfg, log)
			if err != nil {
				return err
			}

			total := len(solver.Engine().Lists().Answers)
			if cfg.Bench.Limit > 0 && cfg.Bench.Limit < total {
				total = cfg.Bench.Limit
			}
			bar := progressbar.Default(int64(total), "sweeping")

			summary, err := solver.Benchmark(cmd.Context(), wordlex.BenchOptions{
				Limit:    cfg.Bench.Limit,
				Parallel: cfg.Bench.Parallel,
				OnEpisode: func(wordlex.Outcome) {
					bar.Add(1) //nolint:errcheck
				},
			})
			if err != nil {
				return err
			}
			_ = bar.Finish()

			fmt.Println(summary.String())
			return nil
		},
	}
)

func init() {
	benchCmd.Flags().IntVar(&benchLimit, "limit", 0, "sweep only the first N answers (0 = all)")
	benchCmd.Flags().IntVar(&benchParallel, "parallel", 0, "concurrent episodes (0 or 1 = sequential)")
}
