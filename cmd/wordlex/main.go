// Command wordlex suggests optimal guesses for five-letter word games.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pellucid-labs/wordlex"
	"github.com/pellucid-labs/wordlex/internal/config"
	"github.com/pellucid-labs/wordlex/internal/logger"
	"github.com/pellucid-labs/wordlex/internal/version"
)

var (
	configPath string
	logLevel   string
	guessFile  string
	answerFile string
	hardMode   bool
	strictMode bool
	workers    int
	firstGuess string

	rootCmd = &cobra.Command{
		Use:   "wordlex",
		Short: "An entropy-driven solver for five-letter word games",
		Long: `wordlex picks the guess with the highest expected information gain
over the words that can still be the answer, then narrows the candidate
pool with each round of feedback.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			log, err := logger.New(cfg.Logging.Level, false)
			if err != nil {
				return err
			}
			loadedConfig = cfg
			cmd.SetContext(logger.ContextWithLogger(cmd.Context(), log))
			return nil
		},
	}

	// loadedConfig is the merged file + flag configuration, set by the root
	// PersistentPreRunE before any subcommand runs.
	loadedConfig config.Config

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("wordlex %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn, or error")
	rootCmd.PersistentFlags().StringVar(&guessFile, "guesses", "", "newline-separated guess vocabulary file")
	rootCmd.PersistentFlags().StringVar(&answerFile, "answers", "", "newline-separated solution vocabulary file")
	rootCmd.PersistentFlags().BoolVar(&hardMode, "hard", false, "every guess must itself still be a viable answer")
	rootCmd.PersistentFlags().BoolVar(&strictMode, "strict", false, "use the multiset-aware feedback rule")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "search parallelism (0 = all CPUs)")
	rootCmd.PersistentFlags().StringVar(&firstGuess, "first-guess", "", "pin the opening guess")

	rootCmd.AddCommand(solveCmd, benchCmd, versionCmd)
}

// loadConfig merges the config file with flag overrides. Flags win.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if cmd.Flags().Changed("guesses") {
		cfg.Wordlists.Guesses = guessFile
	}
	if cmd.Flags().Changed("answers") {
		cfg.Wordlists.Answers = answerFile
	}
	if cmd.Flags().Changed("hard") {
		cfg.Solver.HardMode = hardMode
	}
	if cmd.Flags().Changed("strict") {
		cfg.Solver.Classifier = "naive"
		if strictMode {
			cfg.Solver.Classifier = "strict"
		}
	}
	if cmd.Flags().Changed("workers") {
		cfg.Solver.Workers = workers
	}
	if cmd.Flags().Changed("first-guess") {
		cfg.Solver.FirstGuess = firstGuess
	}
	return cfg, nil
}

// newSolver builds the Solver a subcommand runs against.
func newSolver(cfg config.Config, log *zap.Logger) (*wordlex.Solver, error) {
	opts := []wordlex.Option{
		wordlex.WithWordListFiles(cfg.Wordlists.Guesses, cfg.Wordlists.Answers),
		wordlex.WithWorkers(cfg.Solver.Workers),
		wordlex.WithPoolSample(cfg.Solver.MaxPoolSample),
		wordlex.WithLogger(log),
	}
	if cfg.Solver.HardMode {
		opts = append(opts, wordlex.WithHardMode())
	}
	if cfg.Solver.Classifier == "strict" {
		opts = append(opts, wordlex.WithStrictClassifier())
	}
	if cfg.Solver.FirstGuess != "" {
		opts = append(opts, wordlex.WithFirstGuess(cfg.Solver.FirstGuess))
	}
	if w := cfg.Solver.Weights; w != nil {
		opts = append(opts, wordlex.WithWeights(wordlex.Weights{
			InPoolBonus:   w.InPoolBonus,
			Prior:         w.Prior,
			PositionFreq:  w.PositionFreq,
			RepeatPenalty: w.RepeatPenalty,
		}))
	}
	return wordlex.New(opts...)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
