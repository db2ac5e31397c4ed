package main

import (
	"os"

	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pellucid-labs/wordlex/internal/logger"
	"github.com/pellucid-labs/wordlex/internal/transport/term"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Suggest guesses interactively as you play",
	Long: `Starts an interactive session: wordlex proposes a guess, you play it
and type the word back with the colors you were shown, as five letters
over g (green), y (yellow), and x (gray):

    > salet ggyyx

Type "exit" to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.FromContext(cmd.Context())
		defer log.Sync() //nolint:errcheck

		solver, err := newSolver(loadedConfig, log)
		if err != nil {
			return err
		}

		color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		session := term.New(solver.Engine(), os.Stdin, os.Stdout,
			term.WithColor(color),
			term.WithLogger(log),
		)
		return session.Run(cmd.Context())
	},
}
