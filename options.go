package wordlex

import (
	"go.uber.org/zap"

	"github.com/pellucid-labs/wordlex/internal/engine/scorer"
)

// Option configures a Solver.
type Option func(*solverConfig)

// WithWordLists replaces the embedded vocabularies with explicit word slices.
// Answers missing from guesses are added to the guess vocabulary.
func WithWordLists(guesses, answers []string) Option {
	return func(c *solverConfig) {
		c.guessWords = guesses
		c.answerWords = answers
	}
}

// WithWordListFiles loads vocabularies from newline-separated files. An empty
// path keeps the embedded default for that side.
func WithWordListFiles(guessPath, answerPath string) Option {
	return func(c *solverConfig) {
		c.guessPath = guessPath
		c.answerPath = answerPath
	}
}

// WithHardMode restricts every guess to words still viable as the answer.
func WithHardMode() Option {
	return func(c *solverConfig) { c.hardMode = true }
}

// WithStrictClassifier switches feedback simulation to the multiset-aware
// rule. The default naive classifier can over-report Present for repeated
// letters; see the domain package for details.
func WithStrictClassifier() Option {
	return func(c *solverConfig) { c.strict = true }
}

// WithWorkers sets the search parallelism. Values below 1 use all CPUs.
func WithWorkers(n int) Option {
	return func(c *solverConfig) { c.workers = n }
}

// WithPoolSample caps the pool candidates consulted per entropy computation.
// 0 scores the full pool.
func WithPoolSample(n int) Option {
	return func(c *solverConfig) { c.poolSample = n }
}

// WithFirstGuess pins the opening guess instead of computing it. The word
// must be in the guess vocabulary.
func WithFirstGuess(word string) Option {
	return func(c *solverConfig) { c.firstGuess = word }
}

// Weights re-exports the scoring bias coefficients.
type Weights = scorer.Weights

// WithWeights overrides the scoring bias coefficients. The zero value runs
// pure entropy scoring.
func WithWeights(w Weights) Option {
	return func(c *solverConfig) { c.weights = w }
}

// WithLogger attaches a logger. Defaults to zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(c *solverConfig) {
		if log != nil {
			c.log = log
		}
	}
}
