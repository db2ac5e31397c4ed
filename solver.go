package wordlex

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pellucid-labs/wordlex/internal/domain"
	"github.com/pellucid-labs/wordlex/internal/engine/bench"
	"github.com/pellucid-labs/wordlex/internal/engine/episode"
	"github.com/pellucid-labs/wordlex/internal/engine/scorer"
	"github.com/pellucid-labs/wordlex/internal/engine/search"
	"github.com/pellucid-labs/wordlex/internal/wordlist"
)

// Word is a five-letter lowercase word.
type Word = domain.Word

// Feedback is the per-position g/y/x classification of one guess.
type Feedback = domain.Feedback

// Episode is one solving attempt with its own constraints and candidate pool.
type Episode = episode.Episode

// Outcome is the result of a simulated episode.
type Outcome = episode.Outcome

// Episode states, re-exported for callers inspecting Episode.State.
const (
	StateAwaitingFirstGuess = episode.StateAwaitingFirstGuess
	StateGuessing           = episode.StateGuessing
	StateWon                = episode.StateWon
	StateExhausted          = episode.StateExhausted
)

// MaxGuesses is the fixed guess budget of an episode.
const MaxGuesses = episode.MaxGuesses

// ParseWord validates a five-letter lowercase word.
func ParseWord(s string) (Word, error) { return domain.ParseWord(s) }

// ParseFeedback parses a result token such as "ggyyx".
func ParseFeedback(s string) (Feedback, error) { return domain.ParseFeedback(s) }

// MustFeedback parses a result token or panics. For tests and examples.
func MustFeedback(s string) Feedback {
	fb, err := domain.ParseFeedback(s)
	if err != nil {
		panic(err)
	}
	return fb
}

// Solver is the wordlex entry point: immutable vocabularies plus the solving
// configuration, shared safely by any number of episodes.
type Solver struct {
	engine *episode.Engine
	log    *zap.Logger
}

// New creates a Solver. Without options it uses the embedded vocabularies,
// the naive classifier, default scoring weights, and full parallelism.
func New(opts ...Option) (*Solver, error) {
	cfg := &solverConfig{
		weights: scorer.DefaultWeights(),
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(cfg)
	}

	lists, err := cfg.lists()
	if err != nil {
		return nil, fmt.Errorf("wordlex: load word lists: %w", err)
	}

	classify := domain.Classify
	if cfg.strict {
		classify = domain.ClassifyStrict
	}

	sc := scorer.New(classify, cfg.weights).WithPoolSample(cfg.poolSample)
	se := search.New(sc, cfg.workers)

	engOpts := []episode.EngineOption{episode.WithLogger(cfg.log)}
	if cfg.hardMode {
		engOpts = append(engOpts, episode.WithHardMode())
	}
	if cfg.firstGuess != "" {
		w, err := domain.ParseWord(cfg.firstGuess)
		if err != nil {
			return nil, fmt.Errorf("wordlex: first guess: %w", err)
		}
		engOpts = append(engOpts, episode.WithFirstGuess(w))
	}

	eng, err := episode.NewEngine(lists, sc, se, classify, engOpts...)
	if err != nil {
		return nil, fmt.Errorf("wordlex: %w", err)
	}
	return &Solver{engine: eng, log: cfg.log}, nil
}

// NewEpisode starts a fresh solving episode. Episodes are single-goroutine;
// create one per concurrent attempt.
func (s *Solver) NewEpisode() *Episode { return s.engine.NewEpisode() }

// Engine exposes the underlying engine for the CLI surfaces.
func (s *Solver) Engine() *episode.Engine { return s.engine }

// FirstGuess returns the cached opening guess, computing it on first use.
func (s *Solver) FirstGuess(ctx context.Context) (Word, error) {
	return s.engine.FirstGuess(ctx)
}

// Solve plays a full simulated episode against a known hidden answer.
func (s *Solver) Solve(ctx context.Context, answer string) (Outcome, error) {
	w, err := domain.ParseWord(answer)
	if err != nil {
		return Outcome{}, fmt.Errorf("wordlex: answer: %w", err)
	}
	return s.engine.Solve(ctx, w)
}

// BenchOptions configures a Benchmark sweep.
type BenchOptions struct {
	// Limit caps the number of answers swept; 0 sweeps everything.
	Limit int
	// Parallel is the number of concurrent episodes; 0 or 1 is sequential.
	Parallel int
	// OnEpisode, if set, is called after each finished episode.
	OnEpisode func(Outcome)
}

// BenchSummary are the accumulated results of a Benchmark sweep.
type BenchSummary = bench.Summary

// Benchmark runs a simulated episode for every word of the solution
// vocabulary and reports accuracy and average attempts.
func (s *Solver) Benchmark(ctx context.Context, opts BenchOptions) (BenchSummary, error) {
	return bench.Run(ctx, s.engine, bench.Options{
		Limit:     opts.Limit,
		Parallel:  opts.Parallel,
		OnEpisode: opts.OnEpisode,
	}, s.log)
}

// solverConfig collects the option values for New.
type solverConfig struct {
	guessWords  []string
	answerWords []string
	guessPath   string
	answerPath  string
	hardMode    bool
	strict      bool
	workers     int
	poolSample  int
	firstGuess  string
	weights     scorer.Weights
	log         *zap.Logger
}

func (c *solverConfig) lists() (wordlist.Lists, error) {
	if c.guessWords != nil || c.answerWords != nil {
		return wordlist.New(c.guessWords, c.answerWords)
	}
	if c.guessPath != "" || c.answerPath != "" {
		return wordlist.Load(c.guessPath, c.answerPath)
	}
	return wordlist.Default()
}
