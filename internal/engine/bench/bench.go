// Package bench sweeps the solver across the solution vocabulary, running one
// simulated episode per hidden answer and accumulating accuracy statistics.
package bench

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pellucid-labs/wordlex/internal/engine/episode"
)

// Options configures a benchmark sweep.
type Options struct {
	// Limit caps the number of answers swept; 0 sweeps the full solution
	// vocabulary.
	Limit int
	// Parallel is the number of episodes run concurrently; values below 1
	// run the sweep sequentially. Episodes own their mutable state, so only
	// the shared statistics need coordination.
	Parallel int
	// OnEpisode, if set, is called after each finished episode. Calls are
	// serialized.
	OnEpisode func(episode.Outcome)
}

// Summary are the accumulated results of a sweep.
type Summary struct {
	Episodes      int
	Solved        int
	TotalAttempts int
}

// Accuracy is the fraction of episodes solved within the guess budget.
func (s Summary) Accuracy() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Episodes)
}

// AverageAttempts is the mean guess count across all episodes.
func (s Summary) AverageAttempts() float64 {
	if s.Episodes == 0 {
		return 0
	}
	return float64(s.TotalAttempts) / float64(s.Episodes)
}

// String renders the summary the way the CLI reports it.
func (s Summary) String() string {
	return fmt.Sprintf("solved %d/%d (%.1f%%), average attempts %.2f",
		s.Solved, s.Episodes, s.Accuracy()*100, s.AverageAttempts())
}

// Run sweeps every answer (or the first Limit answers) of the engine's
// solution vocabulary.
func Run(ctx context.Context, eng *episode.Engine, opts Options, log *zap.Logger) (Summary, error) {
	if log == nil {
		log = zap.NewNop()
	}

	answers := eng.Lists().Answers
	if opts.Limit > 0 && opts.Limit < len(answers) {
		answers = answers[:opts.Limit]
	}

	// Warm the first-guess cache before fanning out so concurrent episodes
	// all hit the cached value.
	if _, err := eng.FirstGuess(ctx); err != nil {
		return Summary{}, fmt.Errorf("compute opening guess: %w", err)
	}

	var (
		mu      sync.Mutex
		summary Summary
	)
	record := func(out episode.Outcome) {
		mu.Lock()
		defer mu.Unlock()
		summary.Episodes++
		summary.TotalAttempts += out.Attempts
		if out.Won {
			summary.Solved++
		}
		if opts.OnEpisode != nil {
			opts.OnEpisode(out)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	if opts.Parallel > 1 {
		g.SetLimit(opts.Parallel)
	} else {
		g.SetLimit(1)
	}

	for _, answer := range answers {
		answer := answer
		g.Go(func() error {
			out, err := eng.Solve(ctx, answer)
			if err != nil {
				return fmt.Errorf("answer %s: %w", answer, err)
			}
			if !out.Won {
				log.Debug("unsolved answer",
					zap.String("answer", string(answer)),
					zap.Int("attempts", out.Attempts),
				)
			}
			record(out)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}
	return summary, nil
}
