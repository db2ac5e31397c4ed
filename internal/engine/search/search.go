// Package search selects the best next guess by scoring every vocabulary word
// against the remaining candidate pool in parallel.
package search

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/pellucid-labs/wordlex/internal/domain"
	"github.com/pellucid-labs/wordlex/internal/engine/scorer"
)

// Searcher runs the parallel arg-max over a guess vocabulary. Safe for
// concurrent use; all shared inputs are read-only during a search.
type Searcher struct {
	scorer  *scorer.Scorer
	workers int
}

// New creates a Searcher. workers <= 0 defaults to GOMAXPROCS.
func New(s *scorer.Scorer, workers int) *Searcher {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Searcher{scorer: s, workers: workers}
}

// best is one worker's local maximum: the lowest vocabulary index among its
// chunk's top scores.
type best struct {
	index int
	score float64
}

// BestGuess scores every word of vocabulary against pool and returns the
// maximum. Ties break toward the lower vocabulary index, so the result is
// deterministic for a fixed vocabulary and pool ordering regardless of how
// the work is chunked or how many workers run.
//
// Preconditions: vocabulary and pool must be non-empty; violating either is a
// programmer error in the calling glue and panics.
func (s *Searcher) BestGuess(ctx context.Context, vocabulary, pool []domain.Word, aux *scorer.Aux) (domain.Word, error) {
	if len(vocabulary) == 0 {
		panic("search: empty vocabulary")
	}
	if len(pool) == 0 {
		panic("search: empty candidate pool")
	}

	workers := s.workers
	if workers > len(vocabulary) {
		workers = len(vocabulary)
	}

	locals := make([]best, workers)
	chunk := (len(vocabulary) + workers - 1) / workers

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := min(lo+chunk, len(vocabulary))
		if lo >= hi {
			// Rounding left this worker without a slice.
			locals[w] = best{index: 0, score: math.Inf(-1)}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			local := best{index: lo, score: s.scorer.Score(vocabulary[lo], pool, aux)}
			for i := lo + 1; i < hi; i++ {
				if score := s.scorer.Score(vocabulary[i], pool, aux); score > local.score {
					local = best{index: i, score: score}
				}
			}
			locals[w] = local
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("search interrupted: %w", err)
	}

	top := locals[0]
	for _, local := range locals[1:] {
		// Strict inequality keeps the first-encountered maximum in global
		// vocabulary order.
		if local.score > top.score {
			top = local
		}
	}
	return vocabulary[top.index], nil
}
