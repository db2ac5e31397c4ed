package search

import (
	"context"
	"testing"

	"github.com/pellucid-labs/wordlex/internal/domain"
	"github.com/pellucid-labs/wordlex/internal/engine/scorer"
)

func newSearcher(workers int) *Searcher {
	return New(scorer.New(domain.Classify, scorer.Weights{}), workers)
}

func TestBestGuessSingletonVocabulary(t *testing.T) {
	s := newSearcher(4)
	got, err := s.BestGuess(context.Background(), []domain.Word{"crane"}, []domain.Word{"spark", "blitz"}, nil)
	if err != nil {
		t.Fatalf("BestGuess: %v", err)
	}
	if got != "crane" {
		t.Fatalf("singleton vocabulary must return its word, got %s", got)
	}
}

func TestBestGuessPicksMostInformative(t *testing.T) {
	pool := []domain.Word{"spark", "shard", "swarm"}
	// blitz distinguishes nothing; shard at least separates itself out.
	vocab := []domain.Word{"blitz", "shard"}

	s := newSearcher(2)
	got, err := s.BestGuess(context.Background(), vocab, pool, nil)
	if err != nil {
		t.Fatalf("BestGuess: %v", err)
	}
	if got != "shard" {
		t.Fatalf("expected shard, got %s", got)
	}
}

func TestBestGuessDeterministicAcrossWorkerCounts(t *testing.T) {
	lists := []domain.Word{
		"spark", "shard", "swarm", "crane", "blitz", "stare",
		"slate", "grain", "pride", "mount", "flock", "wedge",
	}
	pool := []domain.Word{"spark", "shard", "swarm", "stare", "slate"}

	var baseline domain.Word
	for _, workers := range []int{1, 2, 3, 8, 32} {
		s := newSearcher(workers)
		got, err := s.BestGuess(context.Background(), lists, pool, nil)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if baseline == "" {
			baseline = got
			continue
		}
		if got != baseline {
			t.Errorf("workers=%d selected %s, workers=1 selected %s", workers, got, baseline)
		}
	}
}

func TestBestGuessTieBreaksTowardFirst(t *testing.T) {
	// A singleton pool scores every guess 0, so the first vocabulary word
	// must win whatever the chunking.
	vocab := []domain.Word{"crane", "spark", "blitz", "shard"}
	pool := []domain.Word{"mount"}

	for _, workers := range []int{1, 2, 4} {
		s := newSearcher(workers)
		got, err := s.BestGuess(context.Background(), vocab, pool, nil)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if got != "crane" {
			t.Errorf("workers=%d: expected first-encountered crane, got %s", workers, got)
		}
	}
}

func TestBestGuessPanicsOnEmptyInputs(t *testing.T) {
	s := newSearcher(2)
	assertPanics := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic", name)
			}
		}()
		fn()
	}
	assertPanics("empty vocabulary", func() {
		_, _ = s.BestGuess(context.Background(), nil, []domain.Word{"spark"}, nil)
	})
	assertPanics("empty pool", func() {
		_, _ = s.BestGuess(context.Background(), []domain.Word{"crane"}, nil, nil)
	})
}
