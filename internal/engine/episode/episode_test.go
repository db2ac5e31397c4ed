package episode

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pellucid-labs/wordlex/internal/domain"
	"github.com/pellucid-labs/wordlex/internal/engine/scorer"
	"github.com/pellucid-labs/wordlex/internal/engine/search"
	"github.com/pellucid-labs/wordlex/internal/wordlist"
)

func newEngine(t *testing.T, words []string, opts ...EngineOption) *Engine {
	t.Helper()
	lists, err := wordlist.New(words, words)
	require.NoError(t, err)

	sc := scorer.New(domain.Classify, scorer.DefaultWeights())
	eng, err := NewEngine(lists, sc, search.New(sc, 4), domain.Classify, opts...)
	require.NoError(t, err)
	return eng
}

// Three-word universe, hidden answer spark, opening
// guess crane. One round of feedback must collapse the pool to spark alone
// and the follow-up guess must be spark itself.
func TestThreeWordScenario(t *testing.T) {
	ctx := context.Background()
	eng := newEngine(t, []string{"spark", "crane", "blitz"}, WithFirstGuess("crane"))

	ep := eng.NewEpisode()
	require.Equal(t, StateAwaitingFirstGuess, ep.State())

	first, err := ep.Suggest(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Word("crane"), first)

	fb := eng.Classify("spark", "crane")
	// c absent, r present, a correct, n absent, e absent.
	require.Equal(t, "xygxx", fb.String())

	require.NoError(t, ep.Fold("crane", fb))
	assert.Equal(t, StateGuessing, ep.State())
	require.Equal(t, []domain.Word{"spark"}, ep.Pool(), "crane and blitz must be eliminated")

	next, err := ep.Suggest(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.Word("spark"), next)

	require.NoError(t, ep.Fold("spark", eng.Classify("spark", "spark")))
	assert.Equal(t, StateWon, ep.State())
	assert.Equal(t, 2, ep.GuessCount())
}

func TestAllCorrectFirstRoundWins(t *testing.T) {
	eng := newEngine(t, []string{"spark", "crane", "blitz"}, WithFirstGuess("crane"))
	ep := eng.NewEpisode()

	win, err := domain.ParseFeedback("ggggg")
	require.NoError(t, err)
	require.NoError(t, ep.Fold("crane", win))
	assert.Equal(t, StateWon, ep.State())
	assert.Equal(t, 1, ep.GuessCount())
}

func TestBudgetExhaustion(t *testing.T) {
	eng := newEngine(t, []string{"spark", "shard", "blitz"})
	ep := eng.NewEpisode()

	// blitz shares no letters with spark or shard, so all-absent feedback
	// keeps both alive while burning budget.
	miss, err := domain.ParseFeedback("xxxxx")
	require.NoError(t, err)

	for i := 0; i < MaxGuesses; i++ {
		require.NoError(t, ep.Fold("blitz", miss))
	}
	assert.Equal(t, StateExhausted, ep.State())
	assert.Equal(t, MaxGuesses, ep.GuessCount())

	// A seventh round must be refused everywhere.
	require.Error(t, ep.Fold("blitz", miss))
	_, err = ep.Suggest(context.Background())
	require.Error(t, err)
}

func TestContradictoryFeedbackEmptiesPool(t *testing.T) {
	eng := newEngine(t, []string{"spark", "shard"})
	ep := eng.NewEpisode()

	// Claiming blitz letters are all present contradicts both candidates.
	fb, err := domain.ParseFeedback("yyyyy")
	require.NoError(t, err)

	err = ep.Fold("blitz", fb)
	require.ErrorIs(t, err, domain.ErrNoCandidates)
	assert.Equal(t, 0, ep.PoolSize())
}

func TestFirstGuessComputedOnceAcrossEpisodes(t *testing.T) {
	var calls atomic.Int64
	counting := func(answer, guess domain.Word) domain.Feedback {
		calls.Add(1)
		return domain.Classify(answer, guess)
	}

	lists, err := wordlist.New(
		[]string{"spark", "crane", "blitz", "shard", "swarm"},
		[]string{"spark", "crane", "blitz", "shard", "swarm"},
	)
	require.NoError(t, err)
	sc := scorer.New(counting, scorer.Weights{})
	eng, err := NewEngine(lists, sc, search.New(sc, 2), counting)
	require.NoError(t, err)

	ctx := context.Background()
	first, err := eng.FirstGuess(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	after := calls.Load()
	require.Greater(t, after, int64(0))

	// Further episodes reuse the cached value without re-searching.
	for i := 0; i < 3; i++ {
		ep := eng.NewEpisode()
		got, err := ep.Suggest(ctx)
		require.NoError(t, err)
		require.Equal(t, first, got)
	}
	require.Equal(t, after, calls.Load())
}

// A failed first-guess computation must not poison the cache: a later call
// with a healthy context gets a fresh attempt.
func TestFirstGuessRetriesAfterCancellation(t *testing.T) {
	eng := newEngine(t, []string{"spark", "crane", "blitz", "shard", "swarm"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := eng.FirstGuess(ctx)
	require.Error(t, err)

	got, err := eng.FirstGuess(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, got)
}

func TestNewEngineRejectsUnknownFirstGuess(t *testing.T) {
	lists, err := wordlist.New([]string{"spark"}, []string{"spark"})
	require.NoError(t, err)
	sc := scorer.New(domain.Classify, scorer.Weights{})
	_, err = NewEngine(lists, sc, search.New(sc, 1), domain.Classify, WithFirstGuess("zzzzz"))
	require.ErrorIs(t, err, domain.ErrUnknownWord)
}

func TestSolveWinsWithinBudget(t *testing.T) {
	words := []string{
		"spark", "crane", "blitz", "shard", "swarm", "stare",
		"slate", "grain", "pride", "mount", "flock", "wedge",
	}
	eng := newEngine(t, words)
	ctx := context.Background()

	for _, answer := range words {
		out, err := eng.Solve(ctx, domain.Word(answer))
		require.NoError(t, err, "answer %s", answer)
		assert.True(t, out.Won, "answer %s not solved: guesses %v", answer, out.Guesses)
		assert.LessOrEqual(t, out.Attempts, MaxGuesses)
		assert.Equal(t, domain.Word(answer), out.Guesses[len(out.Guesses)-1])
	}
}

// A strict-classifier engine must survive feedback where a repeated letter
// comes back Absent before its Correct occurrence: "eerie" against "abide"
// is "xxxyg", and folding it must keep abide in the pool.
func TestSolveStrictClassifierRepeatedLetters(t *testing.T) {
	words := []string{"abide", "eerie", "crane", "spark"}
	lists, err := wordlist.New(words, words)
	require.NoError(t, err)

	sc := scorer.New(domain.ClassifyStrict, scorer.DefaultWeights())
	eng, err := NewEngine(lists, sc, search.New(sc, 2), domain.ClassifyStrict,
		WithFirstGuess("eerie"))
	require.NoError(t, err)

	out, err := eng.Solve(context.Background(), "abide")
	require.NoError(t, err)
	require.True(t, out.Won, "guesses: %v", out.Guesses)
	assert.Equal(t, []domain.Word{"eerie", "abide"}, out.Guesses)
}

func TestSolveHardModeGuessesStayViable(t *testing.T) {
	words := []string{"spark", "shard", "swarm", "stare", "crane", "blitz"}
	eng := newEngine(t, words, WithHardMode())
	ctx := context.Background()
	answer := domain.Word("swarm")

	// Drive the episode by hand so each guess can be checked against the
	// pool that was live when it was suggested.
	ep := eng.NewEpisode()
	for ep.State() != StateWon && ep.State() != StateExhausted {
		guess, err := ep.Suggest(ctx)
		require.NoError(t, err)
		require.Contains(t, ep.Pool(), guess,
			"hard-mode guess %s is not a viable candidate", guess)
		require.NoError(t, ep.Fold(guess, eng.Classify(answer, guess)))
	}
	require.Equal(t, StateWon, ep.State())
	assert.LessOrEqual(t, ep.GuessCount(), MaxGuesses)
}
