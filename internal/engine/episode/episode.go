// Package episode drives the guess / feedback / filter loop of one solving
// attempt, from the fixed opening guess to a win or an exhausted budget.
package episode

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pellucid-labs/wordlex/internal/domain"
	"github.com/pellucid-labs/wordlex/internal/domain/constraint"
	"github.com/pellucid-labs/wordlex/internal/engine/scorer"
	"github.com/pellucid-labs/wordlex/internal/engine/search"
	"github.com/pellucid-labs/wordlex/internal/wordlist"
)

// MaxGuesses is the fixed guess budget of an episode.
const MaxGuesses = 6

// shortcutPoolSize is the pool size at or below which the search is skipped
// and the first remaining candidate is guessed directly: with two or fewer
// endings left, a full scoring pass cannot beat just trying them.
const shortcutPoolSize = 2

// State is the phase of an episode.
type State int

// Episode states.
const (
	StateAwaitingFirstGuess State = iota
	StateGuessing
	StateWon
	StateExhausted
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateAwaitingFirstGuess:
		return "awaiting_first_guess"
	case StateGuessing:
		return "guessing"
	case StateWon:
		return "won"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Engine holds the immutable, process-wide solving configuration: the
// vocabularies, scorer, searcher, and the cached opening guess. One Engine is
// shared by any number of episodes and workers.
type Engine struct {
	lists    wordlist.Lists
	scorer   *scorer.Scorer
	searcher *search.Searcher
	classify domain.Classifier
	hardMode bool
	log      *zap.Logger

	// The opening guess is invariant until feedback exists, so it is computed
	// once per vocabulary pair and reused by every episode.
	firstMu       sync.Mutex
	firstGuess    domain.Word
	firstOverride domain.Word
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithHardMode restricts the search vocabulary to the remaining candidate
// pool: every guess must itself still be a viable answer.
func WithHardMode() EngineOption {
	return func(e *Engine) { e.hardMode = true }
}

// WithFirstGuess pins the opening guess instead of computing it. The word
// must be in the guess vocabulary; NewEngine rejects it otherwise.
func WithFirstGuess(w domain.Word) EngineOption {
	return func(e *Engine) { e.firstOverride = w }
}

// WithLogger attaches a logger. Defaults to zap.NewNop().
func WithLogger(log *zap.Logger) EngineOption {
	return func(e *Engine) { e.log = log }
}

// NewEngine creates an Engine over the given vocabularies.
func NewEngine(lists wordlist.Lists, sc *scorer.Scorer, se *search.Searcher, classify domain.Classifier, opts ...EngineOption) (*Engine, error) {
	e := &Engine{
		lists:    lists,
		scorer:   sc,
		searcher: se,
		classify: classify,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.firstOverride != "" && !lists.HasGuess(e.firstOverride) {
		return nil, fmt.Errorf("first guess %q: %w", e.firstOverride, domain.ErrUnknownWord)
	}
	return e, nil
}

// Lists returns the engine's vocabularies.
func (e *Engine) Lists() wordlist.Lists { return e.lists }

// Classify derives feedback for guess against a known answer using the
// engine's configured classifier.
func (e *Engine) Classify(answer, guess domain.Word) domain.Feedback {
	return e.classify(answer, guess)
}

// FirstGuess returns the opening guess, computing and caching it on first
// use. The computation searches the full vocabulary against the full
// solution pool, exactly like any later round with no constraints. Only a
// successful result is cached: a failed computation (e.g. a cancelled
// context) is retried on the next call.
func (e *Engine) FirstGuess(ctx context.Context) (domain.Word, error) {
	e.firstMu.Lock()
	defer e.firstMu.Unlock()

	if e.firstGuess != "" {
		return e.firstGuess, nil
	}
	if e.firstOverride != "" {
		e.firstGuess = e.firstOverride
		return e.firstGuess, nil
	}

	aux := e.scorer.NewAux(e.lists.Answers, nil, 0)
	guess, err := e.searcher.BestGuess(ctx, e.searchSpace(e.lists.Answers), e.lists.Answers, aux)
	if err != nil {
		return "", err
	}
	e.firstGuess = guess
	e.log.Info("computed opening guess", zap.String("guess", string(guess)))
	return guess, nil
}

func (e *Engine) searchSpace(pool []domain.Word) []domain.Word {
	if e.hardMode {
		return pool
	}
	return e.lists.Guesses
}

// NewEpisode starts a fresh solving episode. The episode owns its mutable
// state exclusively and must not be shared across goroutines.
func (e *Engine) NewEpisode() *Episode {
	id := uuid.NewString()
	return &Episode{
		engine: e,
		pool:   e.lists.Answers,
		state:  StateAwaitingFirstGuess,
		log:    e.log.With(zap.String("episode_id", id)),
	}
}

// Episode is one solving attempt: cumulative constraints, the shrinking
// candidate pool, and the guess budget.
type Episode struct {
	engine  *Engine
	cons    constraint.Constraints
	pool    []domain.Word
	used    uint32 // letters probed by folded guesses
	guesses int
	state   State
	log     *zap.Logger
}

// State returns the episode state.
func (ep *Episode) State() State { return ep.state }

// PoolSize returns the number of remaining candidates.
func (ep *Episode) PoolSize() int { return len(ep.pool) }

// Pool returns the remaining candidates. The slice is shared; callers must
// not modify it.
func (ep *Episode) Pool() []domain.Word { return ep.pool }

// GuessCount returns the number of guesses folded so far.
func (ep *Episode) GuessCount() int { return ep.guesses }

// Suggest returns the next guess for the current state.
//
// The opening guess comes from the engine's cache. While more than two
// candidates remain and another feedback round is still possible, the guess
// is the search maximum over the vocabulary (or the pool in hard mode); once
// the pool is down to two or this is the final allowed guess, it is simply
// the first remaining candidate.
func (ep *Episode) Suggest(ctx context.Context) (domain.Word, error) {
	switch ep.state {
	case StateWon, StateExhausted:
		return "", fmt.Errorf("episode finished in state %s", ep.state)
	case StateAwaitingFirstGuess:
		return ep.engine.FirstGuess(ctx)
	}

	if len(ep.pool) == 0 {
		return "", domain.ErrNoCandidates
	}
	if len(ep.pool) <= shortcutPoolSize || ep.guesses == MaxGuesses-1 {
		return ep.pool[0], nil
	}

	aux := ep.engine.scorer.NewAux(ep.pool, &ep.cons, ep.used)
	guess, err := ep.engine.searcher.BestGuess(ctx, ep.engine.searchSpace(ep.pool), ep.pool, aux)
	if err != nil {
		return "", err
	}
	ep.log.Debug("search selected guess",
		zap.String("guess", string(guess)),
		zap.Int("pool_size", len(ep.pool)),
		zap.Int("round", ep.guesses+1),
	)
	return guess, nil
}

// Fold applies one round of feedback for a played guess: it spends one unit
// of the guess budget, folds the feedback into the constraints, and filters
// the candidate pool.
//
// All-correct feedback transitions to Won. A spent budget transitions to
// Exhausted. Feedback that eliminates every candidate returns
// domain.ErrNoCandidates: the inputs contradict each other and the episode
// cannot continue.
func (ep *Episode) Fold(guess domain.Word, fb domain.Feedback) error {
	if ep.state == StateWon || ep.state == StateExhausted {
		return fmt.Errorf("episode finished in state %s", ep.state)
	}

	ep.guesses++
	ep.used |= guess.LetterSet()

	if fb.AllCorrect() {
		ep.state = StateWon
		ep.log.Info("episode won",
			zap.String("guess", string(guess)),
			zap.Int("attempts", ep.guesses),
		)
		return nil
	}

	ep.cons.Update(guess, fb)
	ep.pool = ep.cons.Filter(ep.pool)

	if ep.guesses >= MaxGuesses {
		ep.state = StateExhausted
		ep.log.Info("episode exhausted", zap.Int("attempts", ep.guesses))
		return nil
	}
	ep.state = StateGuessing

	if len(ep.pool) == 0 {
		return fmt.Errorf("feedback %s for %s: %w", fb, guess, domain.ErrNoCandidates)
	}
	ep.log.Debug("folded feedback",
		zap.String("guess", string(guess)),
		zap.String("feedback", fb.String()),
		zap.Int("pool_size", len(ep.pool)),
	)
	return nil
}

// Outcome is the result of a simulated episode.
type Outcome struct {
	Answer   domain.Word
	Won      bool
	Attempts int
	Guesses  []domain.Word
}

// Solve runs a full simulated episode against a known hidden answer,
// classifying each suggested guess with the engine's classifier.
func (e *Engine) Solve(ctx context.Context, answer domain.Word) (Outcome, error) {
	ep := e.NewEpisode()
	out := Outcome{Answer: answer}

	for ep.State() != StateWon && ep.State() != StateExhausted {
		guess, err := ep.Suggest(ctx)
		if err != nil {
			return out, fmt.Errorf("suggest round %d: %w", ep.GuessCount()+1, err)
		}
		out.Guesses = append(out.Guesses, guess)

		if err := ep.Fold(guess, e.classify(answer, guess)); err != nil {
			return out, fmt.Errorf("fold round %d: %w", ep.GuessCount(), err)
		}
	}

	out.Won = ep.State() == StateWon
	out.Attempts = ep.GuessCount()
	return out, nil
}
