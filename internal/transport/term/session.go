// Package term is the interactive terminal surface of the solver: it prints
// the suggested guess each round and folds in hand-entered feedback lines of
// the form "<guess> <result>", e.g. "salet ggyyx".
package term

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pellucid-labs/wordlex/internal/domain"
	"github.com/pellucid-labs/wordlex/internal/engine/episode"
)

// exitToken ends the session immediately.
const exitToken = "exit"

// Session is one interactive solving conversation. Not safe for concurrent
// use; it owns its episode exclusively.
type Session struct {
	engine *episode.Engine
	in     *bufio.Scanner
	out    io.Writer
	color  bool
	log    *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithColor enables colored feedback tiles in the echo line.
func WithColor(enabled bool) Option {
	return func(s *Session) { s.color = enabled }
}

// WithLogger attaches a logger. Defaults to zap.NewNop().
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New creates a session reading feedback lines from in and writing prompts
// and suggestions to out.
func New(eng *episode.Engine, in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		engine: eng,
		in:     bufio.NewScanner(in),
		out:    out,
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives one episode to a win, exhaustion, explicit exit, or end of
// input. Malformed lines are reported and re-prompted; they never abort the
// session and never spend guess budget.
func (s *Session) Run(ctx context.Context) error {
	ep := s.engine.NewEpisode()

	for {
		guess, err := ep.Suggest(ctx)
		if err != nil {
			return fmt.Errorf("suggest next guess: %w", err)
		}
		if ep.State() == episode.StateAwaitingFirstGuess {
			fmt.Fprintf(s.out, "suggested opening: %s\n", guess)
		} else {
			fmt.Fprintf(s.out, "suggested guess: %s (%d candidates left)\n", guess, ep.PoolSize())
		}

		w, fb, done := s.readRound()
		if done {
			fmt.Fprintln(s.out, "bye")
			return nil
		}

		fmt.Fprintln(s.out, renderTiles(w, fb, s.color))

		if err := ep.Fold(w, fb); err != nil {
			if errors.Is(err, domain.ErrNoCandidates) {
				fmt.Fprintln(s.out, "no valid words remain - the feedback entered contradicts itself")
				return nil
			}
			return fmt.Errorf("fold feedback: %w", err)
		}

		switch ep.State() {
		case episode.StateWon:
			fmt.Fprintf(s.out, "solved in %d guesses\n", ep.GuessCount())
			return nil
		case episode.StateExhausted:
			fmt.Fprintf(s.out, "out of guesses after %d attempts\n", ep.GuessCount())
			return nil
		}
	}
}

// readRound reads lines until one parses as a playable round or the session
// ends. done is true on "exit" or end of input.
func (s *Session) readRound() (w domain.Word, fb domain.Feedback, done bool) {
	for {
		fmt.Fprint(s.out, "> ")
		if !s.in.Scan() {
			return "", domain.Feedback{}, true
		}
		line := strings.TrimSpace(s.in.Text())
		if line == "" {
			continue
		}
		if line == exitToken {
			return "", domain.Feedback{}, true
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Fprintln(s.out, `enter "<guess> <result>", e.g. "salet ggyyx", or "exit"`)
			continue
		}

		word, err := domain.ParseWord(fields[0])
		if err != nil {
			fmt.Fprintf(s.out, "bad guess: %v\n", err)
			continue
		}
		if !s.engine.Lists().HasGuess(word) {
			fmt.Fprintf(s.out, "bad guess: %q is not in the guess vocabulary\n", word)
			continue
		}

		feedback, err := domain.ParseFeedback(fields[1])
		if err != nil {
			fmt.Fprintf(s.out, "bad result: %v\n", err)
			continue
		}

		return word, feedback, false
	}
}
