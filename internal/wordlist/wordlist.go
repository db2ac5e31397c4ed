// Package wordlist loads the guess and solution vocabularies, either from the
// embedded defaults or from newline-separated files supplied by the user.
package wordlist

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pellucid-labs/wordlex/internal/domain"
)

//go:embed guesses.txt
var defaultGuesses string

//go:embed answers.txt
var defaultAnswers string

// Lists holds the two vocabularies of one process.
//
// Guesses is every word the engine may output as a guess; Answers is the
// universe of hidden answers and the initial candidate pool. Guesses is always
// a superset of Answers: any answer missing from the guess list is appended to
// it during construction. Both are immutable after loading and safe to share
// across episodes and workers without synchronization.
type Lists struct {
	Guesses []domain.Word
	Answers []domain.Word
}

// Default returns the embedded vocabularies.
func Default() (Lists, error) {
	guesses, err := parse("embedded guesses", strings.NewReader(defaultGuesses))
	if err != nil {
		return Lists{}, err
	}
	answers, err := parse("embedded answers", strings.NewReader(defaultAnswers))
	if err != nil {
		return Lists{}, err
	}
	return build(guesses, answers)
}

// Load reads vocabularies from files. An empty path falls back to the
// embedded default for that side.
func Load(guessPath, answerPath string) (Lists, error) {
	def, err := Default()
	if err != nil {
		return Lists{}, err
	}

	guesses := def.Guesses
	if guessPath != "" {
		if guesses, err = parseFile(guessPath); err != nil {
			return Lists{}, err
		}
	}
	answers := def.Answers
	if answerPath != "" {
		if answers, err = parseFile(answerPath); err != nil {
			return Lists{}, err
		}
	}
	return build(guesses, answers)
}

// New builds Lists from in-memory word slices, validating every entry.
func New(guesses, answers []string) (Lists, error) {
	gw, err := parseSlice("guesses", guesses)
	if err != nil {
		return Lists{}, err
	}
	aw, err := parseSlice("answers", answers)
	if err != nil {
		return Lists{}, err
	}
	return build(gw, aw)
}

// HasGuess reports whether w is in the guess vocabulary.
func (l Lists) HasGuess(w domain.Word) bool {
	for _, g := range l.Guesses {
		if g == w {
			return true
		}
	}
	return false
}

func build(guesses, answers []domain.Word) (Lists, error) {
	if len(guesses) == 0 {
		return Lists{}, fmt.Errorf("guess vocabulary is empty")
	}
	if len(answers) == 0 {
		return Lists{}, fmt.Errorf("solution vocabulary is empty")
	}

	known := make(map[domain.Word]bool, len(guesses))
	for _, g := range guesses {
		known[g] = true
	}
	// Guesses must cover every possible answer.
	for _, a := range answers {
		if !known[a] {
			guesses = append(guesses, a)
			known[a] = true
		}
	}
	return Lists{Guesses: guesses, Answers: answers}, nil
}

func parseFile(path string) ([]domain.Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return parse(path, f)
}

func parse(name string, r io.Reader) ([]domain.Word, error) {
	var words []domain.Word
	seen := make(map[domain.Word]bool)

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		w, err := domain.ParseWord(text)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", name, line, err)
		}
		if seen[w] {
			return nil, fmt.Errorf("%s line %d: duplicate word %q", name, line, w)
		}
		seen[w] = true
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return words, nil
}

func parseSlice(name string, in []string) ([]domain.Word, error) {
	return parse(name, strings.NewReader(strings.Join(in, "\n")))
}
