package wordlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pellucid-labs/wordlex/internal/domain"
)

func TestDefaultListsAreWellFormed(t *testing.T) {
	lists, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(lists.Guesses) < len(lists.Answers) {
		t.Fatalf("guess vocabulary (%d) smaller than solution vocabulary (%d)",
			len(lists.Guesses), len(lists.Answers))
	}

	guessSet := make(map[domain.Word]bool, len(lists.Guesses))
	for _, g := range lists.Guesses {
		guessSet[g] = true
	}
	for _, a := range lists.Answers {
		if !guessSet[a] {
			t.Errorf("answer %s missing from guess vocabulary", a)
		}
	}
}

func TestNewMergesAnswersIntoGuesses(t *testing.T) {
	lists, err := New(
		[]string{"crane", "salet"},
		[]string{"crane", "spark"},
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !lists.HasGuess("spark") {
		t.Error("spark is an answer and must be guessable")
	}
	if !lists.HasGuess("salet") {
		t.Error("salet lost from guess vocabulary")
	}
}

func TestNewRejectsBadWords(t *testing.T) {
	for _, bad := range [][]string{
		{"crane", "toolong"},
		{"crane", "SPARK"},
		{"crane", "crane"},
	} {
		if _, err := New(bad, []string{"crane"}); err == nil {
			t.Errorf("New(%v): expected error", bad)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.txt")
	if err := os.WriteFile(path, []byte("spark\ncrane\n\nblitz\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	lists, err := Load("", path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(lists.Answers) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(lists.Answers))
	}
	// Answers come from the file; guesses stay the embedded defaults plus
	// any answers the defaults were missing.
	if !lists.HasGuess("spark") || !lists.HasGuess("blitz") {
		t.Error("file answers must be guessable")
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(path, []byte("spark\nnope!\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path, ""); err == nil {
		t.Fatal("expected error for malformed word list")
	}
}
