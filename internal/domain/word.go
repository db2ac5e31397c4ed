// Package domain holds the core value types of the guess engine: words,
// per-letter feedback marks, and the classifiers that derive feedback for a
// guess against a known answer.
package domain

import "fmt"

// WordLen is the fixed word length of the game.
const WordLen = 5

// Word is an immutable five-letter lowercase word.
type Word string

// ParseWord validates and creates a Word.
// The input must be exactly WordLen lowercase ASCII letters.
func ParseWord(s string) (Word, error) {
	if len(s) != WordLen {
		return "", fmt.Errorf("word %q: %w: must be %d letters", s, ErrInvalidWord, WordLen)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return "", fmt.Errorf("word %q: %w: letter %q is not lowercase a-z", s, ErrInvalidWord, s[i])
		}
	}
	return Word(s), nil
}

// Contains reports whether the word contains the letter c at any position.
func (w Word) Contains(c byte) bool {
	for i := 0; i < len(w); i++ {
		if w[i] == c {
			return true
		}
	}
	return false
}

// LetterSet returns a 26-bit field with one bit per distinct letter of w.
// Bit 0 is 'a', bit 25 is 'z'.
func (w Word) LetterSet() uint32 {
	var set uint32
	for i := 0; i < len(w); i++ {
		set |= 1 << (w[i] - 'a')
	}
	return set
}
