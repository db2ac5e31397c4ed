package domain

import "fmt"

// Mark is the per-position classification of one guessed letter.
type Mark uint8

// Mark constants, ordered by information content.
const (
	// Absent means the letter does not occur in the answer.
	Absent Mark = iota
	// Present means the letter occurs in the answer but not at this position.
	Present
	// Correct means the letter occurs at exactly this position.
	Correct
)

// Feedback is the full per-position classification of one guess.
// It is a fixed-size array so it can key a map when bucketing candidates
// by outcome pattern.
type Feedback [WordLen]Mark

// markChars maps Mark values to their wire characters: x=Absent, y=Present, g=Correct.
var markChars = [...]byte{Absent: 'x', Present: 'y', Correct: 'g'}

// ParseFeedback parses a result token such as "ggyyx".
// The token must be exactly WordLen characters over the alphabet {g, y, x}.
func ParseFeedback(s string) (Feedback, error) {
	var fb Feedback
	if len(s) != WordLen {
		return fb, fmt.Errorf("result %q: %w: must be %d characters", s, ErrInvalidFeedback, WordLen)
	}
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'g':
			fb[i] = Correct
		case 'y':
			fb[i] = Present
		case 'x':
			fb[i] = Absent
		default:
			return Feedback{}, fmt.Errorf("result %q: %w: character %q is not one of g, y, x", s, ErrInvalidFeedback, s[i])
		}
	}
	return fb, nil
}

// String renders the feedback in wire form ("ggyyx").
func (f Feedback) String() string {
	var b [WordLen]byte
	for i, m := range f {
		b[i] = markChars[m]
	}
	return string(b[:])
}

// AllCorrect reports whether every position is Correct, i.e. a win.
func (f Feedback) AllCorrect() bool {
	for _, m := range f {
		if m != Correct {
			return false
		}
	}
	return true
}
