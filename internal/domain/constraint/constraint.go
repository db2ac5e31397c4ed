// Package constraint accumulates guess feedback into a compact summary of
// what is known about the hidden answer and filters candidate words against it.
package constraint

import (
	"github.com/pellucid-labs/wordlex/internal/domain"
)

// Constraints is the cumulative knowledge from all feedback folded so far.
//
// Letter sets are 26-bit fields (bit 0 = 'a'). included[i] holds letters known
// to be in the answer but confirmed wrong at position i; excluded holds letters
// confirmed absent from the answer entirely. The zero value is an empty
// constraint set that matches every word.
type Constraints struct {
	known    [domain.WordLen]byte // confirmed letter per position, 0 = unknown
	included [domain.WordLen]uint32
	excluded uint32
}

// Update folds one round of feedback into the constraint set.
//
// Correct and Present marks are folded first; Absent marks are then checked
// against every letter the guess matched anywhere. A duplicated letter that
// is Correct or Present at any position of the guess must not be globally
// excluded by a surplus occurrence coming back Absent, regardless of which
// occurrence comes first (multiset-aware feedback marks the surplus copy
// Absent even when it precedes the matching one).
func (c *Constraints) Update(guess domain.Word, fb domain.Feedback) {
	var seen uint32
	for i := 0; i < domain.WordLen; i++ {
		bit := uint32(1) << (guess[i] - 'a')
		switch fb[i] {
		case domain.Correct:
			c.known[i] = guess[i]
			seen |= bit
		case domain.Present:
			c.included[i] |= bit
			seen |= bit
		}
	}
	for i := 0; i < domain.WordLen; i++ {
		if fb[i] != domain.Absent {
			continue
		}
		if bit := uint32(1) << (guess[i] - 'a'); seen&bit == 0 {
			c.excluded |= bit
		}
	}
}

// Matches reports whether w is still consistent with everything known.
func (c *Constraints) Matches(w domain.Word) bool {
	letters := w.LetterSet()

	// Every letter known present must occur somewhere in w.
	for i := 0; i < domain.WordLen; i++ {
		if c.included[i] != 0 && letters&c.included[i] == 0 {
			return false
		}
	}

	if letters&c.excluded != 0 {
		return false
	}

	for i := 0; i < domain.WordLen; i++ {
		bit := uint32(1) << (w[i] - 'a')
		if c.known[i] != 0 {
			if w[i] != c.known[i] {
				return false
			}
		} else if c.included[i]&bit != 0 {
			// Letter is in the answer but confirmed wrong at this position.
			return false
		}
	}

	return true
}

// Filter returns the subset of pool consistent with the constraints,
// preserving order. The result is a fresh slice; pool is not modified.
func (c *Constraints) Filter(pool []domain.Word) []domain.Word {
	out := make([]domain.Word, 0, len(pool))
	for _, w := range pool {
		if c.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}

// KnownAt returns the confirmed letter at position i, or 0 if unknown.
func (c *Constraints) KnownAt(i int) byte { return c.known[i] }

// IncludedSet returns the union of letters known present in the answer.
func (c *Constraints) IncludedSet() uint32 {
	var set uint32
	for i := 0; i < domain.WordLen; i++ {
		set |= c.included[i]
	}
	return set
}

// ExcludedSet returns the letters confirmed absent from the answer.
func (c *Constraints) ExcludedSet() uint32 { return c.excluded }
