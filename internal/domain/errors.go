package domain

import "errors"

var (
	// ErrInvalidWord signals a word that is not five lowercase letters.
	ErrInvalidWord = errors.New("invalid word")
	// ErrInvalidFeedback signals a result token outside the g/y/x alphabet.
	ErrInvalidFeedback = errors.New("invalid feedback")
	// ErrUnknownWord signals a guess outside the guess vocabulary.
	ErrUnknownWord = errors.New("word not in vocabulary")
	// ErrNoCandidates signals feedback that eliminated every remaining candidate.
	ErrNoCandidates = errors.New("no valid words remain")
)
