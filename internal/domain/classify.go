package domain

// Classifier derives the feedback a guess would receive against a known answer.
type Classifier func(answer, guess Word) Feedback

// Classify is the default classifier: position-independent letter lookup.
//
// For each position it marks Correct on an exact match, Present if the letter
// occurs anywhere in the answer, Absent otherwise. It does not consume letter
// counts as matches are made, so a guess with a repeated letter can report
// Present at more positions than the answer has instances of that letter
// (e.g. "sassy" against "mesas" over-reports the third 's'). This matches the
// historical behavior of the engine; ClassifyStrict implements the
// multiset-aware rule for callers that want it.
func Classify(answer, guess Word) Feedback {
	var fb Feedback
	for i := 0; i < WordLen; i++ {
		switch {
		case guess[i] == answer[i]:
			fb[i] = Correct
		case answer.Contains(guess[i]):
			fb[i] = Present
		default:
			fb[i] = Absent
		}
	}
	return fb
}

// ClassifyStrict is the multiset-aware classifier: Correct positions consume
// their letter first, then Present marks are handed out left to right while
// unconsumed instances remain. A repeated guess letter is marked Absent once
// the answer's instances of it are used up.
func ClassifyStrict(answer, guess Word) Feedback {
	var fb Feedback
	var remaining [26]int

	for i := 0; i < WordLen; i++ {
		if guess[i] == answer[i] {
			fb[i] = Correct
		} else {
			remaining[answer[i]-'a']++
		}
	}
	for i := 0; i < WordLen; i++ {
		if fb[i] == Correct {
			continue
		}
		c := guess[i] - 'a'
		if remaining[c] > 0 {
			remaining[c]--
			fb[i] = Present
		}
	}
	return fb
}
