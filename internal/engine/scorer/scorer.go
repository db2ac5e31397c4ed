// Package scorer computes the desirability of a candidate guess against the
// remaining candidate pool. The core term is expected information gain: the
// Shannon entropy of the feedback-pattern distribution the guess induces over
// the pool. Tunable bias terms act as tie-breakers on top.
package scorer

import (
	"math"
	"math/bits"

	"github.com/pellucid-labs/wordlex/internal/domain"
	"github.com/pellucid-labs/wordlex/internal/domain/constraint"
)

// Weights are the tunable coefficients of the bias terms. The entropy term
// always has an implicit weight of 1; the zero value yields pure-entropy
// scoring.
type Weights struct {
	// InPoolBonus is added when the guess is itself a remaining candidate.
	InPoolBonus float64 `yaml:"in_pool_bonus"`
	// Prior weights the guess's normalized Bayesian prior over the pool.
	Prior float64 `yaml:"prior"`
	// PositionFreq weights the positional letter-frequency likelihood.
	PositionFreq float64 `yaml:"position_freq"`
	// RepeatPenalty is subtracted per distinct letter already probed by a
	// prior guess.
	RepeatPenalty float64 `yaml:"repeat_penalty"`
}

// DefaultWeights keeps entropy dominant; the bias terms only separate guesses
// with near-equal information gain.
func DefaultWeights() Weights {
	return Weights{
		InPoolBonus:   0.05,
		Prior:         0.10,
		PositionFreq:  0.10,
		RepeatPenalty: 0.02,
	}
}

// Prior boost factors (see rawPrior).
const (
	priorKnownBoost    = 1.5
	priorIncludedBoost = 1.2
	priorExcludedDamp  = 0.1
)

// Scorer scores candidate guesses. Safe for concurrent use: scoring reads
// only immutable configuration and the read-only Aux snapshot.
type Scorer struct {
	classify domain.Classifier
	weights  Weights
	sample   int // max pool candidates used for entropy; 0 = exact
}

// New creates a Scorer using the given classifier and weights.
func New(classify domain.Classifier, weights Weights) *Scorer {
	return &Scorer{classify: classify, weights: weights}
}

// WithPoolSample caps the number of pool candidates consulted per entropy
// computation. When the pool exceeds n, a deterministic stride sample is
// scored instead of the full pool. n <= 0 disables sampling.
func (s *Scorer) WithPoolSample(n int) *Scorer {
	if n > 0 {
		s.sample = n
	}
	return s
}

// Aux is the per-round scoring context. It is built once per search round and
// then shared read-only by every worker.
type Aux struct {
	cons    *constraint.Constraints
	used    uint32 // letters probed by prior guesses
	pool    map[domain.Word]struct{}
	posFreq [domain.WordLen][26]float64
	// priorSum is the pool-wide normalization constant for rawPrior.
	priorSum float64
}

// NewAux snapshots the round state needed by the bias terms. cons may be nil
// when no feedback has been folded yet.
func (s *Scorer) NewAux(pool []domain.Word, cons *constraint.Constraints, usedLetters uint32) *Aux {
	aux := &Aux{
		cons: cons,
		used: usedLetters,
		pool: make(map[domain.Word]struct{}, len(pool)),
	}

	var counts [domain.WordLen][26]int
	for _, w := range pool {
		aux.pool[w] = struct{}{}
		for i := 0; i < domain.WordLen; i++ {
			counts[i][w[i]-'a']++
		}
		aux.priorSum += rawPrior(w, cons)
	}
	if n := len(pool); n > 0 {
		for i := 0; i < domain.WordLen; i++ {
			for c := 0; c < 26; c++ {
				aux.posFreq[i][c] = float64(counts[i][c]) / float64(n)
			}
		}
	}
	return aux
}

// Score returns the fitness of guess against pool; higher is better.
// aux may be nil, in which case only the entropy term contributes.
func (s *Scorer) Score(guess domain.Word, pool []domain.Word, aux *Aux) float64 {
	score := s.Entropy(guess, pool)
	if aux == nil {
		return score
	}

	w := s.weights
	if w.InPoolBonus != 0 {
		if _, ok := aux.pool[guess]; ok {
			score += w.InPoolBonus
		}
	}
	if w.Prior != 0 && aux.priorSum > 0 {
		score += w.Prior * rawPrior(guess, aux.cons) / aux.priorSum
	}
	if w.PositionFreq != 0 {
		var likelihood float64
		for i := 0; i < domain.WordLen; i++ {
			likelihood += aux.posFreq[i][guess[i]-'a']
		}
		score += w.PositionFreq * likelihood
	}
	if w.RepeatPenalty != 0 {
		repeats := bits.OnesCount32(guess.LetterSet() & aux.used)
		score -= w.RepeatPenalty * float64(repeats)
	}
	return score
}

// Entropy is the expected information gain of guess over pool: candidates are
// bucketed by the feedback pattern they would produce, and the Shannon entropy
// of the bucket distribution is returned. A pool of size 1 always yields 0; a
// pool where every candidate lands in its own bucket yields log2(len(pool)).
func (s *Scorer) Entropy(guess domain.Word, pool []domain.Word) float64 {
	stride := 1
	if s.sample > 0 && len(pool) > s.sample {
		// Round up so at most s.sample candidates are consulted.
		stride = (len(pool) + s.sample - 1) / s.sample
	}

	buckets := make(map[domain.Feedback]int)
	n := 0
	for i := 0; i < len(pool); i += stride {
		buckets[s.classify(pool[i], guess)]++
		n++
	}
	if n <= 1 {
		return 0
	}

	entropy := 0.0
	total := float64(n)
	for _, count := range buckets {
		p := float64(count) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// rawPrior is the unnormalized Bayesian prior of w: boosted for letters
// matching known positions and for letters known present, damped for letters
// known absent.
func rawPrior(w domain.Word, cons *constraint.Constraints) float64 {
	if cons == nil {
		return 1
	}
	included := cons.IncludedSet()
	excluded := cons.ExcludedSet()

	weight := 1.0
	for i := 0; i < domain.WordLen; i++ {
		if cons.KnownAt(i) == w[i] {
			weight *= priorKnownBoost
		}
		bit := uint32(1) << (w[i] - 'a')
		if included&bit != 0 {
			weight *= priorIncludedBoost
		}
		if excluded&bit != 0 {
			weight *= priorExcludedDamp
		}
	}
	return weight
}
