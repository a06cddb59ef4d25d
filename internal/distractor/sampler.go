// Package distractor builds multiple-choice answer lists: one correct value
// plus randomly sampled wrong values that are not perceptually too close.
package distractor

import (
	"math/rand"

	"github.com/vovakirdan/colorquiz/internal/similarity"
	"github.com/vovakirdan/colorquiz/internal/taxonomy"
)

// DefaultSampleSize is the number of distractors offered per question.
// With the correct answer this fills a 3x4 choice grid.
const DefaultSampleSize = 11

// Sampler draws distractors from a candidate pool.
// It is not safe for concurrent use since it shares the caller's RNG.
type Sampler struct {
	rng        *rand.Rand
	sampleSize int
}

// NewSampler creates a sampler. A sampleSize <= 0 selects DefaultSampleSize.
func NewSampler(rng *rand.Rand, sampleSize int) *Sampler {
	if sampleSize <= 0 {
		sampleSize = DefaultSampleSize
	}
	return &Sampler{rng: rng, sampleSize: sampleSize}
}

// SampleSize returns the maximum number of distractors per question.
func (s *Sampler) SampleSize() int {
	return s.sampleSize
}

// Choices returns a shuffled list holding the correct entry's field value
// exactly once and up to SampleSize distinct distractor values.
//
// When excludeSimilar is set, candidates whose PCCS is close in both hue and
// tone to the correct entry are dropped first. Pools that are too small give
// shorter lists; a pool with nothing but the answer gives a single choice.
func (s *Sampler) Choices(pool []taxonomy.Entry, correct taxonomy.Entry, excludeSimilar bool, field taxonomy.Field) []string {
	answer := correct.Value(field)
	candidates := Candidates(pool, correct, excludeSimilar, field)

	s.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if len(candidates) > s.sampleSize {
		candidates = candidates[:s.sampleSize]
	}

	choices := make([]string, 0, len(candidates)+1)
	choices = append(choices, answer)
	choices = append(choices, candidates...)
	s.rng.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

// Candidates returns the distinct distractor values available for correct,
// in pool order, before any sampling.
func Candidates(pool []taxonomy.Entry, correct taxonomy.Entry, excludeSimilar bool, field taxonomy.Field) []string {
	answer := correct.Value(field)
	target := correct.Notation()

	seen := make(map[string]struct{}, len(pool))
	values := make([]string, 0, len(pool))
	for _, e := range pool {
		if excludeSimilar && similarity.IsSimilar(target, e.Notation()) {
			continue
		}
		v := e.Value(field)
		if v == answer {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	return values
}
