package segmenter

import "strings"

// WeightResolver picks the candidate with the lowest total lattice weight.
// A known word of k >= 2 syllables costs CompoundWeight(k); any other word
// costs MaxEdgeWeight per syllable. Ties keep the earlier candidate.
type WeightResolver struct {
	lex Lexicon
}

// NewWeightResolver returns a WeightResolver over lex. A nil lex treats
// every word as unknown, so the candidate with the fewest syllables wins.
func NewWeightResolver(lex Lexicon) *WeightResolver {
	return &WeightResolver{lex: lex}
}

// Resolve implements Resolver.
func (r *WeightResolver) Resolve(candidates [][]string) ([]string, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	best, bestCost := 0, r.Cost(candidates[0])
	for i := 1; i < len(candidates); i++ {
		if c := r.Cost(candidates[i]); c < bestCost {
			best, bestCost = i, c
		}
	}

	return candidates[best], nil
}

// Cost returns the total weight of a segmentation.
func (r *WeightResolver) Cost(words []string) int64 {
	var total int64
	for _, w := range words {
		k := len(strings.Fields(w))
		if k >= 2 && r.lex != nil && r.lex.Contains(w) {
			total += CompoundWeight(k)
			continue
		}
		total += MaxEdgeWeight * int64(k)
	}

	return total
}
