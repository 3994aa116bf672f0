package nlp

import "math"

// keywordOverlapWeight discounts keyword-set overlap against the character
// ratio: overlap is a strong topical signal even when word order differs,
// but it ignores structure entirely.
const keywordOverlapWeight = 0.8

// Scorer computes a blended similarity between two strings: the longest
// common subsequence ratio of their normalized forms, against the weighted
// Jaccard overlap of their keyword sets, whichever is higher. Taking the max
// rather than an average keeps inputs that are strong on only one axis from
// being penalized.
type Scorer struct {
	normalizer *Normalizer
	extractor  *KeywordExtractor
}

func NewScorer(normalizer *Normalizer, extractor *KeywordExtractor) *Scorer {
	return &Scorer{normalizer: normalizer, extractor: extractor}
}

// Similarity returns a score in [0,1]. It is symmetric and deterministic;
// identical strings score 1.0, fully disjoint strings score 0.0.
func (s *Scorer) Similarity(a, b string) float64 {
	seq := sequenceRatio(s.normalizer.Normalize(a), s.normalizer.Normalize(b))
	overlap := keywordOverlap(s.extractor.Extract(a), s.extractor.Extract(b))
	return math.Max(seq, overlap*keywordOverlapWeight)
}

// sequenceRatio is 2*LCS(a,b) / (len(a)+len(b)) over runes. Two empty
// strings are identical, hence 1.0; one empty string scores 0.0.
func sequenceRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}

	ra := []rune(a)
	rb := []rune(b)

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			switch {
			case ra[i-1] == rb[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}

	lcs := prev[len(rb)]
	return 2.0 * float64(lcs) / float64(len(ra)+len(rb))
}

// keywordOverlap is the Jaccard index of two keyword sets, 0 if either set
// is empty.
func keywordOverlap(a, b KeywordSet) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	shared := 0
	for w := range a {
		if _, ok := b[w]; ok {
			shared++
		}
	}

	union := len(a) + len(b) - shared
	return float64(shared) / float64(union)
}
