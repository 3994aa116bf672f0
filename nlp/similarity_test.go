package nlp

import (
	"math"
	"testing"
)

func newTestScorer() *Scorer {
	tables := DefaultTables()
	n := NewNormalizer(tables)
	return NewScorer(n, NewKeywordExtractor(n, tables))
}

func inDelta(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

func TestSequenceRatio(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{"identical", "abc", "abc", 1.0},
		{"both_empty", "", "", 1.0},
		{"one_empty", "abc", "", 0.0},
		{"disjoint", "abc", "xyz", 0.0},
		{"partial_overlap", "abcd", "bd", 2.0 * 2.0 / 6.0},
		{"single_shared_rune", "kadar", "nisab", 2.0 * 1.0 / 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sequenceRatio(tt.a, tt.b)
			if !inDelta(got, tt.want) {
				t.Errorf("sequenceRatio(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestKeywordOverlap(t *testing.T) {
	set := func(words ...string) KeywordSet {
		s := make(KeywordSet, len(words))
		for _, w := range words {
			s[w] = struct{}{}
		}
		return s
	}

	tests := []struct {
		name string
		a    KeywordSet
		b    KeywordSet
		want float64
	}{
		{"both_empty", set(), set(), 0.0},
		{"one_empty", set("zakat"), set(), 0.0},
		{"identical", set("zakat", "bayar"), set("zakat", "bayar"), 1.0},
		{"partial", set("zakat", "bayar"), set("zakat", "nisab"), 1.0 / 3.0},
		{"disjoint", set("zakat"), set("nisab"), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keywordOverlap(tt.a, tt.b)
			if !inDelta(got, tt.want) {
				t.Errorf("keywordOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimilarityIdentity(t *testing.T) {
	s := newTestScorer()

	inputs := []string{
		"",
		"zakat",
		"Apa itu zakat?",
		"Bagaimana cara membayar zakat pendapatan?",
	}

	for _, input := range inputs {
		if got := s.Similarity(input, input); !inDelta(got, 1.0) {
			t.Errorf("Similarity(%q, %q) = %v, want 1.0", input, input, got)
		}
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	s := newTestScorer()

	pairs := [][2]string{
		{"apa itu zakat", "zakat tu apa"},
		{"bayar zakat online", "cara bayar zakat"},
		{"nisab emas", "kadar zakat simpanan"},
	}

	for _, pair := range pairs {
		ab := s.Similarity(pair[0], pair[1])
		ba := s.Similarity(pair[1], pair[0])
		if !inDelta(ab, ba) {
			t.Errorf("Similarity(%q, %q) = %v, Similarity(%q, %q) = %v, want equal",
				pair[0], pair[1], ab, pair[1], pair[0], ba)
		}
	}
}

func TestSimilarityDisjoint(t *testing.T) {
	s := newTestScorer()

	if got := s.Similarity("xyz", "qrs"); !inDelta(got, 0.0) {
		t.Errorf("Similarity(disjoint) = %v, want 0.0", got)
	}
}

func TestSimilarityKeywordDominant(t *testing.T) {
	s := newTestScorer()

	// Same keywords in scrambled order: the weighted Jaccard overlap (1.0 *
	// 0.8) beats the character-sequence ratio.
	got := s.Similarity("zakat tu apa?", "Apa itu zakat?")
	if !inDelta(got, 0.8) {
		t.Errorf("Similarity() = %v, want 0.8", got)
	}
}
