package nlp

import (
	"math"
	"sort"
)

// recallBoostWeight scales the keyword-recall boost added on top of the
// blended similarity score.
const recallBoostWeight = 0.3

// Matcher ranks a FAQ corpus against a user query.
type Matcher struct {
	scorer    *Scorer
	extractor *KeywordExtractor
}

func NewMatcher(scorer *Scorer, extractor *KeywordExtractor) *Matcher {
	return &Matcher{scorer: scorer, extractor: extractor}
}

// FindBestMatch scores every corpus entry and returns the single best one
// with its score. An empty corpus yields a zero MatchResult (nil FAQ, 0.0).
// Ties keep the first entry in corpus order; only a strictly greater score
// replaces the current best.
func (m *Matcher) FindBestMatch(query string, corpus []FAQEntry) MatchResult {
	if len(corpus) == 0 {
		return MatchResult{}
	}

	queryKeywords := m.extractor.Extract(query)

	var best *FAQEntry
	bestScore := 0.0
	for i := range corpus {
		entry := &corpus[i]
		score := m.entryScore(query, queryKeywords, entry)
		if best == nil || score > bestScore {
			best = entry
			bestScore = score
		}
	}

	return MatchResult{FAQ: best, Score: bestScore}
}

// TopMatches returns up to k entries ranked by score, best first. Ties keep
// corpus order; entries scoring 0 are dropped.
func (m *Matcher) TopMatches(query string, corpus []FAQEntry, k int) []MatchResult {
	if k <= 0 || len(corpus) == 0 {
		return nil
	}

	queryKeywords := m.extractor.Extract(query)

	type ranked struct {
		result MatchResult
		pos    int
	}
	results := make([]ranked, 0, len(corpus))
	for i := range corpus {
		entry := &corpus[i]
		score := m.entryScore(query, queryKeywords, entry)
		if score <= 0 {
			continue
		}
		results = append(results, ranked{result: MatchResult{FAQ: entry, Score: score}, pos: i})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].result.Score != results[j].result.Score {
			return results[i].result.Score > results[j].result.Score
		}
		return results[i].pos < results[j].pos
	})

	if len(results) > k {
		results = results[:k]
	}

	out := make([]MatchResult, len(results))
	for i, r := range results {
		out[i] = r.result
	}
	return out
}

// entryScore blends similarity against both the question and the answer
// text (users sometimes echo answer terminology rather than phrase a
// question), then adds a keyword-recall boost clamped to 1.0 so threshold
// and tier comparisons stay in range.
func (m *Matcher) entryScore(query string, queryKeywords KeywordSet, entry *FAQEntry) float64 {
	score := math.Max(
		m.scorer.Similarity(query, entry.Question),
		m.scorer.Similarity(query, entry.Answer),
	)

	if len(queryKeywords) == 0 {
		return score
	}

	questionKeywords := m.extractor.Extract(entry.Question)
	hits := 0
	for w := range queryKeywords {
		if _, ok := questionKeywords[w]; ok {
			hits++
		}
	}
	if hits > 0 {
		score += recallBoostWeight * float64(hits) / float64(len(queryKeywords))
		if score > 1.0 {
			score = 1.0
		}
	}

	return score
}
