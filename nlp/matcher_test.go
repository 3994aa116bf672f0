package nlp

import (
	"math"
	"testing"
)

func newTestMatcher() *Matcher {
	tables := DefaultTables()
	n := NewNormalizer(tables)
	e := NewKeywordExtractor(n, tables)
	return NewMatcher(NewScorer(n, e), e)
}

func testCorpus() []FAQEntry {
	return []FAQEntry{
		{ID: 1, Question: "Apa itu zakat?", Answer: "Zakat ialah harta wajib yang dikeluarkan apabila cukup syarat.", Category: "general"},
		{ID: 2, Question: "Bagaimana cara membayar zakat?", Answer: "Anda boleh membayar di kaunter LZNK atau melalui perbankan internet.", Category: "payment"},
		{ID: 3, Question: "Berapakah nisab zakat simpanan?", Answer: "Nisab semasa ialah bersamaan nilai 85 gram emas.", Category: "threshold"},
	}
}

func TestFindBestMatchEmptyCorpus(t *testing.T) {
	m := newTestMatcher()

	got := m.FindBestMatch("zakat", nil)
	if got.FAQ != nil {
		t.Errorf("FindBestMatch(empty).FAQ = %v, want nil", got.FAQ)
	}
	if got.Score != 0.0 {
		t.Errorf("FindBestMatch(empty).Score = %v, want 0.0", got.Score)
	}
}

func TestFindBestMatchScrambledQuery(t *testing.T) {
	m := newTestMatcher()

	// Same keywords as entry 1 in scrambled order: full keyword recall
	// boosts the blended score past the clamp.
	got := m.FindBestMatch("zakat tu apa?", testCorpus())
	if got.FAQ == nil || got.FAQ.ID != 1 {
		t.Fatalf("FindBestMatch().FAQ = %+v, want entry 1", got.FAQ)
	}
	if !inDelta(got.Score, 1.0) {
		t.Errorf("FindBestMatch().Score = %v, want 1.0", got.Score)
	}
}

func TestFindBestMatchTieKeepsFirst(t *testing.T) {
	m := newTestMatcher()

	corpus := []FAQEntry{
		{ID: 7, Question: "Apa itu zakat?", Answer: "Jawapan pertama.", Category: "general"},
		{ID: 8, Question: "Apa itu zakat?", Answer: "Jawapan kedua.", Category: "general"},
	}

	got := m.FindBestMatch("Apa itu zakat?", corpus)
	if got.FAQ == nil || got.FAQ.ID != 7 {
		t.Errorf("FindBestMatch() tie = entry %+v, want first entry (ID 7)", got.FAQ)
	}
}

func TestFindBestMatchAnswerText(t *testing.T) {
	m := newTestMatcher()

	corpus := []FAQEntry{
		{ID: 1, Question: "Soalan lazim", Answer: "Anda boleh membayar zakat melalui perbankan internet", Category: "payment"},
		{ID: 2, Question: "Apa itu haul?", Answer: "Haul ialah tempoh setahun mengikut kalendar hijrah.", Category: "time-period"},
	}

	// The query echoes answer terminology, not the question phrasing.
	got := m.FindBestMatch("perbankan internet", corpus)
	if got.FAQ == nil || got.FAQ.ID != 1 {
		t.Fatalf("FindBestMatch().FAQ = %+v, want entry 1", got.FAQ)
	}
	if got.Score <= 0.5 {
		t.Errorf("FindBestMatch().Score = %v, want > 0.5", got.Score)
	}
}

func TestFindBestMatchRecallBoost(t *testing.T) {
	tables := DefaultTables()
	n := NewNormalizer(tables)
	e := NewKeywordExtractor(n, tables)
	s := NewScorer(n, e)
	m := NewMatcher(s, e)

	corpus := []FAQEntry{
		{ID: 1, Question: "Apakah syarat untuk mohon bantuan?", Answer: "Permohonan dibuka kepada asnaf yang layak.", Category: "general"},
	}
	query := "syarat mohon bantuan zakat"

	plain := math.Max(s.Similarity(query, corpus[0].Question), s.Similarity(query, corpus[0].Answer))

	got := m.FindBestMatch(query, corpus)
	if got.Score <= plain {
		t.Errorf("FindBestMatch().Score = %v, want > plain similarity %v", got.Score, plain)
	}
	if got.Score > 1.0 {
		t.Errorf("FindBestMatch().Score = %v, want <= 1.0", got.Score)
	}
}

func TestTopMatches(t *testing.T) {
	m := newTestMatcher()

	corpus := append(testCorpus(), FAQEntry{ID: 4, Question: "foo", Answer: "bbb", Category: "general"})

	got := m.TopMatches("zakat", corpus, 2)
	if len(got) != 2 {
		t.Fatalf("TopMatches() returned %d results, want 2", len(got))
	}
	if got[0].FAQ.ID != 1 {
		t.Errorf("TopMatches()[0].FAQ.ID = %v, want 1", got[0].FAQ.ID)
	}
	if got[1].FAQ.ID != 2 {
		t.Errorf("TopMatches()[1].FAQ.ID = %v, want 2", got[1].FAQ.ID)
	}
	if got[0].Score < got[1].Score {
		t.Errorf("TopMatches() not sorted: %v < %v", got[0].Score, got[1].Score)
	}

	// The disjoint entry scores zero and never appears.
	all := m.TopMatches("zakat", corpus, 10)
	if len(all) != 3 {
		t.Errorf("TopMatches(k=10) returned %d results, want 3", len(all))
	}

	if res := m.TopMatches("zakat", corpus, 0); res != nil {
		t.Errorf("TopMatches(k=0) = %v, want nil", res)
	}
}
