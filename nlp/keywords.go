package nlp

import (
	"strings"
	"unicode/utf8"
)

// KeywordExtractor reduces a message to its salient content words.
type KeywordExtractor struct {
	normalizer *Normalizer
	stopWords  map[string]struct{}
}

func NewKeywordExtractor(normalizer *Normalizer, tables *Tables) *KeywordExtractor {
	stop := make(map[string]struct{}, len(tables.StopWords))
	for _, w := range tables.StopWords {
		stop[w] = struct{}{}
	}
	return &KeywordExtractor{normalizer: normalizer, stopWords: stop}
}

// Extract normalizes text, splits it on whitespace and drops stop words and
// tokens of two characters or fewer. The '?' kept by normalization is not
// part of any keyword.
func (e *KeywordExtractor) Extract(text string) KeywordSet {
	keywords := make(KeywordSet)
	for _, token := range strings.Fields(e.normalizer.Normalize(text)) {
		token = strings.Trim(token, "?")
		if utf8.RuneCountInString(token) <= 2 {
			continue
		}
		if _, ok := e.stopWords[token]; ok {
			continue
		}
		keywords[token] = struct{}{}
	}
	return keywords
}
