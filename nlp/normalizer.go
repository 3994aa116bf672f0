package nlp

import (
	"sort"
	"strings"
	"unicode"
)

// Normalizer canonicalizes raw user input so that downstream comparisons see
// one spelling per word. It lowercases, strips punctuation except '?',
// collapses whitespace and rewrites known misspellings, abbreviations and
// English equivalents to their canonical root.
type Normalizer struct {
	phraseRules []substitution
	tokenRules  map[string]string
}

// substitution rewrites one variant spelling to its canonical word.
type substitution struct {
	variant   string
	canonical string
}

// NewNormalizer builds a Normalizer from the typo dictionary in tables.
// Multi-word variants are applied before single tokens, longest first, so
// "lembaga zakat negeri kedah" wins over "lembaga zakat" over "lembaga".
func NewNormalizer(tables *Tables) *Normalizer {
	n := &Normalizer{tokenRules: make(map[string]string)}
	for canonical, variants := range tables.TypoCorrections {
		for _, variant := range variants {
			variant = strings.ToLower(strings.TrimSpace(variant))
			if variant == "" || variant == canonical {
				continue
			}
			if strings.Contains(variant, " ") {
				n.phraseRules = append(n.phraseRules, substitution{variant: variant, canonical: canonical})
			} else {
				n.tokenRules[variant] = canonical
			}
		}
	}

	sort.Slice(n.phraseRules, func(i, j int) bool {
		if len(n.phraseRules[i].variant) != len(n.phraseRules[j].variant) {
			return len(n.phraseRules[i].variant) > len(n.phraseRules[j].variant)
		}
		return n.phraseRules[i].variant < n.phraseRules[j].variant
	})

	return n
}

// Normalize canonicalizes text. Empty or whitespace-only input normalizes to
// the empty string; Normalize never fails.
func (n *Normalizer) Normalize(text string) string {
	return n.substitute(n.clean(text))
}

// clean lowercases text, replaces every punctuation rune except '?' with a
// space and collapses whitespace runs.
func (n *Normalizer) clean(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))

	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r == '?' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// substitute applies the typo dictionary to cleaned text: phrase rules over
// token runs first, then per-token lookups. A trailing '?' stays attached to
// the rewritten token.
func (n *Normalizer) substitute(text string) string {
	if text == "" {
		return ""
	}

	tokens := strings.Fields(text)
	for _, rule := range n.phraseRules {
		tokens = replaceTokenRun(tokens, strings.Fields(rule.variant), rule.canonical)
	}

	for i, token := range tokens {
		bare := strings.TrimRight(token, "?")
		if canonical, ok := n.tokenRules[bare]; ok {
			tokens[i] = canonical + token[len(bare):]
		}
	}

	return strings.Join(tokens, " ")
}

// replaceTokenRun substitutes every occurrence of the token sequence run in
// tokens with the single canonical token, preserving a trailing '?' from the
// last matched token.
func replaceTokenRun(tokens, run []string, canonical string) []string {
	if len(run) == 0 || len(tokens) < len(run) {
		return tokens
	}

	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); {
		if matchesRun(tokens, i, run) {
			last := tokens[i+len(run)-1]
			suffix := last[len(strings.TrimRight(last, "?")):]
			out = append(out, canonical+suffix)
			i += len(run)
			continue
		}
		out = append(out, tokens[i])
		i++
	}
	return out
}

func matchesRun(tokens []string, start int, run []string) bool {
	if start+len(run) > len(tokens) {
		return false
	}
	for k, want := range run {
		token := tokens[start+k]
		if k == len(run)-1 {
			token = strings.TrimRight(token, "?")
		}
		if token != want {
			return false
		}
	}
	return true
}
