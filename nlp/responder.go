package nlp

import "strings"

// maxSuggestions caps how many corpus questions the generic fallback offers.
const maxSuggestions = 3

// Responder produces one reply per message: intent short-circuits first,
// then the threshold-gated FAQ match, then tiered fallbacks. Every path
// yields a non-empty reply; the responder itself performs no I/O and leaves
// logging to the caller.
type Responder struct {
	matcher    *Matcher
	classifier *Classifier
	extractor  *KeywordExtractor
	sessions   SessionStore
}

func NewResponder(matcher *Matcher, classifier *Classifier, extractor *KeywordExtractor, sessions SessionStore) *Responder {
	return &Responder{matcher: matcher, classifier: classifier, extractor: extractor, sessions: sessions}
}

// Respond answers one user message. The corpus is the FAQ snapshot to match
// against, threshold gates when a match is trusted, and sessionID identifies
// the conversation whose state a farewell clears. The IntentResult is
// returned alongside for caller-side logging.
func (r *Responder) Respond(query string, corpus []FAQEntry, sessionID string, threshold float64) (ResponseResult, IntentResult) {
	intent := r.classifier.Classify(query)

	if strings.TrimSpace(query) == "" {
		return ResponseResult{
			Reply:           emptyInputReply,
			ConfidenceLevel: ConfidenceNone,
			Category:        string(CategoryGeneral),
			Source:          SourceSmalltalk,
		}, intent
	}

	if intent.IsGreeting {
		return smalltalk(pickReply(intent.Language, greetingRepliesMalay, greetingRepliesEnglish)), intent
	}
	if intent.IsThanks {
		return smalltalk(pickReply(intent.Language, thanksRepliesMalay, thanksRepliesEnglish)), intent
	}
	if intent.IsGoodbye {
		if r.sessions != nil {
			r.sessions.Clear(sessionID)
		}
		return smalltalk(pickReply(intent.Language, goodbyeRepliesMalay, goodbyeRepliesEnglish)), intent
	}

	match := r.matcher.FindBestMatch(query, corpus)
	if match.FAQ != nil && match.Score >= threshold {
		return ResponseResult{
			Reply:           match.FAQ.Answer,
			MatchedQuestion: match.FAQ.Question,
			Confidence:      match.Score,
			ConfidenceLevel: ConfidenceLevelFor(match.Score),
			Category:        match.FAQ.Category,
			Source:          SourceFAQ,
		}, intent
	}

	return r.fallback(intent, match, corpus), intent
}

func smalltalk(reply string) ResponseResult {
	return ResponseResult{
		Reply:           reply,
		Confidence:      1.0,
		ConfidenceLevel: ConfidenceLevelFor(1.0),
		Category:        string(CategoryGeneral),
		Source:          SourceSmalltalk,
	}
}

// fallback picks the most specific below-threshold reply: dedicated intent
// messages first, then a topic-tailored message, then the generic reply with
// suggested questions.
func (r *Responder) fallback(intent IntentResult, match MatchResult, corpus []FAQEntry) ResponseResult {
	result := ResponseResult{
		Confidence:      match.Score,
		ConfidenceLevel: ConfidenceLevelFor(match.Score),
		Category:        string(intent.Category),
		Source:          SourceFallback,
	}

	switch {
	case intent.IsHelpRequest:
		result.Reply = helpRequestReply
		return result
	case intent.IsComplaint:
		result.Reply = complaintReply
		return result
	case intent.IsPraise:
		result.Reply = praiseReply
		return result
	case intent.IsConfused:
		result.Reply = confusionReply
		return result
	}

	if reply, ok := categoryReplies[intent.Category]; ok && intent.Category != CategoryGeneral {
		result.Reply = reply
		return result
	}

	result.Suggestions = r.suggestQuestions(intent.Keywords, corpus)
	result.Reply = buildFallbackReply(result.Suggestions)
	return result
}

// suggestQuestions collects up to maxSuggestions distinct corpus questions
// sharing at least one keyword with the query, in corpus scan order. The
// default trio stands in when nothing is eligible.
func (r *Responder) suggestQuestions(queryKeywords KeywordSet, corpus []FAQEntry) []string {
	if len(queryKeywords) == 0 {
		return defaultSuggestions
	}

	suggestions := make([]string, 0, maxSuggestions)
	seen := make(map[string]struct{})
	for i := range corpus {
		entry := &corpus[i]
		if _, dup := seen[entry.Question]; dup {
			continue
		}
		if !sharesKeyword(queryKeywords, r.extractor.Extract(entry.Question), r.extractor.Extract(entry.Answer)) {
			continue
		}
		seen[entry.Question] = struct{}{}
		suggestions = append(suggestions, entry.Question)
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	if len(suggestions) == 0 {
		return defaultSuggestions
	}
	return suggestions
}

func sharesKeyword(query, question, answer KeywordSet) bool {
	for w := range query {
		if _, ok := question[w]; ok {
			return true
		}
		if _, ok := answer[w]; ok {
			return true
		}
	}
	return false
}
