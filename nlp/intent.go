package nlp

import "strings"

// Classifier derives conversational intent flags, topic category, sentiment
// and urgency from a single message. It is a pure function of the input text
// and the fixed tables; flags are independent and may overlap, the responder
// resolves precedence.
type Classifier struct {
	normalizer *Normalizer
	extractor  *KeywordExtractor
	tables     *Tables
}

func NewClassifier(normalizer *Normalizer, extractor *KeywordExtractor, tables *Tables) *Classifier {
	return &Classifier{normalizer: normalizer, extractor: extractor, tables: tables}
}

// Classify inspects text and returns an IntentResult. Word lists match on
// the normalized text; language indicators match before typo substitution so
// that English markers like "what" are still visible.
func (c *Classifier) Classify(text string) IntentResult {
	cleaned := c.normalizer.clean(text)
	normalized := c.normalizer.substitute(cleaned)
	hasQuestionMark := strings.Contains(text, "?")

	result := IntentResult{
		IsQuestion:    hasQuestionMark || containsAny(normalized, c.tables.QuestionWords),
		IsGreeting:    containsAny(normalized, c.tables.GreetingWords),
		IsThanks:      containsAny(normalized, c.tables.ThanksWords),
		IsGoodbye:     containsAny(normalized, c.tables.GoodbyeWords),
		IsHelpRequest: containsAny(normalized, c.tables.HelpWords),
		IsComplaint:   containsAny(normalized, c.tables.ComplaintWords),
		IsPraise:      containsAny(normalized, c.tables.PraiseWords),
		IsConfused:    containsAny(normalized, c.tables.ConfusionWords),
		Keywords:      c.extractor.Extract(text),
		Category:      c.topicCategory(normalized),
		Language:      detectLanguage(cleaned, c.tables),
	}

	positive := countHits(normalized, c.tables.PositiveWords)
	negative := countHits(normalized, c.tables.NegativeWords)
	switch {
	case positive > negative:
		result.Sentiment = SentimentPositive
	case negative > positive:
		result.Sentiment = SentimentNegative
	default:
		result.Sentiment = SentimentNeutral
	}

	switch {
	case containsAny(normalized, c.tables.UrgentWords):
		result.Urgency = UrgencyHigh
	case hasQuestionMark:
		result.Urgency = UrgencyMedium
	default:
		result.Urgency = UrgencyLow
	}

	return result
}

// topicCategory returns the first topic whose word list hits, in the fixed
// priority order of the tables.
func (c *Classifier) topicCategory(normalized string) Category {
	for _, topic := range c.tables.TopicCategories {
		if containsAny(normalized, topic.Words) {
			return topic.Name
		}
	}
	return CategoryGeneral
}
