package nlp

// FAQEntry is one question/answer pair from the knowledge base. The engine
// receives a read-only snapshot of these per call and never mutates them.
type FAQEntry struct {
	ID       int64  `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// KeywordSet holds the distinct content words of a text.
type KeywordSet map[string]struct{}

// Category is the topic bucket assigned by the intent classifier.
type Category string

const (
	CategoryOrganization Category = "organization"
	CategoryPayment      Category = "payment"
	CategoryThreshold    Category = "threshold"
	CategoryBusiness     Category = "business"
	CategoryTimePeriod   Category = "time-period"
	CategoryZakatType    Category = "zakat-type"
	CategoryGeneral      Category = "general"
)

// Sentiment is the coarse emotional polarity of a message.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Urgency grades how quickly a message expects attention.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Detected language labels. Detection is heuristic; "mixed" covers
// code-switched messages and ties.
const (
	LanguageMalay   = "malay"
	LanguageEnglish = "english"
	LanguageMixed   = "mixed"
)

// IntentResult captures everything the classifier can tell about a single
// message. Flags are independent; the responder decides precedence.
type IntentResult struct {
	IsQuestion    bool
	IsGreeting    bool
	IsThanks      bool
	IsGoodbye     bool
	IsHelpRequest bool
	IsComplaint   bool
	IsPraise      bool
	IsConfused    bool
	Keywords      KeywordSet
	Category      Category
	Sentiment     Sentiment
	Urgency       Urgency
	Language      string
}

// Primary reduces the independent flags to a single label for logging,
// using the same precedence the responder applies.
func (r IntentResult) Primary() string {
	switch {
	case r.IsGreeting:
		return "greeting"
	case r.IsThanks:
		return "thanks"
	case r.IsGoodbye:
		return "goodbye"
	case r.IsHelpRequest:
		return "help_request"
	case r.IsComplaint:
		return "complaint"
	case r.IsPraise:
		return "praise"
	case r.IsConfused:
		return "confused"
	case r.IsQuestion:
		return "question"
	default:
		return "statement"
	}
}

// MatchResult is the outcome of ranking a corpus against a query.
// FAQ is nil only when the corpus was empty.
type MatchResult struct {
	FAQ   *FAQEntry
	Score float64
}

// ConfidenceLevel is the categorical tier derived from a match score.
type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceNone   ConfidenceLevel = "none"
)

// ConfidenceLevelFor maps a score onto its tier using fixed cutoffs.
func ConfidenceLevelFor(score float64) ConfidenceLevel {
	switch {
	case score >= 0.7:
		return ConfidenceHigh
	case score >= 0.5:
		return ConfidenceMedium
	case score >= 0.35:
		return ConfidenceLow
	default:
		return ConfidenceNone
	}
}

// ReplySource records which part of the engine produced a reply.
type ReplySource string

const (
	SourceFAQ       ReplySource = "faq"
	SourceSmalltalk ReplySource = "smalltalk"
	SourceFallback  ReplySource = "fallback"
)

// ResponseResult is the engine's answer to one user message.
type ResponseResult struct {
	Reply           string
	MatchedQuestion string
	Confidence      float64
	ConfidenceLevel ConfidenceLevel
	Category        string
	Suggestions     []string
	Source          ReplySource
}

// SessionStore clears per-session conversation state when the responder
// detects a farewell. The full session bookkeeping lives with the caller.
type SessionStore interface {
	Clear(sessionID string)
}
