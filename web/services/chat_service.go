package services

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"sync"
	"time"

	"zakat-chatbot/config"
	"zakat-chatbot/database"
	apperrors "zakat-chatbot/errors"
	"zakat-chatbot/nlp"
	"zakat-chatbot/utils"
	"zakat-chatbot/web/types"

	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// Answer sources reported to clients and written to the chat log. The engine
// contributes "faq", "smalltalk" and "fallback"; these three cover the
// assistant-touched paths.
const (
	sourceFAQEnhanced        = "faq_enhanced"
	sourceAssistantKnowledge = "assistant_knowledge"
	sourceFAQFallback        = "faq_fallback"
)

// confidentMatch is the score above which a match is trusted enough to
// surface its question to the user and to be reworded rather than replaced.
const confidentMatch = 0.45

// relatedQuestionCount is how many near-miss questions are handed to the
// assistant as grounding for a knowledge answer.
const relatedQuestionCount = 3

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

var replyEmojis = []string{"😊", "👋", "🙏", "💰", "📞", "✅", "🤝", "💡"}

// ChatStore is the slice of the database layer a chat turn touches.
type ChatStore interface {
	ListFAQs(ctx context.Context) ([]nlp.FAQEntry, error)
	CreateChatLog(ctx context.Context, rec database.ChatLogRecord) error
}

// Assistant rewords confident FAQ answers and produces grounded replies for
// weak matches. A nil Assistant leaves the engine output untouched.
type Assistant interface {
	EnhanceFAQ(ctx context.Context, userQuestion, faqAnswer string) (string, error)
	AnswerFromKnowledge(ctx context.Context, userQuestion string, relatedQuestions []string) (string, error)
}

// ChatService orchestrates one chat turn: corpus snapshot, reply cache,
// engine run, assistant bands, chat log, session history.
type ChatService struct {
	cfg        *config.Config
	store      ChatStore
	responder  *nlp.Responder
	matcher    *nlp.Matcher
	normalizer *nlp.Normalizer
	assistant  Assistant
	sessions   *SessionService
	logger     *zap.Logger

	corpusMu      sync.Mutex
	corpus        []nlp.FAQEntry
	corpusLoaded  time.Time
	corpusVersion int64

	replyCache *lru.Cache
}

func NewChatService(
	cfg *config.Config,
	store ChatStore,
	responder *nlp.Responder,
	matcher *nlp.Matcher,
	normalizer *nlp.Normalizer,
	assistant Assistant,
	sessions *SessionService,
	logger *zap.Logger,
) *ChatService {
	cs := &ChatService{
		cfg:        cfg,
		store:      store,
		responder:  responder,
		matcher:    matcher,
		normalizer: normalizer,
		assistant:  assistant,
		sessions:   sessions,
		logger:     logger,
	}

	cache, err := lru.New(cfg.ReplyCacheSize)
	if err != nil {
		logger.Warn("Reply cache disabled", zap.Error(err), zap.Int("size", cfg.ReplyCacheSize))
	} else {
		cs.replyCache = cache
	}

	return cs
}

// ProcessMessage runs the full pipeline for one user message and returns
// the response envelope. Errors are reserved for states where no reply can
// be produced at all; degraded paths answer with engine output instead.
func (cs *ChatService) ProcessMessage(ctx context.Context, sessionID, message string) (*types.ChatResponse, error) {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		result, intent := cs.responder.Respond("", nil, sessionID, cs.cfg.MatchThreshold)
		resp := cs.newResponse(sessionID, result, intent)
		return &resp, nil
	}

	corpus, version, err := cs.corpusSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(corpus) == 0 && cs.assistant == nil {
		return nil, fmt.Errorf("FAQ corpus is empty: %w", apperrors.ErrServiceUnavailable)
	}

	cacheKey := fmt.Sprintf("%d:%s", version, cs.normalizer.Normalize(trimmed))
	if cs.replyCache != nil {
		if cached, ok := cs.replyCache.Get(cacheKey); ok {
			resp := cached.(types.ChatResponse)
			resp.SessionID = sessionID
			cs.record(ctx, sessionID, trimmed, &resp)
			return &resp, nil
		}
	}

	result, intent := cs.responder.Respond(trimmed, corpus, sessionID, cs.cfg.MatchThreshold)
	resp := cs.newResponse(sessionID, result, intent)

	if result.Source != nlp.SourceSmalltalk && cs.assistant != nil {
		cs.applyAssistant(ctx, trimmed, corpus, result, &resp)
	}

	resp.Reply = addEmojiIfMissing(resp.Reply)
	resp.Confidence = round3(resp.Confidence)

	cs.logger.Info("Chat turn",
		zap.String("session_id", sessionID),
		zap.String("message_preview", utils.TruncateString(trimmed, 80)),
		zap.Float64("confidence", resp.Confidence),
		zap.String("answer_source", resp.AnswerSource),
		zap.String("intent", resp.Intent))

	cs.record(ctx, sessionID, trimmed, &resp)

	if cs.replyCache != nil && cacheableSource(resp.AnswerSource) {
		cs.replyCache.Add(cacheKey, resp)
	}

	return &resp, nil
}

// InvalidateCorpus forces the next turn to reload FAQs and empties the
// reply cache. Admin FAQ mutations and retraining call this.
func (cs *ChatService) InvalidateCorpus() {
	cs.corpusMu.Lock()
	cs.corpusLoaded = time.Time{}
	cs.corpusMu.Unlock()

	if cs.replyCache != nil {
		cs.replyCache.Purge()
	}
}

// corpusSnapshot returns the cached FAQ corpus, refreshing it when the TTL
// has lapsed. A failed refresh serves the previous snapshot; only the very
// first load can fail outright.
func (cs *ChatService) corpusSnapshot(ctx context.Context) ([]nlp.FAQEntry, int64, error) {
	cs.corpusMu.Lock()
	defer cs.corpusMu.Unlock()

	if !cs.corpusLoaded.IsZero() && time.Since(cs.corpusLoaded) < cs.cfg.CorpusCacheTTL {
		return cs.corpus, cs.corpusVersion, nil
	}

	entries, err := cs.store.ListFAQs(ctx)
	if err != nil {
		if cs.corpusVersion > 0 {
			cs.logger.Warn("FAQ refresh failed, serving cached corpus", zap.Error(err))
			return cs.corpus, cs.corpusVersion, nil
		}
		return nil, 0, fmt.Errorf("loading FAQ corpus: %w", err)
	}

	cs.corpus = entries
	cs.corpusLoaded = time.Now()
	cs.corpusVersion++
	return cs.corpus, cs.corpusVersion, nil
}

func (cs *ChatService) newResponse(sessionID string, result nlp.ResponseResult, intent nlp.IntentResult) types.ChatResponse {
	resp := types.ChatResponse{
		Reply:              result.Reply,
		SessionID:          sessionID,
		Confidence:         result.Confidence,
		ConfidenceLevel:    string(result.ConfidenceLevel),
		Category:           result.Category,
		Intent:             intent.Primary(),
		AnswerSource:       string(result.Source),
		AssistantAvailable: cs.assistant != nil,
		Suggestions:        result.Suggestions,
	}
	if result.Confidence >= confidentMatch && result.MatchedQuestion != "" {
		matched := result.MatchedQuestion
		resp.MatchedQuestion = &matched
	}
	return resp
}

// applyAssistant runs the confidence bands: a confident match gets its FAQ
// answer reworded, anything weaker gets a knowledge reply grounded on the
// closest questions. Assistant failures keep the engine reply and mark the
// source as a fallback.
func (cs *ChatService) applyAssistant(ctx context.Context, query string, corpus []nlp.FAQEntry, result nlp.ResponseResult, resp *types.ChatResponse) {
	if result.Confidence >= confidentMatch && result.MatchedQuestion != "" {
		enhanced, err := cs.assistant.EnhanceFAQ(ctx, query, result.Reply)
		if err != nil {
			cs.logger.Warn("Assistant enhancement failed, using FAQ answer", zap.Error(err))
			resp.AnswerSource = sourceFAQFallback
			return
		}

		resp.AnswerSource = sourceFAQEnhanced
		if introducesNewNumbers(result.Reply, enhanced) {
			cs.logger.Warn("Enhanced answer changed figures, keeping FAQ answer",
				zap.String("matched_question", result.MatchedQuestion))
			return
		}
		resp.Reply = enhanced
		resp.EnhancedByAssistant = true
		return
	}

	var related []string
	for _, match := range cs.matcher.TopMatches(query, corpus, relatedQuestionCount) {
		related = append(related, match.FAQ.Question)
	}

	reply, err := cs.assistant.AnswerFromKnowledge(ctx, query, related)
	if err != nil {
		cs.logger.Warn("Assistant knowledge answer failed, using engine reply", zap.Error(err))
		resp.AnswerSource = sourceFAQFallback
		return
	}
	resp.Reply = reply
	resp.EnhancedByAssistant = true
	resp.AnswerSource = sourceAssistantKnowledge
}

// record persists the turn to chat_logs and the in-memory session history.
// Log failures never fail the request.
func (cs *ChatService) record(ctx context.Context, sessionID, userMessage string, resp *types.ChatResponse) {
	rec := database.ChatLogRecord{
		SessionID:    sessionID,
		UserMessage:  userMessage,
		BotReply:     resp.Reply,
		Confidence:   resp.Confidence,
		AnswerSource: resp.AnswerSource,
	}
	if resp.MatchedQuestion != nil {
		rec.MatchedQuestion = *resp.MatchedQuestion
	}

	if err := cs.store.CreateChatLog(ctx, rec); err != nil {
		cs.logger.Warn("Failed to log chat turn",
			zap.Error(err),
			zap.String("session_id", sessionID))
	}

	cs.sessions.Append(sessionID, userMessage, resp.Reply)
}

// introducesNewNumbers reports whether the enhanced text contains a numeric
// figure the FAQ answer does not. Rewording must never invent amounts,
// rates or phone numbers.
func introducesNewNumbers(faqAnswer, enhanced string) bool {
	faqNumbers := make(map[string]struct{})
	for _, n := range numberPattern.FindAllString(faqAnswer, -1) {
		faqNumbers[n] = struct{}{}
	}
	for _, n := range numberPattern.FindAllString(enhanced, -1) {
		if _, ok := faqNumbers[n]; !ok {
			return true
		}
	}
	return false
}

// addEmojiIfMissing appends a tone-matching emoji when the reply carries
// none, keeping assistant output consistent with the canned texts.
func addEmojiIfMissing(text string) string {
	for _, emoji := range replyEmojis {
		if strings.Contains(text, emoji) {
			return text
		}
	}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "maaf") || strings.Contains(lower, "sorry") || strings.Contains(lower, "tidak"):
		return text + " 😊"
	case strings.Contains(lower, "terima kasih") || strings.Contains(lower, "thank"):
		return text + " 😄"
	case strings.Contains(lower, "hubungi") || strings.Contains(lower, "telefon"):
		return text + " 📞"
	default:
		return text + " 😊"
	}
}

// cacheableSource reports whether a reply may be served to other users
// asking the same thing. Smalltalk depends on session context and fallbacks
// on transient failures, so neither is cached.
func cacheableSource(source string) bool {
	switch source {
	case string(nlp.SourceFAQ), sourceFAQEnhanced, sourceAssistantKnowledge:
		return true
	}
	return false
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
