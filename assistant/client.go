package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"zakat-chatbot/config"
	apperrors "zakat-chatbot/errors"
	"zakat-chatbot/prompts"

	"go.uber.org/zap"
)

const (
	enhanceTemperature   = 0.7
	enhanceMaxTokens     = 500
	knowledgeTemperature = 0.7
	knowledgeMaxTokens   = 400

	// Replies outside these bounds are treated as model glitches.
	minReplyLength    = 20
	maxEnhancedLength = 1000

	backoffCap = 30 * time.Second
)

// unsureReply is returned when the model produced nothing usable for an
// unmatched question.
const unsureReply = "Maaf, saya tidak pasti tentang soalan ini. Sila hubungi LZNK di 04-733 6633 untuk maklumat lanjut."

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.AssistantRequestTimeout},
		logger:     logger,
	}
}

// EnhanceFAQ rewrites an official FAQ answer into a friendlier reply while
// keeping its facts. The original answer is returned when the model output
// fails the length sanity check.
func (c *Client) EnhanceFAQ(ctx context.Context, userQuestion, faqAnswer string) (string, error) {
	reply, err := c.chat(ctx, prompts.EnhanceFAQ(userQuestion, faqAnswer), enhanceTemperature, enhanceMaxTokens)
	if err != nil {
		return "", err
	}
	if len(reply) < minReplyLength || len(reply) > maxEnhancedLength {
		c.logger.Warn("Enhanced answer length unusual, keeping FAQ answer", zap.Int("length", len(reply)))
		return faqAnswer, nil
	}
	return reply, nil
}

// AnswerFromKnowledge produces a short reply for a question with no FAQ
// match, steering the user toward related questions or the LZNK office.
func (c *Client) AnswerFromKnowledge(ctx context.Context, userQuestion string, relatedQuestions []string) (string, error) {
	reply, err := c.chat(ctx, prompts.AnswerKnowledge(userQuestion, relatedQuestions), knowledgeTemperature, knowledgeMaxTokens)
	if err != nil {
		return "", err
	}
	if len(reply) < minReplyLength {
		return unsureReply, nil
	}
	return reply, nil
}

func (c *Client) chat(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	reqBody := chatRequest{
		Model:       c.cfg.AssistantModel,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal assistant request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/chat/completions", strings.TrimRight(c.cfg.AssistantHost, "/"))

	var resp *http.Response
	var lastErr error
	for attempt := 0; attempt < c.cfg.MaxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
		if err != nil {
			return "", fmt.Errorf("create assistant request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		r, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			if ctx.Err() != nil {
				break
			}
			continue
		}

		// Model loading or rate limited; retry with backoff
		if r.StatusCode == http.StatusServiceUnavailable || r.StatusCode == http.StatusTooManyRequests {
			io.Copy(io.Discard, r.Body)
			r.Body.Close()
			lastErr = fmt.Errorf("assistant status %d", r.StatusCode)
			c.logger.Warn("Assistant unavailable, retrying",
				zap.Int("attempt", attempt+1),
				zap.Int("status", r.StatusCode))
			c.backoffSleep(attempt)
			continue
		}

		resp = r
		break
	}
	if resp == nil {
		return "", fmt.Errorf("%w: no response after %d attempts: %v", apperrors.ErrAssistantCommunication, c.cfg.MaxRetries, lastErr)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", apperrors.ErrAssistantCommunication, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %s: %s", apperrors.ErrAssistantCommunication, resp.Status, string(bodyBytes))
	}

	var cr chatResponse
	if err := json.Unmarshal(bodyBytes, &cr); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", apperrors.ErrAssistantCommunication, err)
	}
	if len(cr.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", apperrors.ErrAssistantCommunication)
	}
	return strings.TrimSpace(cr.Choices[0].Message.Content), nil
}

func (c *Client) backoffSleep(attempt int) {
	// Exponential backoff with jitter and cap
	base := c.cfg.RetryDelaySeconds
	if base <= 0 {
		base = time.Second
	}
	d := base * time.Duration(1<<attempt)
	if d > backoffCap {
		d = backoffCap
	}
	jitter := time.Duration(float64(d) * 0.1)
	time.Sleep(d - jitter + time.Duration(time.Now().UnixNano()%int64(2*jitter+1)))
}
