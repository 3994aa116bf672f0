package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"zakat-chatbot/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// limiterCleanupInterval is how often the per-session bucket map is checked
// for unbounded growth.
const limiterCleanupInterval = 10 * time.Minute

// TokenBucket implements a token bucket rate limiter
type TokenBucket struct {
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
	mu         sync.Mutex
}

// NewTokenBucket creates a new token bucket
func NewTokenBucket(maxTokens float64, refillRate float64) *TokenBucket {
	return &TokenBucket{
		tokens:     maxTokens,
		maxTokens:  maxTokens,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

// Allow checks if a request can proceed and consumes a token if so
func (tb *TokenBucket) Allow() bool {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()

	// Refill tokens based on elapsed time
	tb.tokens = min(tb.maxTokens, tb.tokens+(elapsed*tb.refillRate))
	tb.lastRefill = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true
	}
	return false
}

// Remaining returns the number of tokens remaining
func (tb *TokenBucket) Remaining() int {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(tb.lastRefill).Seconds()
	tokens := min(tb.maxTokens, tb.tokens+(elapsed*tb.refillRate))
	return int(tokens)
}

// SessionRateLimiter throttles chat messages per session. Buckets start
// with a burst allowance and refill at the configured per-minute rate.
type SessionRateLimiter struct {
	messagesPerMin int
	burstSize      int
	limits         map[string]*TokenBucket
	mu             sync.RWMutex
	logger         *zap.Logger
	stopCleanup    chan struct{}
}

// NewSessionRateLimiter creates a new session-based rate limiter
func NewSessionRateLimiter(cfg *config.Config, logger *zap.Logger) *SessionRateLimiter {
	limiter := &SessionRateLimiter{
		messagesPerMin: cfg.RateLimitMessagesPerMin,
		burstSize:      cfg.RateLimitBurstSize,
		limits:         make(map[string]*TokenBucket),
		logger:         logger,
		stopCleanup:    make(chan struct{}),
	}

	go limiter.cleanupRoutine()

	return limiter
}

// cleanupRoutine periodically removes stale entries
func (srl *SessionRateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(limiterCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			srl.cleanup()
		case <-srl.stopCleanup:
			return
		}
	}
}

// cleanup resets the bucket map once it grows past a sane bound. Sessions
// are cookie-scoped and re-seed their bucket on the next message.
func (srl *SessionRateLimiter) cleanup() {
	srl.mu.Lock()
	defer srl.mu.Unlock()

	if len(srl.limits) > 1000 {
		srl.logger.Info("Cleaning up rate limiter cache", zap.Int("limiters", len(srl.limits)))
		srl.limits = make(map[string]*TokenBucket)
	}
}

// Stop stops the cleanup routine
func (srl *SessionRateLimiter) Stop() {
	close(srl.stopCleanup)
}

// AllowMessage checks if a message can be sent for the given session
func (srl *SessionRateLimiter) AllowMessage(sessionID string) bool {
	srl.mu.Lock()
	bucket, exists := srl.limits[sessionID]
	if !exists {
		refillRate := float64(srl.messagesPerMin) / 60.0
		bucket = NewTokenBucket(float64(srl.burstSize), refillRate)
		srl.limits[sessionID] = bucket
	}
	srl.mu.Unlock()

	return bucket.Allow()
}

// MessageLimit returns remaining message tokens for a session
func (srl *SessionRateLimiter) MessageLimit(sessionID string) (remaining int, limit int) {
	srl.mu.RLock()
	bucket, exists := srl.limits[sessionID]
	srl.mu.RUnlock()

	if !exists {
		return srl.burstSize, srl.burstSize
	}
	return bucket.Remaining(), srl.burstSize
}

// RateLimitMiddleware creates a Gin middleware throttling chat messages by
// session ID. SessionMiddleware must run first.
func RateLimitMiddleware(limiter *SessionRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := SessionID(c)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session not initialized"})
			return
		}

		allowed := limiter.AllowMessage(sessionID)
		remaining, limit := limiter.MessageLimit(sessionID)

		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			limiter.logger.Warn("Rate limit exceeded",
				zap.String("session_id", sessionID),
				zap.Int("limit", limit))

			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"limit":       limit,
				"remaining":   remaining,
				"retry_after": 60,
			})
			return
		}

		c.Next()
	}
}
