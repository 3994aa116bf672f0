package services

import (
	"sync"
	"time"

	"zakat-chatbot/config"

	"go.uber.org/zap"
)

// maxExchanges is the rolling window of turns kept per session. Older turns
// fall off the front.
const maxExchanges = 15

// Exchange is one user/bot turn in a session's conversation history.
type Exchange struct {
	UserMessage string    `json:"user_message"`
	BotReply    string    `json:"bot_reply"`
	At          time.Time `json:"timestamp"`
}

type sessionState struct {
	exchanges []Exchange
	lastSeen  time.Time
}

// SessionService keeps per-session conversation history in memory. It
// satisfies nlp.SessionStore so the responder can clear a session on
// farewell. A background sweep evicts sessions idle past the configured age.
type SessionService struct {
	idleAge time.Duration
	logger  *zap.Logger

	mu       sync.Mutex
	sessions map[string]*sessionState

	stopSweep chan struct{}
}

func NewSessionService(cfg *config.Config, logger *zap.Logger) *SessionService {
	ss := &SessionService{
		idleAge:   cfg.SessionIdleAge,
		logger:    logger,
		sessions:  make(map[string]*sessionState),
		stopSweep: make(chan struct{}),
	}

	if cfg.CleanupEnabled {
		go ss.sweepRoutine(cfg.CleanupInterval)
	}

	return ss
}

// Append records one completed turn for the session and refreshes its
// last-activity timestamp.
func (ss *SessionService) Append(sessionID, userMessage, botReply string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	state, exists := ss.sessions[sessionID]
	if !exists {
		state = &sessionState{}
		ss.sessions[sessionID] = state
	}

	state.exchanges = append(state.exchanges, Exchange{
		UserMessage: userMessage,
		BotReply:    botReply,
		At:          time.Now(),
	})
	if len(state.exchanges) > maxExchanges {
		state.exchanges = state.exchanges[len(state.exchanges)-maxExchanges:]
	}
	state.lastSeen = time.Now()
}

// History returns a copy of the session's exchanges, oldest first. Unknown
// sessions yield an empty slice.
func (ss *SessionService) History(sessionID string) []Exchange {
	ss.mu.Lock()
	defer ss.mu.Unlock()

	state, exists := ss.sessions[sessionID]
	if !exists {
		return []Exchange{}
	}

	history := make([]Exchange, len(state.exchanges))
	copy(history, state.exchanges)
	return history
}

// Clear drops the session's conversation history.
func (ss *SessionService) Clear(sessionID string) {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	delete(ss.sessions, sessionID)
}

// ActiveSessions reports how many sessions currently hold history.
func (ss *SessionService) ActiveSessions() int {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return len(ss.sessions)
}

// Stop halts the background sweep.
func (ss *SessionService) Stop() {
	close(ss.stopSweep)
}

func (ss *SessionService) sweepRoutine(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ss.sweep()
		case <-ss.stopSweep:
			return
		}
	}
}

// sweep evicts sessions whose last activity is older than the idle age.
func (ss *SessionService) sweep() {
	cutoff := time.Now().Add(-ss.idleAge)

	ss.mu.Lock()
	removed := 0
	for id, state := range ss.sessions {
		if state.lastSeen.Before(cutoff) {
			delete(ss.sessions, id)
			removed++
		}
	}
	remaining := len(ss.sessions)
	ss.mu.Unlock()

	if removed > 0 {
		ss.logger.Info("Swept idle sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", remaining))
	}
}
