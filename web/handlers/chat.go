package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zakat-chatbot/database"
	apperrors "zakat-chatbot/errors"
	"zakat-chatbot/web/middleware"
	"zakat-chatbot/web/services"
	"zakat-chatbot/web/types"
)

const (
	unavailableReply = "Maaf, sistem tidak tersedia. Sila hubungi pejabat LZNK di 04-733 6633. 📞"
	failureReply     = "Maaf, sistem sedang mengalami masalah. Sila cuba lagi. 😅"
)

// ChatHandler serves the conversational endpoints backed by the FAQ engine.
type ChatHandler struct {
	chat     *services.ChatService
	sessions *services.SessionService
	store    *database.PostgresStore
	logger   *zap.Logger
}

func NewChatHandler(chat *services.ChatService, sessions *services.SessionService, store *database.PostgresStore, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chat:     chat,
		sessions: sessions,
		store:    store,
		logger:   logger,
	}
}

// HandleChat runs one conversation turn and returns the bot reply.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req types.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = middleware.SessionID(c)
	}

	resp, err := h.chat.ProcessMessage(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		if apperrors.IsServiceUnavailable(err) {
			respondWithChatError(c, http.StatusInternalServerError, err, unavailableReply, sessionID, h.logger)
			return
		}
		respondWithChatError(c, http.StatusInternalServerError, err, failureReply, sessionID, h.logger)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleHistory returns the exchanges recorded for a session. When the
// in-memory context is gone, for instance after a restart, the persisted
// chat logs are served instead.
func (h *ChatHandler) HandleHistory(c *gin.Context) {
	sessionID := c.Param("session_id")
	history := h.sessions.History(sessionID)

	if len(history) == 0 {
		records, err := h.store.GetSessionHistory(c.Request.Context(), sessionID, 15)
		if err != nil {
			h.logger.Warn("Failed to load persisted history",
				zap.Error(err),
				zap.String("session_id", sessionID))
		}
		for _, rec := range records {
			history = append(history, services.Exchange{
				UserMessage: rec.UserMessage,
				BotReply:    rec.BotReply,
				At:          rec.CreatedAt,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"session_id":    sessionID,
		"history":       history,
		"message_count": len(history),
	})
}

// HandleClear drops the conversation context for a session.
func (h *ChatHandler) HandleClear(c *gin.Context) {
	sessionID := c.Param("session_id")
	h.sessions.Clear(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Context cleared",
		"session_id": sessionID,
	})
}
