package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zakat-chatbot/database"
	apperrors "zakat-chatbot/errors"
	"zakat-chatbot/web/types"
)

const logTimeFormat = "2006-01-02 15:04:05"

// kualaLumpur is the display timezone for admin timestamps.
var kualaLumpur = loadKualaLumpur()

func loadKualaLumpur() *time.Location {
	loc, err := time.LoadLocation("Asia/Kuala_Lumpur")
	if err != nil {
		return time.FixedZone("MYT", 8*60*60)
	}
	return loc
}

// ChatLogHandler exposes the conversation audit trail to the admin panel.
type ChatLogHandler struct {
	store  *database.PostgresStore
	logger *zap.Logger
}

func NewChatLogHandler(store *database.PostgresStore, logger *zap.Logger) *ChatLogHandler {
	return &ChatLogHandler{
		store:  store,
		logger: logger,
	}
}

func (h *ChatLogHandler) HandleList(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		limit = 100
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	opts := database.ChatLogListOptions{
		Limit:     limit,
		Offset:    offset,
		SessionID: c.Query("session_id"),
		Search:    c.Query("search"),
	}

	logs, total, err := h.store.ListChatLogs(c.Request.Context(), opts)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Failed to load chat logs", h.logger)
		return
	}

	items := make([]gin.H, 0, len(logs))
	for _, rec := range logs {
		items = append(items, chatLogJSON(rec))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"logs":    items,
		"count":   len(items),
		"total":   total,
	})
}

func (h *ChatLogHandler) HandleStats(c *gin.Context) {
	stats, err := h.store.ChatLogStats(c.Request.Context())
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Failed to load chat log stats", h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total_messages":  stats.TotalMessages,
			"unique_sessions": stats.UniqueSessions,
			"avg_confidence":  stats.AvgConfidence,
			"today_messages":  stats.TodayMessages,
			"week_messages":   stats.WeekMessages,
			"month_messages":  stats.MonthMessages,
			"by_source":       stats.BySource,
		},
	})
}

func (h *ChatLogHandler) HandleGet(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid chat log id")
		return
	}

	rec, err := h.store.GetChatLog(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithClientError(c, http.StatusNotFound, "Chat log not found")
			return
		}
		respondWithError(c, http.StatusInternalServerError, err, "Failed to load chat log", h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"log":     chatLogJSON(rec),
	})
}

func (h *ChatLogHandler) HandleDelete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid chat log id")
		return
	}

	if err := h.store.DeleteChatLog(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			respondWithClientError(c, http.StatusNotFound, "Chat log not found")
			return
		}
		respondWithError(c, http.StatusInternalServerError, err, "Failed to delete chat log", h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": true,
		"id":      id,
	})
}

func (h *ChatLogHandler) HandleBulkDelete(c *gin.Context) {
	var req types.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		respondWithClientError(c, http.StatusBadRequest, "Invalid or empty 'ids' array")
		return
	}

	deleted := 0
	failed := make([]gin.H, 0)
	for _, id := range req.IDs {
		if err := h.store.DeleteChatLog(c.Request.Context(), id); err != nil {
			reason := "delete failed"
			if apperrors.IsNotFound(err) {
				reason = "not found"
			}
			failed = append(failed, gin.H{"id": id, "reason": reason})
			continue
		}
		deleted++
	}

	h.logger.Info("Bulk deleted chat logs",
		zap.Int("deleted", deleted),
		zap.Int("failed", len(failed)))

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"deleted_count": deleted,
		"failed":        failed,
	})
}

func (h *ChatLogHandler) HandleClearOld(c *gin.Context) {
	var req types.ClearOldRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	days := 30
	if req.Days != nil {
		days = *req.Days
	}
	if days < 1 {
		respondWithClientError(c, http.StatusBadRequest, "Days must be at least 1")
		return
	}

	cutoff := time.Now().AddDate(0, 0, -days)
	deleted, err := h.store.DeleteChatLogsBefore(c.Request.Context(), cutoff)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Failed to clear old chat logs", h.logger)
		return
	}

	h.logger.Info("Cleared old chat logs",
		zap.Int("days", days),
		zap.Int64("deleted", deleted))

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"deleted_count": deleted,
	})
}

func chatLogJSON(rec database.ChatLogRecord) gin.H {
	return gin.H{
		"id":               rec.ID,
		"session_id":       rec.SessionID,
		"user_message":     rec.UserMessage,
		"bot_reply":        rec.BotReply,
		"matched_question": rec.MatchedQuestion,
		"confidence":       rec.Confidence,
		"answer_source":    rec.AnswerSource,
		"created_at":       rec.CreatedAt.In(kualaLumpur).Format(logTimeFormat),
	}
}
