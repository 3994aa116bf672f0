package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zakat-chatbot/config"
	"zakat-chatbot/database"
)

// HealthHandler reports readiness of the database, the matcher and the assistant.
type HealthHandler struct {
	cfg    *config.Config
	store  *database.PostgresStore
	logger *zap.Logger
}

func NewHealthHandler(cfg *config.Config, store *database.PostgresStore, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		cfg:    cfg,
		store:  store,
		logger: logger,
	}
}

func (h *HealthHandler) HandleHealth(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "connected"
	if err := h.store.DB.PingContext(ctx); err != nil {
		h.logger.Warn("Database ping failed", zap.Error(err))
		dbStatus = "disconnected"
	}

	faqCount, err := h.store.CountFAQs(ctx)
	if err != nil {
		h.logger.Warn("FAQ count failed", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Chatbot Zakat Kedah sedia berkhidmat! 😊",
		"components": gin.H{
			"database": gin.H{
				"status":    dbStatus,
				"faq_count": faqCount,
			},
			"engine": gin.H{
				"status":          "ready",
				"match_threshold": h.cfg.MatchThreshold,
			},
			"assistant": gin.H{
				"enabled": h.cfg.AssistantEnabled,
				"model":   h.cfg.AssistantModel,
			},
		},
	})
}
