package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zakat-chatbot/database"
	apperrors "zakat-chatbot/errors"
	"zakat-chatbot/web/services"
	"zakat-chatbot/web/types"
)

// FAQHandler manages the knowledge base entries the matcher answers from.
type FAQHandler struct {
	store  *database.PostgresStore
	chat   *services.ChatService
	logger *zap.Logger
}

func NewFAQHandler(store *database.PostgresStore, chat *services.ChatService, logger *zap.Logger) *FAQHandler {
	return &FAQHandler{
		store:  store,
		chat:   chat,
		logger: logger,
	}
}

// HandleList is the public listing used by the chat widget.
func (h *FAQHandler) HandleList(c *gin.Context) {
	faqs, err := h.store.ListFAQs(c.Request.Context())
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Failed to load FAQs", h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(faqs),
		"faqs":    faqs,
	})
}

// HandleAdminList returns the raw entries for the admin panel.
func (h *FAQHandler) HandleAdminList(c *gin.Context) {
	faqs, err := h.store.ListFAQs(c.Request.Context())
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Failed to load FAQs", h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"faqs": faqs})
}

func (h *FAQHandler) HandleGet(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid FAQ id")
		return
	}

	faq, err := h.store.GetFAQ(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithClientError(c, http.StatusNotFound, "Not found")
			return
		}
		respondWithError(c, http.StatusInternalServerError, err, "Failed to load FAQ", h.logger)
		return
	}

	c.JSON(http.StatusOK, gin.H{"faq": faq})
}

func (h *FAQHandler) HandleCreate(c *gin.Context) {
	var req types.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" || answer == "" {
		respondWithClientError(c, http.StatusBadRequest, "'question' and 'answer' are required")
		return
	}

	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = "general"
	}

	faq, err := h.store.CreateFAQ(c.Request.Context(), question, answer, category)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Failed to create FAQ", h.logger)
		return
	}

	h.chat.InvalidateCorpus()
	h.logger.Info("FAQ created", zap.Int64("id", faq.ID), zap.String("category", faq.Category))

	c.JSON(http.StatusCreated, gin.H{"faq": faq})
}

// HandleUpdate serves both PUT and PATCH. Fields left empty keep their
// stored value.
func (h *FAQHandler) HandleUpdate(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid FAQ id")
		return
	}

	var req types.FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	existing, err := h.store.GetFAQ(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithClientError(c, http.StatusNotFound, "Not found")
			return
		}
		respondWithError(c, http.StatusInternalServerError, err, "Failed to load FAQ", h.logger)
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		question = existing.Question
	}
	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		answer = existing.Answer
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = existing.Category
	}

	faq, err := h.store.UpdateFAQ(c.Request.Context(), id, question, answer, category)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithClientError(c, http.StatusNotFound, "Not found")
			return
		}
		respondWithError(c, http.StatusInternalServerError, err, "Failed to update FAQ", h.logger)
		return
	}

	h.chat.InvalidateCorpus()

	c.JSON(http.StatusOK, gin.H{"faq": faq})
}

func (h *FAQHandler) HandleDelete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid FAQ id")
		return
	}

	if err := h.store.DeleteFAQ(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			respondWithClientError(c, http.StatusNotFound, "Not found")
			return
		}
		respondWithError(c, http.StatusInternalServerError, err, "Failed to delete FAQ", h.logger)
		return
	}

	h.chat.InvalidateCorpus()
	h.logger.Info("FAQ deleted", zap.Int64("id", id))

	c.JSON(http.StatusOK, gin.H{"deleted": true, "id": id})
}

// HandleRetrain refreshes the matcher corpus after bulk edits.
func (h *FAQHandler) HandleRetrain(c *gin.Context) {
	count, err := h.store.CountFAQs(c.Request.Context())
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Failed to count FAQs", h.logger)
		return
	}
	if count == 0 {
		respondWithClientError(c, http.StatusBadRequest, "No FAQ data available")
		return
	}

	h.chat.InvalidateCorpus()
	h.logger.Info("FAQ corpus reloaded", zap.Int64("faqs_count", count))

	c.JSON(http.StatusOK, gin.H{
		"message":    "Model retrained successfully",
		"faqs_count": count,
	})
}

func parseIDParam(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
