package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zakat-chatbot/database"
	apperrors "zakat-chatbot/errors"
	"zakat-chatbot/utils"
	"zakat-chatbot/web/types"
)

// ReminderHandler stores payment reminders collected by the chat widget and
// serves them to the admin panel. Every response carries a success flag so
// the widget can render failures as bot messages.
type ReminderHandler struct {
	store  *database.PostgresStore
	logger *zap.Logger
}

func NewReminderHandler(store *database.PostgresStore, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{
		store:  store,
		logger: logger,
	}
}

func (h *ReminderHandler) HandleSave(c *gin.Context) {
	var req types.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request format"})
		return
	}

	icNumber := req.ICNumber
	if icNumber == "" {
		icNumber = req.IC
	}

	clean, err := utils.ValidateReminder(utils.ReminderInput{
		Name:      req.Name,
		ICNumber:  icNumber,
		Phone:     req.Phone,
		ZakatType: req.ZakatType,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	rec, err := h.store.CreateReminder(c.Request.Context(), database.ReminderRecord{
		Name:        clean.Name,
		ICNumber:    clean.ICNumber,
		Phone:       clean.Phone,
		ZakatType:   clean.ZakatType,
		ZakatAmount: req.ZakatAmount,
		Year:        strings.TrimSpace(req.Year),
	})
	if err != nil {
		h.logger.Error("Failed to save reminder", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Gagal menyimpan maklumat. Sila cuba lagi.",
		})
		return
	}

	h.logger.Info("Reminder saved",
		zap.Int64("id", rec.ID),
		zap.String("zakat_type", rec.ZakatType))

	firstName := strings.Fields(clean.Name)[0]
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reply":   fmt.Sprintf("✅ Terima kasih %s. Maklumat peringatan telah disimpan.", firstName),
		"id":      rec.ID,
	})
}

// HandleRecent is the public listing the widget shows after saving.
func (h *ReminderHandler) HandleRecent(c *gin.Context) {
	reminders, _, err := h.store.ListReminders(c.Request.Context(), database.ReminderListOptions{Limit: 10})
	if err != nil {
		h.logger.Error("Failed to list reminders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"reminders": []gin.H{},
			"error":     "Failed to load reminders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"reminders": reminderListJSON(reminders),
		"count":     len(reminders),
	})
}

func (h *ReminderHandler) HandleAdminList(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if err != nil || limit < 1 {
		limit = 100
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	opts := database.ReminderListOptions{
		Limit:     limit,
		Offset:    offset,
		Search:    strings.TrimSpace(c.Query("search")),
		ZakatType: strings.TrimSpace(c.Query("zakat_type")),
	}

	reminders, _, err := h.store.ListReminders(c.Request.Context(), opts)
	if err != nil {
		h.logger.Error("Failed to list reminders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":   false,
			"reminders": []gin.H{},
			"error":     "Failed to load reminders",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"reminders": reminderListJSON(reminders),
		"count":     len(reminders),
	})
}

func (h *ReminderHandler) HandleStats(c *gin.Context) {
	stats, err := h.store.ReminderStats(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to load reminder stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to load reminder stats",
		})
		return
	}

	byType := make([]gin.H, 0, len(stats.ByType))
	for _, ts := range stats.ByType {
		byType = append(byType, gin.H{
			"zakat_type": ts.ZakatType,
			"count":      ts.Count,
			"amount":     ts.Amount,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"total":        stats.Total,
			"total_amount": stats.TotalAmount,
			"by_type":      byType,
		},
	})
}

func (h *ReminderHandler) HandleGet(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid reminder id"})
		return
	}

	rec, err := h.store.GetReminder(c.Request.Context(), id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Reminder not found"})
			return
		}
		h.logger.Error("Failed to load reminder", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"reminder": reminderJSON(rec),
	})
}

func (h *ReminderHandler) HandleDelete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid reminder id"})
		return
	}

	if err := h.store.DeleteReminder(c.Request.Context(), id); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Failed to delete reminder or reminder not found",
			})
			return
		}
		h.logger.Error("Failed to delete reminder", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete reminder"})
		return
	}

	h.logger.Info("Reminder deleted", zap.Int64("id", id))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"deleted": true,
		"id":      id,
	})
}

func reminderListJSON(records []database.ReminderRecord) []gin.H {
	items := make([]gin.H, 0, len(records))
	for _, rec := range records {
		items = append(items, reminderJSON(rec))
	}
	return items
}

func reminderJSON(rec database.ReminderRecord) gin.H {
	return gin.H{
		"id":           rec.ID,
		"name":         rec.Name,
		"ic_number":    rec.ICNumber,
		"phone":        rec.Phone,
		"zakat_type":   rec.ZakatType,
		"zakat_amount": rec.ZakatAmount,
		"year":         rec.Year,
		"created_at":   rec.CreatedAt.In(kualaLumpur).Format(logTimeFormat),
		"updated_at":   rec.UpdatedAt.In(kualaLumpur).Format(logTimeFormat),
	}
}
