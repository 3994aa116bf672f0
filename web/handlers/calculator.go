package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"zakat-chatbot/calculator"
	"zakat-chatbot/web/types"
)

const defaultAssessmentYear = "1447"

const calculatorHelpText = `💡 **Panduan Kalkulator Zakat**

**Jenis Zakat yang boleh dikira:**

1️⃣ **Zakat Pendapatan**
   • Berdasarkan pendapatan tahunan
   • Tolak perbelanjaan asas
   • Pilih tahun Hijrah atau Masihi

2️⃣ **Zakat Simpanan**
   • Berdasarkan simpanan/wang tunai
   • Pilih tahun Hijrah atau Masihi

**Cara menggunakan:**
1. Taip 'kira zakat' untuk mula
2. Pilih jenis zakat
3. Pilih jenis tahun (Hijrah/Masihi)
4. Pilih tahun
5. Masukkan jumlah mengikut arahan

Untuk maklumat nisab, taip 'nisab'`

// CalculatorHandler wraps the zakat calculator behind the widget API. Errors
// are returned in the success-flag envelope so the widget shows them inline.
type CalculatorHandler struct {
	calc   *calculator.Calculator
	logger *zap.Logger
}

func NewCalculatorHandler(calc *calculator.Calculator, logger *zap.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		calc:   calc,
		logger: logger,
	}
}

func (h *CalculatorHandler) HandleCalculate(c *gin.Context) {
	var req types.CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		calcError(c, "Invalid request body")
		return
	}

	zakatType := strings.ToLower(strings.TrimSpace(req.Type))
	if zakatType == "" {
		calcError(c, "Sila nyatakan jenis zakat (income atau savings)")
		return
	}

	year := defaultAssessmentYear
	if req.Year != nil {
		year = strings.TrimSpace(*req.Year)
		if year == "" {
			calcError(c, "Sila pilih tahun untuk pengiraan")
			return
		}
	}

	yearType := strings.ToUpper(strings.TrimSpace(req.YearType))
	if yearType == "" {
		yearType = "H"
	}

	var result calculator.Result
	switch zakatType {
	case "income":
		if req.Amount == nil || req.Expenses == nil {
			calcError(c, "Sila masukkan jumlah pendapatan dan perbelanjaan")
			return
		}
		result = h.calc.CalculateIncome(c.Request.Context(), *req.Amount, *req.Expenses, year, yearType)
	case "savings":
		if req.Amount == nil {
			calcError(c, "Sila masukkan jumlah simpanan")
			return
		}
		result = h.calc.CalculateSavings(c.Request.Context(), *req.Amount, year, yearType)
	default:
		calcError(c, "Jenis zakat tidak sah. Gunakan: income atau savings")
		return
	}

	h.logger.Info("Zakat calculated",
		zap.String("type", zakatType),
		zap.String("year", year),
		zap.String("year_type", yearType))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reply":   result.Message,
		"data":    result,
	})
}

func (h *CalculatorHandler) HandleNisabInfo(c *gin.Context) {
	year := c.DefaultQuery("year", defaultAssessmentYear)
	yearType := c.DefaultQuery("type", "H")

	info, message := h.calc.NisabOverview(c.Request.Context(), year, yearType)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"reply":     message,
		"data":      info,
		"year":      year,
		"year_type": yearType,
	})
}

func (h *CalculatorHandler) HandleYears(c *gin.Context) {
	yearType := c.DefaultQuery("type", "H")

	years, err := h.calc.AvailableYears(c.Request.Context(), yearType)
	if err != nil {
		h.logger.Warn("Year list unavailable, using defaults", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"years":     calculator.DefaultYears(yearType),
			"year_type": calculator.YearTypeName(yearType),
			"fallback":  true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"years":     years,
		"year_type": calculator.YearTypeName(yearType),
	})
}

func (h *CalculatorHandler) HandleHelp(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reply":   calculatorHelpText,
	})
}

func calcError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}
