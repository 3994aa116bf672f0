package calculator

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Result is one zakat calculation outcome. Message is the formatted reply
// shown in the chat widget; the numeric fields back the structured payload.
type Result struct {
	Type            string  `json:"type"`
	ZakatAmount     float64 `json:"zakat_amount"`
	ZakatableAmount float64 `json:"zakatable_amount"`
	NisabValue      float64 `json:"nisab_value"`
	Rate            float64 `json:"rate"`
	ReachesNisab    bool    `json:"reaches_nisab"`
	Shortfall       float64 `json:"shortfall"`
	Year            string  `json:"year"`
	YearType        string  `json:"year_type"`
	YearTypeName    string  `json:"year_type_name"`
	Fallback        bool    `json:"fallback,omitempty"`
	Message         string  `json:"message"`
}

// Calculator computes income and savings zakat against the year's nisab.
type Calculator struct {
	nisab *NisabClient
}

func NewCalculator(nisab *NisabClient) *Calculator {
	return &Calculator{nisab: nisab}
}

// CalculateIncome computes zakat on net annual income (income minus
// essential expenses) for the given assessment year.
func (c *Calculator) CalculateIncome(ctx context.Context, income, expenses float64, year, yearType string) Result {
	info := c.nisab.FetchNisab(ctx, year, yearType)
	rate := info.KadarZakat / 100

	result := Result{
		Type:         "income",
		NisabValue:   info.NisabPendapatan,
		Rate:         rate,
		Year:         year,
		YearType:     yearType,
		YearTypeName: YearTypeName(yearType),
		Fallback:     info.Fallback,
	}

	zakatable := income - expenses
	if zakatable <= 0 {
		result.Message = "❌ Perbelanjaan anda melebihi pendapatan. Tiada zakat perlu dibayar."
		return result
	}

	result.ZakatableAmount = round2(zakatable)
	result.ReachesNisab = zakatable >= info.NisabPendapatan

	if result.ReachesNisab {
		result.ZakatAmount = round2(zakatable * rate)
		result.Message = fmt.Sprintf(
			"✅ **Pendapatan bersih anda mencapai nisab**\n\n"+
				"💰 **Jumlah Zakat: %s**\n\n"+
				"📊 **Butiran Pengiraan:**\n"+
				"• Pendapatan tahunan: %s\n"+
				"• Perbelanjaan asas: %s\n"+
				"• Pendapatan bersih: %s\n"+
				"• Nisab (%s %s): %s\n"+
				"• Kadar zakat: %s",
			formatRM(result.ZakatAmount),
			formatRM(income),
			formatRM(expenses),
			formatRM(result.ZakatableAmount),
			year, yearType, formatRM(info.NisabPendapatan),
			formatRate(info.KadarZakat),
		)
	} else {
		result.Shortfall = round2(info.NisabPendapatan - zakatable)
		result.Message = fmt.Sprintf(
			"ℹ️ **Pendapatan bersih anda belum mencapai nisab**\n\n"+
				"Tiada zakat perlu dibayar pada masa ini.\n\n"+
				"📊 **Butiran:**\n"+
				"• Pendapatan bersih: %s\n"+
				"• Nisab (%s %s): %s\n"+
				"• Kekurangan: %s",
			formatRM(result.ZakatableAmount),
			year, yearType, formatRM(info.NisabPendapatan),
			formatRM(result.Shortfall),
		)
	}

	return result
}

// CalculateSavings computes zakat on total savings for the given assessment
// year.
func (c *Calculator) CalculateSavings(ctx context.Context, savings float64, year, yearType string) Result {
	result := Result{
		Type:         "savings",
		Year:         year,
		YearType:     yearType,
		YearTypeName: YearTypeName(yearType),
	}

	if savings <= 0 {
		result.Message = "❌ Jumlah simpanan tidak sah. Sila masukkan nilai yang betul."
		return result
	}

	info := c.nisab.FetchNisab(ctx, year, yearType)
	rate := info.KadarZakat / 100

	result.NisabValue = info.NisabSimpanan
	result.Rate = rate
	result.Fallback = info.Fallback
	result.ZakatableAmount = round2(savings)
	result.ReachesNisab = savings >= info.NisabSimpanan

	if result.ReachesNisab {
		result.ZakatAmount = round2(savings * rate)
		result.Message = fmt.Sprintf(
			"✅ **Simpanan anda mencapai nisab**\n\n"+
				"💰 **Jumlah Zakat: %s**\n\n"+
				"📊 **Butiran Pengiraan:**\n"+
				"• Jumlah simpanan: %s\n"+
				"• Nisab (%s %s): %s\n"+
				"• Kadar zakat: %s",
			formatRM(result.ZakatAmount),
			formatRM(result.ZakatableAmount),
			year, yearType, formatRM(info.NisabSimpanan),
			formatRate(info.KadarZakat),
		)
	} else {
		result.Shortfall = round2(info.NisabSimpanan - savings)
		result.Message = fmt.Sprintf(
			"ℹ️ **Simpanan anda belum mencapai nisab**\n\n"+
				"Tiada zakat perlu dibayar pada masa ini.\n\n"+
				"📊 **Butiran:**\n"+
				"• Jumlah simpanan: %s\n"+
				"• Nisab (%s %s): %s\n"+
				"• Kekurangan: %s",
			formatRM(result.ZakatableAmount),
			year, yearType, formatRM(info.NisabSimpanan),
			formatRM(result.Shortfall),
		)
	}

	return result
}

// NisabOverview fetches one year's figures and renders the info reply.
func (c *Calculator) NisabOverview(ctx context.Context, year, yearType string) (NisabInfo, string) {
	info := c.nisab.FetchNisab(ctx, year, yearType)
	msg := fmt.Sprintf(
		"📊 **Maklumat Nisab Tahun %s (%s)**\n\n"+
			"**Nisab Pendapatan/Simpanan:**\n"+
			"• %s setahun\n\n"+
			"**Kadar Zakat:**\n"+
			"• %s\n\n"+
			"**Jenis Tahun:** %s\n"+
			"**Tahun:** %s",
		year, yearType,
		formatRM(info.NisabPendapatan),
		formatRate(info.KadarZakat),
		YearTypeName(yearType), year,
	)
	return info, msg
}

// AvailableYears proxies the year listing from the API.
func (c *Calculator) AvailableYears(ctx context.Context, yearType string) ([]string, error) {
	return c.nisab.AvailableYears(ctx, yearType)
}

// DefaultYears is the stand-in year list when the API cannot be reached.
func DefaultYears(yearType string) []string {
	if yearType == "M" {
		return []string{"2024", "2023", "2022", "2021", "2020"}
	}
	return []string{"1447", "1446", "1445", "1444", "1443"}
}

var rmPrinter = message.NewPrinter(language.English)

// formatRM renders ringgit amounts with thousand separators, e.g.
// "RM22,000.00".
func formatRM(v float64) string {
	return rmPrinter.Sprintf("RM%v", number.Decimal(v, number.Scale(2)))
}

func formatRate(percent float64) string {
	return strconv.FormatFloat(percent, 'f', -1, 64) + "%"
}

// YearTypeName expands the H/M flag to its Malay name.
func YearTypeName(yearType string) string {
	if yearType == "M" {
		return "Masihi"
	}
	return "Hijrah"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
