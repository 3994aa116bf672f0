package calculator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"zakat-chatbot/config"

	"go.uber.org/zap"
)

const (
	defaultNisab = 22000
	defaultKadar = 2.5
)

// NisabInfo carries the LZNK figures for one assessment year. KadarZakat is
// a percentage (2.5 means 2.5%).
type NisabInfo struct {
	NisabPendapatan float64 `json:"nisab_pendapatan"`
	NisabSimpanan   float64 `json:"nisab_simpanan"`
	KadarZakat      float64 `json:"kadar_zakat"`
	Year            string  `json:"year"`
	YearType        string  `json:"year_type"`
	Fallback        bool    `json:"fallback,omitempty"`
}

var (
	yearPattern      = regexp.MustCompile(`\d{3,4}`)
	jsonBlockPattern = regexp.MustCompile(`(?s)\{.*\}|\[.*\]`)
)

// NisabClient fetches nisab figures and assessment years from the LZNK
// calculator API.
type NisabClient struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger
}

func NewNisabClient(cfg *config.Config, logger *zap.Logger) *NisabClient {
	return &NisabClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.NisabRequestTimeout},
		logger:     logger,
	}
}

// AvailableYears lists the assessment years the API offers for yearType
// ("H" for Hijrah, "M" for Masihi).
func (c *NisabClient) AvailableYears(ctx context.Context, yearType string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/kirazakat/listjenistahun.php", strings.TrimRight(c.cfg.NisabAPIURL, "/"))
	params := url.Values{}
	params.Set("jenistahun", yearType)
	params.Set("options", "listjenistahun")

	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}

	var years []string
	if err := json.Unmarshal(body, &years); err == nil && len(years) > 0 {
		return years, nil
	}

	// The endpoint sometimes answers with bare numbers or HTML-wrapped
	// text; pull out anything year-shaped.
	years = yearPattern.FindAllString(string(body), -1)
	if len(years) == 0 {
		return nil, fmt.Errorf("no years in response")
	}
	return years, nil
}

// FetchNisab returns the nisab values for one year. The API is best-effort:
// on any failure the stock values come back with Fallback set so replies can
// say so.
func (c *NisabClient) FetchNisab(ctx context.Context, year, yearType string) NisabInfo {
	info := NisabInfo{
		NisabPendapatan: defaultNisab,
		NisabSimpanan:   defaultNisab,
		KadarZakat:      defaultKadar,
		Year:            year,
		YearType:        yearType,
	}

	endpoint := fmt.Sprintf("%s/koding/kalkulator.php", strings.TrimRight(c.cfg.NisabAPIURL, "/"))
	params := url.Values{}
	params.Set("mode", "semakHaul")
	params.Set("haul", year)

	body, err := c.get(ctx, endpoint, params)
	if err != nil {
		c.logger.Warn("Nisab API unreachable, using stock values", zap.String("year", year), zap.Error(err))
		info.Fallback = true
		return info
	}

	fields, err := decodeNisabPayload(body)
	if err != nil {
		c.logger.Warn("Nisab API payload unreadable, using stock values", zap.String("year", year), zap.Error(err))
		info.Fallback = true
		return info
	}

	info.NisabPendapatan = asFloat(fields["nisab_pendapatan"], defaultNisab)
	info.NisabSimpanan = asFloat(fields["nisab_simpanan"], info.NisabPendapatan)
	info.KadarZakat = asFloat(fields["kadar_zakat"], defaultKadar)
	return info
}

func (c *NisabClient) get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create nisab request: %w", err)
	}
	req.Header.Set("User-Agent", "ZAKIA-Calculator/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read nisab response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nisab API status %s", resp.Status)
	}
	return body, nil
}

// decodeNisabPayload accepts the shapes the endpoint is known to produce: a
// JSON object, a JSON array whose first element is the object, or text with
// a JSON block embedded in it.
func decodeNisabPayload(body []byte) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err == nil {
		return obj, nil
	}

	var list []map[string]any
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 {
		return list[0], nil
	}

	if m := jsonBlockPattern.Find(body); m != nil && len(m) < len(body) {
		return decodeNisabPayload(m)
	}

	return nil, fmt.Errorf("unrecognized payload")
}

// asFloat coerces the API's mixed numeric encodings (numbers and numeric
// strings), with a default for anything else.
func asFloat(v any, def float64) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return def
}
