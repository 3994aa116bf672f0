package calculator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"zakat-chatbot/config"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *NisabClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		NisabAPIURL:         srv.URL,
		NisabRequestTimeout: 2 * time.Second,
	}
	return NewNisabClient(cfg, zap.NewNop())
}

func serveBody(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func TestFetchNisab(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		body           string
		wantPendapatan float64
		wantSimpanan   float64
		wantKadar      float64
		wantFallback   bool
	}{
		{
			name:           "object_with_mixed_types",
			status:         http.StatusOK,
			body:           `{"nisab_pendapatan": "25000", "nisab_simpanan": 24000, "kadar_zakat": "2.5"}`,
			wantPendapatan: 25000,
			wantSimpanan:   24000,
			wantKadar:      2.5,
		},
		{
			name:           "array_wrapped_object",
			status:         http.StatusOK,
			body:           `[{"nisab_pendapatan": 21000, "nisab_simpanan": 21000, "kadar_zakat": 2.5}]`,
			wantPendapatan: 21000,
			wantSimpanan:   21000,
			wantKadar:      2.5,
		},
		{
			name:           "json_embedded_in_html",
			status:         http.StatusOK,
			body:           `<p>ok</p>{"nisab_pendapatan": 23000, "kadar_zakat": "2.57"}`,
			wantPendapatan: 23000,
			wantSimpanan:   23000,
			wantKadar:      2.57,
		},
		{
			name:           "server_error_falls_back",
			status:         http.StatusInternalServerError,
			body:           "boom",
			wantPendapatan: defaultNisab,
			wantSimpanan:   defaultNisab,
			wantKadar:      defaultKadar,
			wantFallback:   true,
		},
		{
			name:           "garbage_body_falls_back",
			status:         http.StatusOK,
			body:           "not json at all",
			wantPendapatan: defaultNisab,
			wantSimpanan:   defaultNisab,
			wantKadar:      defaultKadar,
			wantFallback:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, serveBody(tt.status, tt.body))

			got := c.FetchNisab(context.Background(), "1447", "H")
			if got.NisabPendapatan != tt.wantPendapatan {
				t.Errorf("FetchNisab().NisabPendapatan = %v, want %v", got.NisabPendapatan, tt.wantPendapatan)
			}
			if got.NisabSimpanan != tt.wantSimpanan {
				t.Errorf("FetchNisab().NisabSimpanan = %v, want %v", got.NisabSimpanan, tt.wantSimpanan)
			}
			if got.KadarZakat != tt.wantKadar {
				t.Errorf("FetchNisab().KadarZakat = %v, want %v", got.KadarZakat, tt.wantKadar)
			}
			if got.Fallback != tt.wantFallback {
				t.Errorf("FetchNisab().Fallback = %v, want %v", got.Fallback, tt.wantFallback)
			}
		})
	}
}

func TestAvailableYears(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    []string
		wantErr bool
	}{
		{"json_array", `["1447","1446"]`, []string{"1447", "1446"}, false},
		{"numeric_array", `[1447, 1446]`, []string{"1447", "1446"}, false},
		{"plain_text", "Tahun: 1447 dan 1446", []string{"1447", "1446"}, false},
		{"no_years", "tiada data", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, serveBody(http.StatusOK, tt.body))

			got, err := c.AvailableYears(context.Background(), "H")
			if (err != nil) != tt.wantErr {
				t.Fatalf("AvailableYears() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("AvailableYears() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("AvailableYears()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func newTestCalculator(t *testing.T) *Calculator {
	t.Helper()
	body := `{"nisab_pendapatan": 22000, "nisab_simpanan": 22000, "kadar_zakat": 2.5}`
	return NewCalculator(newTestClient(t, serveBody(http.StatusOK, body)))
}

func TestCalculateIncome(t *testing.T) {
	c := newTestCalculator(t)
	ctx := context.Background()

	t.Run("expenses_exceed_income", func(t *testing.T) {
		got := c.CalculateIncome(ctx, 10000, 15000, "1447", "H")
		if got.ZakatAmount != 0 || got.ReachesNisab {
			t.Errorf("CalculateIncome() = %+v, want zero zakat below zero net", got)
		}
		if !strings.Contains(got.Message, "melebihi pendapatan") {
			t.Errorf("CalculateIncome().Message = %q, want over-expenses notice", got.Message)
		}
	})

	t.Run("reaches_nisab", func(t *testing.T) {
		got := c.CalculateIncome(ctx, 60000, 12000, "1447", "H")
		if !got.ReachesNisab {
			t.Fatalf("CalculateIncome().ReachesNisab = false, want true")
		}
		if got.ZakatAmount != 1200 {
			t.Errorf("CalculateIncome().ZakatAmount = %v, want 1200", got.ZakatAmount)
		}
		if got.ZakatableAmount != 48000 {
			t.Errorf("CalculateIncome().ZakatableAmount = %v, want 48000", got.ZakatableAmount)
		}
		if !strings.Contains(got.Message, "RM1,200.00") {
			t.Errorf("CalculateIncome().Message = %q, want formatted zakat amount", got.Message)
		}
	})

	t.Run("below_nisab", func(t *testing.T) {
		got := c.CalculateIncome(ctx, 30000, 20000, "1447", "H")
		if got.ReachesNisab || got.ZakatAmount != 0 {
			t.Errorf("CalculateIncome() = %+v, want no zakat below nisab", got)
		}
		if got.Shortfall != 12000 {
			t.Errorf("CalculateIncome().Shortfall = %v, want 12000", got.Shortfall)
		}
		if !strings.Contains(got.Message, "belum mencapai nisab") {
			t.Errorf("CalculateIncome().Message = %q, want below-nisab notice", got.Message)
		}
	})
}

func TestCalculateSavings(t *testing.T) {
	c := newTestCalculator(t)
	ctx := context.Background()

	t.Run("non_positive_amount", func(t *testing.T) {
		got := c.CalculateSavings(ctx, 0, "1447", "H")
		if got.ZakatAmount != 0 || got.ReachesNisab {
			t.Errorf("CalculateSavings() = %+v, want rejected amount", got)
		}
		if !strings.Contains(got.Message, "tidak sah") {
			t.Errorf("CalculateSavings().Message = %q, want invalid-amount notice", got.Message)
		}
	})

	t.Run("reaches_nisab", func(t *testing.T) {
		got := c.CalculateSavings(ctx, 50000, "1447", "H")
		if !got.ReachesNisab {
			t.Fatalf("CalculateSavings().ReachesNisab = false, want true")
		}
		if got.ZakatAmount != 1250 {
			t.Errorf("CalculateSavings().ZakatAmount = %v, want 1250", got.ZakatAmount)
		}
		if !strings.Contains(got.Message, "RM1,250.00") {
			t.Errorf("CalculateSavings().Message = %q, want formatted zakat amount", got.Message)
		}
	})

	t.Run("below_nisab", func(t *testing.T) {
		got := c.CalculateSavings(ctx, 10000, "1447", "H")
		if got.ReachesNisab || got.ZakatAmount != 0 {
			t.Errorf("CalculateSavings() = %+v, want no zakat below nisab", got)
		}
		if got.Shortfall != 12000 {
			t.Errorf("CalculateSavings().Shortfall = %v, want 12000", got.Shortfall)
		}
	})
}

func TestNisabOverview(t *testing.T) {
	c := newTestCalculator(t)

	info, msg := c.NisabOverview(context.Background(), "1447", "H")
	if info.NisabPendapatan != 22000 {
		t.Errorf("NisabOverview() info.NisabPendapatan = %v, want 22000", info.NisabPendapatan)
	}
	for _, want := range []string{"RM22,000.00", "2.5%", "Hijrah", "1447"} {
		if !strings.Contains(msg, want) {
			t.Errorf("NisabOverview() message = %q, want it to contain %q", msg, want)
		}
	}
}

func TestDefaultYears(t *testing.T) {
	h := DefaultYears("H")
	if len(h) != 5 || h[0] != "1447" {
		t.Errorf("DefaultYears(H) = %v, want 5 years from 1447", h)
	}
	m := DefaultYears("M")
	if len(m) != 5 || m[0] != "2024" {
		t.Errorf("DefaultYears(M) = %v, want 5 years from 2024", m)
	}
}
