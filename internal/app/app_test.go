package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/tickerboard/config"
	"github.com/guttosm/tickerboard/internal/domain/dto"
	"github.com/guttosm/tickerboard/internal/domain/models"
	"github.com/guttosm/tickerboard/internal/marketdata"
)

func TestNewMarketData_InvalidURL(t *testing.T) {
	cases := []string{"", "::", "ftp://example.com", "/relative"}
	for _, raw := range cases {
		cfg := config.Config{MarketData: config.MarketDataConfig{BaseURL: raw, HTTPTimeout: time.Second}}
		if _, _, err := NewMarketData(cfg); err == nil {
			t.Fatalf("expected error for base url %q", raw)
		}
	}
}

func TestNewMarketData_Timeout(t *testing.T) {
	cfg := config.Config{MarketData: config.MarketDataConfig{BaseURL: "https://example.com", HTTPTimeout: 7 * time.Second}}
	c, hc, err := NewMarketData(cfg)
	if err != nil || c == nil {
		t.Fatalf("unexpected err=%v", err)
	}
	if hc.Timeout != 7*time.Second {
		t.Fatalf("timeout = %v", hc.Timeout)
	}
}

// TestInitializeApp_BadConfig ensures InitializeApp returns error when the client cannot be built.
func TestInitializeApp_BadConfig(t *testing.T) {
	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{MarketData: config.MarketDataConfig{BaseURL: "not a url"}}

	r, cleanup, err := InitializeApp()
	if err == nil || r != nil || cleanup != nil {
		t.Fatalf("expected error from InitializeApp with invalid market data config")
	}
}

type stubFetcher struct{ series models.PriceSeries }

func (s stubFetcher) Fetch(context.Context, string, marketdata.Window) (models.PriceSeries, error) {
	return s.series, nil
}

func TestInitializeApp_HappyPath(t *testing.T) {
	t0 := time.Date(2025, 9, 1, 13, 30, 0, 0, time.UTC)
	closed := false
	old := marketDataOpener
	marketDataOpener = func(config.Config) (*marketData, error) {
		return &marketData{
			fetcher: stubFetcher{series: models.PriceSeries{Observations: []models.Observation{
				{Timestamp: t0, Close: 100, Volume: 1000},
				{Timestamp: t0.Add(time.Hour), Close: 110, Volume: 2000},
			}}},
			ping:  func(context.Context) error { return errors.New("upstream down") },
			close: func() { closed = true },
		}, nil
	}
	t.Cleanup(func() { marketDataOpener = old })

	router, cleanup, err := InitializeApp()
	if err != nil || router == nil || cleanup == nil {
		t.Fatalf("InitializeApp failed: err=%v", err)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status=%d, want 503 when upstream ping fails", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dashboard/update", strings.NewReader(`{"ticker":"AAPL","n_intervals":0}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update status=%d body=%s", w.Code, w.Body.String())
	}
	var out dto.DashboardUpdateResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if out.Metrics.Change != "Change: 10.00%" || out.Metrics.Volume != "Volume: 2,000" || out.Chart.Layout.Title != "AAPL Price History" {
		t.Fatalf("unexpected views %+v", out)
	}

	cleanup()
	if !closed {
		t.Fatalf("cleanup did not release the market data client")
	}
}
