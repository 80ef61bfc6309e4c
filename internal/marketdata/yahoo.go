package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

// maxBodyBytes bounds how much of a chart response is read.
const maxBodyBytes = 8 << 20

// chartResponse is the subset of the v8 chart payload the dashboard needs.
// Close and volume entries are null for samples without trades.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// YahooClient reads price series from the public Yahoo Finance chart API.
// No credentials are required.
type YahooClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
}

// NewYahooClient builds a client against baseURL (scheme and host, no trailing slash).
// httpClient carries the only timeout applied to a fetch.
func NewYahooClient(baseURL, userAgent string, httpClient *http.Client) *YahooClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &YahooClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		http:      httpClient,
	}
}

// Fetch implements Fetcher.
//
// Samples whose close is null are skipped, a null volume is read as 0, and the
// result is sorted by timestamp ascending.
func (c *YahooClient) Fetch(ctx context.Context, ticker string, w Window) (models.PriceSeries, error) {
	q := url.Values{}
	q.Set("range", w.Range)
	q.Set("interval", w.Interval)
	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(ticker), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.PriceSeries{}, fetchFault(ticker, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return models.PriceSeries{}, fetchFault(ticker, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return models.PriceSeries{}, fetchFault(ticker, fmt.Errorf("read body: %w", err))
	}

	var payload chartResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		if resp.StatusCode >= 300 {
			return models.PriceSeries{}, fetchFault(ticker, fmt.Errorf("status %d", resp.StatusCode))
		}
		return models.PriceSeries{}, fetchFault(ticker, fmt.Errorf("decode body: %w", err))
	}

	// The provider reports unknown symbols as 404 with a chart.error body.
	if e := payload.Chart.Error; e != nil {
		return models.PriceSeries{}, fetchFault(ticker, fmt.Errorf("provider: %s: %s", e.Code, e.Description))
	}
	if resp.StatusCode >= 300 {
		return models.PriceSeries{}, fetchFault(ticker, fmt.Errorf("status %d", resp.StatusCode))
	}

	series := models.PriceSeries{Ticker: ticker}
	if len(payload.Chart.Result) == 0 {
		return series, emptyResult(ticker)
	}
	series.Observations = toObservations(payload.Chart.Result[0])
	if series.Len() == 0 {
		return series, emptyResult(ticker)
	}
	return series, nil
}

func toObservations(r chartResult) []models.Observation {
	if len(r.Indicators.Quote) == 0 {
		return nil
	}
	quote := r.Indicators.Quote[0]

	out := make([]models.Observation, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		var vol int64
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			vol = *quote.Volume[i]
		}
		out = append(out, models.Observation{
			Timestamp: time.Unix(ts, 0).UTC(),
			Close:     *quote.Close[i],
			Volume:    vol,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// Ping checks that the provider host answers. Any status below 500 counts as reachable.
func (c *YahooClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()
	if resp.StatusCode >= 500 {
		return fmt.Errorf("provider unavailable: status %d", resp.StatusCode)
	}
	return nil
}
