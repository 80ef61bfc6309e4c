package app

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/guttosm/tickerboard/config"
	"github.com/guttosm/tickerboard/internal/marketdata"
)

// marketData bundles the upstream client with what the app needs from it.
type marketData struct {
	fetcher marketdata.Fetcher
	ping    func(ctx context.Context) error
	close   func()
}

// NewMarketData builds the Yahoo chart client from cfg.MarketData.
//
// Behavior:
//   - Validates the base URL (absolute http/https).
//   - Creates a dedicated http.Client whose Timeout is the only bound on a fetch.
//
// Returns an error when the base URL is unusable.
func NewMarketData(cfg config.Config) (*marketdata.YahooClient, *http.Client, error) {
	u, err := url.Parse(cfg.MarketData.BaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid market data base url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, nil, fmt.Errorf("invalid market data base url %q: want absolute http(s) url", cfg.MarketData.BaseURL)
	}

	httpClient := &http.Client{
		Timeout:   cfg.MarketData.HTTPTimeout,
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
	return marketdata.NewYahooClient(cfg.MarketData.BaseURL, cfg.MarketData.UserAgent, httpClient), httpClient, nil
}

func openMarketData(cfg config.Config) (*marketData, error) {
	client, httpClient, err := NewMarketData(cfg)
	if err != nil {
		return nil, err
	}
	return &marketData{
		fetcher: client,
		ping:    client.Ping,
		close:   httpClient.CloseIdleConnections,
	}, nil
}

// marketDataOpener is an indirection used by InitializeApp; overridden in tests to avoid real connections.
var marketDataOpener = openMarketData
