package app

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerboard/config"
	"github.com/guttosm/tickerboard/internal/api"
	"github.com/guttosm/tickerboard/internal/marketdata"
	"github.com/guttosm/tickerboard/internal/service"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the market data client using newMarketData().
//   - Wraps it so concurrent fetches of one ticker share a single upstream call.
//   - Creates the dashboard service with the fixed fetch window.
//   - Configures the Gin router with the page and API routes.
//   - Registers health and readiness probes.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// indirection for unit testing
	md, err := marketDataOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize market data client: %w", err)
	}

	fetcher := marketdata.NewDedupFetcher(md.fetcher)
	window := marketdata.Window{Range: config.FetchRange, Interval: config.FetchInterval}
	svc := service.NewDashboardService(fetcher, window)

	handler := api.NewHandler(svc, config.Tickers, config.RefreshInterval)
	router := api.NewRouter(handler)

	api.NewHealthHandler(md.ping).Register(router)

	return router, md.close, nil
}
