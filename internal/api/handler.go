package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/tickerboard/internal/domain/dto"
	"github.com/guttosm/tickerboard/internal/domain/models"
	"github.com/guttosm/tickerboard/internal/middleware"
	"github.com/guttosm/tickerboard/internal/service"
)

// Handler provides the dashboard page and its HTTP endpoints.
//
// Responsibilities:
//   - Validate the selected ticker against the configured list
//   - Build the DashboardState of a trigger and hand it to the service
//   - Return the rendered views as JSON
type Handler struct {
	svc     service.DashboardService
	tickers []string
	allowed map[string]struct{}
	refresh time.Duration
}

// NewHandler constructs a Handler.
//
// Parameters:
//   - svc: trigger handler producing the rendered views.
//   - tickers: selectable symbols, the first one is the initial selection. Must not be empty.
//   - refresh: period of the dashboard timer.
func NewHandler(svc service.DashboardService, tickers []string, refresh time.Duration) *Handler {
	allowed := make(map[string]struct{}, len(tickers))
	for _, t := range tickers {
		allowed[t] = struct{}{}
	}
	return &Handler{svc: svc, tickers: tickers, allowed: allowed, refresh: refresh}
}

// normalizeTicker upper-cases and trims sym and reports whether it is selectable.
func (h *Handler) normalizeTicker(sym string) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(sym))
	_, ok := h.allowed[s]
	return s, ok
}

func (h *Handler) defaultTicker() string {
	return h.tickers[0]
}

// Index serves the dashboard page.
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":          "Simple Financial Dashboard",
		"Tickers":        h.tickers,
		"Default":        h.defaultTicker(),
		"RefreshSeconds": int(h.refresh / time.Second),
	})
}

// GetTickers handles GET /api/v1/tickers.
//
// GetTickers godoc
// @Summary      List selectable tickers
// @Description  Returns the ticker list, the initial selection and the refresh period
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.TickersResponse
// @Router       /api/v1/tickers [get]
func (h *Handler) GetTickers(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TickersResponse{
		Tickers:        h.tickers,
		Default:        h.defaultTicker(),
		RefreshSeconds: int(h.refresh / time.Second),
	})
}

// PostUpdate handles POST /api/v1/dashboard/update, the callback fired by both the
// ticker dropdown and the refresh timer.
//
// Responses:
//   - 200 OK: rendered metrics panel and chart. Fetch failures are reported inside
//     the metrics panel, not as an HTTP error.
//   - 400 Bad Request: malformed body, missing or unsupported ticker.
//
// PostUpdate godoc
// @Summary      Render the dashboard for a ticker
// @Description  Fetches recent prices for the ticker and returns the metrics panel and chart
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        request  body      dto.DashboardUpdateRequest   true  "Selected ticker and tick counter"
// @Success      200      {object}  dto.DashboardUpdateResponse  "Success"
// @Failure      400      {object}  dto.ErrorResponse            "Bad Request"
// @Router       /api/v1/dashboard/update [post]
func (h *Handler) PostUpdate(c *gin.Context) {
	var req dto.DashboardUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if strings.TrimSpace(req.Ticker) == "" {
		middleware.AbortWithError(c, http.StatusBadRequest, "ticker is required", nil)
		return
	}
	ticker, ok := h.normalizeTicker(req.Ticker)
	if !ok {
		middleware.AbortWithError(c, http.StatusBadRequest, "unsupported ticker "+ticker, nil)
		return
	}

	state := models.DashboardState{Ticker: ticker, Tick: req.NIntervals}
	metrics, chart := h.svc.OnTrigger(c.Request.Context(), state)

	c.JSON(http.StatusOK, dto.DashboardUpdateResponse{Metrics: metrics, Chart: chart})
}
