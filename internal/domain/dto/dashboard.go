package dto

import "github.com/guttosm/tickerboard/internal/domain/models"

// DashboardUpdateRequest is the payload of POST /api/v1/dashboard/update.
type DashboardUpdateRequest struct {
	Ticker     string `json:"ticker" example:"AAPL"`
	NIntervals int    `json:"n_intervals" example:"3"`
}

// DashboardUpdateResponse carries the two rendered outputs of one trigger.
type DashboardUpdateResponse struct {
	Metrics models.MetricsView `json:"metrics"`
	Chart   models.ChartView   `json:"chart"`
}

// TickersResponse describes the selection control of the page.
type TickersResponse struct {
	Tickers        []string `json:"tickers" example:"AAPL,TSLA"`
	Default        string   `json:"default" example:"AAPL"`
	RefreshSeconds int      `json:"refresh_seconds" example:"30"`
}

// StreamSelect is sent by a stream client to change the selected ticker.
type StreamSelect struct {
	Ticker string `json:"ticker"`
}

// StreamUpdate is pushed to a stream client after every trigger.
type StreamUpdate struct {
	Type    string             `json:"type"` // "update" or "error"
	Ticker  string             `json:"ticker,omitempty"`
	Tick    int                `json:"n_intervals"`
	Metrics models.MetricsView `json:"metrics"`
	Chart   models.ChartView   `json:"chart"`
	Message string             `json:"message,omitempty"`
}
