package service

import (
	"context"

	"github.com/guttosm/tickerboard/internal/domain/models"
	"github.com/guttosm/tickerboard/internal/logger"
	"github.com/guttosm/tickerboard/internal/marketdata"
)

// DashboardService handles one dashboard trigger.
//
// Ticker selection and timer ticks both call OnTrigger with the current state;
// the handler never fails, failures come back as the error panel and an empty chart.
type DashboardService interface {
	OnTrigger(ctx context.Context, state models.DashboardState) (models.MetricsView, models.ChartView)
}

type dashboardService struct {
	fetcher marketdata.Fetcher
	window  marketdata.Window
}

// NewDashboardService builds the trigger handler around fetcher, fetching window w on every call.
func NewDashboardService(fetcher marketdata.Fetcher, w marketdata.Window) DashboardService {
	return &dashboardService{fetcher: fetcher, window: w}
}

func (s *dashboardService) OnTrigger(ctx context.Context, state models.DashboardState) (models.MetricsView, models.ChartView) {
	log := logger.WithTicker(state.Ticker)
	log.Info().Int("n_intervals", state.Tick).Msg("fetching data")

	series, err := s.fetcher.Fetch(ctx, state.Ticker, s.window)
	if err != nil {
		log.Warn().Err(err).Str("kind", marketdata.KindOf(err).String()).Msg("unable to fetch data")
		return RenderError(state.Ticker)
	}

	series.Ticker = state.Ticker
	summary, err := Derive(series)
	if err != nil {
		log.Warn().Err(err).Int("observations", series.Len()).Msg("unable to derive metrics")
		return RenderError(state.Ticker)
	}

	return Render(series, summary)
}
