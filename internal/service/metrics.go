package service

import (
	"errors"
	"fmt"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

// ErrInsufficientData is returned by Derive when no percent change can be computed.
var ErrInsufficientData = errors.New("insufficient data")

// Derive computes the Summary of a series from its last two observations.
//
// Fails with ErrInsufficientData when the series has fewer than 2 observations or
// when the previous close is zero.
func Derive(series models.PriceSeries) (models.Summary, error) {
	if series.Len() < 2 {
		return models.Summary{}, fmt.Errorf("%w: %d observation(s), need at least 2", ErrInsufficientData, series.Len())
	}

	latest := series.Last(0)
	previous := series.Last(1)
	if previous.Close == 0 {
		return models.Summary{}, fmt.Errorf("%w: previous close is zero", ErrInsufficientData)
	}

	return models.Summary{
		Ticker:        series.Ticker,
		LatestPrice:   latest.Close,
		PreviousClose: previous.Close,
		PercentChange: (latest.Close - previous.Close) / previous.Close * 100,
		Volume:        latest.Volume,
	}, nil
}
