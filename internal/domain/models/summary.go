package models

// Summary is derived from the last two observations of a PriceSeries.
//
// Fields:
//   - Ticker: symbol the series was fetched for.
//   - LatestPrice: close of the latest observation.
//   - PreviousClose: close of the observation before it.
//   - PercentChange: (LatestPrice - PreviousClose) / PreviousClose * 100.
//   - Volume: volume of the latest observation.
type Summary struct {
	Ticker        string  `json:"ticker" example:"AAPL"`
	LatestPrice   float64 `json:"latest_price" example:"110.00"`
	PreviousClose float64 `json:"previous_close" example:"100.00"`
	PercentChange float64 `json:"percent_change" example:"10.00"`
	Volume        int64   `json:"volume" example:"2000"`
}

// Positive reports whether the change gets positive styling. Zero is not positive.
func (s Summary) Positive() bool {
	return s.PercentChange > 0
}
