package models

import "time"

// Observation is a single sample of a PriceSeries.
type Observation struct {
	Timestamp time.Time `json:"timestamp"`
	Close     float64   `json:"close"`
	Volume    int64     `json:"volume"`
}

// PriceSeries is the time-ordered (ascending) set of observations fetched for one ticker.
//
// A series is produced fresh on every fetch and discarded after the render cycle
// it belongs to; nothing holds on to it.
type PriceSeries struct {
	Ticker       string
	Observations []Observation
}

// Len returns the number of observations.
func (s PriceSeries) Len() int { return len(s.Observations) }

// Last returns the i-th observation counted from the end (0 is the latest).
// It panics when i is out of range, like indexing a slice would.
func (s PriceSeries) Last(i int) Observation {
	return s.Observations[len(s.Observations)-1-i]
}
