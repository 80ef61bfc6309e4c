package models

// DashboardState is the per-session UI state handed to the trigger handler.
//
// Only the ticker selection control (Select) and the refresh timer (Advance) mutate it.
type DashboardState struct {
	Ticker string `json:"ticker"`
	Tick   int    `json:"n_intervals"`
}

// NewDashboardState returns the initial state: the given ticker selected, tick zero.
func NewDashboardState(ticker string) DashboardState {
	return DashboardState{Ticker: ticker}
}

// Select switches the selected ticker. The tick counter is left untouched.
func (s *DashboardState) Select(ticker string) {
	s.Ticker = ticker
}

// Advance records one timer firing.
func (s *DashboardState) Advance() {
	s.Tick++
}
