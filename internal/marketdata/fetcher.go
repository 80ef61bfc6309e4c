// Package marketdata fetches recent price series from an upstream provider.
package marketdata

import (
	"context"
	"errors"
	"fmt"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

// Window selects how much history is fetched and at which sampling interval.
type Window struct {
	Range    string // e.g. "5d"
	Interval string // e.g. "1h"
}

// Fetcher returns the recent price series of a ticker.
//
// On failure the error is a *FetchError; callers match on its Kind instead of
// treating every error alike.
type Fetcher interface {
	Fetch(ctx context.Context, ticker string, w Window) (models.PriceSeries, error)
}

// FailureKind classifies why a fetch produced no usable series.
type FailureKind int

const (
	// EmptyResult means the provider answered but returned no observations.
	EmptyResult FailureKind = iota + 1
	// FetchFault means the call itself failed (transport, status, decoding, provider error).
	FetchFault
)

func (k FailureKind) String() string {
	switch k {
	case EmptyResult:
		return "empty_result"
	case FetchFault:
		return "fetch_fault"
	default:
		return "unknown"
	}
}

// ErrNoObservations is the cause carried by EmptyResult failures.
var ErrNoObservations = errors.New("no observations returned")

// FetchError is the failure variant of a fetch.
type FetchError struct {
	Ticker string
	Kind   FailureKind
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %s: %v", e.Ticker, e.Kind, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func emptyResult(ticker string) *FetchError {
	return &FetchError{Ticker: ticker, Kind: EmptyResult, Err: ErrNoObservations}
}

func fetchFault(ticker string, err error) *FetchError {
	return &FetchError{Ticker: ticker, Kind: FetchFault, Err: err}
}

// KindOf returns the FailureKind of err, or FetchFault when err is not a *FetchError.
func KindOf(err error) FailureKind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return FetchFault
}
