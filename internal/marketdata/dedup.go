package marketdata

import (
	"context"

	"golang.org/x/sync/singleflight"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

// DedupFetcher collapses concurrent fetches of the same ticker and window into one
// upstream call. Nothing is cached: a fetch that starts after the shared one
// finished goes upstream again.
//
// The shared call runs detached from any one caller's cancellation, so a caller
// that goes away does not fail the others; the HTTP client timeout still bounds it.
//
// Callers sharing a result share its Observations slice and must not modify it.
type DedupFetcher struct {
	next  Fetcher
	group singleflight.Group
}

// NewDedupFetcher wraps next.
func NewDedupFetcher(next Fetcher) *DedupFetcher {
	return &DedupFetcher{next: next}
}

// Fetch implements Fetcher.
func (d *DedupFetcher) Fetch(ctx context.Context, ticker string, w Window) (models.PriceSeries, error) {
	key := ticker + "|" + w.Range + "|" + w.Interval
	v, err, _ := d.group.Do(key, func() (any, error) {
		return d.next.Fetch(context.WithoutCancel(ctx), ticker, w)
	})
	series, _ := v.(models.PriceSeries)
	return series, err
}
