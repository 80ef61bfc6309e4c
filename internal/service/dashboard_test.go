package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/guttosm/tickerboard/internal/domain/models"
	"github.com/guttosm/tickerboard/internal/logger"
	"github.com/guttosm/tickerboard/internal/marketdata"
)

type fakeFetcher struct {
	series models.PriceSeries
	err    error
	calls  []string
	window marketdata.Window
}

func (f *fakeFetcher) Fetch(_ context.Context, ticker string, w marketdata.Window) (models.PriceSeries, error) {
	f.calls = append(f.calls, ticker)
	f.window = w
	return f.series, f.err
}

var _ marketdata.Fetcher = (*fakeFetcher)(nil)

var testWindow = marketdata.Window{Range: "5d", Interval: "1h"}

func TestOnTrigger_Success(t *testing.T) {
	f := &fakeFetcher{series: seriesOf("", [2]float64{100, 1000}, [2]float64{110, 2000})}
	svc := NewDashboardService(f, testWindow)

	m, c := svc.OnTrigger(context.Background(), models.DashboardState{Ticker: "AAPL", Tick: 3})

	if len(f.calls) != 1 || f.calls[0] != "AAPL" || f.window != testWindow {
		t.Fatalf("unexpected fetch calls %v window %+v", f.calls, f.window)
	}
	if m.Error || m.Heading != "Ticker: AAPL" || m.Price != "Latest Price: $110.00" || m.ChangeStyle != models.StylePositive {
		t.Fatalf("unexpected metrics %+v", m)
	}
	if c.Empty() || c.Layout.Title != "AAPL Price History" {
		t.Fatalf("unexpected chart %+v", c.Layout)
	}
}

func TestOnTrigger_Failures(t *testing.T) {
	cases := []struct {
		name    string
		fetcher *fakeFetcher
		logHint string
	}{
		{
			name:    "empty series without error",
			fetcher: &fakeFetcher{series: models.PriceSeries{}},
			logHint: "unable to derive metrics",
		},
		{
			name:    "single observation",
			fetcher: &fakeFetcher{series: seriesOf("", [2]float64{100, 1})},
			logHint: "unable to derive metrics",
		},
		{
			name:    "empty result",
			fetcher: &fakeFetcher{err: &marketdata.FetchError{Ticker: "XXXX", Kind: marketdata.EmptyResult, Err: marketdata.ErrNoObservations}},
			logHint: "empty_result",
		},
		{
			name:    "fetch fault",
			fetcher: &fakeFetcher{err: &marketdata.FetchError{Ticker: "XXXX", Kind: marketdata.FetchFault, Err: errors.New("dial tcp: refused")}},
			logHint: "dial tcp: refused",
		},
		{
			name:    "untyped error",
			fetcher: &fakeFetcher{err: errors.New("boom")},
			logHint: "fetch_fault",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWithWriter(&buf)
			t.Cleanup(logger.Init)

			svc := NewDashboardService(tc.fetcher, testWindow)
			m, c := svc.OnTrigger(context.Background(), models.NewDashboardState("XXXX"))

			wantM, wantC := RenderError("XXXX")
			if m != wantM {
				t.Fatalf("metrics = %+v, want %+v", m, wantM)
			}
			if !c.Empty() || len(wantC.Data) != 0 {
				t.Fatalf("expected empty chart, got %+v", c)
			}
			if !strings.Contains(m.Message, "Unable to fetch data for XXXX") {
				t.Fatalf("unexpected message %q", m.Message)
			}

			logs := buf.String()
			if !strings.Contains(logs, `"ticker":"XXXX"`) || !strings.Contains(logs, tc.logHint) {
				t.Fatalf("expected log line naming ticker and %q, got %s", tc.logHint, logs)
			}
		})
	}
}

func TestOnTrigger_Idempotent(t *testing.T) {
	f := &fakeFetcher{series: seriesOf("", [2]float64{100, 500}, [2]float64{90, 800})}
	svc := NewDashboardService(f, testWindow)
	st := models.NewDashboardState("TSLA")

	render := func() []byte {
		m, c := svc.OnTrigger(context.Background(), st)
		b, err := json.Marshal([]any{m, c})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return b
	}

	first := render()
	st.Advance()
	second := render()
	if !bytes.Equal(first, second) {
		t.Fatalf("outputs differ:\n%s\n%s", first, second)
	}
}
