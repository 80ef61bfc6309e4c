package service

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

func TestFormatVolume(t *testing.T) {
	cases := map[int64]string{
		0:             "0",
		800:           "800",
		2000:          "2,000",
		1234567:       "1,234,567",
		9876543210123: "9,876,543,210,123",
	}
	for in, want := range cases {
		if got := FormatVolume(in); got != want {
			t.Fatalf("FormatVolume(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestRender_Scenarios(t *testing.T) {
	cases := []struct {
		name       string
		series     models.PriceSeries
		wantPrice  string
		wantChange string
		wantVolume string
		wantStyle  string
		wantColor  string
	}{
		{
			name:       "positive",
			series:     seriesOf("UP", [2]float64{100, 1000}, [2]float64{110, 2000}),
			wantPrice:  "Latest Price: $110.00",
			wantChange: "Change: 10.00%",
			wantVolume: "Volume: 2,000",
			wantStyle:  models.StylePositive,
			wantColor:  "green",
		},
		{
			name:       "negative",
			series:     seriesOf("DOWN", [2]float64{100, 500}, [2]float64{90, 800}),
			wantPrice:  "Latest Price: $90.00",
			wantChange: "Change: -10.00%",
			wantVolume: "Volume: 800",
			wantStyle:  models.StyleNegative,
			wantColor:  "red",
		},
		{
			name:       "zero change is styled negative",
			series:     seriesOf("FLAT", [2]float64{42.5, 10}, [2]float64{42.5, 1234567}),
			wantPrice:  "Latest Price: $42.50",
			wantChange: "Change: 0.00%",
			wantVolume: "Volume: 1,234,567",
			wantStyle:  models.StyleNegative,
			wantColor:  "red",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			summary, err := Derive(tc.series)
			if err != nil {
				t.Fatalf("derive: %v", err)
			}
			m, c := Render(tc.series, summary)

			if m.Error || m.Heading != "Ticker: "+tc.series.Ticker || m.HeadingColor != accentColor {
				t.Fatalf("unexpected heading %+v", m)
			}
			if m.Price != tc.wantPrice || m.Change != tc.wantChange || m.Volume != tc.wantVolume {
				t.Fatalf("unexpected metrics %+v", m)
			}
			if m.ChangeStyle != tc.wantStyle || m.ChangeColor != tc.wantColor {
				t.Fatalf("style = %s/%s, want %s/%s", m.ChangeStyle, m.ChangeColor, tc.wantStyle, tc.wantColor)
			}

			if len(c.Data) != 1 {
				t.Fatalf("expected one trace, got %d", len(c.Data))
			}
			tr := c.Data[0]
			if tr.Mode != "lines" || tr.Line.Color != accentColor || len(tr.X) != tc.series.Len() || len(tr.Y) != tc.series.Len() {
				t.Fatalf("unexpected trace %+v", tr)
			}
			if tr.X[0] != "2025-09-01 13:30:00" || tr.Y[len(tr.Y)-1] != summary.LatestPrice {
				t.Fatalf("unexpected trace points x=%v y=%v", tr.X, tr.Y)
			}
			if c.Layout.Title != tc.series.Ticker+" Price History" || c.Layout.Template != "plotly_dark" ||
				c.Layout.XAxis.Title != "Time" || c.Layout.YAxis.Title != "Price" {
				t.Fatalf("unexpected layout %+v", c.Layout)
			}
		})
	}
}

func TestRender_Idempotent(t *testing.T) {
	s := seriesOf("AAPL", [2]float64{100, 1000}, [2]float64{101.5, 2500}, [2]float64{99.75, 3000})
	encode := func() []byte {
		sum, err := Derive(s)
		if err != nil {
			t.Fatalf("derive: %v", err)
		}
		m, c := Render(s, sum)
		b, err := json.Marshal(struct {
			M models.MetricsView
			C models.ChartView
		}{m, c})
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return b
	}
	if a, b := encode(), encode(); !bytes.Equal(a, b) {
		t.Fatalf("render output differs:\n%s\n%s", a, b)
	}
}

func TestRenderError(t *testing.T) {
	m, c := RenderError("XXXX")
	if !m.Error || m.Heading != "Error" || m.HeadingColor != "red" {
		t.Fatalf("unexpected error view %+v", m)
	}
	if !strings.Contains(m.Message, "Unable to fetch data for XXXX") {
		t.Fatalf("unexpected message %q", m.Message)
	}
	if m.Price != "" || m.Change != "" || m.Volume != "" {
		t.Fatalf("error view must not carry metrics: %+v", m)
	}
	if !c.Empty() {
		t.Fatalf("expected empty chart, got %+v", c)
	}
}
