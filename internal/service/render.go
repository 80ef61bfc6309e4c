package service

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/guttosm/tickerboard/internal/domain/models"
)

// Palette and chart settings shared by the page and the rendered views.
const (
	accentColor   = "#00d4ff"
	positiveColor = "green"
	negativeColor = "red"
	chartTemplate = "plotly_dark"
	chartTimeFmt  = "2006-01-02 15:04:05"
)

// Render maps a series and its summary to the metrics panel and the line chart.
// Output depends only on its input.
func Render(series models.PriceSeries, summary models.Summary) (models.MetricsView, models.ChartView) {
	style, color := models.StyleNegative, negativeColor
	if summary.Positive() {
		style, color = models.StylePositive, positiveColor
	}

	metrics := models.MetricsView{
		Heading:      "Ticker: " + summary.Ticker,
		HeadingColor: accentColor,
		Price:        fmt.Sprintf("Latest Price: $%.2f", summary.LatestPrice),
		Change:       fmt.Sprintf("Change: %.2f%%", summary.PercentChange),
		ChangeStyle:  style,
		ChangeColor:  color,
		Volume:       "Volume: " + FormatVolume(summary.Volume),
	}

	x := make([]string, 0, series.Len())
	y := make([]float64, 0, series.Len())
	for _, o := range series.Observations {
		x = append(x, o.Timestamp.UTC().Format(chartTimeFmt))
		y = append(y, o.Close)
	}

	chart := models.ChartView{
		Data: []models.Trace{{
			Type: "scatter",
			Mode: "lines",
			X:    x,
			Y:    y,
			Line: models.TraceLine{Color: accentColor},
		}},
		Layout: models.ChartLayout{
			Title:    summary.Ticker + " Price History",
			XAxis:    models.AxisTitle{Title: "Time"},
			YAxis:    models.AxisTitle{Title: "Price"},
			Template: chartTemplate,
		},
	}

	return metrics, chart
}

// RenderError returns the fallback panel for ticker and an empty chart.
func RenderError(ticker string) (models.MetricsView, models.ChartView) {
	return models.MetricsView{
		Error:        true,
		Heading:      "Error",
		HeadingColor: negativeColor,
		Message:      fmt.Sprintf("Unable to fetch data for %s.", ticker),
	}, models.ChartView{}
}

// FormatVolume groups v by thousands, e.g. 1234567 -> "1,234,567".
func FormatVolume(v int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", v)
}
