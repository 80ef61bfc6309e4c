package models

// Change styles applied to the percent change line.
const (
	StylePositive = "positive"
	StyleNegative = "negative"
)

// MetricsView is the rendered key-metrics panel.
//
// On the error path only Heading, HeadingColor and Message are set and Error is true.
type MetricsView struct {
	Error        bool   `json:"error"`
	Heading      string `json:"heading" example:"Ticker: AAPL"`
	HeadingColor string `json:"heading_color" example:"#00d4ff"`
	Price        string `json:"price,omitempty" example:"Latest Price: $110.00"`
	Change       string `json:"change,omitempty" example:"Change: 10.00%"`
	ChangeStyle  string `json:"change_style,omitempty" example:"positive"`
	ChangeColor  string `json:"change_color,omitempty" example:"green"`
	Volume       string `json:"volume,omitempty" example:"Volume: 2,000"`
	Message      string `json:"message,omitempty" example:"Unable to fetch data for XXXX."`
}

// ChartView is a plotly figure description. The zero value is the empty chart.
type ChartView struct {
	Data   []Trace     `json:"data"`
	Layout ChartLayout `json:"layout"`
}

// Empty reports whether the chart carries no traces.
func (c ChartView) Empty() bool { return len(c.Data) == 0 }

// Trace is one plotly scatter trace.
type Trace struct {
	Type string    `json:"type"`
	Mode string    `json:"mode"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
	Line TraceLine `json:"line"`
}

// TraceLine holds line styling of a trace.
type TraceLine struct {
	Color string `json:"color"`
}

// ChartLayout mirrors the subset of plotly layout the dashboard sets.
type ChartLayout struct {
	Title    string    `json:"title,omitempty"`
	XAxis    AxisTitle `json:"xaxis,omitempty"`
	YAxis    AxisTitle `json:"yaxis,omitempty"`
	Template string    `json:"template,omitempty"`
}

// AxisTitle names an axis.
type AxisTitle struct {
	Title string `json:"title,omitempty"`
}
