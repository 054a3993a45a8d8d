package renderer

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/mau1878/marketcapmanual/date"
)

// CapChart builds an HTML line chart for a market-capitalization series,
// with an axis-triggered tooltip and a slider zoom over the date axis.
func CapChart(ticker string, caps date.History[float64]) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("Market Capitalization of %s", ticker),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Market Cap"}),
	)

	days := make([]string, 0, caps.Len())
	values := make([]opts.LineData, 0, caps.Len())
	for on, value := range caps.Values() {
		days = append(days, on.String())
		values = append(values, opts.LineData{Value: value})
	}
	line.SetXAxis(days).AddSeries(ticker, values)
	return line
}

// WriteChart renders the chart page to w.
func WriteChart(w io.Writer, ticker string, caps date.History[float64]) error {
	return CapChart(ticker, caps).Render(w)
}
