// Package chartutil renders small self-contained HTML charts.
package chartutil

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type Bar struct {
	Label string
	Value int64
}

// RenderBars writes a horizontal bar chart as a standalone HTML page.
// Bars are drawn in the given order, top to bottom.
func RenderBars(title, axisLabel string, bars []Bar, w io.Writer) error {
	labels := make([]string, len(bars))
	data := make([]opts.BarData, len(bars))
	for i, b := range bars {
		labels[i] = b.Label
		data[i] = opts.BarData{Value: b.Value}
	}
	// echarts lays category axes bottom-up, so reverse to keep the
	// caller's order reading top to bottom
	for i, j := 0, len(bars)-1; i < j; i, j = i+1, j-1 {
		labels[i], labels[j] = labels[j], labels[i]
		data[i], data[j] = data[j], data[i]
	}

	chart := charts.NewBar()
	chart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: axisLabel}),
	)
	chart.SetXAxis(labels).AddSeries("moons", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right"}),
	)
	chart.XYReversal()

	return chart.Render(w)
}
