package main

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"hiterror/analysis"
)

// judgementColors is indexed by Judgement, best to worst.
var judgementColors = [...]string{"#66ccff", "#ffd700", "#66dd66", "#4477dd", "#bb66cc", "#ee4455"}

// writeCharts renders the density curve and the per-note deviation
// scatter of the current view into a standalone HTML file.
func writeCharts(path string, s *analysis.Session, title string) error {
	page := components.NewPage()
	page.AddCharts(densityChart(s, title), deviationScatter(s))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

func densityChart(s *analysis.Session, title string) *charts.Line {
	pts := s.Density()
	x := make([]string, len(pts))
	y := make([]opts.LineData, len(pts))
	for i, pt := range pts {
		x[i] = fmt.Sprintf("%.0f", pt.X)
		y[i] = opts.LineData{Value: pt.Density}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "400px"}),
		charts.WithTitleOpts(opts.Title{Title: "Deviation density", Subtitle: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "deviation (ms)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "density"}),
	)
	line.SetXAxis(x).AddSeries("density", y,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
	)
	return line
}

func deviationScatter(s *analysis.Session) *charts.Scatter {
	data := make([][]opts.ScatterData, int(analysis.Miss)+1)
	for _, js := range s.Judgements() {
		// Never-hit notes have no deviation to plot; pin them to the
		// bottom edge so dropped notes stay visible.
		dev := js.Deviation
		if js.NeverHit {
			dev = -s.Profile().MissWindow()
		}
		data[js.Judgement] = append(data[js.Judgement],
			opts.ScatterData{Value: []interface{}{js.ExpectedTime / 1000, dev}})
	}

	w := s.Profile().MissWindow()
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Hit deviations"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: s.Duration() / 1000, Name: "time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Min: -w, Max: w, Name: "deviation (ms)"}),
	)
	for j := analysis.Exact; j <= analysis.Miss; j++ {
		scatter.AddSeries(j.String(), data[j],
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 5}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: judgementColors[j]}),
		)
	}
	return scatter
}
