package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"hiterror/analysis"
)

func printReport(w io.Writer, s *analysis.Session, source string) {
	p := s.Profile()
	sel := s.Selection()
	st := s.Statistics()

	fmt.Fprintf(w, "source: %s\n", source)
	th := p.Thresholds()
	fmt.Fprintf(w, "profile: %v level %d (windows %.0f/%.0f/%.0f/%.0f/%.0fms)\n",
		p.System, p.Level, th[0], th[1], th[2], th[3], th[4])
	fmt.Fprintf(w, "selection: %.2f-%.2f, columns %s of %dK\n\n",
		sel.Start, sel.End, activeColumns(s.Mask(), s.Keys()), s.Keys())

	for j := analysis.Exact; j <= analysis.Miss; j++ {
		fmt.Fprintf(w, "  %-6v %d\n", j, st.Counts[j])
	}
	fmt.Fprintf(w, "\naccuracy: %s\n", formatAccuracy(st.Accuracy))
	fmt.Fprintf(w, "mean: %+.1fms  stddev: %.1fms  UR: %.1f\n\n", st.Mean, st.StdDev, st.UnstableRate)

	fmt.Fprintf(w, "column  notes  accuracy      mean      UR\n")
	for _, c := range s.ColumnStatistics() {
		fmt.Fprintf(w, "%6d  %5d  %8s  %+7.1fms  %6.1f\n",
			c.Column, c.Counts.Total(), formatAccuracy(c.Accuracy), c.Mean, c.UnstableRate)
	}
}

func formatAccuracy(acc *float64) string {
	if acc == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f%%", *acc)
}

func activeColumns(mask analysis.ColumnMask, keys int) string {
	var cols []string
	for i := 0; i < keys; i++ {
		if mask.Has(i) {
			cols = append(cols, fmt.Sprint(i))
		}
	}
	if len(cols) == 0 {
		return "none"
	}
	return strings.Join(cols, " ")
}

// report is the JSON shape of one full set of session query results.
type report struct {
	Source    string                      `json:"source"`
	System    string                      `json:"system"`
	Level     int                         `json:"level"`
	Keys      int                         `json:"keys"`
	Selection analysis.Selection          `json:"selection"`
	Overall   analysis.Statistics         `json:"overall"`
	Columns   []analysis.ColumnStatistics `json:"columns"`
	Density   []analysis.DensityPoint     `json:"density"`
	Samples   []analysis.JudgedSample     `json:"samples"`
}

func writeReportJSON(path string, s *analysis.Session, source string) error {
	p := s.Profile()
	r := report{
		Source:    source,
		System:    p.System.String(),
		Level:     p.Level,
		Keys:      s.Keys(),
		Selection: s.Selection(),
		Overall:   s.Statistics(),
		Columns:   s.ColumnStatistics(),
		Density:   s.Density(),
		Samples:   s.Judgements(),
	}
	data, err := json.MarshalIndent(r, "", "\t")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
