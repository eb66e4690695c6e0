package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func writeBarChart(name, title string, labels []string, values []float64) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	items := make([]opts.BarData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.BarData{Value: v})
	}
	bar.SetXAxis(labels).AddSeries(title, items)

	return renderChart(name, bar.Render)
}

func writePieChart(name, title string, labels []string, values []float64) error {
	pie := charts.NewPie()
	pie.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: title}))

	items := make([]opts.PieData, 0, len(values))
	for i, v := range values {
		items = append(items, opts.PieData{Name: labels[i], Value: v})
	}
	pie.AddSeries(title, items)

	return renderChart(name, pie.Render)
}

func renderChart(name string, render func(w io.Writer) error) error {
	path := filepath.Join(outDir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := render(f); err != nil {
		return err
	}
	fmt.Printf("chart written to %s\n", path)
	return nil
}
