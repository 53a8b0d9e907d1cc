package export

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// barColor matches the report's accent color.
var barColor = color.RGBA{R: 75, G: 192, B: 192, A: 255}

// renderChart draws per-category totals as a bar chart and returns the
// encoded PNG. Rendering is synchronous: when this returns, the image
// is complete and safe to embed.
func renderChart(totals map[string]float64) ([]byte, error) {
	categories := sortedCategories(totals)

	values := make(plotter.Values, len(categories))
	for i, c := range categories {
		values[i] = totals[c]
	}

	p := plot.New()
	p.Title.Text = "Spending by Category"
	p.Y.Label.Text = "Total ($)"
	p.Y.Min = 0

	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = barColor
	bars.LineStyle.Width = 0
	p.Add(bars)
	p.NominalX(categories...)

	w, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write chart image: %w", err)
	}
	return buf.Bytes(), nil
}
