// Package export renders the stacked spending chart to an image file
// via gonum/plot.
package export

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"spendglobe/internal/chart"
	"spendglobe/internal/data"
)

// SavePNG writes the layout as a stacked bar chart. The output format
// follows the file extension (png, svg, pdf — whatever plot.Save
// supports).
func SavePNG(l chart.Layout, path string) error {
	if l.Empty() {
		return fmt.Errorf("export: nothing selected")
	}
	p := plot.New()
	p.Title.Text = "Government spending by category (% of GDP)"
	p.Y.Label.Text = "% of GDP"
	p.Y.Min = 0
	p.Y.Max = l.Max * 1.05

	byCountry := make(map[string]int, len(l.Countries))
	for i, c := range l.Countries {
		byCountry[c] = i
	}

	var prev *plotter.BarChart
	for _, cat := range data.Categories {
		values := make(plotter.Values, len(l.Countries))
		for _, seg := range l.Segments {
			if seg.Category != cat.Label {
				continue
			}
			values[byCountry[seg.Country]] = seg.Span()
		}
		bars, err := plotter.NewBarChart(values, vg.Points(28))
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		bars.Color = hexColor(cat.Color)
		bars.LineStyle.Width = vg.Length(0)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(cat.Label, bars)
		prev = bars
	}
	p.Legend.Top = true
	p.NominalX(l.Countries...)

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// hexColor parses "#RRGGBB"; bad input falls back to gray.
func hexColor(s string) color.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.Gray{Y: 128}
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
