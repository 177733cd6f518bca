package tui

import (
	"strings"

	"spendglobe/internal/data"
)

// legendRows builds one swatch+label line per category. The category
// table is fixed at startup, so the legend never changes with the
// selection.
func legendRows() []string {
	rows := make([]string, 0, len(data.Categories))
	for _, c := range data.Categories {
		sw := categoryStyles[c.Label].Render("██")
		rows = append(rows, sw+" "+c.Label)
	}
	return rows
}

func renderLegend(h int) string {
	lines := []string{titleStyle.Render("Legend")}
	lines = append(lines, legendRows()...)
	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
