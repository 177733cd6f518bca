package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"

	"spendglobe/internal/data"
)

// refreshInspector rebuilds the dataset table: one row per entity known
// to any loaded dataset, one column per category. Values default to 0
// for entities a dataset does not cover, matching what selection would
// capture.
func (m *Model) refreshInspector() {
	entities := m.reg.Entities()
	if len(entities) == 0 {
		m.showInspect = false
		m.status = "no datasets loaded yet"
		return
	}

	tcols := make([]table.Column, 0, len(data.Categories)+1)
	tcols = append(tcols, table.Column{Title: "Entity", Width: 24})
	for _, c := range data.Categories {
		w := len(c.Label) + 2
		if w < 10 {
			w = 10
		}
		tcols = append(tcols, table.Column{Title: c.Label, Width: w})
	}

	trows := make([]table.Row, 0, len(entities))
	for _, e := range entities {
		row := make([]string, 0, len(tcols))
		row = append(row, e)
		for _, c := range data.Categories {
			row = append(row, fmt.Sprintf("%.2f", m.reg.Value(c.Label, e)))
		}
		trows = append(trows, table.Row(row))
	}
	// clear rows before swapping columns to avoid transient mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns(tcols)
	m.tbl.SetRows(trows)
}
