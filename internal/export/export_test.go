package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"spendglobe/internal/chart"
	"spendglobe/internal/data"
	"spendglobe/internal/export"
)

func TestSavePNG(t *testing.T) {
	l := chart.Stack([]data.Entry{
		{Name: "France", Values: map[string]float64{"Health": 5, "Military": 2, "Education": 3}},
		{Name: "Germany", Values: map[string]float64{"Health": 4, "Military": 1.5, "Education": 0}},
	}, data.CategoryLabels())

	out := filepath.Join(t.TempDir(), "spending.png")
	if err := export.SavePNG(l, out); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(out)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("exported file is empty")
	}
}

func TestSavePNGEmptySelection(t *testing.T) {
	out := filepath.Join(t.TempDir(), "spending.png")
	if err := export.SavePNG(chart.Layout{}, out); err == nil {
		t.Error("empty selection should not export")
	}
}
