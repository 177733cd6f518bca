package tui

import (
	"strings"
	"testing"

	"spendglobe/internal/chart"
	"spendglobe/internal/config"
	"spendglobe/internal/data"
)

func testModel() Model {
	cfg := config.Default()
	cfg.Watch = false
	m := New(cfg)
	m.width = 120
	m.height = 40
	return m
}

func franceLayout() chart.Layout {
	return chart.Stack([]data.Entry{{
		Name: "France",
		Values: map[string]float64{
			"Health": 5, "Military": 2, "Education": 3,
		},
	}}, data.CategoryLabels())
}

func TestSegmentAtStacksBottomToTop(t *testing.T) {
	l := franceLayout()
	cm := newChartMetrics(l, 40, 23) // plotH = 20

	// bottom rows belong to the first category, top rows to the last
	if seg, ok := cm.segmentAt(l, 0, cm.plotH); !ok || seg.Category != "Health" {
		t.Errorf("bottom row: %+v ok=%v, want Health", seg, ok)
	}
	if seg, ok := cm.segmentAt(l, 0, 1); !ok || seg.Category != "Education" {
		t.Errorf("top row: %+v ok=%v, want Education", seg, ok)
	}
	// title row and gap columns miss
	if _, ok := cm.segmentAt(l, 0, 0); ok {
		t.Error("title row should not hit a segment")
	}
	if _, ok := cm.segmentAt(l, cm.barW, cm.plotH); ok {
		t.Error("gap between bars should not hit a segment")
	}
}

func TestSegmentAtEmptyLayout(t *testing.T) {
	cm := newChartMetrics(chart.Layout{}, 40, 20)
	if _, ok := cm.segmentAt(chart.Layout{}, 5, 5); ok {
		t.Error("empty layout has no segments")
	}
}

func TestRenderChartEmptyClearsAxes(t *testing.T) {
	m := testModel()
	out := m.renderChart(40, 20)
	if !strings.Contains(out, "click a country") {
		t.Error("empty chart should show the hint")
	}
	if strings.Contains(out, "France") {
		t.Error("no axis labels expected on an empty chart")
	}
	if lines := strings.Split(out, "\n"); len(lines) != 20 {
		t.Errorf("chart height = %d lines, want 20", len(lines))
	}
}

func TestRenderChartDrawsSelection(t *testing.T) {
	m := testModel()
	m.layout = franceLayout()
	out := m.renderChart(40, 20)
	if !strings.Contains(out, "France") {
		t.Error("x axis should label the selected country")
	}
	if !strings.Contains(out, "10.0") {
		t.Error("y domain max should read 10.0")
	}
	if !strings.Contains(out, "█") {
		t.Error("bars should be drawn")
	}
}

func TestRegionsTile(t *testing.T) {
	m := testModel()
	mapR, chartR, legendR := m.regions()
	if mapR.w+1+chartR.w != m.width {
		t.Errorf("map %d + gap + panel %d != width %d", mapR.w, chartR.w, m.width)
	}
	if chartR.x != legendR.x || chartR.w != legendR.w {
		t.Error("chart and legend share the right column")
	}
	if legendR.y != chartR.y+chartR.h {
		t.Error("legend sits directly under the chart")
	}
}
