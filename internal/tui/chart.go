package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spendglobe/internal/chart"
	"spendglobe/internal/data"
)

// chartMetrics maps the chart panel's cell grid onto the layout's data
// domain. Rendering and mouse hit tests share it.
type chartMetrics struct {
	w, h  int
	plotH int // bar rows
	slotW int // cells per country column
	barW  int // filled cells per bar
	n     int
}

func newChartMetrics(l chart.Layout, w, h int) chartMetrics {
	cm := chartMetrics{w: w, h: h, n: len(l.Countries)}
	cm.plotH = h - 3
	if cm.plotH < 1 {
		cm.plotH = 1
	}
	if cm.n == 0 {
		return cm
	}
	cm.slotW = w / cm.n
	if cm.slotW < 2 {
		cm.slotW = 2
	}
	cm.barW = cm.slotW - 1
	if cm.barW > 8 {
		cm.barW = 8
	}
	return cm
}

// segmentAt resolves the stacked segment under a panel-local cell.
func (cm chartMetrics) segmentAt(l chart.Layout, x, y int) (chart.Segment, bool) {
	if l.Empty() || l.Max <= 0 {
		return chart.Segment{}, false
	}
	row := y - 1 // below the title row
	if row < 0 || row >= cm.plotH {
		return chart.Segment{}, false
	}
	i := x / cm.slotW
	if i < 0 || i >= cm.n {
		return chart.Segment{}, false
	}
	off := x % cm.slotW
	if off >= cm.barW {
		return chart.Segment{}, false
	}
	v := (float64(cm.plotH-1-row) + 0.5) / float64(cm.plotH) * l.Max
	for _, seg := range l.SegmentsFor(l.Countries[i]) {
		if v >= seg.Low && v < seg.High {
			return seg, true
		}
	}
	return chart.Segment{}, false
}

var categoryStyles = func() map[string]lipgloss.Style {
	m := make(map[string]lipgloss.Style, len(data.Categories))
	for _, c := range data.Categories {
		m[c.Label] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color))
	}
	return m
}()

// renderChart draws the stacked bar panel for the current layout. The
// panel is rebuilt from the layout on every call; an empty selection
// clears the bars and the axis labels.
func (m Model) renderChart(w, h int) string {
	l := m.layout
	lines := make([]string, 0, h)

	if l.Empty() {
		lines = append(lines, titleStyle.Render("Spending"))
		empty := dimStyle.Render("click a country on the globe")
		lines = append(lines, "")
		lines = append(lines, empty)
		for len(lines) < h {
			lines = append(lines, "")
		}
		return strings.Join(lines, "\n")
	}

	cm := newChartMetrics(l, w, h)
	title := titleStyle.Render("Spending") +
		dimStyle.Render(fmt.Sprintf("  0 – %.1f %%GDP", l.Max))
	lines = append(lines, title)

	maxV := l.Max
	if maxV <= 0 {
		maxV = 1 // all-zero selection still draws empty columns
	}

	// precompute pixel extents per country, bottom to top
	type px struct {
		lowPx, highPx int
		cat           string
	}
	cols := make([][]px, cm.n)
	for i, country := range l.Countries {
		for _, seg := range l.SegmentsFor(country) {
			lo := int(seg.Low/maxV*float64(cm.plotH) + 0.5)
			hi := int(seg.High/maxV*float64(cm.plotH) + 0.5)
			cols[i] = append(cols[i], px{lowPx: lo, highPx: hi, cat: seg.Category})
		}
	}

	for row := 0; row < cm.plotH; row++ {
		fromBottom := cm.plotH - 1 - row
		var sb strings.Builder
		for i := 0; i < cm.n; i++ {
			cat := ""
			for _, p := range cols[i] {
				if fromBottom >= p.lowPx && fromBottom < p.highPx {
					cat = p.cat
					break
				}
			}
			if cat == "" {
				sb.WriteString(strings.Repeat(" ", cm.slotW))
				continue
			}
			bar := strings.Repeat("█", cm.barW)
			if st, ok := categoryStyles[cat]; ok {
				bar = st.Render(bar)
			}
			sb.WriteString(bar)
			sb.WriteString(strings.Repeat(" ", cm.slotW-cm.barW))
		}
		lines = append(lines, sb.String())
	}

	lines = append(lines, dimStyle.Render(strings.Repeat("─", min(w, cm.slotW*cm.n))))

	var xs strings.Builder
	for _, country := range l.Countries {
		label := truncate(country, cm.slotW-1)
		xs.WriteString(padRight(label, cm.slotW-len([]rune(label))))
	}
	lines = append(lines, dimStyle.Render(xs.String()))

	for len(lines) < h {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
