package tui

import (
	"math"
	"sort"
	"strings"

	"spendglobe/internal/geo"
)

// rect is a cell-coordinate region of the terminal.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(cx, cy int) bool {
	return cx >= r.x && cx < r.x+r.w && cy >= r.y && cy < r.y+r.h
}

const (
	headerHeight = 1
	footerHeight = 2
	minMapWidth  = 20
)

// regions computes the screen layout. Update's mouse hit tests and
// View's rendering must agree on it, so both go through here.
func (m Model) regions() (mapR, chartR, legendR rect) {
	contentH := m.height - headerHeight - footerHeight
	if contentH < 4 {
		contentH = 4
	}
	panelW := 44
	if m.width < 96 {
		panelW = max(28, m.width/3)
	}
	mapW := m.width - panelW - 1
	if mapW < minMapWidth {
		mapW = minMapWidth
	}
	legendH := len(legendRows()) + 2
	chartH := contentH - legendH
	if chartH < 6 {
		chartH = 6
	}
	mapR = rect{x: 0, y: headerHeight, w: mapW, h: contentH}
	chartR = rect{x: mapW + 1, y: headerHeight, w: panelW, h: chartH}
	legendR = rect{x: mapW + 1, y: headerHeight + chartH, w: panelW, h: legendH}
	return mapR, chartR, legendR
}

// projector builds the orthographic projection for a map viewport of
// w x h cells, in braille micro coordinates (2x4 per cell).
func (m Model) projector(w, h int) geo.Projector {
	wMic := w * 2
	hMic := h * 4
	r := float64(min(wMic, hMic))/2 - 2
	if r < 4 {
		r = 4
	}
	return geo.Projector{
		RotLon: m.rotLon,
		RotLat: m.rotLat,
		Scale:  r * m.zoom,
		CX:     float64(wMic) / 2,
		CY:     float64(hMic) / 2,
	}
}

// countryAt resolves the country under a map cell, if any.
func (m Model) countryAt(cellX, cellY, w, h int) (geo.Feature, bool) {
	p := m.projector(w, h)
	lon, lat, ok := p.Invert(float64(cellX*2+1), float64(cellY*4+2))
	if !ok {
		return geo.Feature{}, false
	}
	return m.reg.Countries().FindAt(lon, lat)
}

// renderGlobe projects every country onto a braille canvas. Countries
// with at least one dataset record are filled, selected countries take
// the accent color, everything else is outline only. The whole scene is
// redrawn per call; cost is linear in the number of countries.
func (m Model) renderGlobe(w, h int) string {
	br := newBrailleBuf(w, h)
	p := m.projector(w, h)

	// sphere limb
	steps := int(2 * math.Pi * p.Scale)
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		t := 2 * math.Pi * float64(i) / float64(steps)
		br.setPixel(int(p.CX+p.Scale*math.Cos(t)), int(p.CY+p.Scale*math.Sin(t)), classLimb)
	}

	for _, f := range m.reg.Countries().Features {
		selected := m.store.Has(f.Name)
		hasData := m.reg.HasData(f.Name)
		edgeClass := classLand
		fillClass := uint8(classNone)
		if hasData {
			fillClass = classData
		}
		if selected {
			edgeClass = classSelected
			fillClass = classSelected
		}
		for _, poly := range f.Polygons {
			var ringsMic [][][2]int
			for _, ring := range poly {
				var sm [][2]int
				for _, pt := range ring {
					x, y, ok := p.Project(pt[0], pt[1])
					if !ok {
						continue
					}
					sm = append(sm, [2]int{int(x), int(y)})
				}
				if len(sm) >= 3 {
					ringsMic = append(ringsMic, sm)
				}
			}
			if len(ringsMic) == 0 {
				continue
			}
			if fillClass != classNone {
				fillRing(br, ringsMic[0], fillClass)
			}
			for _, r := range ringsMic {
				for i := 0; i < len(r); i++ {
					a := r[i]
					b := r[(i+1)%len(r)]
					br.drawLineMicro(a[0], a[1], b[0], b[1], edgeClass)
				}
			}
		}
	}

	// tooltip: country name at the pointer, cleared the moment the
	// pointer leaves a shape
	if m.hovering && m.hoverName != "" {
		tipY := m.hoverCellY - 1
		if tipY < 0 {
			tipY = m.hoverCellY + 1
		}
		br.setTip(m.hoverCellX+2, tipY, " "+m.hoverName+" ")
	}

	return strings.Join(br.toLines(), "\n")
}

// fillRing rasterizes a ring's interior with the even-odd rule, one
// microgrid scanline at a time.
func fillRing(br *brailleBuf, ring [][2]int, class uint8) {
	minY, maxY := ring[0][1], ring[0][1]
	for _, pt := range ring {
		if pt[1] < minY {
			minY = pt[1]
		}
		if pt[1] > maxY {
			maxY = pt[1]
		}
	}
	if minY < 0 {
		minY = 0
	}
	hMic := br.h * 4
	if maxY >= hMic {
		maxY = hMic - 1
	}
	var xs []int
	for yMic := minY; yMic <= maxY; yMic++ {
		xs = xs[:0]
		for i := 0; i < len(ring); i++ {
			a := ring[i]
			b := ring[(i+1)%len(ring)]
			if a[1] == b[1] { // horizontal edge: skip
				continue
			}
			y0, y1 := a[1], b[1]
			x0, x1 := a[0], b[0]
			if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
				t := float64(yMic-y0) / float64(y1-y0)
				xs = append(xs, int(float64(x0)+t*float64(x1-x0)))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			xStart, xEnd := xs[i], xs[i+1]
			if xStart > xEnd {
				xStart, xEnd = xEnd, xStart
			}
			for xMic := max(0, xStart); xMic <= xEnd; xMic++ {
				br.setPixel(xMic, yMic, class)
			}
		}
	}
}
