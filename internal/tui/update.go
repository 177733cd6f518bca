package tui

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"spendglobe/internal/data"
	"spendglobe/internal/export"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case countriesMsg:
		if msg.err != nil {
			m.status = "map load error: " + msg.err.Error()
			return m, nil
		}
		m.reg.SetCountries(msg.c)
		m.countriesLoaded = true
		m.status = fmt.Sprintf("map loaded: %d countries", len(msg.c.Features))

	case datasetMsg:
		if msg.err != nil {
			m.status = msg.category + " load error: " + msg.err.Error()
			return m, nil
		}
		m.reg.SetDataset(msg.d)
		m.setsLoaded = m.reg.LoadedCount()
		m.status = fmt.Sprintf("%s data loaded: %d records", msg.category, msg.d.Len())
		// re-derive anything that captured values before this dataset
		// arrived
		m.store.Refresh(m.reg, data.CategoryLabels())
		m.recompute()
		if m.showInspect {
			m.refreshInspector()
		}

	case fileChangedMsg:
		m.status = "reloading " + filepath.Base(msg.path)
		cmds := []tea.Cmd{watchCmd(m.watcher)}
		if c := m.reloadCmd(msg.path); c != nil {
			cmds = append(cmds, c)
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if m.showInspect {
			switch msg.String() {
			case "esc", "d", "q":
				m.showInspect = false
				return m, nil
			}
			var cmd tea.Cmd
			m.tbl, cmd = m.tbl.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "ctrl+c", "q":
			if m.watcher != nil {
				m.watcher.Close()
			}
			return m, tea.Quit
		case "+", "=":
			if m.zoom < 16 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "-", "_":
			if m.zoom > 0.5 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case "left":
			m.rotate(-4, 0)
		case "right":
			m.rotate(4, 0)
		case "up":
			m.rotate(0, -4)
		case "down":
			m.rotate(0, 4)
		case "r":
			m.rotLon, m.rotLat, m.zoom = 0, 0, 1.0
			m.status = "view reset"
		case "c":
			m.store = data.NewStore()
			m.recompute()
			m.status = "selection cleared"
		case "d":
			m.showInspect = !m.showInspect
			if m.showInspect {
				m.refreshInspector()
			}
		case "x":
			if m.layout.Empty() {
				m.status = "export: nothing selected"
			} else if err := export.SavePNG(m.layout, "spending.png"); err != nil {
				m.status = err.Error()
			} else {
				m.status = "exported spending.png"
			}
		case "h":
			m.helpVisible = !m.helpVisible
		}

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m, nil
}

// rotate applies a rotation delta in micro units through the projector,
// so keyboard and drag rotation share the sensitivity/scale rule.
func (m *Model) rotate(dxMic, dyMic float64) {
	mapR, _, _ := m.regions()
	p := m.projector(mapR.w, mapR.h)
	p.Rotate(dxMic, dyMic)
	m.rotLon, m.rotLat = p.RotLon, p.RotLat
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	mapR, chartR, _ := m.regions()
	m.mapW, m.mapH = mapR.w, mapR.h

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if m.zoom < 16 {
				m.zoom *= 1.2
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if m.zoom > 0.5 {
				m.zoom /= 1.2
			}
			return m, nil
		case tea.MouseButtonLeft:
			if mapR.contains(msg.X, msg.Y) {
				m.dragging = true
				m.dragged = false
				m.dragX, m.dragY = msg.X, msg.Y
			}
		}

	case tea.MouseActionMotion:
		if m.dragging {
			dx := msg.X - m.dragX
			dy := msg.Y - m.dragY
			if dx != 0 || dy != 0 {
				m.dragged = true
				// one re-projection of every country per motion event
				m.rotate(float64(dx*2), float64(dy*4))
				m.dragX, m.dragY = msg.X, msg.Y
			}
			return m, nil
		}
		m.updateHover(msg.X, msg.Y, mapR, chartR)

	case tea.MouseActionRelease:
		wasDrag := m.dragged
		m.dragging = false
		m.dragged = false
		if wasDrag || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if mapR.contains(msg.X, msg.Y) && !m.showInspect {
			if f, ok := m.countryAt(msg.X-mapR.x, msg.Y-mapR.y, mapR.w, mapR.h); ok && f.Name != "" {
				selected := m.store.Toggle(f.Name, m.reg, data.CategoryLabels())
				m.recompute()
				if selected {
					m.status = "added " + f.Name
				} else {
					m.status = "removed " + f.Name
				}
			}
		}
	}
	return m, nil
}

// updateHover resolves what sits under the pointer: a country on the
// globe, a stacked segment in the chart, or nothing. Visibility is
// binary and reset the moment the pointer leaves the shape.
func (m *Model) updateHover(x, y int, mapR, chartR rect) {
	m.hovering = false
	m.hoverName = ""
	m.hoverTip = ""
	switch {
	case mapR.contains(x, y) && !m.showInspect:
		m.hovering = true
		m.hoverCellX = x - mapR.x
		m.hoverCellY = y - mapR.y
		if f, ok := m.countryAt(m.hoverCellX, m.hoverCellY, mapR.w, mapR.h); ok {
			m.hoverName = f.Name
		}
	case chartR.contains(x, y):
		cm := newChartMetrics(m.layout, chartR.w, chartR.h)
		if seg, ok := cm.segmentAt(m.layout, x-chartR.x, y-chartR.y); ok {
			m.hoverTip = fmt.Sprintf("%s · %s: %.0f", seg.Country, seg.Category, seg.Span())
		}
	}
}
