package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spendglobe/internal/data"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	mapR, chartR, legendR := m.regions()
	m.mapW, m.mapH = mapR.w, mapR.h

	// Header
	header := titleStyle.Render(" spendglobe ─ government spending explorer ")
	header = lipgloss.NewStyle().Width(m.width).Render(header)

	// Map viewport, or the dataset inspector centered over it
	var mapView string
	if m.showInspect {
		m.tbl.SetWidth(min(mapR.w-4, 70))
		m.tbl.SetHeight(min(mapR.h-2, 20))
		box := boxStyle.Render(m.tbl.View())
		mapView = lipgloss.Place(mapR.w, mapR.h, lipgloss.Center, lipgloss.Center, box)
	} else if !m.countriesLoaded {
		mapView = lipgloss.Place(mapR.w, mapR.h, lipgloss.Center, lipgloss.Center,
			dimStyle.Render("loading boundaries…"))
	} else {
		ascii := m.renderGlobe(mapR.w, mapR.h)
		mapView = lipgloss.NewStyle().Width(mapR.w).Height(mapR.h).Render(ascii)
	}

	// Right column: chart over legend
	chartView := lipgloss.NewStyle().Width(chartR.w).Height(chartR.h).MaxWidth(chartR.w).Render(m.renderChart(chartR.w, chartR.h))
	legendView := lipgloss.NewStyle().Width(legendR.w).Height(legendR.h).Render(renderLegend(legendR.h))
	rightCol := lipgloss.JoinVertical(lipgloss.Left, chartView, legendView)

	body := lipgloss.JoinHorizontal(lipgloss.Top, mapView, " ", rightCol)

	// Footer: status + help on the left, hover info on the right
	help := m.renderHelp()
	status := dimStyle.Render(" " + m.status + " ")
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, status, help)
	right := ""
	switch {
	case m.hoverTip != "":
		right = tipStyle.Render(" " + m.hoverTip + " ")
	case m.hoverName != "":
		hasData := "no data"
		if m.reg.HasData(m.hoverName) {
			hasData = "has data"
		}
		right = dimStyle.Render(fmt.Sprintf("  %s · %s  ", m.hoverName, hasData))
	case m.setsLoaded < len(data.Categories):
		right = dimStyle.Render(fmt.Sprintf("  datasets %d/%d  ", m.setsLoaded, len(data.Categories)))
	}
	spacerW := max(0, m.width-lipgloss.Width(left)-lipgloss.Width(right))
	footer := lipgloss.NewStyle().Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, left, strings.Repeat(" ", spacerW), right))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	keys := []string{
		"drag rotate",
		"click select",
		"wheel/+- zoom",
		"d data",
		"x export",
		"c clear",
		"r reset",
		"h help",
		"q quit",
	}
	return dimStyle.Render("  " + strings.Join(keys, "  "))
}
