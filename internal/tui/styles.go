package tui

import "github.com/charmbracelet/lipgloss"

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#F1C40F")
	limbFg    = lipgloss.Color("#2C3E50")
	landFg    = lipgloss.Color("#6B7280")
	dataFg    = lipgloss.Color("#27AE60")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
	tipStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0B0F14")).Background(accentFg)
)

// Cell color classes for the globe canvas, low to high priority.
const (
	classNone uint8 = iota
	classLimb
	classLand
	classData
	classSelected
)

var classStyles = map[uint8]lipgloss.Style{
	classLimb:     lipgloss.NewStyle().Foreground(limbFg),
	classLand:     lipgloss.NewStyle().Foreground(landFg),
	classData:     lipgloss.NewStyle().Foreground(dataFg),
	classSelected: lipgloss.NewStyle().Foreground(accentFg),
}

// setAccent overrides the selection color from config.
func setAccent(hex string) {
	if hex == "" {
		return
	}
	accentFg = lipgloss.Color(hex)
	titleStyle = titleStyle.Foreground(accentFg)
	tipStyle = tipStyle.Background(accentFg)
	classStyles[classSelected] = lipgloss.NewStyle().Foreground(accentFg)
}
