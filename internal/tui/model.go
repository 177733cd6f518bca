package tui

import (
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"spendglobe/internal/chart"
	"spendglobe/internal/config"
	"spendglobe/internal/data"
	"spendglobe/internal/geo"
	"spendglobe/internal/watch"
)

type Model struct {
	width  int
	height int

	cfg config.Config

	// Application state: country registry, selection, derived chart.
	reg    *data.Registry
	store  *data.Store
	layout chart.Layout

	// Globe viewport
	rotLon, rotLat float64
	zoom           float64

	// Drag gesture
	dragging bool
	dragged  bool
	dragX    int
	dragY    int

	// Hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverName  string // country under pointer, "" when none
	hoverTip   string // chart segment tooltip, "" when none

	// last rendered map size (hit tests must match the view layout)
	mapW int
	mapH int

	status      string
	helpVisible bool

	// dataset inspector
	showInspect bool
	tbl         table.Model

	countriesLoaded bool
	setsLoaded      int

	watcher *watch.Watcher
}

func New(cfg config.Config) Model {
	setAccent(cfg.Accent)
	m := Model{
		cfg:         cfg,
		reg:         data.NewRegistry(geo.Collection{}),
		store:       data.NewStore(),
		zoom:        1.0,
		status:      "loading data…",
		helpVisible: true,
	}
	// inspector table; columns are fixed, rows follow loaded datasets
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	if cfg.Watch {
		if w, err := watch.New(m.dataPaths()); err == nil {
			m.watcher = w
		}
	}
	return m
}

// dataPaths lists every file the model loads, for the watcher.
func (m Model) dataPaths() []string {
	paths := []string{m.cfg.CountriesPath()}
	for _, c := range data.Categories {
		paths = append(paths, m.cfg.DatasetPath(c.Label, c.File))
	}
	return paths
}

// Init kicks off the asynchronous loads. Each completion message
// re-styles the affected views, so data arriving after the first
// render is picked up instead of being silently dropped.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{loadCountriesCmd(m.cfg.CountriesPath())}
	for _, c := range data.Categories {
		cmds = append(cmds, loadDatasetCmd(m.cfg.DatasetPath(c.Label, c.File), c.Label))
	}
	if m.watcher != nil {
		cmds = append(cmds, watchCmd(m.watcher))
	}
	return tea.Batch(cmds...)
}

// recompute re-derives the stacked chart from the current selection.
// Called after every toggle; the selection is always rebuilt in full.
func (m *Model) recompute() {
	m.layout = chart.Stack(m.store.Entries(), data.CategoryLabels())
}
