package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"spendglobe/internal/data"
	"spendglobe/internal/geo"
	"spendglobe/internal/watch"
)

type countriesMsg struct {
	c   geo.Collection
	err error
}

type datasetMsg struct {
	category string
	d        *data.Dataset
	err      error
}

type fileChangedMsg struct {
	path string
}

func loadCountriesCmd(path string) tea.Cmd {
	return func() tea.Msg {
		c, err := geo.LoadFeatures(path)
		return countriesMsg{c: c, err: err}
	}
}

func loadDatasetCmd(path, category string) tea.Cmd {
	return func() tea.Msg {
		d, err := data.LoadDataset(path, category)
		return datasetMsg{category: category, d: d, err: err}
	}
}

// watchCmd waits for the next changed data file. Re-issued after every
// delivery so the subscription stays alive.
func watchCmd(w *watch.Watcher) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-w.Events()
		if !ok {
			return nil
		}
		return fileChangedMsg{path: p}
	}
}

// reloadCmd maps a changed file back to the load that produced it.
func (m Model) reloadCmd(path string) tea.Cmd {
	if filepath.Base(path) == filepath.Base(m.cfg.CountriesPath()) {
		return loadCountriesCmd(m.cfg.CountriesPath())
	}
	for _, c := range data.Categories {
		p := m.cfg.DatasetPath(c.Label, c.File)
		if filepath.Base(path) == filepath.Base(p) {
			return loadDatasetCmd(p, c.Label)
		}
	}
	return nil
}
