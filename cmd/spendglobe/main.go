package main

import (
	"errors"
	"flag"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"spendglobe/internal/chart"
	"spendglobe/internal/config"
	"spendglobe/internal/data"
	"spendglobe/internal/export"
	"spendglobe/internal/geo"
	"spendglobe/internal/tui"
)

func main() {
	var (
		cfgPath    = flag.String("config", "", "config file (default: ~/.config/spendglobe/config.yaml)")
		dataDir    = flag.String("data", "", "data directory, overrides config")
		exportPath = flag.String("export", "", "write the chart to this image file and exit")
		selectList = flag.String("select", "", "comma-separated country names for --export")
		debug      = flag.Bool("debug", false, "write a debug log to spendglobe.log")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}

	if *exportPath != "" {
		if err := runExport(cfg, *exportPath, *selectList); err != nil {
			log.Fatal(err)
		}
		return
	}

	if *debug {
		f, err := tea.LogToFile("spendglobe.log", "debug")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	p := tea.NewProgram(tui.New(cfg), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}

// runExport renders the stacked chart headlessly: the datasets load in
// parallel, the named countries are selected, and the layout goes
// straight to the image encoder.
func runExport(cfg config.Config, out, sel string) error {
	names := splitNames(sel)
	if len(names) == 0 {
		return errors.New("--export needs --select with at least one country name")
	}

	reg := data.NewRegistry(geo.Collection{})
	results := make([]*data.Dataset, len(data.Categories))
	var g errgroup.Group
	for i, c := range data.Categories {
		g.Go(func() error {
			d, err := data.LoadDataset(cfg.DatasetPath(c.Label, c.File), c.Label)
			if err != nil {
				return err
			}
			results[i] = d
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for _, d := range results {
		reg.SetDataset(d)
	}

	labels := data.CategoryLabels()
	store := data.NewStore()
	for _, name := range names {
		store.Toggle(name, reg, labels)
	}
	return export.SavePNG(chart.Stack(store.Entries(), labels), out)
}

func splitNames(sel string) []string {
	var out []string
	for _, n := range strings.Split(sel, ",") {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
