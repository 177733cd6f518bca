// Package config loads the optional spendglobe configuration file.
//
// The file lives at ~/.config/spendglobe/config.yaml (or
// $XDG_CONFIG_HOME/spendglobe/config.yaml) and every field has a
// working default, so running without one is fine. Flags override
// whatever the file says.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the top-level configuration.
type Config struct {
	// DataDir holds the boundary and dataset files.
	DataDir string `yaml:"data_dir,omitempty"`
	// Countries is the boundary GeoJSON file name inside DataDir.
	Countries string `yaml:"countries,omitempty"`
	// Datasets overrides the default file name per category label.
	Datasets map[string]string `yaml:"datasets,omitempty"`
	// Watch reloads datasets when their files change on disk.
	Watch bool `yaml:"watch,omitempty"`
	// Accent is the hex color for selected countries.
	Accent string `yaml:"accent,omitempty"`
}

// Default returns a Config with working defaults.
func Default() Config {
	return Config{
		DataDir:   "data",
		Countries: "countries.geojson",
		Watch:     true,
		Accent:    "#F1C40F",
	}
}

// Dir returns the config directory, honoring XDG_CONFIG_HOME.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "spendglobe")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "spendglobe")
}

// Load reads the config at path, or the default location when path is
// empty. A missing file yields defaults, not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		d := Dir()
		if d == "" {
			return cfg, nil
		}
		path = filepath.Join(d, "config.yaml")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.Countries == "" {
		cfg.Countries = "countries.geojson"
	}
	if cfg.Accent == "" {
		cfg.Accent = "#F1C40F"
	}
	return cfg, nil
}

// CountriesPath returns the full path of the boundary file.
func (c Config) CountriesPath() string {
	return filepath.Join(c.DataDir, c.Countries)
}

// DatasetPath returns the full path of a category's data file, using
// the per-category override when configured.
func (c Config) DatasetPath(label, defaultFile string) string {
	if f, ok := c.Datasets[label]; ok && f != "" {
		return filepath.Join(c.DataDir, f)
	}
	return filepath.Join(c.DataDir, defaultFile)
}
