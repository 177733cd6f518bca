package data

import (
	"sort"

	"spendglobe/internal/geo"
)

// Registry wraps the loaded country boundaries and whichever category
// datasets have arrived so far. Datasets are attached as their loads
// complete; lookups against a category that has not loaded simply
// report no match.
type Registry struct {
	countries geo.Collection
	datasets  map[string]*Dataset // by category label
}

func NewRegistry(countries geo.Collection) *Registry {
	return &Registry{
		countries: countries,
		datasets:  make(map[string]*Dataset, len(Categories)),
	}
}

// Countries returns the wrapped feature collection.
func (r *Registry) Countries() geo.Collection { return r.countries }

// SetCountries replaces the feature collection (boundary file reload).
func (r *Registry) SetCountries(c geo.Collection) { r.countries = c }

// SetDataset attaches a loaded dataset, replacing any previous one for
// the same category.
func (r *Registry) SetDataset(d *Dataset) {
	if d != nil {
		r.datasets[d.Category] = d
	}
}

// LoadedCount returns how many category datasets are attached.
func (r *Registry) LoadedCount() int { return len(r.datasets) }

// HasData reports whether any attached dataset has a record whose
// entity exactly equals name. Matching is case-sensitive; a boundary
// name that differs from the dataset spelling is simply not styled as
// having data.
func (r *Registry) HasData(name string) bool {
	for _, d := range r.datasets {
		if _, ok := d.Value(name); ok {
			return true
		}
	}
	return false
}

// Value returns the entity's value in the given category, or 0 when the
// category has not loaded or the entity has no record.
func (r *Registry) Value(category, entity string) float64 {
	v, _ := r.datasets[category].Value(entity)
	return v
}

// Entities returns the sorted union of entity names across all attached
// datasets.
func (r *Registry) Entities() []string {
	seen := make(map[string]bool)
	for _, d := range r.datasets {
		for _, e := range d.Entities() {
			seen[e] = true
		}
	}
	out := make([]string, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Strings(out)
	return out
}
