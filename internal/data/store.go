package data

// Valuer resolves an entity's value in one category. Missing data
// resolves to 0, never an error.
type Valuer interface {
	Value(category, entity string) float64
}

// Entry is one selected country with its value per category, captured
// at selection time. Entries are never mutated in place; deselecting
// and reselecting builds a fresh one.
type Entry struct {
	Name   string
	Values map[string]float64
}

// Total sums the entry's category values.
func (e Entry) Total() float64 {
	t := 0.0
	for _, v := range e.Values {
		t += v
	}
	return t
}

// Store is the set of currently selected countries, keyed by name with
// a stable insertion order. At most one entry exists per name.
type Store struct {
	order   []string
	entries map[string]Entry
}

func NewStore() *Store {
	return &Store{entries: make(map[string]Entry)}
}

// Toggle removes the named entry if present; otherwise it builds one by
// resolving every category through v and appends it. Returns true when
// the country is selected after the call.
func (s *Store) Toggle(name string, v Valuer, categories []string) bool {
	if _, ok := s.entries[name]; ok {
		delete(s.entries, name)
		for i, n := range s.order {
			if n == name {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return false
	}
	values := make(map[string]float64, len(categories))
	for _, c := range categories {
		values[c] = v.Value(c, name)
	}
	s.entries[name] = Entry{Name: name, Values: values}
	s.order = append(s.order, name)
	return true
}

// Refresh rebuilds every entry's captured values against v. Called when
// a dataset arrives after countries were already selected, so bars pick
// up real values instead of keeping the zeros captured at click time.
func (s *Store) Refresh(v Valuer, categories []string) {
	for name := range s.entries {
		values := make(map[string]float64, len(categories))
		for _, c := range categories {
			values[c] = v.Value(c, name)
		}
		s.entries[name] = Entry{Name: name, Values: values}
	}
}

// Has reports whether the named country is selected.
func (s *Store) Has(name string) bool {
	_, ok := s.entries[name]
	return ok
}

// Len returns the number of selected countries.
func (s *Store) Len() int { return len(s.order) }

// Entries returns the selection in insertion order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.entries[name])
	}
	return out
}
