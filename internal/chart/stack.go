// Package chart derives stacked-bar geometry from the current country
// selection. It is pure data computation so the terminal view and the
// PNG exporter can share it.
package chart

import "spendglobe/internal/data"

// Segment is the cumulative extent of one (country, category) pair
// within its bar, in data units.
type Segment struct {
	Country  string
	Category string
	Low      float64
	High     float64
}

// Span returns the segment's height in data units.
func (s Segment) Span() float64 { return s.High - s.Low }

// Layout is the fully derived chart geometry for one selection state.
// A nil/empty selection yields the zero Layout, which renders as an
// empty chart with reset axes.
type Layout struct {
	Countries []string  // x domain, selection order
	Max       float64   // y domain upper bound: largest bar total
	Segments  []Segment // category-major, matching the stacking order
}

// Empty reports whether the layout has nothing to draw.
func (l Layout) Empty() bool { return len(l.Countries) == 0 }

// SegmentsFor returns the segments of one country, bottom to top.
func (l Layout) SegmentsFor(country string) []Segment {
	var out []Segment
	for _, s := range l.Segments {
		if s.Country == country {
			out = append(out, s)
		}
	}
	return out
}

// Stack recomputes the whole layout from scratch: per country the
// categories stack bottom-to-top in the given fixed order, and the y
// domain is [0, max bar total]. Missing category values were already
// defaulted to 0 when the entry was built, so every country contributes
// a segment for every category.
func Stack(entries []data.Entry, categories []string) Layout {
	if len(entries) == 0 {
		return Layout{}
	}
	l := Layout{Countries: make([]string, len(entries))}
	cum := make(map[string]float64, len(entries))
	for i, e := range entries {
		l.Countries[i] = e.Name
		if t := e.Total(); t > l.Max {
			l.Max = t
		}
	}
	for _, cat := range categories {
		for _, e := range entries {
			low := cum[e.Name]
			high := low + e.Values[cat]
			cum[e.Name] = high
			l.Segments = append(l.Segments, Segment{
				Country:  e.Name,
				Category: cat,
				Low:      low,
				High:     high,
			})
		}
	}
	return l
}
