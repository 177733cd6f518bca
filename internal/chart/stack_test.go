package chart_test

import (
	"reflect"
	"testing"

	"spendglobe/internal/chart"
	"spendglobe/internal/data"
)

var cats = []string{"Health", "Military", "Education"}

func entry(name string, h, m, e float64) data.Entry {
	return data.Entry{Name: name, Values: map[string]float64{
		"Health": h, "Military": m, "Education": e,
	}}
}

func TestStackEmptySelection(t *testing.T) {
	l := chart.Stack(nil, cats)
	if !l.Empty() {
		t.Error("empty selection should yield empty layout")
	}
	if l.Max != 0 || len(l.Segments) != 0 || len(l.Countries) != 0 {
		t.Errorf("empty layout not zero: %+v", l)
	}
}

func TestStackSingleCountry(t *testing.T) {
	l := chart.Stack([]data.Entry{entry("France", 5, 2, 3)}, cats)

	if got := l.Countries; !reflect.DeepEqual(got, []string{"France"}) {
		t.Errorf("countries = %v", got)
	}
	segs := l.SegmentsFor("France")
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3", len(segs))
	}
	want := []chart.Segment{
		{Country: "France", Category: "Health", Low: 0, High: 5},
		{Country: "France", Category: "Military", Low: 5, High: 7},
		{Country: "France", Category: "Education", Low: 7, High: 10},
	}
	if !reflect.DeepEqual(segs, want) {
		t.Errorf("segments = %v, want %v", segs, want)
	}
	// topmost high equals the bar total and the domain max
	if top := segs[len(segs)-1].High; top != 10 || top != l.Max {
		t.Errorf("top = %v, max = %v, want both 10", top, l.Max)
	}
}

func TestStackMaxOverSelection(t *testing.T) {
	l := chart.Stack([]data.Entry{
		entry("France", 5, 2, 3),
		entry("Germany", 4, 1.5, 0),
	}, cats)
	if l.Max != 10 {
		t.Errorf("max = %v, want 10 (France total)", l.Max)
	}
	segs := l.SegmentsFor("Germany")
	if got := segs[len(segs)-1].High; got != 5.5 {
		t.Errorf("Germany top = %v, want 5.5", got)
	}
}

func TestStackZeroValuedCountry(t *testing.T) {
	l := chart.Stack([]data.Entry{entry("Atlantis", 0, 0, 0)}, cats)
	segs := l.SegmentsFor("Atlantis")
	if len(segs) != len(cats) {
		t.Fatalf("got %d segments, want %d", len(segs), len(cats))
	}
	for _, s := range segs {
		if s.Low != 0 || s.High != 0 {
			t.Errorf("segment %v should be zero-extent", s)
		}
	}
}

func TestStackPreservesSelectionOrder(t *testing.T) {
	l := chart.Stack([]data.Entry{
		entry("Japan", 1, 1, 1),
		entry("France", 5, 2, 3),
		entry("Brazil", 2, 2, 2),
	}, cats)
	want := []string{"Japan", "France", "Brazil"}
	if !reflect.DeepEqual(l.Countries, want) {
		t.Errorf("countries = %v, want %v", l.Countries, want)
	}
	// segments are category-major in declared category order
	if l.Segments[0].Category != "Health" || l.Segments[0].Country != "Japan" {
		t.Errorf("first segment = %+v", l.Segments[0])
	}
}

func TestSegmentSpan(t *testing.T) {
	s := chart.Segment{Low: 5, High: 7}
	if s.Span() != 2 {
		t.Errorf("span = %v, want 2", s.Span())
	}
}
