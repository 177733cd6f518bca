package geo_test

import (
	"testing"

	"spendglobe/internal/geo"
)

const sample = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"name": "Squareland"},
      "geometry": {
        "type": "Polygon",
        "coordinates": [[[0,0],[10,0],[10,10],[0,10],[0,0]]]
      }
    },
    {
      "type": "Feature",
      "properties": {"ADMIN": "Twinland"},
      "geometry": {
        "type": "MultiPolygon",
        "coordinates": [
          [[[20,0],[25,0],[25,5],[20,5],[20,0]]],
          [[[30,0],[35,0],[35,5],[30,5],[30,0]]]
        ]
      }
    },
    {
      "type": "Feature",
      "properties": {"name": "Pointy"},
      "geometry": {"type": "Point", "coordinates": [1, 1]}
    }
  ]
}`

func TestParseFeatures(t *testing.T) {
	c, err := geo.ParseFeatures([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Features) != 2 {
		t.Fatalf("got %d features, want 2 (point geometry skipped)", len(c.Features))
	}
	if c.Features[0].Name != "Squareland" {
		t.Errorf("name = %q", c.Features[0].Name)
	}
	if c.Features[1].Name != "Twinland" {
		t.Errorf("ADMIN fallback failed: %q", c.Features[1].Name)
	}
	if len(c.Features[1].Polygons) != 2 {
		t.Errorf("multipolygon parts = %d, want 2", len(c.Features[1].Polygons))
	}
}

func TestFeatureContains(t *testing.T) {
	c, err := geo.ParseFeatures([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}
	sq := c.Features[0]
	if !sq.Contains(5, 5) {
		t.Error("center of Squareland should be inside")
	}
	if sq.Contains(15, 5) {
		t.Error("east of Squareland should be outside")
	}
	tw := c.Features[1]
	if !tw.Contains(22, 2) || !tw.Contains(32, 2) {
		t.Error("both Twinland parts should contain their centers")
	}
	if tw.Contains(27, 2) {
		t.Error("gap between Twinland parts is outside")
	}
}

func TestFindAt(t *testing.T) {
	c, _ := geo.ParseFeatures([]byte(sample))
	if f, ok := c.FindAt(5, 5); !ok || f.Name != "Squareland" {
		t.Errorf("FindAt(5,5) = %q, %v", f.Name, ok)
	}
	if _, ok := c.FindAt(-50, -50); ok {
		t.Error("open ocean should find nothing")
	}
}

func TestParseFeaturesRejectsBadInput(t *testing.T) {
	if _, err := geo.ParseFeatures([]byte(`{"type": "Feature"}`)); err == nil {
		t.Error("bare feature should be rejected")
	}
	if _, err := geo.ParseFeatures([]byte(`not json`)); err == nil {
		t.Error("garbage should be rejected")
	}
	empty := `{"type": "FeatureCollection", "features": []}`
	if _, err := geo.ParseFeatures([]byte(empty)); err == nil {
		t.Error("collection without polygons should be rejected")
	}
}
