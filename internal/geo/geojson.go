package geo

import (
	"errors"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
)

type rawCollection struct {
	Type     string       `json:"type"`
	Features []rawFeature `json:"features"`
}

type rawFeature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   *rawGeometry    `json:"geometry"`
	ID         json.RawMessage `json:"id"`
}

type rawGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// LoadFeatures reads a GeoJSON FeatureCollection of country boundaries.
// Only Polygon and MultiPolygon geometries are kept; everything else in
// the file is skipped.
func LoadFeatures(path string) (Collection, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Collection{}, err
	}
	return ParseFeatures(b)
}

// ParseFeatures decodes GeoJSON bytes into a Collection.
func ParseFeatures(b []byte) (Collection, error) {
	var raw rawCollection
	if err := json.Unmarshal(b, &raw); err != nil {
		return Collection{}, fmt.Errorf("geojson: %w", err)
	}
	if raw.Type != "FeatureCollection" {
		return Collection{}, errors.New("geojson: not a FeatureCollection")
	}
	var c Collection
	for _, rf := range raw.Features {
		if rf.Geometry == nil {
			continue
		}
		f := Feature{Name: featureName(rf.Properties)}
		switch rf.Geometry.Type {
		case "Polygon":
			var poly [][][2]float64
			if err := json.Unmarshal(rf.Geometry.Coordinates, &poly); err != nil {
				continue
			}
			f.Polygons = append(f.Polygons, dropShort(poly))
		case "MultiPolygon":
			var mp [][][][2]float64
			if err := json.Unmarshal(rf.Geometry.Coordinates, &mp); err != nil {
				continue
			}
			for _, poly := range mp {
				f.Polygons = append(f.Polygons, dropShort(poly))
			}
		default:
			continue
		}
		first := true
		for _, poly := range f.Polygons {
			for _, ring := range poly {
				for _, pt := range ring {
					f.BBox.expand(pt, first)
					first = false
				}
			}
		}
		if !first {
			c.Features = append(c.Features, f)
		}
	}
	if len(c.Features) == 0 {
		return Collection{}, errors.New("geojson: no polygon features found")
	}
	return c, nil
}

// featureName pulls the display name out of a properties map. World
// boundary files disagree on the key, so try the common ones.
func featureName(props map[string]any) string {
	for _, key := range []string{"name", "NAME", "ADMIN", "admin"} {
		if v, ok := props[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func dropShort(poly [][][2]float64) [][][2]float64 {
	out := poly[:0]
	for _, ring := range poly {
		if len(ring) >= 3 {
			out = append(out, ring)
		}
	}
	return out
}
