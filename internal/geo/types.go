package geo

// BBox is an axis-aligned lon/lat bounding box.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

func (b *BBox) expand(pt [2]float64, first bool) {
	if first {
		*b = BBox{MinX: pt[0], MinY: pt[1], MaxX: pt[0], MaxY: pt[1]}
		return
	}
	if pt[0] < b.MinX {
		b.MinX = pt[0]
	}
	if pt[1] < b.MinY {
		b.MinY = pt[1]
	}
	if pt[0] > b.MaxX {
		b.MaxX = pt[0]
	}
	if pt[1] > b.MaxY {
		b.MaxY = pt[1]
	}
}

// Feature is one named country shape. Polygons holds one or more polygons,
// each a list of rings (first outer, following holes), each ring a list of
// lon/lat vertices.
type Feature struct {
	Name     string
	Polygons [][][][2]float64
	BBox     BBox
}

// Collection is a loaded set of country features.
type Collection struct {
	Features []Feature
}

// Contains reports whether the lon/lat point falls inside the feature,
// using the even-odd rule across all rings (holes cancel out).
func (f Feature) Contains(lon, lat float64) bool {
	if lon < f.BBox.MinX || lon > f.BBox.MaxX || lat < f.BBox.MinY || lat > f.BBox.MaxY {
		return false
	}
	inside := false
	for _, poly := range f.Polygons {
		for _, ring := range poly {
			if ringContains(ring, lon, lat) {
				inside = !inside
			}
		}
	}
	return inside
}

// ringContains is an even-odd ray cast against a single ring.
func ringContains(ring [][2]float64, lon, lat float64) bool {
	in := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if (a[1] > lat) != (b[1] > lat) {
			x := a[0] + (lat-a[1])/(b[1]-a[1])*(b[0]-a[0])
			if lon < x {
				in = !in
			}
		}
	}
	return in
}

// FindAt returns the first feature containing the lon/lat point.
func (c Collection) FindAt(lon, lat float64) (Feature, bool) {
	for _, f := range c.Features {
		if f.Contains(lon, lat) {
			return f, true
		}
	}
	return Feature{}, false
}
