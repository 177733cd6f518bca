package geo

import "math"

// Projector is an orthographic projection of the unit sphere onto a flat
// grid. RotLon/RotLat are the current rotation in degrees, Scale is the
// sphere radius in grid units, and CX/CY is the grid position of the
// sphere center. Grid y grows downward.
type Projector struct {
	RotLon float64
	RotLat float64
	Scale  float64
	CX     float64
	CY     float64
}

// Sensitivity is the drag-to-rotation factor shared by every view: a
// pointer delta of d cells changes the rotation by d*Sensitivity/Scale
// degrees, so rotation speed does not depend on the configured scale.
const Sensitivity = 75.0

// Rotate applies a drag delta. Horizontal drag spins the globe east/west,
// vertical drag tilts it, inverted so dragging up tilts the north pole
// toward the viewer.
func (p *Projector) Rotate(dx, dy float64) {
	k := Sensitivity / p.Scale
	p.RotLon += dx * k
	p.RotLat -= dy * k
	if p.RotLat > 90 {
		p.RotLat = 90
	}
	if p.RotLat < -90 {
		p.RotLat = -90
	}
}

// Project maps a lon/lat point to grid coordinates. visible is false for
// points on the far hemisphere.
func (p Projector) Project(lon, lat float64) (x, y float64, visible bool) {
	lamC := -p.RotLon * math.Pi / 180
	phiC := -p.RotLat * math.Pi / 180
	lam := lon * math.Pi / 180
	phi := lat * math.Pi / 180

	dLam := lam - lamC
	cosC := math.Sin(phiC)*math.Sin(phi) + math.Cos(phiC)*math.Cos(phi)*math.Cos(dLam)
	if cosC < 0 {
		return 0, 0, false
	}
	px := math.Cos(phi) * math.Sin(dLam)
	py := math.Cos(phiC)*math.Sin(phi) - math.Sin(phiC)*math.Cos(phi)*math.Cos(dLam)
	return p.CX + px*p.Scale, p.CY - py*p.Scale, true
}

// Invert maps grid coordinates back to lon/lat. ok is false outside the
// globe disc.
func (p Projector) Invert(x, y float64) (lon, lat float64, ok bool) {
	nx := (x - p.CX) / p.Scale
	ny := (p.CY - y) / p.Scale
	d2 := nx*nx + ny*ny
	if d2 > 1 {
		return 0, 0, false
	}
	nz := math.Sqrt(1 - d2)

	lamC := -p.RotLon * math.Pi / 180
	phiC := -p.RotLat * math.Pi / 180

	phi := math.Asin(ny*math.Cos(phiC) + nz*math.Sin(phiC))
	lam := lamC + math.Atan2(nx, nz*math.Cos(phiC)-ny*math.Sin(phiC))

	lon = lam * 180 / math.Pi
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon, phi * 180 / math.Pi, true
}
