package geo_test

import (
	"math"
	"testing"

	"spendglobe/internal/geo"
)

func proj() geo.Projector {
	return geo.Projector{Scale: 100, CX: 120, CY: 120}
}

func TestProjectCenter(t *testing.T) {
	p := proj()
	x, y, ok := p.Project(0, 0)
	if !ok {
		t.Fatal("globe center must be visible")
	}
	if math.Abs(x-120) > 1e-9 || math.Abs(y-120) > 1e-9 {
		t.Errorf("(0,0) projected to (%v, %v), want grid center", x, y)
	}
}

func TestProjectFarHemisphereHidden(t *testing.T) {
	p := proj()
	if _, _, ok := p.Project(180, 0); ok {
		t.Error("antipode should be hidden")
	}
	p.RotLon = -180
	if _, _, ok := p.Project(180, 0); !ok {
		t.Error("rotating the antipode to the front should reveal it")
	}
	if _, _, ok := p.Project(0, 0); ok {
		t.Error("origin should now be hidden")
	}
}

func TestInvertRoundTrip(t *testing.T) {
	p := proj()
	p.RotLon = 33
	p.RotLat = -21
	pts := [][2]float64{{0, 0}, {-33, 21}, {-10, 40}, {-60, -35}}
	for _, pt := range pts {
		x, y, ok := p.Project(pt[0], pt[1])
		if !ok {
			continue
		}
		lon, lat, ok := p.Invert(x, y)
		if !ok {
			t.Fatalf("invert failed for %v", pt)
		}
		if math.Abs(lon-pt[0]) > 0.01 || math.Abs(lat-pt[1]) > 0.01 {
			t.Errorf("round trip %v -> (%v, %v)", pt, lon, lat)
		}
	}
}

func TestInvertOutsideDisc(t *testing.T) {
	p := proj()
	if _, _, ok := p.Invert(120+101, 120); ok {
		t.Error("point outside the disc must not invert")
	}
}

func TestRotateDelta(t *testing.T) {
	p := proj()
	p.Rotate(30, -12)
	wantLon := 30 * geo.Sensitivity / p.Scale
	wantLat := 12 * geo.Sensitivity / p.Scale
	if math.Abs(p.RotLon-wantLon) > 1e-9 {
		t.Errorf("RotLon = %v, want %v", p.RotLon, wantLon)
	}
	if math.Abs(p.RotLat-wantLat) > 1e-9 {
		t.Errorf("RotLat = %v, want %v", p.RotLat, wantLat)
	}
}

func TestRotateScaleInvariance(t *testing.T) {
	// doubling the scale halves the rotation per cell of drag
	a := geo.Projector{Scale: 100}
	b := geo.Projector{Scale: 200}
	a.Rotate(10, 0)
	b.Rotate(10, 0)
	if math.Abs(a.RotLon-2*b.RotLon) > 1e-9 {
		t.Errorf("scale invariance broken: %v vs %v", a.RotLon, b.RotLon)
	}
}

func TestRotateClampsLatitude(t *testing.T) {
	p := geo.Projector{Scale: 1}
	p.Rotate(0, -10000)
	if p.RotLat != 90 {
		t.Errorf("RotLat = %v, want clamp at 90", p.RotLat)
	}
	p.Rotate(0, 20000)
	if p.RotLat != -90 {
		t.Errorf("RotLat = %v, want clamp at -90", p.RotLat)
	}
}
