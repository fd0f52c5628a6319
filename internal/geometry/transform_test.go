package geometry

import (
	"math"
	"strings"
	"testing"
)

func TestFitPointsStaysInsideCanvas(t *testing.T) {
	pts := []Point{{0, 0}, {10, 0}, {10, 6}, {0, 6}, {-3, 2}}
	fitted := FitPoints(pts, 400, 300)

	if len(fitted) != len(pts) {
		t.Fatalf("got %d points, want %d", len(fitted), len(pts))
	}
	for i, p := range fitted {
		if p.X < 0 || p.X > 400 || p.Y < 0 || p.Y > 300 {
			t.Errorf("point %d = %v outside 400x300 canvas", i, p)
		}
	}
}

func TestFitPointsPreservesAspect(t *testing.T) {
	pts := []Point{{0, 0}, {4, 0}, {4, 3}}
	fitted := FitPoints(pts, 400, 300)

	// Uniform scaling keeps the ratio between any two segment lengths.
	origRatio := Dist(pts[0], pts[1]) / Dist(pts[1], pts[2])
	fitRatio := Dist(fitted[0], fitted[1]) / Dist(fitted[1], fitted[2])
	if !relClose(fitRatio, origRatio, 1e-9) {
		t.Errorf("segment ratio = %v, want %v", fitRatio, origRatio)
	}
}

func TestFitPointsCentered(t *testing.T) {
	pts := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	fitted := FitPoints(pts, 400, 300)

	minX, minY, maxX, maxY := Bounds(fitted)
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	if !relClose(cx, 200, 1e-9) || !relClose(cy, 150, 1e-9) {
		t.Errorf("center = (%v, %v), want (200, 150)", cx, cy)
	}
}

func TestFitPointsDegenerateBBox(t *testing.T) {
	pts := []Point{{5, 5}, {5, 5}}
	fitted := FitPoints(pts, 400, 300)
	for i, p := range fitted {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			t.Fatalf("point %d = %v, degenerate bbox produced NaN", i, p)
		}
	}
	if !relClose(fitted[0].X, 200, 1e-9) || !relClose(fitted[0].Y, 150, 1e-9) {
		t.Errorf("degenerate points = %v, want canvas center", fitted[0])
	}
}

func TestArcPathLargeArcFlag(t *testing.T) {
	vertex := Point{0, 0}

	tests := []struct {
		name  string
		p1    Point
		p2    Point
		large string
	}{
		// Quarter turn counterclockwise, minor arc.
		{"90 degrees", Point{18, 0}, Point{0, 18}, " 0 0 1 "},
		// Three-quarter turn counterclockwise, major arc.
		{"270 degrees", Point{18, 0}, Point{0, -18}, " 0 1 1 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := ArcPath(vertex, tt.p1, tt.p2, 18)
			if !strings.Contains(path, tt.large) {
				t.Errorf("path %q missing flag segment %q", path, tt.large)
			}
		})
	}
}

func TestInteriorArcPathNeverReflex(t *testing.T) {
	vertex := Point{0, 0}
	p1 := Point{18, 0}
	p2 := Point{0, 18}

	// Whatever the point order, the mark must use the minor arc.
	for _, pair := range [][2]Point{{p1, p2}, {p2, p1}} {
		path := InteriorArcPath(vertex, pair[0], pair[1], 18)
		if strings.Contains(path, " 0 1 1 ") {
			t.Errorf("interior arc %q uses large-arc flag", path)
		}
	}
}

func TestTickMark(t *testing.T) {
	a, b, ok := TickMark(Point{0, 0}, Point{10, 0}, 0.5, 8)
	if !ok {
		t.Fatal("tick mark on valid segment not ok")
	}
	// A tick at t=0.5 sits at the midpoint, perpendicular to the segment.
	if !relClose(a.X, 5, 1e-9) || !relClose(b.X, 5, 1e-9) {
		t.Errorf("tick endpoints x = %v, %v, want 5", a.X, b.X)
	}
	if !relClose(Dist(a, b), 8, 1e-9) {
		t.Errorf("tick length = %v, want 8", Dist(a, b))
	}

	if _, _, ok := TickMark(Point{3, 3}, Point{3, 3}, 0.5, 8); ok {
		t.Error("tick mark on zero-length segment reported ok")
	}
}

func TestLabelOffset(t *testing.T) {
	p := LabelOffset(Point{0, 0}, Point{10, 0}, 6)
	if !relClose(p.X, 5, 1e-9) {
		t.Errorf("label x = %v, want midpoint 5", p.X)
	}
	if relClose(p.Y, 0, 1e-9) {
		t.Error("label not nudged off the segment")
	}

	// Zero-length segment falls back to the shared point.
	fallback := LabelOffset(Point{2, 2}, Point{2, 2}, 6)
	if !relClose(fallback.X, 2, 1e-9) || !relClose(fallback.Y, 2, 1e-9) {
		t.Errorf("fallback = %v, want (2, 2)", fallback)
	}
}

func TestMidpointAndDist(t *testing.T) {
	m := Midpoint(Point{0, 0}, Point{4, 6})
	if m.X != 2 || m.Y != 3 {
		t.Errorf("midpoint = %v, want (2, 3)", m)
	}
	if d := Dist(Point{0, 0}, Point{3, 4}); !relClose(d, 5, 1e-12) {
		t.Errorf("dist = %v, want 5", d)
	}
}
