package geometry

import (
	"fmt"
	"math"
)

// ============================================================
// Geometry primitives
// ============================================================

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func Dist(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// ============================================================
// Canvas fitting
// ============================================================

// fitMargin leaves a safety border so strokes and labels stay inside the
// canvas.
const fitMargin = 0.82

// Bounds returns the bounding box of the points.
func Bounds(points []Point) (minX, minY, maxX, maxY float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = points[0].X, points[0].X
	minY, maxY = points[0].Y, points[0].Y
	for _, p := range points[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return minX, minY, maxX, maxY
}

// FitPoints maps shape-space points into a width×height canvas: uniform
// scale preserving aspect ratio, then centered. A degenerate bounding box
// (single point) maps to the canvas center.
func FitPoints(points []Point, width, height float64) []Point {
	if len(points) == 0 {
		return nil
	}

	minX, minY, maxX, maxY := Bounds(points)
	spanX := maxX - minX
	spanY := maxY - minY

	scale := 1.0
	if spanX > 0 || spanY > 0 {
		sx, sy := math.Inf(1), math.Inf(1)
		if spanX > 0 {
			sx = width * fitMargin / spanX
		}
		if spanY > 0 {
			sy = height * fitMargin / spanY
		}
		scale = math.Min(sx, sy)
	}

	offsetX := (width - spanX*scale) / 2
	offsetY := (height - spanY*scale) / 2

	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{
			X: (p.X-minX)*scale + offsetX,
			Y: (p.Y-minY)*scale + offsetY,
		}
	}
	return out
}

// ============================================================
// Angle arcs & tick marks
// ============================================================

// ArcPath returns an SVG elliptical-arc path sweeping counterclockwise at
// the given radius around vertex, from the ray toward p1 to the ray toward
// p2. The large-arc flag is set when the swept angle exceeds 180°.
func ArcPath(vertex, p1, p2 Point, radius float64) string {
	a1 := math.Atan2(p1.Y-vertex.Y, p1.X-vertex.X)
	a2 := math.Atan2(p2.Y-vertex.Y, p2.X-vertex.X)

	sweep := a2 - a1
	for sweep < 0 {
		sweep += 2 * math.Pi
	}

	largeArc := 0
	if sweep > math.Pi {
		largeArc = 1
	}

	start := Point{X: vertex.X + radius*math.Cos(a1), Y: vertex.Y + radius*math.Sin(a1)}
	end := Point{X: vertex.X + radius*math.Cos(a2), Y: vertex.Y + radius*math.Sin(a2)}

	return fmt.Sprintf("M %s %s A %s %s 0 %d 1 %s %s",
		fmtNum(start.X), fmtNum(start.Y),
		fmtNum(radius), fmtNum(radius),
		largeArc,
		fmtNum(end.X), fmtNum(end.Y))
}

// InteriorArcPath is ArcPath with the sweep direction chosen so the arc
// covers the non-reflex angle at the vertex.
func InteriorArcPath(vertex, p1, p2 Point, radius float64) string {
	a1 := math.Atan2(p1.Y-vertex.Y, p1.X-vertex.X)
	a2 := math.Atan2(p2.Y-vertex.Y, p2.X-vertex.X)

	sweep := a2 - a1
	for sweep < 0 {
		sweep += 2 * math.Pi
	}
	if sweep > math.Pi {
		return ArcPath(vertex, p2, p1, radius)
	}
	return ArcPath(vertex, p1, p2, radius)
}

// TickMark returns the endpoints of a congruence tick crossing segment p1-p2
// at fraction t, perpendicular to it. ok is false when the segment has zero
// length and no perpendicular exists.
func TickMark(p1, p2 Point, t, size float64) (Point, Point, bool) {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return Point{}, Point{}, false
	}

	cx := p1.X + dx*t
	cy := p1.Y + dy*t
	// Unit normal to the segment.
	nx := -dy / length
	ny := dx / length

	half := size / 2
	return Point{X: cx - nx*half, Y: cy - ny*half},
		Point{X: cx + nx*half, Y: cy + ny*half},
		true
}

// LabelOffset nudges a label away from the segment midpoint along its
// normal. Falls back to the midpoint for a zero-length segment.
func LabelOffset(p1, p2 Point, distance float64) Point {
	mid := Midpoint(p1, p2)
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return mid
	}
	return Point{
		X: mid.X - dy/length*distance,
		Y: mid.Y + dx/length*distance,
	}
}
