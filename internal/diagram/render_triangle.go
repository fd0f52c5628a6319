package diagram

import (
	"fmt"
	"math"

	"notesnap/internal/geometry"
	"notesnap/internal/i18n"
	"notesnap/internal/steps"
)

// ============================================================
// Triangle Renderers
// ============================================================

type triangleData struct {
	SideA      float64 `json:"sideA"`
	SideB      float64 `json:"sideB"`
	SideC      float64 `json:"sideC"`
	ShowHeight bool    `json:"showHeight,omitempty"`
}

func renderTriangle(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data triangleData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	result, err := geometry.SolveTriangle(geometry.Triangle{A: data.SideA, B: data.SideB, C: data.SideC})
	if err != nil {
		return nil, nil, err
	}

	pts := fitTriangle(data.SideA, data.SideB, data.SideC, width, height)

	showHeight := st.stepEnabled("height", data.ShowHeight)
	defs := []steps.Definition{
		stepDef(lang, "outline"),
		stepDef(lang, "vertices"),
		stepDef(lang, "sides"),
		stepDef(lang, "angles"),
	}
	if showHeight {
		defs = append(defs, stepDef(lang, "height"))
	}
	defs = append(defs, stepDef(lang, "measurements"))
	seq := newSequence(st, defs...)

	var elements []string
	elements = append(elements, stepGroup(seq, "outline",
		polygonEl(pts[:], strokeOutline))...)
	elements = append(elements, stepGroup(seq, "vertices",
		vertexLabels(pts[:], []string{"A", "B", "C"})...)...)
	elements = append(elements, stepGroup(seq, "sides",
		sideLabels(pts, [3]float64{data.SideA, data.SideB, data.SideC}, []string{"a", "b", "c"})...)...)
	elements = append(elements, stepGroup(seq, "angles",
		angleArcs(pts, [3]float64{result.AngleA, result.AngleB, result.AngleC})...)...)

	if showHeight {
		foot := heightFoot(pts[2], pts[0], pts[1])
		elements = append(elements, stepGroup(seq, "height",
			lineEl(pts[2], foot, strokeConstruction, true),
			measureTextEl(geometry.Point{X: foot.X + 12, Y: (pts[2].Y+foot.Y)/2}, "h"))...)
	}

	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 26},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.area"), fmtNum(result.Area))),
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.perimeter"), fmtNum(result.Perimeter))))...)

	return elements, seq, nil
}

type rightTriangleData struct {
	LegA float64 `json:"legA"`
	LegB float64 `json:"legB"`
}

func renderRightTriangle(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data rightTriangleData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	result, err := geometry.SolveRightTriangle(geometry.RightTriangle{LegA: data.LegA, LegB: data.LegB})
	if err != nil {
		return nil, nil, err
	}

	// Right angle at vertex C: legs along the axes.
	raw := []geometry.Point{
		{X: 0, Y: 0},
		{X: data.LegB, Y: 0},
		{X: 0, Y: -data.LegA},
	}
	fitted := geometry.FitPoints(raw, width, height)
	pts := [3]geometry.Point{fitted[0], fitted[1], fitted[2]}

	seq := newSequence(st,
		stepDef(lang, "outline"),
		stepDef(lang, "vertices"),
		stepDef(lang, "sides"),
		stepDef(lang, "marks"),
		stepDef(lang, "measurements"),
	)

	var elements []string
	elements = append(elements, stepGroup(seq, "outline",
		polygonEl(pts[:], strokeOutline))...)
	elements = append(elements, stepGroup(seq, "vertices",
		vertexLabels(pts[:], []string{"C", "B", "A"})...)...)
	elements = append(elements, stepGroup(seq, "sides",
		measureTextEl(geometry.LabelOffset(pts[0], pts[1], 14), fmt.Sprintf("b = %s", fmtNum(data.LegB))),
		measureTextEl(geometry.LabelOffset(pts[2], pts[0], 14), fmt.Sprintf("a = %s", fmtNum(data.LegA))),
		measureTextEl(geometry.LabelOffset(pts[1], pts[2], 16), fmt.Sprintf("c = %s", fmtNum(result.Hypotenuse))))...)

	// Square marker for the right angle.
	markSize := 14.0
	corner := pts[0]
	elements = append(elements, stepGroup(seq, "marks",
		pathEl(fmt.Sprintf("M %s %s L %s %s L %s %s",
			fmtNum(corner.X+markSize), fmtNum(corner.Y),
			fmtNum(corner.X+markSize), fmtNum(corner.Y-markSize),
			fmtNum(corner.X), fmtNum(corner.Y-markSize)), strokeConstruction, "none"))...)

	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 26},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.hypotenuse"), fmtNum(result.Hypotenuse))),
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.area"), fmtNum(result.Area))))...)

	return elements, seq, nil
}

// ============================================================
// Congruence / Similarity pairs
// ============================================================

type trianglePairData struct {
	SideA     float64 `json:"sideA"`
	SideB     float64 `json:"sideB"`
	SideC     float64 `json:"sideC"`
	Criterion string  `json:"criterion,omitempty"` // SSS, SAS, ASA
	Ratio     float64 `json:"ratio,omitempty"`     // similarity scale, default 1
}

func renderTrianglePair(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data trianglePairData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	ratio := data.Ratio
	if st.Type == "triangle_congruence" || ratio <= 0 {
		ratio = 1
	}

	if _, err := geometry.SolveTriangle(geometry.Triangle{A: data.SideA, B: data.SideB, C: data.SideC}); err != nil {
		return nil, nil, err
	}

	half := width / 2
	left := fitTriangle(data.SideA, data.SideB, data.SideC, half, height)
	right := fitTriangle(data.SideA*ratio, data.SideB*ratio, data.SideC*ratio, half, height)
	for i := range right {
		right[i].X += half
	}

	seq := newSequence(st,
		stepDef(lang, "outline"),
		stepDef(lang, "vertices"),
		stepDef(lang, "marks"),
		stepDef(lang, "measurements"),
	)

	var elements []string
	elements = append(elements, stepGroup(seq, "outline",
		polygonEl(left[:], strokeOutline),
		polygonEl(right[:], strokeOutline))...)

	labels := append(vertexLabels(left[:], []string{"A", "B", "C"}),
		vertexLabels(right[:], []string{"A′", "B′", "C′"})...)
	elements = append(elements, stepGroup(seq, "vertices", labels...)...)

	// Matching tick marks on corresponding sides: one tick on the first
	// pair, two on the second, three on the third.
	var marks []string
	for _, tri := range [][3]geometry.Point{left, right} {
		edges := [3][2]geometry.Point{{tri[0], tri[1]}, {tri[1], tri[2]}, {tri[2], tri[0]}}
		for e, edge := range edges {
			for k := 0; k <= e; k++ {
				t := 0.5 + (float64(k)-float64(e)/2)*0.08
				if m1, m2, ok := geometry.TickMark(edge[0], edge[1], t, 10); ok {
					marks = append(marks, lineEl(m1, m2, strokeHighlight, false))
				}
			}
		}
	}
	elements = append(elements, stepGroup(seq, "marks", marks...)...)

	caption := data.Criterion
	if caption == "" {
		caption = "SSS"
	}
	if st.Type == "triangle_similarity" {
		caption = fmt.Sprintf("△ABC ∼ △A′B′C′ · 1:%s", fmtNum(ratio))
	} else {
		caption = fmt.Sprintf("△ABC ≅ △A′B′C′ (%s)", caption)
	}
	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10}, caption))...)

	return elements, seq, nil
}

// ============================================================
// Shared triangle helpers
// ============================================================

// fitTriangle places a triangle by side lengths and maps it into the canvas
// (flipping Y so the apex renders upward).
func fitTriangle(a, b, c, width, height float64) [3]geometry.Point {
	raw := geometry.TriangleVertices(a, b, c)
	flipped := []geometry.Point{
		{X: raw[0].X, Y: -raw[0].Y},
		{X: raw[1].X, Y: -raw[1].Y},
		{X: raw[2].X, Y: -raw[2].Y},
	}
	fitted := geometry.FitPoints(flipped, width, height)
	return [3]geometry.Point{fitted[0], fitted[1], fitted[2]}
}

// vertexLabels emits a dot and a name for each vertex, nudged away from the
// centroid.
func vertexLabels(pts []geometry.Point, names []string) []string {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pts))
	cy /= float64(len(pts))

	var out []string
	for i, p := range pts {
		dx, dy := p.X-cx, p.Y-cy
		length := math.Hypot(dx, dy)
		if length == 0 {
			length = 1
		}
		label := geometry.Point{X: p.X + dx/length*16, Y: p.Y + dy/length*16 + 4}
		out = append(out, dotEl(p, 2.5, strokeOutline), textEl(label, names[i], "middle"))
	}
	return out
}

// sideLabels writes "name = value" beside each side. Sides follow the
// convention: side a opposite vertex A.
func sideLabels(pts [3]geometry.Point, sides [3]float64, names []string) []string {
	edges := [3][2]geometry.Point{
		{pts[1], pts[2]}, // side a, opposite A
		{pts[2], pts[0]}, // side b, opposite B
		{pts[0], pts[1]}, // side c, opposite C
	}

	var out []string
	for i, edge := range edges {
		at := geometry.LabelOffset(edge[0], edge[1], 14)
		out = append(out, measureTextEl(at, fmt.Sprintf("%s = %s", names[i], fmtNum(sides[i]))))
	}
	return out
}

// angleArcs draws the interior-angle arc and value at each vertex.
func angleArcs(pts [3]geometry.Point, angles [3]float64) []string {
	var out []string
	for i := range pts {
		v := pts[i]
		p1 := pts[(i+1)%3]
		p2 := pts[(i+2)%3]

		out = append(out, pathEl(geometry.InteriorArcPath(v, p1, p2, 18), strokeConstruction, "none"))

		// Angle value along the bisector direction.
		bis := bisectorPoint(v, p1, p2, 34)
		out = append(out, measureTextEl(bis, fmtNum(angles[i])+"°"))
	}
	return out
}

func bisectorPoint(v, p1, p2 geometry.Point, dist float64) geometry.Point {
	d1x, d1y := p1.X-v.X, p1.Y-v.Y
	d2x, d2y := p2.X-v.X, p2.Y-v.Y
	l1 := math.Hypot(d1x, d1y)
	l2 := math.Hypot(d2x, d2y)
	if l1 == 0 || l2 == 0 {
		return v
	}
	bx := d1x/l1 + d2x/l2
	by := d1y/l1 + d2y/l2
	bl := math.Hypot(bx, by)
	if bl == 0 {
		return v
	}
	return geometry.Point{X: v.X + bx/bl*dist, Y: v.Y + by/bl*dist + 4}
}

// heightFoot projects apex onto the base line p1-p2.
func heightFoot(apex, p1, p2 geometry.Point) geometry.Point {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p1
	}
	t := ((apex.X-p1.X)*dx + (apex.Y-p1.Y)*dy) / lenSq
	return geometry.Point{X: p1.X + t*dx, Y: p1.Y + t*dy}
}
