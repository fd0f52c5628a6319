package diagram

import (
	"fmt"

	"notesnap/internal/geometry"
	"notesnap/internal/i18n"
	"notesnap/internal/steps"
)

// ============================================================
// Regular Polygon Renderer
// ============================================================

type polygonData struct {
	Sides      int     `json:"sides"`
	SideLength float64 `json:"sideLength"`
}

func renderRegularPolygon(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data polygonData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	result, err := geometry.SolveRegularPolygon(geometry.RegularPolygon{Sides: data.Sides, SideLength: data.SideLength})
	if err != nil {
		return nil, nil, err
	}

	pts := geometry.FitPoints(geometry.RegularPolygonVertices(data.Sides, data.SideLength), width, height)

	// The apothem construction is on by default; StepConfig can disable it.
	showApothem := st.stepEnabled("apothem", true)
	defs := []steps.Definition{
		stepDef(lang, "outline"),
		stepDef(lang, "sides"),
	}
	if showApothem {
		defs = append(defs, stepDef(lang, "apothem"))
	}
	defs = append(defs, stepDef(lang, "angles"), stepDef(lang, "measurements"))
	seq := newSequence(st, defs...)

	var elements []string
	elements = append(elements, stepGroup(seq, "outline",
		polygonEl(pts, strokeOutline))...)

	elements = append(elements, stepGroup(seq, "sides",
		measureTextEl(geometry.LabelOffset(pts[0], pts[1], 16),
			fmt.Sprintf("s = %s", fmtNum(data.SideLength))))...)

	if showApothem {
		center := centroid(pts)
		mid := geometry.Midpoint(pts[0], pts[1])
		elements = append(elements, stepGroup(seq, "apothem",
			lineEl(center, mid, strokeConstruction, true),
			dotEl(center, 2.5, strokeOutline),
			measureTextEl(geometry.LabelOffset(center, mid, 14),
				fmt.Sprintf("a = %s", fmtNum(result.Apothem))))...)
	}

	last := len(pts) - 1
	elements = append(elements, stepGroup(seq, "angles",
		pathEl(geometry.InteriorArcPath(pts[0], pts[1], pts[last], 16), strokeConstruction, "none"),
		measureTextEl(bisectorPoint(pts[0], pts[1], pts[last], 32), fmtNum(result.InteriorAngle)+"°"))...)

	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 26},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.area"), fmtNum(result.Area))),
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.perimeter"), fmtNum(result.Perimeter))))...)

	return elements, seq, nil
}

func centroid(pts []geometry.Point) geometry.Point {
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	n := float64(len(pts))
	return geometry.Point{X: cx / n, Y: cy / n}
}
