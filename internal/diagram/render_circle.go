package diagram

import (
	"fmt"
	"math"

	"notesnap/internal/geometry"
	"notesnap/internal/i18n"
	"notesnap/internal/steps"
)

// ============================================================
// Circle Renderers
// ============================================================

type circleData struct {
	Radius float64 `json:"radius"`
}

func renderCircle(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data circleData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	result, err := geometry.SolveCircle(geometry.Circle{Radius: data.Radius})
	if err != nil {
		return nil, nil, err
	}

	center := geometry.Point{X: width / 2, Y: height / 2}
	r := math.Min(width, height) / 2 * 0.82

	seq := newSequence(st,
		stepDef(lang, "outline"),
		stepDef(lang, "radius"),
		stepDef(lang, "measurements"),
	)

	var elements []string
	elements = append(elements, stepGroup(seq, "outline",
		circleEl(center, r, strokeOutline),
		dotEl(center, 2.5, strokeOutline))...)

	edge := geometry.Point{X: center.X + r*math.Cos(-math.Pi/4), Y: center.Y + r*math.Sin(-math.Pi/4)}
	elements = append(elements, stepGroup(seq, "radius",
		lineEl(center, edge, strokeConstruction, true),
		measureTextEl(geometry.LabelOffset(center, edge, 12), fmt.Sprintf("r = %s", fmtNum(data.Radius))))...)

	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 26},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.area"), fmtNum(result.Area))),
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.circumference"), fmtNum(result.Circumference))))...)

	return elements, seq, nil
}

type sectorData struct {
	Radius float64 `json:"radius"`
	Angle  float64 `json:"angle"`
}

func renderSector(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data sectorData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	result, err := geometry.SolveSector(geometry.Sector{Radius: data.Radius, Angle: data.Angle})
	if err != nil {
		return nil, nil, err
	}

	center := geometry.Point{X: width / 2, Y: height / 2}
	r := math.Min(width, height) / 2 * 0.82

	// Sector opens symmetrically around the upward direction.
	start := -math.Pi/2 - degToRad(data.Angle)/2
	end := -math.Pi/2 + degToRad(data.Angle)/2
	p1 := geometry.Point{X: center.X + r*math.Cos(start), Y: center.Y + r*math.Sin(start)}
	p2 := geometry.Point{X: center.X + r*math.Cos(end), Y: center.Y + r*math.Sin(end)}

	seq := newSequence(st,
		stepDef(lang, "outline"),
		stepDef(lang, "sector"),
		stepDef(lang, "construction"),
		stepDef(lang, "measurements"),
	)

	var elements []string
	elements = append(elements, stepGroup(seq, "outline",
		circleEl(center, r, strokeOutline),
		dotEl(center, 2.5, strokeOutline))...)

	largeArc := 0
	if data.Angle > 180 {
		largeArc = 1
	}
	sectorPath := fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		fmtNum(center.X), fmtNum(center.Y),
		fmtNum(p1.X), fmtNum(p1.Y),
		fmtNum(r), fmtNum(r), largeArc,
		fmtNum(p2.X), fmtNum(p2.Y))
	elements = append(elements, stepGroup(seq, "sector",
		fmt.Sprintf(`<path d="%s" fill="%s" fill-opacity="0.15" stroke="%s" stroke-width="1.5" />`,
			sectorPath, strokeMeasure, strokeMeasure),
		measureTextEl(geometry.Point{X: center.X, Y: center.Y - r/2}, fmtNum(data.Angle)+"°"))...)

	elements = append(elements, stepGroup(seq, "construction",
		lineEl(p1, p2, strokeConstruction, true),
		measureTextEl(geometry.LabelOffset(p1, p2, -14), fmt.Sprintf("%s = %s", i18n.T(lang, "calc.chord"), fmtNum(result.ChordLength))))...)

	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 26},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.sector_area"), fmtNum(result.SectorArea))),
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.arc_length"), fmtNum(result.ArcLength))))...)

	return elements, seq, nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
