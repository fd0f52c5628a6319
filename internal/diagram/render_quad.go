package diagram

import (
	"fmt"

	"notesnap/internal/geometry"
	"notesnap/internal/i18n"
	"notesnap/internal/steps"
)

// ============================================================
// Quadrilateral Renderers
// ============================================================

type rhombusData struct {
	Diagonal1 float64 `json:"diagonal1"`
	Diagonal2 float64 `json:"diagonal2"`
}

func renderRhombus(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data rhombusData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	result, err := geometry.SolveRhombus(geometry.Rhombus{Diagonal1: data.Diagonal1, Diagonal2: data.Diagonal2})
	if err != nil {
		return nil, nil, err
	}

	raw := []geometry.Point{
		{X: -data.Diagonal1 / 2, Y: 0},
		{X: 0, Y: -data.Diagonal2 / 2},
		{X: data.Diagonal1 / 2, Y: 0},
		{X: 0, Y: data.Diagonal2 / 2},
	}
	pts := geometry.FitPoints(raw, width, height)

	showDiagonals := st.stepEnabled("diagonals", true)
	defs := []steps.Definition{
		stepDef(lang, "outline"),
		stepDef(lang, "vertices"),
	}
	if showDiagonals {
		defs = append(defs, stepDef(lang, "diagonals"))
	}
	defs = append(defs, stepDef(lang, "measurements"))
	seq := newSequence(st, defs...)

	var elements []string
	elements = append(elements, stepGroup(seq, "outline",
		polygonEl(pts, strokeOutline))...)
	elements = append(elements, stepGroup(seq, "vertices",
		vertexLabels(pts, []string{"A", "B", "C", "D"})...)...)

	if showDiagonals {
		elements = append(elements, stepGroup(seq, "diagonals",
			lineEl(pts[0], pts[2], strokeConstruction, true),
			lineEl(pts[1], pts[3], strokeConstruction, true),
			measureTextEl(geometry.LabelOffset(pts[0], pts[2], 12),
				fmt.Sprintf("d₁ = %s", fmtNum(data.Diagonal1))),
			measureTextEl(geometry.LabelOffset(pts[1], pts[3], 12),
				fmt.Sprintf("d₂ = %s", fmtNum(data.Diagonal2))))...)
	}

	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 26},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.area"), fmtNum(result.Area))),
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.side"), fmtNum(result.Side))))...)

	return elements, seq, nil
}

type trapezoidData struct {
	BaseA          float64 `json:"baseA"`
	BaseB          float64 `json:"baseB"`
	Height         float64 `json:"height"`
	LegLeft        float64 `json:"legLeft,omitempty"`
	LegRight       float64 `json:"legRight,omitempty"`
	ShowMidsegment bool    `json:"showMidsegment,omitempty"`
}

func renderTrapezoid(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data trapezoidData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	trap := geometry.Trapezoid{
		BaseA: data.BaseA, BaseB: data.BaseB, Height: data.Height,
		LegLeft: data.LegLeft, LegRight: data.LegRight,
	}
	result, err := geometry.SolveTrapezoid(trap)
	if err != nil {
		return nil, nil, err
	}

	rawQuad := geometry.TrapezoidVertices(trap)
	pts := geometry.FitPoints(rawQuad[:], width, height)

	showMid := st.stepEnabled("midsegment", data.ShowMidsegment)
	defs := []steps.Definition{
		stepDef(lang, "outline"),
		stepDef(lang, "vertices"),
		stepDef(lang, "height"),
	}
	if showMid {
		defs = append(defs, stepDef(lang, "midsegment"))
	}
	defs = append(defs, stepDef(lang, "measurements"))
	seq := newSequence(st, defs...)

	var elements []string
	elements = append(elements, stepGroup(seq, "outline",
		polygonEl(pts, strokeOutline))...)
	elements = append(elements, stepGroup(seq, "vertices",
		vertexLabels(pts, []string{"A", "B", "C", "D"})...)...)

	foot := heightFoot(pts[3], pts[0], pts[1])
	elements = append(elements, stepGroup(seq, "height",
		lineEl(pts[3], foot, strokeConstruction, true),
		measureTextEl(geometry.LabelOffset(pts[3], foot, -12),
			fmt.Sprintf("h = %s", fmtNum(data.Height))))...)

	if showMid {
		m1 := geometry.Midpoint(pts[0], pts[3])
		m2 := geometry.Midpoint(pts[1], pts[2])
		elements = append(elements, stepGroup(seq, "midsegment",
			lineEl(m1, m2, strokeMeasure, true),
			measureTextEl(geometry.LabelOffset(m1, m2, -12),
				fmt.Sprintf("m = %s", fmtNum(result.Midsegment))))...)
	}

	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 26},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.area"), fmtNum(result.Area))),
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.midsegment"), fmtNum(result.Midsegment))))...)

	return elements, seq, nil
}

type rectangleData struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	ShowDiagonal bool    `json:"showDiagonal,omitempty"`
}

func renderRectangle(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data rectangleData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	result, err := geometry.SolveRectangle(geometry.Rectangle{Width: data.Width, Height: data.Height})
	if err != nil {
		return nil, nil, err
	}

	return renderBox(st, lang, width, height, data.Width, data.Height, data.ShowDiagonal, result)
}

type squareData struct {
	Side         float64 `json:"side"`
	ShowDiagonal bool    `json:"showDiagonal,omitempty"`
}

func renderSquare(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data squareData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	result, err := geometry.SolveSquare(geometry.Square{Side: data.Side})
	if err != nil {
		return nil, nil, err
	}

	return renderBox(st, lang, width, height, data.Side, data.Side, data.ShowDiagonal, result)
}

// renderBox is the shared rectangle/square renderer.
func renderBox(st State, lang i18n.Language, width, height float64, w, h float64, showDiagonal bool, result *geometry.RectangleResult) ([]string, *steps.Sequence, error) {
	raw := []geometry.Point{
		{X: 0, Y: 0},
		{X: w, Y: 0},
		{X: w, Y: h},
		{X: 0, Y: h},
	}
	pts := geometry.FitPoints(raw, width, height)

	showDiagonal = st.stepEnabled("diagonals", showDiagonal)
	defs := []steps.Definition{
		stepDef(lang, "outline"),
		stepDef(lang, "vertices"),
		stepDef(lang, "sides"),
	}
	if showDiagonal {
		defs = append(defs, stepDef(lang, "diagonals"))
	}
	defs = append(defs, stepDef(lang, "measurements"))
	seq := newSequence(st, defs...)

	var elements []string
	elements = append(elements, stepGroup(seq, "outline",
		polygonEl(pts, strokeOutline))...)
	elements = append(elements, stepGroup(seq, "vertices",
		vertexLabels(pts, []string{"A", "B", "C", "D"})...)...)
	elements = append(elements, stepGroup(seq, "sides",
		measureTextEl(geometry.LabelOffset(pts[1], pts[0], 14), fmt.Sprintf("w = %s", fmtNum(w))),
		measureTextEl(geometry.LabelOffset(pts[1], pts[2], 14), fmt.Sprintf("h = %s", fmtNum(h))))...)

	if showDiagonal {
		elements = append(elements, stepGroup(seq, "diagonals",
			lineEl(pts[0], pts[2], strokeConstruction, true),
			measureTextEl(geometry.LabelOffset(pts[0], pts[2], 12),
				fmt.Sprintf("d = %s", fmtNum(result.Diagonal))))...)
	}

	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 26},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.area"), fmtNum(result.Area))),
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10},
			fmt.Sprintf("%s = %s", i18n.T(lang, "calc.perimeter"), fmtNum(result.Perimeter))))...)

	return elements, seq, nil
}
