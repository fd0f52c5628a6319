package diagram

import (
	"fmt"

	"notesnap/internal/geometry"
	"notesnap/internal/i18n"
	"notesnap/internal/steps"
)

// ============================================================
// Trigonometric Law Renderers
// ============================================================

func renderLawOfSines(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data geometry.LawOfSinesInput
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	solved, err := geometry.SolveLawOfSines(data)
	if err != nil {
		return nil, nil, err
	}

	caption := "a / sin(α) = b / sin(β) = c / sin(γ)"
	return renderSolvedTriangle(st, lang, width, height, solved, caption)
}

func renderLawOfCosines(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data geometry.LawOfCosinesInput
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}

	solved, err := geometry.SolveLawOfCosines(data)
	if err != nil {
		return nil, nil, err
	}

	caption := "c² = a² + b² − 2ab·cos(γ)"
	return renderSolvedTriangle(st, lang, width, height, solved, caption)
}

// renderSolvedTriangle lays out a fully solved triangle with the law
// formula as the final reveal.
func renderSolvedTriangle(st State, lang i18n.Language, width, height float64, solved *geometry.SolvedTriangle, caption string) ([]string, *steps.Sequence, error) {
	pts := fitTriangle(solved.SideA, solved.SideB, solved.SideC, width, height)

	seq := newSequence(st,
		stepDef(lang, "outline"),
		stepDef(lang, "vertices"),
		stepDef(lang, "sides"),
		stepDef(lang, "angles"),
		stepDef(lang, "measurements"),
	)

	var elements []string
	elements = append(elements, stepGroup(seq, "outline",
		polygonEl(pts[:], strokeOutline))...)
	elements = append(elements, stepGroup(seq, "vertices",
		vertexLabels(pts[:], []string{"A", "B", "C"})...)...)
	elements = append(elements, stepGroup(seq, "sides",
		sideLabels(pts, [3]float64{solved.SideA, solved.SideB, solved.SideC}, []string{"a", "b", "c"})...)...)
	elements = append(elements, stepGroup(seq, "angles",
		angleArcs(pts, [3]float64{solved.AngleA, solved.AngleB, solved.AngleC})...)...)
	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10}, caption),
		measureTextEl(geometry.Point{X: width / 2, Y: height - 26},
			fmt.Sprintf("%s: a = %s, b = %s, c = %s", i18n.T(lang, "calc.sides"),
				fmtNum(solved.SideA), fmtNum(solved.SideB), fmtNum(solved.SideC))))...)

	return elements, seq, nil
}
