package diagram

import (
	"fmt"
	"sort"

	"notesnap/internal/geometry"
	"notesnap/internal/i18n"
)

// ============================================================
// Measurement Calculation
// ============================================================

// DerivationGroup is one categorized, localized derivation (area,
// perimeter, diagonal, ...).
type DerivationGroup struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Steps []geometry.Step `json:"steps"`
}

// Calculation is the /calculate response: the derived measurements plus the
// worked derivations.
type Calculation struct {
	Type         string             `json:"type"`
	Measurements map[string]float64 `json:"measurements"`
	Derivations  []DerivationGroup  `json:"derivations"`
}

// Calculate dispatches the shape descriptor to its calculator and localizes
// the derivation labels.
func Calculate(st State) (*Calculation, error) {
	lang := i18n.Parse(st.Language)

	var (
		measurements map[string]float64
		derivation   geometry.Derivation
		err          error
	)

	switch st.Type {
	case "triangle", "triangle_congruence", "triangle_similarity":
		var data triangleData
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.TriangleResult
		if r, err = geometry.SolveTriangle(geometry.Triangle{A: data.SideA, B: data.SideB, C: data.SideC}); err == nil {
			measurements = map[string]float64{
				"area": r.Area, "perimeter": r.Perimeter,
				"angleA": r.AngleA, "angleB": r.AngleB, "angleC": r.AngleC,
			}
			derivation = r.Steps
		}

	case "right_triangle":
		var data rightTriangleData
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.RightTriangleResult
		if r, err = geometry.SolveRightTriangle(geometry.RightTriangle{LegA: data.LegA, LegB: data.LegB}); err == nil {
			measurements = map[string]float64{
				"hypotenuse": r.Hypotenuse, "area": r.Area, "perimeter": r.Perimeter,
			}
			derivation = r.Steps
		}

	case "circle":
		var data circleData
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.CircleResult
		if r, err = geometry.SolveCircle(geometry.Circle{Radius: data.Radius}); err == nil {
			measurements = map[string]float64{
				"area": r.Area, "circumference": r.Circumference, "diameter": r.Diameter,
			}
			derivation = r.Steps
		}

	case "circle_sector":
		var data sectorData
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.SectorResult
		if r, err = geometry.SolveSector(geometry.Sector{Radius: data.Radius, Angle: data.Angle}); err == nil {
			measurements = map[string]float64{
				"sectorArea": r.SectorArea, "arcLength": r.ArcLength, "chordLength": r.ChordLength,
			}
			derivation = r.Steps
		}

	case "regular_polygon":
		var data polygonData
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.RegularPolygonResult
		if r, err = geometry.SolveRegularPolygon(geometry.RegularPolygon{Sides: data.Sides, SideLength: data.SideLength}); err == nil {
			measurements = map[string]float64{
				"apothem": r.Apothem, "area": r.Area, "perimeter": r.Perimeter,
				"interiorAngle": r.InteriorAngle, "exteriorAngle": r.ExteriorAngle,
			}
			derivation = r.Steps
		}

	case "rhombus":
		var data rhombusData
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.RhombusResult
		if r, err = geometry.SolveRhombus(geometry.Rhombus{Diagonal1: data.Diagonal1, Diagonal2: data.Diagonal2}); err == nil {
			measurements = map[string]float64{
				"area": r.Area, "side": r.Side, "perimeter": r.Perimeter,
			}
			derivation = r.Steps
		}

	case "trapezoid":
		var data trapezoidData
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.TrapezoidResult
		if r, err = geometry.SolveTrapezoid(geometry.Trapezoid{
			BaseA: data.BaseA, BaseB: data.BaseB, Height: data.Height,
			LegLeft: data.LegLeft, LegRight: data.LegRight,
		}); err == nil {
			measurements = map[string]float64{
				"area": r.Area, "midsegment": r.Midsegment,
			}
			if r.Perimeter > 0 {
				measurements["perimeter"] = r.Perimeter
			}
			derivation = r.Steps
		}

	case "rectangle":
		var data rectangleData
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.RectangleResult
		if r, err = geometry.SolveRectangle(geometry.Rectangle{Width: data.Width, Height: data.Height}); err == nil {
			measurements = map[string]float64{
				"area": r.Area, "perimeter": r.Perimeter, "diagonal": r.Diagonal,
			}
			derivation = r.Steps
		}

	case "square":
		var data squareData
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.RectangleResult
		if r, err = geometry.SolveSquare(geometry.Square{Side: data.Side}); err == nil {
			measurements = map[string]float64{
				"area": r.Area, "perimeter": r.Perimeter, "diagonal": r.Diagonal,
			}
			derivation = r.Steps
		}

	case "law_of_sines":
		var data geometry.LawOfSinesInput
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.SolvedTriangle
		if r, err = geometry.SolveLawOfSines(data); err == nil {
			measurements = solvedMeasurements(r)
			derivation = r.Steps
		}

	case "law_of_cosines":
		var data geometry.LawOfCosinesInput
		if err = st.decodeData(&data); err != nil {
			return nil, err
		}
		var r *geometry.SolvedTriangle
		if r, err = geometry.SolveLawOfCosines(data); err == nil {
			measurements = solvedMeasurements(r)
			derivation = r.Steps
		}

	default:
		return nil, fmt.Errorf("no calculator for diagram type %q", st.Type)
	}

	if err != nil {
		return nil, err
	}

	return &Calculation{
		Type:         st.Type,
		Measurements: measurements,
		Derivations:  localizeDerivation(derivation, lang),
	}, nil
}

func solvedMeasurements(r *geometry.SolvedTriangle) map[string]float64 {
	return map[string]float64{
		"sideA": r.SideA, "sideB": r.SideB, "sideC": r.SideC,
		"angleA": r.AngleA, "angleB": r.AngleB, "angleC": r.AngleC,
	}
}

// localizeDerivation orders the groups deterministically and attaches the
// localized category label.
func localizeDerivation(derivation geometry.Derivation, lang i18n.Language) []DerivationGroup {
	keys := make([]string, 0, len(derivation))
	for key := range derivation {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	out := make([]DerivationGroup, 0, len(keys))
	for _, key := range keys {
		out = append(out, DerivationGroup{
			Key:   key,
			Label: i18n.T(lang, "calc."+key),
			Steps: derivation[key],
		})
	}
	return out
}
