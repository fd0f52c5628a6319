package geometry

import (
	"fmt"
	"math"
)

// ============================================================
// Regular Polygon
// ============================================================

type RegularPolygon struct {
	Sides      int     `json:"sides"`
	SideLength float64 `json:"sideLength"`
}

type RegularPolygonResult struct {
	Apothem       float64    `json:"apothem"`
	Area          float64    `json:"area"`
	Perimeter     float64    `json:"perimeter"`
	InteriorAngle float64    `json:"interiorAngle"`
	ExteriorAngle float64    `json:"exteriorAngle"`
	Circumradius  float64    `json:"circumradius"`
	Steps         Derivation `json:"steps"`
}

func SolveRegularPolygon(p RegularPolygon) (*RegularPolygonResult, error) {
	if p.Sides < 3 {
		return nil, fmt.Errorf("%w: sides=%d, need at least 3", ErrNonPositive, p.Sides)
	}
	if err := requirePositive("sideLength", p.SideLength); err != nil {
		return nil, err
	}

	n := float64(p.Sides)
	apothem := p.SideLength / (2 * math.Tan(math.Pi/n))
	perimeter := n * p.SideLength
	area := perimeter * apothem / 2
	interior := (n - 2) * 180 / n
	exterior := 360 / n
	circumradius := p.SideLength / (2 * math.Sin(math.Pi/n))

	steps := Derivation{
		"apothem": {
			{
				Formula:      "a = s / (2·tan(180°/n))",
				Substitution: fmt.Sprintf("a = %s / (2 · tan(180°/%d))", fmtNum(p.SideLength), p.Sides),
				Result:       fmt.Sprintf("a = %s", fmtNum(apothem)),
			},
		},
		"perimeter": {
			{
				Formula:      "P = n · s",
				Substitution: fmt.Sprintf("P = %d · %s", p.Sides, fmtNum(p.SideLength)),
				Result:       fmt.Sprintf("P = %s", fmtNum(perimeter)),
			},
		},
		"area": {
			{
				Formula:      "A = (P · a) / 2",
				Substitution: fmt.Sprintf("A = (%s · %s) / 2", fmtNum(perimeter), fmtNum(apothem)),
				Result:       fmt.Sprintf("A = %s", fmtNum(area)),
			},
		},
		"interior_angle": {
			{
				Formula:      "α = (n − 2) · 180° / n",
				Substitution: fmt.Sprintf("α = (%d − 2) · 180° / %d", p.Sides, p.Sides),
				Result:       fmt.Sprintf("α = %s°", fmtNum(interior)),
			},
		},
		"exterior_angle": {
			{
				Formula:      "β = 360° / n",
				Substitution: fmt.Sprintf("β = 360° / %d", p.Sides),
				Result:       fmt.Sprintf("β = %s°", fmtNum(exterior)),
			},
		},
	}

	return &RegularPolygonResult{
		Apothem:       apothem,
		Area:          area,
		Perimeter:     perimeter,
		InteriorAngle: interior,
		ExteriorAngle: exterior,
		Circumradius:  circumradius,
		Steps:         steps,
	}, nil
}

// RegularPolygonVertices places the polygon on its circumcircle in shape
// space, first vertex at the top.
func RegularPolygonVertices(sides int, sideLength float64) []Point {
	n := float64(sides)
	r := sideLength / (2 * math.Sin(math.Pi/n))

	points := make([]Point, 0, sides)
	for i := 0; i < sides; i++ {
		angle := -math.Pi/2 + 2*math.Pi*float64(i)/n
		points = append(points, Point{
			X: r * math.Cos(angle),
			Y: r * math.Sin(angle),
		})
	}
	return points
}
