package geometry

import (
	"fmt"
	"math"
)

// ============================================================
// Triangle
// ============================================================

// Triangle describes a triangle by its three side lengths. Side a lies
// opposite vertex A, and so on.
type Triangle struct {
	A float64 `json:"sideA"`
	B float64 `json:"sideB"`
	C float64 `json:"sideC"`
}

type TriangleResult struct {
	Area      float64 `json:"area"`
	Perimeter float64 `json:"perimeter"`
	// Interior angles in degrees, opposite the same-named side.
	AngleA float64 `json:"angleA"`
	AngleB float64 `json:"angleB"`
	AngleC float64 `json:"angleC"`
	// Height from vertex C onto side c.
	Height float64    `json:"height"`
	Steps  Derivation `json:"steps"`
}

func (t Triangle) validate() error {
	if err := requirePositive("sideA", t.A); err != nil {
		return err
	}
	if err := requirePositive("sideB", t.B); err != nil {
		return err
	}
	if err := requirePositive("sideC", t.C); err != nil {
		return err
	}
	if t.A+t.B <= t.C || t.B+t.C <= t.A || t.A+t.C <= t.B {
		return fmt.Errorf("%w: %s, %s, %s", ErrDegenerate, fmtNum(t.A), fmtNum(t.B), fmtNum(t.C))
	}
	return nil
}

// SolveTriangle computes area (Heron's formula), perimeter and interior
// angles (law of cosines) with worked derivation steps.
func SolveTriangle(t Triangle) (*TriangleResult, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	perimeter := t.A + t.B + t.C
	s := perimeter / 2
	area := math.Sqrt(s * (s - t.A) * (s - t.B) * (s - t.C))
	height := 2 * area / t.C

	angleA := lawOfCosinesAngle(t.B, t.C, t.A)
	angleB := lawOfCosinesAngle(t.A, t.C, t.B)
	angleC := 180 - angleA - angleB

	steps := Derivation{
		"perimeter": {
			{
				Formula:      "P = a + b + c",
				Substitution: fmt.Sprintf("P = %s + %s + %s", fmtNum(t.A), fmtNum(t.B), fmtNum(t.C)),
				Result:       fmt.Sprintf("P = %s", fmtNum(perimeter)),
			},
		},
		"area": {
			{
				Formula:      "s = (a + b + c) / 2",
				Substitution: fmt.Sprintf("s = (%s + %s + %s) / 2", fmtNum(t.A), fmtNum(t.B), fmtNum(t.C)),
				Result:       fmt.Sprintf("s = %s", fmtNum(s)),
			},
			{
				Formula:      "A = √(s(s−a)(s−b)(s−c))",
				Substitution: fmt.Sprintf("A = √(%s·%s·%s·%s)", fmtNum(s), fmtNum(s-t.A), fmtNum(s-t.B), fmtNum(s-t.C)),
				Result:       fmt.Sprintf("A = %s", fmtNum(area)),
			},
		},
		"angles": {
			{
				Formula:      "cos(α) = (b² + c² − a²) / 2bc",
				Substitution: fmt.Sprintf("cos(α) = (%s + %s − %s) / %s", fmtNum(t.B*t.B), fmtNum(t.C*t.C), fmtNum(t.A*t.A), fmtNum(2*t.B*t.C)),
				Result:       fmt.Sprintf("α = %s°", fmtNum(angleA)),
			},
			{
				Formula:      "cos(β) = (a² + c² − b²) / 2ac",
				Substitution: fmt.Sprintf("cos(β) = (%s + %s − %s) / %s", fmtNum(t.A*t.A), fmtNum(t.C*t.C), fmtNum(t.B*t.B), fmtNum(2*t.A*t.C)),
				Result:       fmt.Sprintf("β = %s°", fmtNum(angleB)),
			},
			{
				Formula:      "γ = 180° − α − β",
				Substitution: fmt.Sprintf("γ = 180° − %s° − %s°", fmtNum(angleA), fmtNum(angleB)),
				Result:       fmt.Sprintf("γ = %s°", fmtNum(angleC)),
			},
		},
	}

	return &TriangleResult{
		Area:      area,
		Perimeter: perimeter,
		AngleA:    angleA,
		AngleB:    angleB,
		AngleC:    angleC,
		Height:    height,
		Steps:     steps,
	}, nil
}

// lawOfCosinesAngle returns the angle (degrees) opposite side `opp` given the
// two adjacent sides.
func lawOfCosinesAngle(adj1, adj2, opp float64) float64 {
	cos := (adj1*adj1 + adj2*adj2 - opp*opp) / (2 * adj1 * adj2)
	// Floating error can push the ratio just outside [-1, 1].
	if cos > 1 {
		cos = 1
	}
	if cos < -1 {
		cos = -1
	}
	return radToDeg(math.Acos(cos))
}

// ============================================================
// Right triangle
// ============================================================

type RightTriangle struct {
	LegA float64 `json:"legA"`
	LegB float64 `json:"legB"`
}

type RightTriangleResult struct {
	Hypotenuse float64    `json:"hypotenuse"`
	Area       float64    `json:"area"`
	Perimeter  float64    `json:"perimeter"`
	AngleA     float64    `json:"angleA"`
	AngleB     float64    `json:"angleB"`
	Steps      Derivation `json:"steps"`
}

// SolveRightTriangle derives the hypotenuse via the Pythagorean theorem.
func SolveRightTriangle(t RightTriangle) (*RightTriangleResult, error) {
	if err := requirePositive("legA", t.LegA); err != nil {
		return nil, err
	}
	if err := requirePositive("legB", t.LegB); err != nil {
		return nil, err
	}

	hyp := math.Hypot(t.LegA, t.LegB)
	area := t.LegA * t.LegB / 2
	perimeter := t.LegA + t.LegB + hyp
	angleA := radToDeg(math.Atan2(t.LegA, t.LegB))

	steps := Derivation{
		"hypotenuse": {
			{
				Formula:      "c² = a² + b²",
				Substitution: fmt.Sprintf("c² = %s + %s", fmtNum(t.LegA*t.LegA), fmtNum(t.LegB*t.LegB)),
				Result:       fmt.Sprintf("c = %s", fmtNum(hyp)),
			},
		},
		"area": {
			{
				Formula:      "A = (a · b) / 2",
				Substitution: fmt.Sprintf("A = (%s · %s) / 2", fmtNum(t.LegA), fmtNum(t.LegB)),
				Result:       fmt.Sprintf("A = %s", fmtNum(area)),
			},
		},
		"perimeter": {
			{
				Formula:      "P = a + b + c",
				Substitution: fmt.Sprintf("P = %s + %s + %s", fmtNum(t.LegA), fmtNum(t.LegB), fmtNum(hyp)),
				Result:       fmt.Sprintf("P = %s", fmtNum(perimeter)),
			},
		},
	}

	return &RightTriangleResult{
		Hypotenuse: hyp,
		Area:       area,
		Perimeter:  perimeter,
		AngleA:     angleA,
		AngleB:     90 - angleA,
		Steps:      steps,
	}, nil
}

// ============================================================
// Triangle solving (law of sines / cosines)
// ============================================================

// LawOfSinesInput gives two angles (degrees) and the side opposite the first.
type LawOfSinesInput struct {
	AngleA float64 `json:"angleA"`
	AngleB float64 `json:"angleB"`
	SideA  float64 `json:"sideA"`
}

// LawOfCosinesInput gives two sides and the included angle (degrees).
type LawOfCosinesInput struct {
	SideA  float64 `json:"sideA"`
	SideB  float64 `json:"sideB"`
	AngleC float64 `json:"angleC"`
}

// SolvedTriangle is a fully determined triangle: all sides and all angles.
type SolvedTriangle struct {
	SideA  float64    `json:"sideA"`
	SideB  float64    `json:"sideB"`
	SideC  float64    `json:"sideC"`
	AngleA float64    `json:"angleA"`
	AngleB float64    `json:"angleB"`
	AngleC float64    `json:"angleC"`
	Steps  Derivation `json:"steps"`
}

// SolveLawOfSines completes the triangle from two angles and one opposite
// side using a / sin(α) = b / sin(β) = c / sin(γ).
func SolveLawOfSines(in LawOfSinesInput) (*SolvedTriangle, error) {
	if err := requirePositive("angleA", in.AngleA); err != nil {
		return nil, err
	}
	if err := requirePositive("angleB", in.AngleB); err != nil {
		return nil, err
	}
	if err := requirePositive("sideA", in.SideA); err != nil {
		return nil, err
	}
	if in.AngleA+in.AngleB >= 180 {
		return nil, fmt.Errorf("%w: angles %s° + %s° leave no third angle", ErrDegenerate, fmtNum(in.AngleA), fmtNum(in.AngleB))
	}

	angleC := 180 - in.AngleA - in.AngleB
	ratio := in.SideA / math.Sin(degToRad(in.AngleA))
	sideB := ratio * math.Sin(degToRad(in.AngleB))
	sideC := ratio * math.Sin(degToRad(angleC))

	steps := Derivation{
		"angles": {
			{
				Formula:      "γ = 180° − α − β",
				Substitution: fmt.Sprintf("γ = 180° − %s° − %s°", fmtNum(in.AngleA), fmtNum(in.AngleB)),
				Result:       fmt.Sprintf("γ = %s°", fmtNum(angleC)),
			},
		},
		"sides": {
			{
				Formula:      "b = a · sin(β) / sin(α)",
				Substitution: fmt.Sprintf("b = %s · sin(%s°) / sin(%s°)", fmtNum(in.SideA), fmtNum(in.AngleB), fmtNum(in.AngleA)),
				Result:       fmt.Sprintf("b = %s", fmtNum(sideB)),
			},
			{
				Formula:      "c = a · sin(γ) / sin(α)",
				Substitution: fmt.Sprintf("c = %s · sin(%s°) / sin(%s°)", fmtNum(in.SideA), fmtNum(angleC), fmtNum(in.AngleA)),
				Result:       fmt.Sprintf("c = %s", fmtNum(sideC)),
			},
		},
	}

	return &SolvedTriangle{
		SideA:  in.SideA,
		SideB:  sideB,
		SideC:  sideC,
		AngleA: in.AngleA,
		AngleB: in.AngleB,
		AngleC: angleC,
		Steps:  steps,
	}, nil
}

// SolveLawOfCosines completes the triangle from two sides and the included
// angle using c² = a² + b² − 2ab·cos(γ).
func SolveLawOfCosines(in LawOfCosinesInput) (*SolvedTriangle, error) {
	if err := requirePositive("sideA", in.SideA); err != nil {
		return nil, err
	}
	if err := requirePositive("sideB", in.SideB); err != nil {
		return nil, err
	}
	if err := requirePositive("angleC", in.AngleC); err != nil {
		return nil, err
	}
	if in.AngleC >= 180 {
		return nil, fmt.Errorf("%w: included angle %s°", ErrDegenerate, fmtNum(in.AngleC))
	}

	sideC := math.Sqrt(in.SideA*in.SideA + in.SideB*in.SideB - 2*in.SideA*in.SideB*math.Cos(degToRad(in.AngleC)))
	angleA := lawOfCosinesAngle(in.SideB, sideC, in.SideA)
	angleB := 180 - angleA - in.AngleC

	steps := Derivation{
		"sides": {
			{
				Formula:      "c² = a² + b² − 2ab·cos(γ)",
				Substitution: fmt.Sprintf("c² = %s + %s − %s·cos(%s°)", fmtNum(in.SideA*in.SideA), fmtNum(in.SideB*in.SideB), fmtNum(2*in.SideA*in.SideB), fmtNum(in.AngleC)),
				Result:       fmt.Sprintf("c = %s", fmtNum(sideC)),
			},
		},
		"angles": {
			{
				Formula:      "cos(α) = (b² + c² − a²) / 2bc",
				Substitution: fmt.Sprintf("cos(α) = (%s + %s − %s) / %s", fmtNum(in.SideB*in.SideB), fmtNum(sideC*sideC), fmtNum(in.SideA*in.SideA), fmtNum(2*in.SideB*sideC)),
				Result:       fmt.Sprintf("α = %s°", fmtNum(angleA)),
			},
			{
				Formula:      "β = 180° − α − γ",
				Substitution: fmt.Sprintf("β = 180° − %s° − %s°", fmtNum(angleA), fmtNum(in.AngleC)),
				Result:       fmt.Sprintf("β = %s°", fmtNum(angleB)),
			},
		},
	}

	return &SolvedTriangle{
		SideA:  in.SideA,
		SideB:  in.SideB,
		SideC:  sideC,
		AngleA: angleA,
		AngleB: angleB,
		AngleC: in.AngleC,
		Steps:  steps,
	}, nil
}

// ============================================================
// Vertex placement
// ============================================================

// TriangleVertices places a triangle with the given side lengths in shape
// space: A at the origin, B on the positive x axis, C above. Side a lies
// opposite vertex A.
func TriangleVertices(a, b, c float64) [3]Point {
	x := (b*b + c*c - a*a) / (2 * c)
	y2 := b*b - x*x
	if y2 < 0 {
		y2 = 0
	}
	return [3]Point{
		{X: 0, Y: 0},
		{X: c, Y: 0},
		{X: x, Y: math.Sqrt(y2)},
	}
}
