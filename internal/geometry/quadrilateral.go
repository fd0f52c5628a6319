package geometry

import (
	"fmt"
	"math"
)

// ============================================================
// Rhombus
// ============================================================

// Rhombus is described by its two diagonals.
type Rhombus struct {
	Diagonal1 float64 `json:"diagonal1"`
	Diagonal2 float64 `json:"diagonal2"`
}

type RhombusResult struct {
	Area      float64    `json:"area"`
	Side      float64    `json:"side"`
	Perimeter float64    `json:"perimeter"`
	Steps     Derivation `json:"steps"`
}

func SolveRhombus(r Rhombus) (*RhombusResult, error) {
	if err := requirePositive("diagonal1", r.Diagonal1); err != nil {
		return nil, err
	}
	if err := requirePositive("diagonal2", r.Diagonal2); err != nil {
		return nil, err
	}

	area := r.Diagonal1 * r.Diagonal2 / 2
	// The diagonals bisect each other at right angles, so each side is the
	// hypotenuse over the half diagonals.
	side := math.Hypot(r.Diagonal1/2, r.Diagonal2/2)
	perimeter := 4 * side

	steps := Derivation{
		"area": {
			{
				Formula:      "A = (d₁ · d₂) / 2",
				Substitution: fmt.Sprintf("A = (%s · %s) / 2", fmtNum(r.Diagonal1), fmtNum(r.Diagonal2)),
				Result:       fmt.Sprintf("A = %s", fmtNum(area)),
			},
		},
		"side": {
			{
				Formula:      "s = √((d₁/2)² + (d₂/2)²)",
				Substitution: fmt.Sprintf("s = √(%s + %s)", fmtNum(r.Diagonal1*r.Diagonal1/4), fmtNum(r.Diagonal2*r.Diagonal2/4)),
				Result:       fmt.Sprintf("s = %s", fmtNum(side)),
			},
		},
		"perimeter": {
			{
				Formula:      "P = 4 · s",
				Substitution: fmt.Sprintf("P = 4 · %s", fmtNum(side)),
				Result:       fmt.Sprintf("P = %s", fmtNum(perimeter)),
			},
		},
	}

	return &RhombusResult{
		Area:      area,
		Side:      side,
		Perimeter: perimeter,
		Steps:     steps,
	}, nil
}

// ============================================================
// Trapezoid
// ============================================================

// Trapezoid has parallel bases A and B and the height between them. Legs are
// optional; when both are given the perimeter is derived too.
type Trapezoid struct {
	BaseA    float64 `json:"baseA"`
	BaseB    float64 `json:"baseB"`
	Height   float64 `json:"height"`
	LegLeft  float64 `json:"legLeft,omitempty"`
	LegRight float64 `json:"legRight,omitempty"`
}

type TrapezoidResult struct {
	Area       float64    `json:"area"`
	Midsegment float64    `json:"midsegment"`
	Perimeter  float64    `json:"perimeter,omitempty"`
	Steps      Derivation `json:"steps"`
}

func SolveTrapezoid(t Trapezoid) (*TrapezoidResult, error) {
	if err := requirePositive("baseA", t.BaseA); err != nil {
		return nil, err
	}
	if err := requirePositive("baseB", t.BaseB); err != nil {
		return nil, err
	}
	if err := requirePositive("height", t.Height); err != nil {
		return nil, err
	}

	area := (t.BaseA + t.BaseB) / 2 * t.Height
	midsegment := (t.BaseA + t.BaseB) / 2

	steps := Derivation{
		"area": {
			{
				Formula:      "A = ((a + b) / 2) · h",
				Substitution: fmt.Sprintf("A = ((%s + %s) / 2) · %s", fmtNum(t.BaseA), fmtNum(t.BaseB), fmtNum(t.Height)),
				Result:       fmt.Sprintf("A = %s", fmtNum(area)),
			},
		},
		"midsegment": {
			{
				Formula:      "m = (a + b) / 2",
				Substitution: fmt.Sprintf("m = (%s + %s) / 2", fmtNum(t.BaseA), fmtNum(t.BaseB)),
				Result:       fmt.Sprintf("m = %s", fmtNum(midsegment)),
			},
		},
	}

	result := &TrapezoidResult{
		Area:       area,
		Midsegment: midsegment,
		Steps:      steps,
	}

	if t.LegLeft > 0 && t.LegRight > 0 {
		result.Perimeter = t.BaseA + t.BaseB + t.LegLeft + t.LegRight
		steps["perimeter"] = []Step{
			{
				Formula:      "P = a + b + c + d",
				Substitution: fmt.Sprintf("P = %s + %s + %s + %s", fmtNum(t.BaseA), fmtNum(t.BaseB), fmtNum(t.LegLeft), fmtNum(t.LegRight)),
				Result:       fmt.Sprintf("P = %s", fmtNum(result.Perimeter)),
			},
		}
	}

	return result, nil
}

// TrapezoidVertices places an isosceles trapezoid in shape space with the
// longer base on the x axis.
func TrapezoidVertices(t Trapezoid) [4]Point {
	bottom, top := t.BaseA, t.BaseB
	if top > bottom {
		bottom, top = top, bottom
	}
	inset := (bottom - top) / 2
	return [4]Point{
		{X: 0, Y: 0},
		{X: bottom, Y: 0},
		{X: inset + top, Y: -t.Height},
		{X: inset, Y: -t.Height},
	}
}

// ============================================================
// Rectangle & Square
// ============================================================

type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type RectangleResult struct {
	Area      float64    `json:"area"`
	Perimeter float64    `json:"perimeter"`
	Diagonal  float64    `json:"diagonal"`
	Steps     Derivation `json:"steps"`
}

func SolveRectangle(r Rectangle) (*RectangleResult, error) {
	if err := requirePositive("width", r.Width); err != nil {
		return nil, err
	}
	if err := requirePositive("height", r.Height); err != nil {
		return nil, err
	}

	area := r.Width * r.Height
	perimeter := 2 * (r.Width + r.Height)
	diagonal := math.Hypot(r.Width, r.Height)

	steps := Derivation{
		"area": {
			{
				Formula:      "A = w · h",
				Substitution: fmt.Sprintf("A = %s · %s", fmtNum(r.Width), fmtNum(r.Height)),
				Result:       fmt.Sprintf("A = %s", fmtNum(area)),
			},
		},
		"perimeter": {
			{
				Formula:      "P = 2 · (w + h)",
				Substitution: fmt.Sprintf("P = 2 · (%s + %s)", fmtNum(r.Width), fmtNum(r.Height)),
				Result:       fmt.Sprintf("P = %s", fmtNum(perimeter)),
			},
		},
		"diagonal": {
			{
				Formula:      "d = √(w² + h²)",
				Substitution: fmt.Sprintf("d = √(%s + %s)", fmtNum(r.Width*r.Width), fmtNum(r.Height*r.Height)),
				Result:       fmt.Sprintf("d = %s", fmtNum(diagonal)),
			},
		},
	}

	return &RectangleResult{
		Area:      area,
		Perimeter: perimeter,
		Diagonal:  diagonal,
		Steps:     steps,
	}, nil
}

type Square struct {
	Side float64 `json:"side"`
}

func SolveSquare(s Square) (*RectangleResult, error) {
	result, err := SolveRectangle(Rectangle{Width: s.Side, Height: s.Side})
	if err != nil {
		return nil, err
	}

	// Replace the generic rectangle derivations with the square forms.
	result.Steps = Derivation{
		"area": {
			{
				Formula:      "A = s²",
				Substitution: fmt.Sprintf("A = %s²", fmtNum(s.Side)),
				Result:       fmt.Sprintf("A = %s", fmtNum(result.Area)),
			},
		},
		"perimeter": {
			{
				Formula:      "P = 4 · s",
				Substitution: fmt.Sprintf("P = 4 · %s", fmtNum(s.Side)),
				Result:       fmt.Sprintf("P = %s", fmtNum(result.Perimeter)),
			},
		},
		"diagonal": {
			{
				Formula:      "d = s · √2",
				Substitution: fmt.Sprintf("d = %s · √2", fmtNum(s.Side)),
				Result:       fmt.Sprintf("d = %s", fmtNum(result.Diagonal)),
			},
		},
	}
	return result, nil
}
