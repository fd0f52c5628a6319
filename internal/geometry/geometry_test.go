package geometry

import (
	"errors"
	"math"
	"testing"
)

// relClose reports whether got is within rel relative tolerance of want.
func relClose(got, want, rel float64) bool {
	if want == 0 {
		return math.Abs(got) <= rel
	}
	return math.Abs(got-want) <= rel*math.Abs(want)
}

func TestSolveTriangle345(t *testing.T) {
	result, err := SolveTriangle(Triangle{A: 3, B: 4, C: 5})
	if err != nil {
		t.Fatalf("SolveTriangle: %v", err)
	}

	if !relClose(result.Area, 6.0, 1e-12) {
		t.Errorf("area = %v, want 6.0", result.Area)
	}
	if !relClose(result.Perimeter, 12.0, 1e-12) {
		t.Errorf("perimeter = %v, want 12.0", result.Perimeter)
	}
	// The angle opposite the hypotenuse must be a right angle.
	if !relClose(result.AngleC, 90.0, 1e-9) {
		t.Errorf("angleC = %v, want 90", result.AngleC)
	}
	if !relClose(result.AngleA+result.AngleB+result.AngleC, 180.0, 1e-9) {
		t.Errorf("angle sum = %v, want 180", result.AngleA+result.AngleB+result.AngleC)
	}

	if len(result.Steps["area"]) != 2 {
		t.Errorf("area derivation has %d steps, want 2", len(result.Steps["area"]))
	}
}

func TestSolveTriangleRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want error
	}{
		{"zero side", Triangle{A: 0, B: 4, C: 5}, ErrNonPositive},
		{"negative side", Triangle{A: -3, B: 4, C: 5}, ErrNonPositive},
		{"nan side", Triangle{A: math.NaN(), B: 4, C: 5}, ErrNonPositive},
		{"degenerate", Triangle{A: 1, B: 2, C: 3}, ErrDegenerate},
		{"inequality violated", Triangle{A: 1, B: 1, C: 10}, ErrDegenerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SolveTriangle(tt.tri); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSolveRightTriangle(t *testing.T) {
	result, err := SolveRightTriangle(RightTriangle{LegA: 3, LegB: 4})
	if err != nil {
		t.Fatalf("SolveRightTriangle: %v", err)
	}
	if !relClose(result.Hypotenuse, 5.0, 1e-12) {
		t.Errorf("hypotenuse = %v, want 5", result.Hypotenuse)
	}
	if !relClose(result.Area, 6.0, 1e-12) {
		t.Errorf("area = %v, want 6", result.Area)
	}
}

func TestSolveCircle(t *testing.T) {
	result, err := SolveCircle(Circle{Radius: 5})
	if err != nil {
		t.Fatalf("SolveCircle: %v", err)
	}
	if !relClose(result.Area, 78.53981633974483, 1e-9) {
		t.Errorf("area = %v, want ≈78.5398", result.Area)
	}
	if !relClose(result.Circumference, 31.41592653589793, 1e-9) {
		t.Errorf("circumference = %v, want ≈31.4159", result.Circumference)
	}
}

func TestSolveSector(t *testing.T) {
	result, err := SolveSector(Sector{Radius: 6, Angle: 60})
	if err != nil {
		t.Fatalf("SolveSector: %v", err)
	}
	if !relClose(result.SectorArea, math.Pi*6, 1e-9) {
		t.Errorf("sector area = %v, want %v", result.SectorArea, math.Pi*6)
	}
	if !relClose(result.ArcLength, 2*math.Pi, 1e-9) {
		t.Errorf("arc length = %v, want %v", result.ArcLength, 2*math.Pi)
	}
	// A 60° chord of a radius-6 circle is a side of the inscribed hexagon.
	if !relClose(result.ChordLength, 6, 1e-9) {
		t.Errorf("chord = %v, want 6", result.ChordLength)
	}

	if _, err := SolveSector(Sector{Radius: 6, Angle: 400}); err == nil {
		t.Error("angle over 360 accepted")
	}
}

func TestSolveRegularPolygon(t *testing.T) {
	result, err := SolveRegularPolygon(RegularPolygon{Sides: 6, SideLength: 4})
	if err != nil {
		t.Fatalf("SolveRegularPolygon: %v", err)
	}

	wantApothem := 4 / (2 * math.Tan(math.Pi/6))
	if !relClose(result.Apothem, wantApothem, 1e-9) {
		t.Errorf("apothem = %v, want %v", result.Apothem, wantApothem)
	}
	if !relClose(result.Apothem, 3.4641016151, 1e-9) {
		t.Errorf("apothem = %v, want ≈3.4641016151", result.Apothem)
	}
	if !relClose(result.Area, 41.5692193817, 1e-9) {
		t.Errorf("area = %v, want ≈41.5692193817", result.Area)
	}
	if !relClose(result.InteriorAngle, 120, 1e-12) {
		t.Errorf("interior angle = %v, want 120", result.InteriorAngle)
	}
	if !relClose(result.ExteriorAngle, 60, 1e-12) {
		t.Errorf("exterior angle = %v, want 60", result.ExteriorAngle)
	}

	if _, err := SolveRegularPolygon(RegularPolygon{Sides: 2, SideLength: 4}); err == nil {
		t.Error("2-sided polygon accepted")
	}
}

func TestRegularPolygonApothemAreaIdentity(t *testing.T) {
	// area = n·s·a/2 must hold across n.
	for n := 3; n <= 12; n++ {
		p := RegularPolygon{Sides: n, SideLength: 2.5}
		result, err := SolveRegularPolygon(p)
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		want := float64(n) * p.SideLength * result.Apothem / 2
		if !relClose(result.Area, want, 1e-9) {
			t.Errorf("n=%d: area = %v, want %v", n, result.Area, want)
		}
	}
}

func TestSolveRhombus(t *testing.T) {
	result, err := SolveRhombus(Rhombus{Diagonal1: 6, Diagonal2: 8})
	if err != nil {
		t.Fatalf("SolveRhombus: %v", err)
	}
	if !relClose(result.Area, 24, 1e-12) {
		t.Errorf("area = %v, want 24", result.Area)
	}
	// Half-diagonals 3 and 4 give side 5.
	if !relClose(result.Side, 5, 1e-12) {
		t.Errorf("side = %v, want 5", result.Side)
	}
	if !relClose(result.Perimeter, 20, 1e-12) {
		t.Errorf("perimeter = %v, want 20", result.Perimeter)
	}
}

func TestSolveTrapezoid(t *testing.T) {
	result, err := SolveTrapezoid(Trapezoid{BaseA: 10, BaseB: 6, Height: 4})
	if err != nil {
		t.Fatalf("SolveTrapezoid: %v", err)
	}
	if !relClose(result.Area, 32, 1e-12) {
		t.Errorf("area = %v, want 32", result.Area)
	}
	if !relClose(result.Midsegment, 8, 1e-12) {
		t.Errorf("midsegment = %v, want 8", result.Midsegment)
	}
	if result.Perimeter != 0 {
		t.Errorf("perimeter = %v, want 0 without legs", result.Perimeter)
	}

	withLegs, err := SolveTrapezoid(Trapezoid{BaseA: 10, BaseB: 6, Height: 4, LegLeft: 5, LegRight: 5})
	if err != nil {
		t.Fatalf("SolveTrapezoid with legs: %v", err)
	}
	if !relClose(withLegs.Perimeter, 26, 1e-12) {
		t.Errorf("perimeter = %v, want 26", withLegs.Perimeter)
	}
}

func TestSolveSquare(t *testing.T) {
	result, err := SolveSquare(Square{Side: 3})
	if err != nil {
		t.Fatalf("SolveSquare: %v", err)
	}
	if !relClose(result.Area, 9, 1e-12) {
		t.Errorf("area = %v, want 9", result.Area)
	}
	if !relClose(result.Diagonal, 3*math.Sqrt2, 1e-12) {
		t.Errorf("diagonal = %v, want %v", result.Diagonal, 3*math.Sqrt2)
	}
}

func TestSolveLawOfSines(t *testing.T) {
	// Equilateral: all angles 60, all sides equal.
	result, err := SolveLawOfSines(LawOfSinesInput{AngleA: 60, AngleB: 60, SideA: 7})
	if err != nil {
		t.Fatalf("SolveLawOfSines: %v", err)
	}
	if !relClose(result.AngleC, 60, 1e-9) {
		t.Errorf("angleC = %v, want 60", result.AngleC)
	}
	if !relClose(result.SideB, 7, 1e-9) || !relClose(result.SideC, 7, 1e-9) {
		t.Errorf("sides = %v, %v, want 7, 7", result.SideB, result.SideC)
	}

	if _, err := SolveLawOfSines(LawOfSinesInput{AngleA: 120, AngleB: 60, SideA: 7}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("flat triangle err = %v, want ErrDegenerate", err)
	}
}

func TestSolveLawOfCosines(t *testing.T) {
	// Right angle reduces to Pythagoras.
	result, err := SolveLawOfCosines(LawOfCosinesInput{SideA: 3, SideB: 4, AngleC: 90})
	if err != nil {
		t.Fatalf("SolveLawOfCosines: %v", err)
	}
	if !relClose(result.SideC, 5, 1e-9) {
		t.Errorf("sideC = %v, want 5", result.SideC)
	}
	if !relClose(result.AngleA+result.AngleB, 90, 1e-9) {
		t.Errorf("angleA+angleB = %v, want 90", result.AngleA+result.AngleB)
	}
}

func TestTriangleVertices(t *testing.T) {
	pts := TriangleVertices(3, 4, 5)

	// Distances between the placed vertices must reproduce the sides.
	if got := Dist(pts[1], pts[2]); !relClose(got, 3, 1e-9) {
		t.Errorf("side a = %v, want 3", got)
	}
	if got := Dist(pts[0], pts[2]); !relClose(got, 4, 1e-9) {
		t.Errorf("side b = %v, want 4", got)
	}
	if got := Dist(pts[0], pts[1]); !relClose(got, 5, 1e-9) {
		t.Errorf("side c = %v, want 5", got)
	}
}
