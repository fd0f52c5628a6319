package geometry

import (
	"fmt"
	"math"
)

// ============================================================
// Circle
// ============================================================

type Circle struct {
	Radius float64 `json:"radius"`
}

type CircleResult struct {
	Area          float64    `json:"area"`
	Circumference float64    `json:"circumference"`
	Diameter      float64    `json:"diameter"`
	Steps         Derivation `json:"steps"`
}

func SolveCircle(c Circle) (*CircleResult, error) {
	if err := requirePositive("radius", c.Radius); err != nil {
		return nil, err
	}

	area := math.Pi * c.Radius * c.Radius
	circumference := 2 * math.Pi * c.Radius

	steps := Derivation{
		"area": {
			{
				Formula:      "A = π·r²",
				Substitution: fmt.Sprintf("A = π · %s", fmtNum(c.Radius*c.Radius)),
				Result:       fmt.Sprintf("A = %s", fmtNum(area)),
			},
		},
		"circumference": {
			{
				Formula:      "C = 2·π·r",
				Substitution: fmt.Sprintf("C = 2 · π · %s", fmtNum(c.Radius)),
				Result:       fmt.Sprintf("C = %s", fmtNum(circumference)),
			},
		},
	}

	return &CircleResult{
		Area:          area,
		Circumference: circumference,
		Diameter:      2 * c.Radius,
		Steps:         steps,
	}, nil
}

// ============================================================
// Sector
// ============================================================

// Sector is a circular sector with a central angle in degrees.
type Sector struct {
	Radius float64 `json:"radius"`
	Angle  float64 `json:"angle"`
}

type SectorResult struct {
	SectorArea  float64    `json:"sectorArea"`
	ArcLength   float64    `json:"arcLength"`
	ChordLength float64    `json:"chordLength"`
	Steps       Derivation `json:"steps"`
}

func SolveSector(s Sector) (*SectorResult, error) {
	if err := requirePositive("radius", s.Radius); err != nil {
		return nil, err
	}
	if err := requirePositive("angle", s.Angle); err != nil {
		return nil, err
	}
	if s.Angle > 360 {
		return nil, fmt.Errorf("%w: angle=%s exceeds 360", ErrNonPositive, fmtNum(s.Angle))
	}

	frac := s.Angle / 360
	sectorArea := frac * math.Pi * s.Radius * s.Radius
	arcLength := frac * 2 * math.Pi * s.Radius
	chord := 2 * s.Radius * math.Sin(degToRad(s.Angle)/2)

	steps := Derivation{
		"sector_area": {
			{
				Formula:      "A = (θ/360) · π·r²",
				Substitution: fmt.Sprintf("A = (%s/360) · π · %s", fmtNum(s.Angle), fmtNum(s.Radius*s.Radius)),
				Result:       fmt.Sprintf("A = %s", fmtNum(sectorArea)),
			},
		},
		"arc_length": {
			{
				Formula:      "L = (θ/360) · 2·π·r",
				Substitution: fmt.Sprintf("L = (%s/360) · 2 · π · %s", fmtNum(s.Angle), fmtNum(s.Radius)),
				Result:       fmt.Sprintf("L = %s", fmtNum(arcLength)),
			},
		},
		"chord": {
			{
				Formula:      "d = 2·r·sin(θ/2)",
				Substitution: fmt.Sprintf("d = 2 · %s · sin(%s°)", fmtNum(s.Radius), fmtNum(s.Angle/2)),
				Result:       fmt.Sprintf("d = %s", fmtNum(chord)),
			},
		},
	}

	return &SectorResult{
		SectorArea:  sectorArea,
		ArcLength:   arcLength,
		ChordLength: chord,
		Steps:       steps,
	}, nil
}
