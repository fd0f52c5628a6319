package geometry

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ============================================================
// Derivations
// ============================================================

// Step is one line of a worked derivation: the symbolic formula, the
// substitution with the concrete values, and the evaluated result.
type Step struct {
	Formula      string `json:"formula"`
	Substitution string `json:"substitution"`
	Result       string `json:"result"`
}

// Derivation groups worked steps by the measurement they derive
// (e.g. "area", "perimeter", "diagonal").
type Derivation map[string][]Step

// ============================================================
// Validation
// ============================================================

var (
	ErrNonPositive = errors.New("geometric input must be positive")
	ErrDegenerate  = errors.New("sides violate the triangle inequality")
)

func requirePositive(name string, val float64) error {
	if val <= 0 || math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%w: %s=%s", ErrNonPositive, name, formatFloat(val))
	}
	return nil
}

// ============================================================
// Formatting helpers
// ============================================================

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// fmtNum renders a value for derivation text, rounded to 4 decimal places.
func fmtNum(val float64) string {
	rounded := math.Round(val*1e4) / 1e4
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
