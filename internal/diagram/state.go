package diagram

import (
	"encoding/json"
	"fmt"
)

// ============================================================
// Diagram State
// ============================================================

// State is the discriminated-union diagram payload supplied by the tutoring
// session layer. Data carries the shape-specific fields for Type.
type State struct {
	Type        string          `json:"type"`
	Data        json.RawMessage `json:"data"`
	VisibleStep *int            `json:"visibleStep,omitempty"`
	TotalSteps  int             `json:"totalSteps,omitempty"`
	StepConfig  map[string]bool `json:"stepConfig,omitempty"`
	Language    string          `json:"language,omitempty"`
	Width       float64         `json:"width,omitempty"`
	Height      float64         `json:"height,omitempty"`
}

// decodeData unmarshals the shape-specific payload.
func (st State) decodeData(v any) error {
	if len(st.Data) == 0 {
		return fmt.Errorf("diagram state has no data")
	}
	if err := json.Unmarshal(st.Data, v); err != nil {
		return fmt.Errorf("decode %s data: %w", st.Type, err)
	}
	return nil
}

// stepEnabled resolves an optional step toggle: StepConfig overrides the
// renderer's default.
func (st State) stepEnabled(id string, def bool) bool {
	if st.StepConfig != nil {
		if v, ok := st.StepConfig[id]; ok {
			return v
		}
	}
	return def
}

// ============================================================
// Type Lists & Guards
// ============================================================

var shapeTypes = []string{
	"triangle",
	"right_triangle",
	"circle",
	"circle_sector",
	"regular_polygon",
	"rhombus",
	"trapezoid",
	"rectangle",
	"square",
}

var angleTypes = []string{
	"vertical_angles",
	"supplementary_angles",
	"complementary_angles",
	"corresponding_angles",
}

var trigTypes = []string{
	"law_of_sines",
	"law_of_cosines",
}

var proofTypes = []string{
	"triangle_congruence",
	"triangle_similarity",
}

func contains(list []string, typ string) bool {
	for _, t := range list {
		if t == typ {
			return true
		}
	}
	return false
}

func IsShapeDiagram(typ string) bool { return contains(shapeTypes, typ) }
func IsAngleDiagram(typ string) bool { return contains(angleTypes, typ) }
func IsTrigDiagram(typ string) bool  { return contains(trigTypes, typ) }
func IsProofDiagram(typ string) bool { return contains(proofTypes, typ) }

// KnownTypes returns every registered diagram type, grouped lists first.
func KnownTypes() []string {
	out := make([]string, 0, len(shapeTypes)+len(angleTypes)+len(trigTypes)+len(proofTypes))
	out = append(out, shapeTypes...)
	out = append(out, angleTypes...)
	out = append(out, trigTypes...)
	out = append(out, proofTypes...)
	return out
}

// TypeGroups returns the known types keyed by category, for the /types
// endpoint.
func TypeGroups() map[string][]string {
	return map[string][]string{
		"shapes": shapeTypes,
		"angles": angleTypes,
		"trig":   trigTypes,
		"proofs": proofTypes,
	}
}
