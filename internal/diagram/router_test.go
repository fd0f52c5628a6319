package diagram

import (
	"encoding/json"
	"strings"
	"testing"
)

func state(typ, data string) State {
	return State{Type: typ, Data: json.RawMessage(data)}
}

func TestTypeGuardsPartitionKnownTypes(t *testing.T) {
	guards := map[string]func(string) bool{
		"shape": IsShapeDiagram,
		"angle": IsAngleDiagram,
		"trig":  IsTrigDiagram,
		"proof": IsProofDiagram,
	}

	for _, typ := range KnownTypes() {
		matched := 0
		for _, guard := range guards {
			if guard(typ) {
				matched++
			}
		}
		if matched != 1 {
			t.Errorf("type %q matched %d guards, want exactly 1", typ, matched)
		}
	}

	for name, guard := range guards {
		if guard("not_a_type") {
			t.Errorf("%s guard accepts unknown type", name)
		}
	}
}

func TestEveryKnownTypeHasRenderer(t *testing.T) {
	for _, typ := range KnownTypes() {
		if _, ok := renderers[typ]; !ok {
			t.Errorf("type %q has no renderer", typ)
		}
	}
	for typ := range renderers {
		if !contains(KnownTypes(), typ) {
			t.Errorf("renderer %q not in known types", typ)
		}
	}
}

func TestRenderUnknownTypeFallsBack(t *testing.T) {
	result := Render(state("trangle", `{}`))

	if !result.Fallback {
		t.Fatal("unknown type did not set fallback")
	}
	if len(result.Suggestions) == 0 {
		t.Error("no suggestions for a near-miss type")
	}
	if result.Suggestions[0] != "triangle" {
		t.Errorf("first suggestion = %q, want triangle", result.Suggestions[0])
	}
	if !strings.Contains(result.SVG, "<svg") {
		t.Error("fallback panel is not an SVG document")
	}
	if result.Error == "" {
		t.Error("fallback result has no error message")
	}
}

func TestRenderNeverPanics(t *testing.T) {
	// Every known type with hostile payloads must come back as a result,
	// never a panic.
	payloads := []string{``, `{}`, `null`, `{"sideA":-1}`, `{"radius":"x"}`}
	for _, typ := range append(KnownTypes(), "bogus") {
		for _, payload := range payloads {
			result := Render(state(typ, payload))
			if result.SVG == "" {
				t.Errorf("type=%q payload=%q produced empty SVG", typ, payload)
			}
		}
	}
}

func TestRenderTriangle(t *testing.T) {
	result := Render(state("triangle", `{"sideA":3,"sideB":4,"sideC":5}`))

	if result.Fallback {
		t.Fatalf("valid triangle fell back: %s", result.Error)
	}
	if result.TotalSteps == 0 {
		t.Fatal("triangle has no steps")
	}
	if result.CurrentStep != 0 {
		t.Errorf("CurrentStep = %d, want 0 by default", result.CurrentStep)
	}
	if !strings.Contains(result.SVG, `id="step-outline"`) {
		t.Error("outline step group missing from SVG")
	}
	if !strings.Contains(result.SVG, `class="current"`) {
		t.Error("no step marked current")
	}
	for _, def := range result.Steps {
		if def.Label == "" || def.LabelTranslated == "" {
			t.Errorf("step %q missing labels", def.ID)
		}
	}
}

func TestRenderVisibleStepClamped(t *testing.T) {
	over := 99
	st := state("circle", `{"radius":5}`)
	st.VisibleStep = &over

	result := Render(st)
	if result.Fallback {
		t.Fatalf("valid circle fell back: %s", result.Error)
	}
	if result.CurrentStep != result.TotalSteps-1 {
		t.Errorf("CurrentStep = %d, want clamp to %d", result.CurrentStep, result.TotalSteps-1)
	}

	under := -5
	st.VisibleStep = &under
	result = Render(st)
	if result.CurrentStep != 0 {
		t.Errorf("CurrentStep = %d, want clamp to 0", result.CurrentStep)
	}
}

func TestRenderStepRevealMonotonic(t *testing.T) {
	st := state("triangle", `{"sideA":3,"sideB":4,"sideC":5}`)

	zero := 0
	st.VisibleStep = &zero
	atStart := Render(st)

	last := atStart.TotalSteps - 1
	st.VisibleStep = &last
	atEnd := Render(st)

	// Later cursor positions can only add revealed groups.
	startGroups := strings.Count(atStart.SVG, "<g id=\"step-")
	endGroups := strings.Count(atEnd.SVG, "<g id=\"step-")
	if endGroups <= startGroups {
		t.Errorf("revealed groups: start=%d end=%d, want more at end", startGroups, endGroups)
	}
}

func TestRenderHebrewDirection(t *testing.T) {
	st := state("circle", `{"radius":5}`)
	st.Language = "he"

	result := Render(st)
	if result.Fallback {
		t.Fatalf("valid circle fell back: %s", result.Error)
	}
	if !strings.Contains(result.SVG, `direction="rtl"`) {
		t.Error("hebrew render missing rtl direction")
	}
	for _, def := range result.Steps {
		if def.LabelTranslated == def.Label && def.ID != "" {
			t.Logf("step %q not translated (label %q)", def.ID, def.Label)
		}
	}
}

func TestRenderBadDataFallsBack(t *testing.T) {
	tests := []struct {
		name string
		st   State
	}{
		{"empty data", state("triangle", ``)},
		{"degenerate triangle", state("triangle", `{"sideA":1,"sideB":1,"sideC":10}`)},
		{"negative radius", state("circle", `{"radius":-2}`)},
		{"polygon too few sides", state("regular_polygon", `{"sides":2,"sideLength":4}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Render(tt.st)
			if !result.Fallback {
				t.Error("invalid input did not fall back")
			}
			if result.Error == "" {
				t.Error("fallback has no error message")
			}
			if !strings.Contains(result.SVG, "<svg") {
				t.Error("error panel is not an SVG document")
			}
		})
	}
}

func TestRenderStepConfigDisablesStep(t *testing.T) {
	st := state("regular_polygon", `{"sides":6,"sideLength":4}`)
	with := Render(st)
	if with.Fallback {
		t.Fatalf("valid polygon fell back: %s", with.Error)
	}

	st.StepConfig = map[string]bool{"apothem": false}
	without := Render(st)
	if without.TotalSteps >= with.TotalSteps {
		t.Errorf("TotalSteps with apothem disabled = %d, want fewer than %d", without.TotalSteps, with.TotalSteps)
	}

	// StepConfig wins even when the payload asks for the step.
	st.Data = json.RawMessage(`{"sides":6,"sideLength":4,"showApothem":true}`)
	overridden := Render(st)
	if overridden.TotalSteps != without.TotalSteps {
		t.Errorf("TotalSteps with payload toggle = %d, want %d", overridden.TotalSteps, without.TotalSteps)
	}
}

func TestRenderComplementaryAngleBounds(t *testing.T) {
	valid := Render(state("complementary_angles", `{"angle":35}`))
	if valid.Fallback {
		t.Fatalf("valid complement fell back: %s", valid.Error)
	}

	// 120° has no complement; the result must be rejected, not a negative
	// angle in the caption.
	last := 99
	st := state("complementary_angles", `{"angle":120}`)
	st.VisibleStep = &last
	result := Render(st)
	if !result.Fallback {
		t.Fatal("angle over 90 rendered as a valid complement")
	}
	if result.Error == "" {
		t.Error("rejected complement has no error message")
	}
	if strings.Contains(result.SVG, "-30") {
		t.Error("negative complement leaked into the output")
	}

	// The same angle is fine for the supplementary diagram.
	if supp := Render(state("supplementary_angles", `{"angle":120}`)); supp.Fallback {
		t.Errorf("valid supplement fell back: %s", supp.Error)
	}
}

func TestCalculate(t *testing.T) {
	calc, err := Calculate(state("circle", `{"radius":5}`))
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if got := calc.Measurements["area"]; got < 78.53 || got > 78.55 {
		t.Errorf("area = %v, want ≈78.5398", got)
	}
	if got := calc.Measurements["circumference"]; got < 31.41 || got > 31.42 {
		t.Errorf("circumference = %v, want ≈31.4159", got)
	}
	if len(calc.Derivations) == 0 {
		t.Error("no derivation groups")
	}

	if _, err := Calculate(state("bogus", `{}`)); err == nil {
		t.Error("unknown type calculated without error")
	}
}

func TestCalculateAllShapeTypes(t *testing.T) {
	payloads := map[string]string{
		"triangle":        `{"sideA":3,"sideB":4,"sideC":5}`,
		"right_triangle":  `{"legA":3,"legB":4}`,
		"circle":          `{"radius":5}`,
		"circle_sector":   `{"radius":6,"angle":60}`,
		"regular_polygon": `{"sides":6,"sideLength":4}`,
		"rhombus":         `{"diagonal1":6,"diagonal2":8}`,
		"trapezoid":       `{"baseA":10,"baseB":6,"height":4}`,
		"rectangle":       `{"width":4,"height":3}`,
		"square":          `{"side":3}`,
		"law_of_sines":    `{"angleA":60,"angleB":60,"sideA":7}`,
		"law_of_cosines":  `{"sideA":3,"sideB":4,"angleC":90}`,
	}

	for typ, payload := range payloads {
		calc, err := Calculate(state(typ, payload))
		if err != nil {
			t.Errorf("Calculate(%s): %v", typ, err)
			continue
		}
		if len(calc.Measurements) == 0 {
			t.Errorf("Calculate(%s): no measurements", typ)
		}
	}
}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(state("triangle", `{"sideA":3,"sideB":4,"sideC":5}`), 400, 300)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Error("output is not a PNG stream")
	}

	if _, err := RenderPNG(state("bogus", `{}`), 400, 300); err == nil {
		t.Error("unknown type exported without error")
	}
}

func TestRenderPNGAngleDiagrams(t *testing.T) {
	payloads := map[string]string{
		"vertical_angles":      `{"angle":40}`,
		"supplementary_angles": `{"angle":120}`,
		"complementary_angles": `{"angle":35}`,
		"corresponding_angles": `{"angle":60}`,
	}

	for typ, payload := range payloads {
		data, err := RenderPNG(state(typ, payload), 400, 300)
		if err != nil {
			t.Errorf("RenderPNG(%s): %v", typ, err)
			continue
		}
		if len(data) < 8 || string(data[1:4]) != "PNG" {
			t.Errorf("RenderPNG(%s): output is not a PNG stream", typ)
		}
	}

	if _, err := RenderPNG(state("complementary_angles", `{"angle":120}`), 400, 300); err == nil {
		t.Error("angle without a complement exported without error")
	}
}
