package diagram

import (
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"notesnap/internal/i18n"
	"notesnap/internal/steps"
)

// ============================================================
// Diagram Router
// ============================================================

const (
	defaultWidth  = 400
	defaultHeight = 300

	maxSuggestions = 3
)

// Result is the rendered diagram envelope. Fallback is set when the panel
// shown is not the requested diagram (unknown type or render failure).
type Result struct {
	SVG         string             `json:"svg"`
	Steps       []steps.Definition `json:"steps"`
	CurrentStep int                `json:"currentStep"`
	TotalSteps  int                `json:"totalSteps"`
	Fallback    bool               `json:"fallback,omitempty"`
	Suggestions []string           `json:"suggestions,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// renderFunc produces the SVG elements and the step sequence for one
// diagram type.
type renderFunc func(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error)

var renderers = map[string]renderFunc{
	"triangle":        renderTriangle,
	"right_triangle":  renderRightTriangle,
	"circle":          renderCircle,
	"circle_sector":   renderSector,
	"regular_polygon": renderRegularPolygon,
	"rhombus":         renderRhombus,
	"trapezoid":       renderTrapezoid,
	"rectangle":       renderRectangle,
	"square":          renderSquare,

	"vertical_angles":      renderAnglePair,
	"supplementary_angles": renderAnglePair,
	"complementary_angles": renderAnglePair,
	"corresponding_angles": renderAnglePair,

	"law_of_sines":   renderLawOfSines,
	"law_of_cosines": renderLawOfCosines,

	"triangle_congruence": renderTrianglePair,
	"triangle_similarity": renderTrianglePair,
}

// Render dispatches the diagram state to its renderer. It never panics:
// unknown types get a fallback panel with suggestions, renderer errors and
// panics get an error panel.
func Render(st State) (result Result) {
	lang := i18n.Parse(st.Language)
	width, height := st.Width, st.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	render, ok := renderers[st.Type]
	if !ok {
		suggestions := Suggest(st.Type, KnownTypes(), maxSuggestions)
		log.Printf("[RENDER] unknown diagram type %q, suggesting %v", st.Type, suggestions)
		return Result{
			SVG:         unknownTypePanel(st.Type, suggestions, lang, width, height),
			Fallback:    true,
			Suggestions: suggestions,
			Error:       fmt.Sprintf("unknown diagram type %q", st.Type),
		}
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("[RENDER] panic rendering type=%s data=%s at %s: %v\n%s",
				st.Type, st.Data, time.Now().Format(time.RFC3339), r, debug.Stack())
			result = Result{
				SVG:      errorPanel(lang, width, height),
				Fallback: true,
				Error:    fmt.Sprintf("render panic: %v", r),
			}
		}
	}()

	elements, seq, err := render(st, lang, width, height)
	if err != nil {
		log.Printf("[RENDER] type=%s: %v", st.Type, err)
		return Result{
			SVG:      errorPanel(lang, width, height),
			Fallback: true,
			Error:    err.Error(),
		}
	}

	return Result{
		SVG:         assembleSVG(width, height, i18n.RTL(lang), elements),
		Steps:       seq.Definitions(),
		CurrentStep: seq.Current(),
		TotalSteps:  seq.Total(),
	}
}

// ============================================================
// Step sequence construction
// ============================================================

// stepDef builds a localized step definition for a well-known step ID.
func stepDef(lang i18n.Language, id string) steps.Definition {
	return steps.Definition{
		ID:              id,
		Label:           i18n.T(i18n.English, "step."+id),
		LabelTranslated: i18n.T(lang, "step."+id),
	}
}

// newSequence assembles the sequence and seeks to the externally supplied
// visible step (default: first step).
func newSequence(st State, defs ...steps.Definition) *steps.Sequence {
	seq := steps.New(defs...)
	if st.VisibleStep != nil {
		seq.Seek(*st.VisibleStep)
	}
	return seq
}
