package diagram

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"notesnap/internal/geometry"
	"notesnap/internal/steps"
)

// ============================================================
// SVG assembly
// ============================================================

// Stroke palette shared by all renderers.
const (
	strokeOutline      = "#000"
	strokeConstruction = "#888"
	strokeMeasure      = "#1f77b4"
	strokeHighlight    = "#d62728"
)

// svgStyle drives the reveal treatment: every revealed group fades in, the
// current group gets a thicker spotlight stroke.
const svgStyle = `
    g.revealed, g.current { animation: fade-in 0.4s ease-out both; }
    g.current line, g.current path, g.current polygon, g.current circle { stroke-width: 2.5; }
    @keyframes fade-in { from { opacity: 0; } to { opacity: 1; } }
  `

// assembleSVG wraps rendered elements into a complete SVG document.
func assembleSVG(width, height float64, rtl bool, elements []string) string {
	var builder strings.Builder
	builder.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")

	direction := ""
	if rtl {
		direction = ` direction="rtl"`
	}
	builder.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s"%s>`,
		formatFloat(width), formatFloat(height), formatFloat(width), formatFloat(height), direction))
	builder.WriteString("\n  <style>")
	builder.WriteString(svgStyle)
	builder.WriteString("</style>\n")

	for _, elem := range elements {
		builder.WriteString("  ")
		builder.WriteString(elem)
		builder.WriteString("\n")
	}

	builder.WriteString(`</svg>`)
	return builder.String()
}

// stepGroup wraps inner elements in a reveal group for the given step. It
// returns nothing when the step is not yet visible. The fade-in delay is
// staggered by step index so replaying a jump reveals steps in order.
func stepGroup(seq *steps.Sequence, id string, inner ...string) []string {
	if !seq.Visible(id) {
		return nil
	}

	class := "revealed"
	if seq.IsCurrent(id) {
		class = "current"
	}

	delay := 0.12 * float64(stepIndex(seq, id))
	out := []string{fmt.Sprintf(`<g id="step-%s" class="%s" style="animation-delay: %ss">`, id, class, fmtNum(delay))}
	out = append(out, inner...)
	out = append(out, `</g>`)
	return out
}

func stepIndex(seq *steps.Sequence, id string) int {
	for i, d := range seq.Definitions() {
		if d.ID == id {
			return i
		}
	}
	return 0
}

// ============================================================
// Element helpers
// ============================================================

func lineEl(p1, p2 geometry.Point, stroke string, dashed bool) string {
	dash := ""
	if dashed {
		dash = ` stroke-dasharray="6 4"`
	}
	return fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s" stroke="%s" stroke-width="1.5"%s />`,
		fmtNum(p1.X), fmtNum(p1.Y), fmtNum(p2.X), fmtNum(p2.Y), stroke, dash)
}

func circleEl(center geometry.Point, r float64, stroke string) string {
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-width="1.5" />`,
		fmtNum(center.X), fmtNum(center.Y), fmtNum(r), stroke)
}

func dotEl(p geometry.Point, r float64, fill string) string {
	return fmt.Sprintf(`<circle cx="%s" cy="%s" r="%s" fill="%s" />`,
		fmtNum(p.X), fmtNum(p.Y), fmtNum(r), fill)
}

func polygonEl(points []geometry.Point, stroke string) string {
	var coords []string
	for _, p := range points {
		coords = append(coords, fmtNum(p.X)+","+fmtNum(p.Y))
	}
	return fmt.Sprintf(`<polygon points="%s" fill="none" stroke="%s" stroke-width="1.5" />`,
		strings.Join(coords, " "), stroke)
}

func pathEl(d, stroke, fill string) string {
	return fmt.Sprintf(`<path d="%s" fill="%s" stroke="%s" stroke-width="1.5" />`, d, fill, stroke)
}

func textEl(p geometry.Point, content, anchor string) string {
	return fmt.Sprintf(`<text x="%s" y="%s" font-size="13" text-anchor="%s" fill="%s">%s</text>`,
		fmtNum(p.X), fmtNum(p.Y), anchor, strokeOutline, escapeText(content))
}

func measureTextEl(p geometry.Point, content string) string {
	return fmt.Sprintf(`<text x="%s" y="%s" font-size="12" text-anchor="middle" fill="%s">%s</text>`,
		fmtNum(p.X), fmtNum(p.Y), strokeMeasure, escapeText(content))
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// ============================================================
// Formatting helpers
// ============================================================

func formatFloat(val float64) string {
	return strconv.FormatFloat(val, 'f', -1, 64)
}

// fmtNum rounds coordinates to 2 decimals to keep the markup compact.
func fmtNum(val float64) string {
	rounded := math.Round(val*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
