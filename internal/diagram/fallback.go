package diagram

import (
	"fmt"

	"notesnap/internal/geometry"
	"notesnap/internal/i18n"
)

// ============================================================
// Fallback Panels
// ============================================================

// unknownTypePanel renders the readable fallback shown for an unregistered
// diagram type, including "did you mean" suggestions.
func unknownTypePanel(typ string, suggestions []string, lang i18n.Language, width, height float64) string {
	elements := panelFrame(width, height)

	center := width / 2
	elements = append(elements,
		textEl(geometry.Point{X: center, Y: height/2 - 24}, i18n.T(lang, "fallback.unknown_type"), "middle"),
		fmt.Sprintf(`<text x="%s" y="%s" font-size="12" text-anchor="middle" fill="%s">%s</text>`,
			fmtNum(center), fmtNum(height/2), strokeHighlight, escapeText(typ)),
	)

	if len(suggestions) > 0 {
		y := height/2 + 24
		elements = append(elements, measureTextEl(geometry.Point{X: center, Y: y}, i18n.T(lang, "fallback.did_you_mean")+":"))
		for i, s := range suggestions {
			elements = append(elements, measureTextEl(geometry.Point{X: center, Y: y + 18*float64(i+1)}, s))
		}
	}

	return assembleSVG(width, height, i18n.RTL(lang), elements)
}

// errorPanel replaces a diagram whose renderer failed or panicked.
func errorPanel(lang i18n.Language, width, height float64) string {
	elements := panelFrame(width, height)

	center := width / 2
	elements = append(elements,
		textEl(geometry.Point{X: center, Y: height/2 - 10}, i18n.T(lang, "fallback.render_error"), "middle"),
		measureTextEl(geometry.Point{X: center, Y: height/2 + 14}, i18n.T(lang, "fallback.render_error_body")),
	)

	return assembleSVG(width, height, i18n.RTL(lang), elements)
}

func panelFrame(width, height float64) []string {
	return []string{
		fmt.Sprintf(`<rect x="8" y="8" width="%s" height="%s" rx="8" fill="none" stroke="%s" stroke-dasharray="6 4" />`,
			fmtNum(width-16), fmtNum(height-16), strokeConstruction),
	}
}
