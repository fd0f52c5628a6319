package i18n

// ============================================================
// Localization
// ============================================================

type Language string

const (
	English Language = "en"
	Hebrew  Language = "he"
)

// Parse maps a language code to a supported Language, defaulting to English.
func Parse(code string) Language {
	if code == string(Hebrew) {
		return Hebrew
	}
	return English
}

// RTL reports whether text in the language runs right-to-left.
func RTL(lang Language) bool {
	return lang == Hebrew
}

// T returns the translation for key, falling back to English and then to the
// key itself.
func T(lang Language, key string) string {
	if table, ok := tables[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := tables[English][key]; ok {
		return s
	}
	return key
}

// ============================================================
// String Tables
// ============================================================

var tables = map[Language]map[string]string{
	English: {
		"step.outline":      "Draw the outline",
		"step.vertices":     "Label the vertices",
		"step.sides":        "Label the sides",
		"step.angles":       "Show the angles",
		"step.construction": "Show construction lines",
		"step.diagonals":    "Draw the diagonals",
		"step.height":       "Draw the height",
		"step.apothem":      "Draw the apothem",
		"step.radius":       "Draw the radius",
		"step.sector":       "Shade the sector",
		"step.midsegment":   "Draw the midsegment",
		"step.marks":        "Mark equal parts",
		"step.measurements": "Show the measurements",

		"calc.area":           "Area",
		"calc.perimeter":      "Perimeter",
		"calc.circumference":  "Circumference",
		"calc.angles":         "Angles",
		"calc.diagonal":       "Diagonal",
		"calc.side":           "Side",
		"calc.sides":          "Sides",
		"calc.hypotenuse":     "Hypotenuse",
		"calc.apothem":        "Apothem",
		"calc.interior_angle": "Interior angle",
		"calc.exterior_angle": "Exterior angle",
		"calc.sector_area":    "Sector area",
		"calc.arc_length":     "Arc length",
		"calc.chord":          "Chord length",
		"calc.midsegment":     "Midsegment",

		"fallback.unknown_type":      "Unknown diagram type",
		"fallback.did_you_mean":      "Did you mean",
		"fallback.render_error":      "Something went wrong",
		"fallback.render_error_body": "This diagram could not be displayed",
	},
	Hebrew: {
		"step.outline":      "שרטוט המתאר",
		"step.vertices":     "סימון הקודקודים",
		"step.sides":        "סימון הצלעות",
		"step.angles":       "הצגת הזוויות",
		"step.construction": "הצגת קווי עזר",
		"step.diagonals":    "שרטוט האלכסונים",
		"step.height":       "שרטוט הגובה",
		"step.apothem":      "שרטוט האפותם",
		"step.radius":       "שרטוט הרדיוס",
		"step.sector":       "הצללת הגזרה",
		"step.midsegment":   "שרטוט קטע האמצעים",
		"step.marks":        "סימון חלקים שווים",
		"step.measurements": "הצגת המידות",

		"calc.area":           "שטח",
		"calc.perimeter":      "היקף",
		"calc.circumference":  "היקף המעגל",
		"calc.angles":         "זוויות",
		"calc.diagonal":       "אלכסון",
		"calc.side":           "צלע",
		"calc.sides":          "צלעות",
		"calc.hypotenuse":     "יתר",
		"calc.apothem":        "אפותם",
		"calc.interior_angle": "זווית פנימית",
		"calc.exterior_angle": "זווית חיצונית",
		"calc.sector_area":    "שטח הגזרה",
		"calc.arc_length":     "אורך הקשת",
		"calc.chord":          "אורך המיתר",
		"calc.midsegment":     "קטע אמצעים",

		"fallback.unknown_type":      "סוג תרשים לא מוכר",
		"fallback.did_you_mean":      "האם התכוונת",
		"fallback.render_error":      "משהו השתבש",
		"fallback.render_error_body": "לא ניתן להציג את התרשים",
	},
}
