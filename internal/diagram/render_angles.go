package diagram

import (
	"fmt"
	"math"

	"notesnap/internal/geometry"
	"notesnap/internal/i18n"
	"notesnap/internal/steps"
)

// ============================================================
// Angle-Relationship Renderers
// ============================================================

type angleData struct {
	Angle float64 `json:"angle"`
}

// renderAnglePair handles vertical, supplementary, complementary and
// corresponding angle diagrams: two rays (or a transversal) with the given
// angle and its related angle.
func renderAnglePair(st State, lang i18n.Language, width, height float64) ([]string, *steps.Sequence, error) {
	var data angleData
	if err := st.decodeData(&data); err != nil {
		return nil, nil, err
	}
	if err := validateAngle(st.Type, data.Angle); err != nil {
		return nil, nil, err
	}

	related, relation := relatedAngle(st.Type, data.Angle)

	seq := newSequence(st,
		stepDef(lang, "construction"),
		stepDef(lang, "angles"),
		stepDef(lang, "measurements"),
	)

	var elements []string

	switch st.Type {
	case "corresponding_angles":
		elements = renderTransversal(seq, data.Angle, width, height)
	default:
		elements = renderCrossing(seq, st.Type, data.Angle, width, height)
	}

	caption := fmt.Sprintf("%s° %s %s°", fmtNum(data.Angle), relation, fmtNum(related))
	elements = append(elements, stepGroup(seq, "measurements",
		measureTextEl(geometry.Point{X: width / 2, Y: height - 10}, caption))...)

	return elements, seq, nil
}

// validateAngle rejects angles outside (0, 180). A complement only exists
// under 90°, so the complementary diagram narrows the range further.
func validateAngle(typ string, angle float64) error {
	if angle <= 0 || angle >= 180 {
		return fmt.Errorf("%w: angle=%s must be in (0, 180)", geometry.ErrNonPositive, fmtNum(angle))
	}
	if typ == "complementary_angles" && angle >= 90 {
		return fmt.Errorf("%w: angle=%s has no complement, must be under 90", geometry.ErrNonPositive, fmtNum(angle))
	}
	return nil
}

// relatedAngle returns the paired angle and the relation glyph for the
// caption.
func relatedAngle(typ string, angle float64) (float64, string) {
	switch typ {
	case "vertical_angles", "corresponding_angles":
		return angle, "="
	case "supplementary_angles":
		return 180 - angle, "+"
	case "complementary_angles":
		return 90 - angle, "+"
	}
	return angle, "="
}

// renderCrossing draws two lines meeting at the canvas center.
func renderCrossing(seq *steps.Sequence, typ string, angle, width, height float64) []string {
	center := geometry.Point{X: width / 2, Y: height / 2}
	r := math.Min(width, height) / 2 * 0.82
	rad := degToRad(angle)

	ray := func(theta float64) geometry.Point {
		return geometry.Point{X: center.X + r*math.Cos(theta), Y: center.Y - r*math.Sin(theta)}
	}

	base1 := ray(0)
	base2 := ray(math.Pi)
	arm1 := ray(rad)
	arm2 := ray(rad + math.Pi)

	var construction []string
	construction = append(construction, lineEl(base2, base1, strokeOutline, false))
	if typ == "complementary_angles" {
		// A right angle split by one ray.
		construction = append(construction,
			lineEl(center, ray(math.Pi/2), strokeOutline, false),
			lineEl(center, arm1, strokeOutline, false))
	} else {
		construction = append(construction, lineEl(arm2, arm1, strokeOutline, false))
	}
	construction = append(construction, dotEl(center, 2.5, strokeOutline))

	var arcs []string
	arcs = append(arcs,
		pathEl(geometry.InteriorArcPath(center, base1, arm1, 22), strokeMeasure, "none"),
		measureTextEl(bisectorPoint(center, base1, arm1, 38), fmtNum(angle)+"°"))

	switch typ {
	case "vertical_angles":
		arcs = append(arcs,
			pathEl(geometry.InteriorArcPath(center, base2, arm2, 22), strokeHighlight, "none"),
			measureTextEl(bisectorPoint(center, base2, arm2, 38), fmtNum(angle)+"°"))
	case "supplementary_angles":
		arcs = append(arcs,
			pathEl(geometry.InteriorArcPath(center, arm1, base2, 28), strokeHighlight, "none"),
			measureTextEl(bisectorPoint(center, arm1, base2, 44), fmtNum(180-angle)+"°"))
	case "complementary_angles":
		arcs = append(arcs,
			pathEl(geometry.InteriorArcPath(center, arm1, ray(math.Pi/2), 28), strokeHighlight, "none"),
			measureTextEl(bisectorPoint(center, arm1, ray(math.Pi/2), 44), fmtNum(90-angle)+"°"))
	}

	var elements []string
	elements = append(elements, stepGroup(seq, "construction", construction...)...)
	elements = append(elements, stepGroup(seq, "angles", arcs...)...)
	return elements
}

// renderTransversal draws two parallel lines cut by a transversal with the
// corresponding angles marked at both intersections.
func renderTransversal(seq *steps.Sequence, angle, width, height float64) []string {
	margin := width * 0.09
	y1 := height * 0.33
	y2 := height * 0.67

	rad := degToRad(angle)
	// Transversal through both intersections at the requested slope.
	x1 := width * 0.5
	dx := (y2 - y1) / math.Tan(rad)
	x2 := x1 + dx

	p1 := geometry.Point{X: x1, Y: y1}
	p2 := geometry.Point{X: x2, Y: y2}
	dirX := (p2.X - p1.X)
	dirY := (p2.Y - p1.Y)
	length := math.Hypot(dirX, dirY)
	ext := 0.45 * math.Min(width, height) / length
	top := geometry.Point{X: p1.X - dirX*ext, Y: p1.Y - dirY*ext}
	bottom := geometry.Point{X: p2.X + dirX*ext, Y: p2.Y + dirY*ext}

	construction := []string{
		lineEl(geometry.Point{X: margin, Y: y1}, geometry.Point{X: width - margin, Y: y1}, strokeOutline, false),
		lineEl(geometry.Point{X: margin, Y: y2}, geometry.Point{X: width - margin, Y: y2}, strokeOutline, false),
		lineEl(top, bottom, strokeOutline, false),
		dotEl(p1, 2.5, strokeOutline),
		dotEl(p2, 2.5, strokeOutline),
	}

	right1 := geometry.Point{X: width - margin, Y: y1}
	right2 := geometry.Point{X: width - margin, Y: y2}
	arcs := []string{
		pathEl(geometry.InteriorArcPath(p1, right1, bottom, 20), strokeMeasure, "none"),
		measureTextEl(bisectorPoint(p1, right1, bottom, 36), fmtNum(angle)+"°"),
		pathEl(geometry.InteriorArcPath(p2, right2, geometry.Point{X: p2.X + dirX, Y: p2.Y + dirY}, 20), strokeHighlight, "none"),
		measureTextEl(bisectorPoint(p2, right2, geometry.Point{X: p2.X + dirX, Y: p2.Y + dirY}, 36), fmtNum(angle)+"°"),
	}

	var elements []string
	elements = append(elements, stepGroup(seq, "construction", construction...)...)
	elements = append(elements, stepGroup(seq, "angles", arcs...)...)
	return elements
}
